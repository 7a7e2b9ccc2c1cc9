// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digest

import (
	"context"
)

// Result is the structured outcome of one backend invocation.
type Result struct {
	// Digest is the hex-encoded digest reported by the backend,
	// empty when the backend could not produce one.
	Digest string

	// ExitCode is the numeric status reported by the backend.
	// Zero means the digest was computed successfully. Backends that
	// delegate to an external process surface the process exit code here.
	ExitCode int
}

// Request carries the parameters of one digest computation. The expected
// digest is included because external tools take it as an input parameter;
// in-process backends ignore it.
type Request struct {
	// Path is the file whose digest should be computed. The caller has
	// already verified that it references an existing regular file.
	Path string

	// Algorithm is the checksum algorithm, already normalized.
	Algorithm Algorithm

	// ExpectedDigest is the hex digest the caller will compare against,
	// empty when no checksum was published. Informational for backends
	// that perform their own comparison.
	ExpectedDigest string
}

// Backend abstracts the hashing capability behind a narrow contract so the
// verification engine can be tested without touching real files or spawning
// processes.
//
// A Backend returns an error only when the computation could not be carried
// out at all (file unreadable, tool failed to start). A backend that ran to
// completion reports its status through Result.ExitCode instead, so callers
// can distinguish an environment fault from a tool-reported condition.
type Backend interface {
	Compute(ctx context.Context, req Request) (Result, error)
}
