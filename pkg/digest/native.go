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
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Native computes digests in-process with the standard library hash
// implementations. It is the default backend: no external tool to resolve,
// no process to spawn, and the file is streamed rather than read whole.
type Native struct{}

// NewNative creates a new in-process hashing backend.
func NewNative() *Native {
	return &Native{}
}

// Compute streams the file through the requested hash and returns the
// hex-encoded digest. The context is checked before the read starts;
// mid-stream cancellation is bounded by file I/O, matching the synchronous
// model of the engine.
func (n *Native) Compute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context cancelled: %w", err)
	}

	file, err := os.Open(req.Path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", req.Path, err)
	}
	defer file.Close()

	h := req.Algorithm.newHash()
	if _, err := io.Copy(h, file); err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", req.Path, err)
	}

	sum := hex.EncodeToString(h.Sum(nil))

	slog.Debug("digest computed",
		"path", req.Path,
		"algorithm", req.Algorithm.String(),
		"digest", sum,
	)

	return Result{Digest: sum, ExitCode: 0}, nil
}
