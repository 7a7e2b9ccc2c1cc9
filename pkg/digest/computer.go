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
	"fmt"
	"os"
	"strings"

	"github.com/NVIDIA/integrity-gate/pkg/errors"
)

// Computer computes file digests through a pluggable Backend and classifies
// the structured result into the engine's error taxonomy.
type Computer struct {
	backend Backend
}

// Option is a functional option for configuring Computer instances.
type Option func(*Computer)

// WithBackend returns an Option that sets the hashing backend.
// The default is the in-process Native backend.
func WithBackend(b Backend) Option {
	return func(c *Computer) {
		c.backend = b
	}
}

// New creates a new Computer with the provided options.
func New(opts ...Option) *Computer {
	c := &Computer{
		backend: NewNative(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compute returns the lowercase hex digest of the file named by req.Path.
//
// The path is checked up front so a missing file never spawns a computation:
// a FILE_NOT_FOUND error is returned when it does not reference an existing
// regular file. A backend invocation fault or an unexpected exit status is
// returned as COMPUTATION_FAILED with the exit code in the error context.
// A MismatchExitCode exit is not an error here: the backend computed a
// digest, and comparing it is the engine's job.
func (c *Computer) Compute(ctx context.Context, req Request) (string, error) {
	if err := checkRegularFile(req.Path); err != nil {
		return "", err
	}

	result, err := c.backend.Compute(ctx, req)
	if err != nil {
		return "", errors.WrapWithContext(
			errors.ErrCodeComputationFailed,
			"checksum backend could not be invoked",
			err,
			map[string]any{
				"path":      req.Path,
				"algorithm": req.Algorithm.String(),
			},
		)
	}

	if result.ExitCode != 0 && result.ExitCode != MismatchExitCode {
		return "", errors.NewWithContext(
			errors.ErrCodeComputationFailed,
			fmt.Sprintf("checksum backend exited with status %d", result.ExitCode),
			map[string]any{
				"path":      req.Path,
				"algorithm": req.Algorithm.String(),
				"exitCode":  result.ExitCode,
			},
		)
	}

	sum := strings.ToLower(strings.TrimSpace(result.Digest))
	if sum == "" && result.ExitCode == 0 && req.ExpectedDigest != "" {
		// Tools that only report match/no-match via exit status do not
		// echo the digest back. A clean exit means it equaled the input.
		sum = strings.ToLower(req.ExpectedDigest)
	}

	if sum == "" && result.ExitCode == MismatchExitCode {
		// Same class of tool on the mismatch path: no digest to report,
		// but the exit status is an authoritative mismatch verdict.
		return "", errors.NewWithContext(
			errors.ErrCodeChecksumMismatch,
			fmt.Sprintf("checksum tool reported a mismatch for %q", req.Path),
			map[string]any{
				"path":      req.Path,
				"algorithm": req.Algorithm.String(),
				"expected":  strings.ToLower(req.ExpectedDigest),
			},
		)
	}

	if sum == "" {
		return "", errors.NewWithContext(
			errors.ErrCodeComputationFailed,
			"checksum backend returned no digest",
			map[string]any{
				"path":      req.Path,
				"algorithm": req.Algorithm.String(),
				"exitCode":  result.ExitCode,
			},
		)
	}

	return sum, nil
}

// checkRegularFile verifies the path references an existing regular file.
func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(
			errors.ErrCodeFileNotFound,
			fmt.Sprintf("file %q does not exist", path),
			err,
		)
	}

	if !info.Mode().IsRegular() {
		return errors.New(
			errors.ErrCodeFileNotFound,
			fmt.Sprintf("path %q is not a regular file", path),
		)
	}

	return nil
}
