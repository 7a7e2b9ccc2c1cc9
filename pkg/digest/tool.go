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
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/integrity-gate/pkg/defaults"
)

// MismatchExitCode is the exit status a checksum tool uses to report that it
// computed a digest but the digest did not equal the one it was given.
// Any other nonzero status means the tool itself failed.
const MismatchExitCode = 2

// Tool delegates digest computation to an external checksum executable.
//
// The tool contract: it is invoked with the algorithm, the file path, and
// optionally the expected digest; it prints the computed digest as the first
// line of stdout and exits 0 on success, MismatchExitCode when the computed
// digest differs from the given one, and any other nonzero status on failure.
// Resolving the executable path and its environment is the caller's concern.
type Tool struct {
	path    string
	timeout time.Duration
}

// ToolOption is a functional option for configuring Tool instances.
type ToolOption func(*Tool)

// WithTimeout returns a ToolOption that bounds a single tool invocation.
// Zero disables the bound, leaving only the caller's context deadline.
func WithTimeout(timeout time.Duration) ToolOption {
	return func(t *Tool) {
		t.timeout = timeout
	}
}

// NewTool creates a backend that invokes the checksum executable at path.
func NewTool(path string, opts ...ToolOption) *Tool {
	t := &Tool{
		path:    path,
		timeout: defaults.ToolTimeout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Compute runs the checksum tool and waits for it to complete. The process
// is always fully drained and reaped before the exit status is read, and it
// is killed if the context ends first.
func (t *Tool) Compute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context cancelled: %w", err)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	args := []string{
		"--algorithm", req.Algorithm.String(),
		"--file", req.Path,
	}
	if req.ExpectedDigest != "" {
		args = append(args, "--checksum", req.ExpectedDigest)
	}

	cmd := exec.CommandContext(ctx, t.path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("invoking checksum tool",
		"tool", t.path,
		"algorithm", req.Algorithm.String(),
		"path", req.Path,
	)

	// Run waits for the process to exit and releases its resources
	// regardless of outcome.
	err := cmd.Run()

	result := Result{
		Digest: firstLine(stdout.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The tool never started (missing executable, permission
			// denied). An environment fault, not a tool-reported status.
			return Result{}, fmt.Errorf("failed to invoke checksum tool %s: %w", t.path, err)
		}

		result.ExitCode = exitErr.ExitCode()
		slog.Debug("checksum tool exited with nonzero status",
			"tool", t.path,
			"exitCode", result.ExitCode,
			"stderr", strings.TrimSpace(stderr.String()),
		)
	}

	return result, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.ToLower(strings.TrimSpace(line))
}
