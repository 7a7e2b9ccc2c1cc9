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

package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/NVIDIA/integrity-gate/pkg/header"
	"github.com/NVIDIA/integrity-gate/pkg/prompt"
)

const (
	// APIVersion is the API version for serialized verification outcomes.
	APIVersion = "gate.nvidia.com/v1alpha1"
)

// Verifier gates files on their cryptographic digest. One Verify call
// handles one request start to finish; the Verifier holds no per-request
// state, so distinct files may be verified concurrently.
type Verifier struct {
	computer  *digest.Computer
	confirmer prompt.Confirmer

	// Version is the verifier version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Verifier instances.
type Option func(*Verifier)

// WithComputer returns an Option that sets the digest computer.
func WithComputer(c *digest.Computer) Option {
	return func(v *Verifier) {
		v.computer = c
	}
}

// WithConfirmer returns an Option that sets the interactive confirmer.
// Without one, prompt-user decisions degrade to missing-checksum failures,
// which is the correct behavior for non-interactive embeddings.
func WithConfirmer(c prompt.Confirmer) Option {
	return func(v *Verifier) {
		v.confirmer = c
	}
}

// WithVersion returns an Option that sets the Verifier version string.
func WithVersion(version string) Option {
	return func(v *Verifier) {
		v.Version = version
	}
}

// New creates a new Verifier with the provided options.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		computer: digest.New(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify resolves policy for the request, computes and compares the file
// digest when policy mandates it, and returns the terminal Outcome.
//
// The returned error is non-nil exactly when the outcome is failed: it is a
// typed StructuredError (CHECKSUM_MISMATCH, CHECKSUM_MISSING, FILE_NOT_FOUND,
// or COMPUTATION_FAILED) the caller must treat as fatal for whatever action
// depended on trusting the file. Skipped and allowed outcomes are returned
// with a nil error; they are policy decisions, not faults.
//
// Skip paths are a hard short-circuit: no digest is computed and the file is
// not touched once policy has determined the outcome.
func (v *Verifier) Verify(ctx context.Context, req Request, flags PolicyFlags) (*Outcome, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		FilePath:      req.FilePath,
		ProvenanceURL: req.ProvenanceURL,
	}
	outcome.Init(header.KindVerificationOutcome, APIVersion, v.Version)

	action := Resolve(req, flags)

	slog.Debug("policy resolved",
		"path", req.FilePath,
		"action", action.String(),
		"hasChecksum", req.expectedDigest() != "",
	)

	var err error
	switch action {
	case ActionSkipIgnorePolicy:
		outcome.Status = StatusSkipped
		outcome.Reason = "checksum verification disabled by policy (ignore all checksums)"
		slog.Warn("skipping checksum verification, ignore-checksums policy is set",
			"path", req.FilePath)

	case ActionSkipEmptyAllowed:
		outcome.Status = StatusSkipped
		outcome.Reason = "no checksum available and empty checksums are allowed by policy"
		slog.Warn("no checksum available, allowed by empty-checksums policy",
			"path", req.FilePath,
			"url", req.ProvenanceURL)

	case ActionPromptUser:
		err = v.confirm(ctx, req, outcome)

	case ActionFailNoChecksum:
		err = v.failMissingChecksum(req, outcome)

	case ActionProceed:
		err = v.compare(ctx, req, outcome)

	default:
		err = errors.New(errors.ErrCodeInternal,
			fmt.Sprintf("unhandled policy action %q", action))
		outcome.Status = StatusFailed
		outcome.Reason = err.Error()
	}

	outcome.Duration = time.Since(start)
	verificationsTotal.WithLabelValues(outcome.Status.String(), action.String()).Inc()
	verificationDuration.Observe(outcome.Duration.Seconds())

	return outcome, err
}

// confirm escalates a missing checksum to the interactive confirmer.
// Only reachable when flags.InteractiveHostAvailable is true; a missing
// confirmer means the embedding is not actually interactive, so the request
// degrades to the non-interactive failure path.
func (v *Verifier) confirm(ctx context.Context, req Request, outcome *Outcome) error {
	if v.confirmer == nil {
		return v.failMissingChecksum(req, outcome)
	}

	accepted, err := v.confirmer.Confirm(ctx, filepath.Base(req.FilePath), req.ProvenanceURL)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Reason = "interactive confirmation failed"
		return errors.Wrap(errors.ErrCodeChecksumMissing,
			"interactive confirmation failed", err)
	}

	if !accepted {
		outcome.Status = StatusFailed
		outcome.Reason = "user declined unverified file"
		return errors.NewWithContext(errors.ErrCodeChecksumMissing,
			fmt.Sprintf("checksum for %q is missing and the user declined to proceed", req.FilePath),
			map[string]any{
				"path": req.FilePath,
				"url":  req.ProvenanceURL,
			})
	}

	outcome.Status = StatusAllowed
	outcome.Reason = "user override"
	userOverridesTotal.Inc()

	slog.Info("unverified file accepted by user",
		"path", req.FilePath,
		"url", req.ProvenanceURL)

	return nil
}

func (v *Verifier) failMissingChecksum(req Request, outcome *Outcome) error {
	outcome.Status = StatusFailed
	outcome.Reason = "checksum missing and no policy override applies"

	return errors.NewWithContext(errors.ErrCodeChecksumMissing,
		fmt.Sprintf("no checksum is available for %q and policy requires one", req.FilePath),
		map[string]any{
			"path": req.FilePath,
			"url":  req.ProvenanceURL,
		})
}

// compare computes the file digest and checks it against the expected one.
func (v *Verifier) compare(ctx context.Context, req Request, outcome *Outcome) error {
	algorithm := digest.Normalize(req.Algorithm)
	expected := req.expectedDigest()

	outcome.Algorithm = algorithm.String()
	outcome.ExpectedDigest = expected

	actual, err := v.computer.Compute(ctx, digest.Request{
		Path:           req.FilePath,
		Algorithm:      algorithm,
		ExpectedDigest: expected,
	})
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Reason = err.Error()
		return err
	}

	outcome.ActualDigest = actual

	if actual != expected {
		outcome.Status = StatusFailed
		outcome.Reason = "checksum mismatch"

		// The actual digest travels in the outcome and error context, not
		// the message: diagnostics name what was promised, not what a
		// possibly tampered file hashes to.
		return errors.NewWithContext(errors.ErrCodeChecksumMismatch,
			fmt.Sprintf("checksum mismatch for %q: expected %s digest %s",
				req.FilePath, algorithm.String(), expected),
			map[string]any{
				"path":      req.FilePath,
				"algorithm": algorithm.String(),
				"expected":  expected,
				"actual":    actual,
				"url":       req.ProvenanceURL,
			})
	}

	outcome.Status = StatusPassed

	slog.Debug("checksum verified",
		"path", req.FilePath,
		"algorithm", algorithm.String(),
		"digest", actual)

	return nil
}
