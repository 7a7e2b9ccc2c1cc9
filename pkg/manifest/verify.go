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

package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/integrity-gate/pkg/defaults"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/NVIDIA/integrity-gate/pkg/header"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
)

// Result aggregates the outcomes of verifying every entry in a manifest.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Status is failed when any entry failed, passed otherwise.
	Status verifier.Status `json:"status" yaml:"status"`

	// ManifestPath is the manifest that was verified.
	ManifestPath string `json:"manifestPath" yaml:"manifestPath"`

	// Algorithm is the algorithm applied to every entry.
	Algorithm string `json:"algorithm" yaml:"algorithm"`

	Total   int `json:"total" yaml:"total"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Allowed int `json:"allowed" yaml:"allowed"`

	Duration time.Duration `json:"duration" yaml:"duration"`

	// Outcomes holds one entry per manifest line, in manifest order.
	Outcomes []*verifier.Outcome `json:"outcomes" yaml:"outcomes"`
}

// Gate verifies a single file against an expected digest.
type Gate interface {
	Verify(ctx context.Context, req verifier.Request, flags verifier.PolicyFlags) (*verifier.Outcome, error)
}

// Verifier verifies every entry of a checksum manifest against the files on
// disk, fanning the per-file work out across a bounded worker pool.
type Verifier struct {
	gate        Gate
	algorithm   string
	parallelism int
	version     string
}

// Option is a functional option for configuring manifest Verifier instances.
type Option func(*Verifier)

// WithGate returns an Option that sets the per-file verification gate.
func WithGate(g Gate) Option {
	return func(v *Verifier) {
		v.gate = g
	}
}

// WithAlgorithm returns an Option that sets the checksum algorithm name
// applied to every manifest entry.
func WithAlgorithm(algorithm string) Option {
	return func(v *Verifier) {
		v.algorithm = algorithm
	}
}

// WithParallelism returns an Option that bounds concurrent file
// verifications. Values below one keep the default.
func WithParallelism(n int) Option {
	return func(v *Verifier) {
		if n > 0 {
			v.parallelism = n
		}
	}
}

// WithVersion returns an Option that sets the version recorded in results.
func WithVersion(version string) Option {
	return func(v *Verifier) {
		v.version = version
	}
}

// NewVerifier creates a manifest Verifier with the provided options.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		gate:        verifier.New(),
		parallelism: defaults.ManifestParallelism,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Verify parses the manifest at path and verifies every entry against the
// files in the manifest's directory. Individual failures do not stop the
// run: every entry gets an outcome, and the aggregate status reflects the
// worst of them. The returned error covers manifest-level faults only
// (unreadable or malformed manifest, cancelled context).
func (v *Verifier) Verify(ctx context.Context, path string, flags verifier.PolicyFlags) (*Result, error) {
	start := time.Now()

	entries, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ManifestPath: path,
		Algorithm:    v.algorithm,
		Total:        len(entries),
		Outcomes:     make([]*verifier.Outcome, len(entries)),
	}
	result.Init(header.KindManifestResult, verifier.APIVersion, v.version)

	dir := filepath.Dir(path)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.parallelism)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome, _ := v.gate.Verify(gctx, verifier.Request{
				FilePath:       filepath.Join(dir, entry.Path),
				ExpectedDigest: entry.Digest,
				Algorithm:      v.algorithm,
			}, flags)
			if outcome == nil {
				return errors.New(errors.ErrCodeInternal,
					fmt.Sprintf("no outcome for manifest entry %q", entry.Path))
			}

			// Per-file failures are carried in the outcome.
			result.Outcomes[i] = outcome

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Status = verifier.StatusPassed

	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case verifier.StatusPassed:
			result.Passed++
		case verifier.StatusFailed:
			result.Failed++
			result.Status = verifier.StatusFailed
		case verifier.StatusSkipped:
			result.Skipped++
		case verifier.StatusAllowed:
			result.Allowed++
		}
	}

	result.Duration = time.Since(start)

	slog.Info("manifest verified",
		"path", path,
		"total", result.Total,
		"passed", result.Passed,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"allowed", result.Allowed,
		"duration", result.Duration,
	)

	return result, nil
}
