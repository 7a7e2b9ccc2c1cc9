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
	"time"

	"github.com/NVIDIA/integrity-gate/pkg/header"
)

// Status represents the terminal classification of one verification attempt.
type Status string

const (
	// StatusPassed indicates the computed digest equals the expected digest.
	StatusPassed Status = "passed"

	// StatusFailed indicates the file must not be trusted: a digest
	// mismatch, a missing checksum with no override, a missing file, or a
	// broken hashing backend.
	StatusFailed Status = "failed"

	// StatusSkipped indicates policy explicitly disabled verification;
	// no digest was computed.
	StatusSkipped Status = "skipped"

	// StatusAllowed indicates a human explicitly accepted the risk of an
	// unverified file.
	StatusAllowed Status = "allowedWithoutVerification"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// Outcome is the terminal, caller-facing result of one verification attempt.
// Consumed once by the caller, never mutated.
type Outcome struct {
	header.Header `json:",inline" yaml:",inline"`

	// Status is the terminal classification.
	Status Status `json:"status" yaml:"status"`

	// Reason provides context for skipped, allowed, and failed outcomes.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// FilePath is the file that was (or would have been) verified.
	FilePath string `json:"filePath" yaml:"filePath"`

	// ProvenanceURL is the source of the file, when known.
	ProvenanceURL string `json:"provenanceUrl,omitempty" yaml:"provenanceUrl,omitempty"`

	// Algorithm is the normalized algorithm used, empty when no digest
	// was computed.
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// ExpectedDigest is the normalized expected digest, when one was given.
	ExpectedDigest string `json:"expectedDigest,omitempty" yaml:"expectedDigest,omitempty"`

	// ActualDigest is the normalized computed digest, when one was computed.
	ActualDigest string `json:"actualDigest,omitempty" yaml:"actualDigest,omitempty"`

	// Duration is how long the verification took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Trusted reports whether the caller may proceed with the file. True for
// passed, skipped, and allowed outcomes; false only for failed ones.
func (o *Outcome) Trusted() bool {
	return o.Status != StatusFailed
}
