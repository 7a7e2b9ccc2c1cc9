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
	"strings"

	"github.com/NVIDIA/integrity-gate/pkg/errors"
)

// Request describes one file-verification call. Constructed per call,
// immutable once handed to Verify, and discarded after producing exactly
// one Outcome.
type Request struct {
	// FilePath must reference an existing regular file at invocation time.
	FilePath string `json:"filePath" yaml:"filePath"`

	// ExpectedDigest is the hex-encoded digest the file must match,
	// case-insensitive. Empty when the feed published no checksum.
	ExpectedDigest string `json:"expectedDigest,omitempty" yaml:"expectedDigest,omitempty"`

	// Algorithm is the checksum algorithm name, case-insensitive.
	// Unrecognized names normalize to the documented default (MD5).
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// ProvenanceURL is the source the file was fetched from.
	// Diagnostic only; never part of the verification decision.
	ProvenanceURL string `json:"provenanceUrl,omitempty" yaml:"provenanceUrl,omitempty"`
}

// Validate checks the request is well formed. It does not touch the
// filesystem; existence is checked by the digest computer when, and only
// when, policy mandates computation.
func (r Request) Validate() error {
	if strings.TrimSpace(r.FilePath) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "file path is required")
	}
	return nil
}

// expectedDigest returns the normalized (lowercase, trimmed) expected digest.
func (r Request) expectedDigest() string {
	return strings.ToLower(strings.TrimSpace(r.ExpectedDigest))
}
