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
	"crypto/md5"  //nolint:gosec // MD5 is a supported legacy checksum algorithm, not used for signing
	"crypto/sha1" //nolint:gosec // SHA1 is a supported legacy checksum algorithm, not used for signing
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"log/slog"
	"strings"
)

// Algorithm identifies a supported checksum algorithm.
type Algorithm string

// Supported checksum algorithms.
const (
	AlgorithmMD5    Algorithm = "md5"
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

// DefaultAlgorithm is used when no algorithm, or an unrecognized one, is
// given. MD5 matches the long-standing behavior of existing package feeds,
// which publish MD5 checksums when no algorithm is named.
const DefaultAlgorithm = AlgorithmMD5

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// IsValid checks if the Algorithm is one of the supported algorithms.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return true
	default:
		return false
	}
}

// HexSize returns the length of the hex-encoded digest for the algorithm,
// or 0 for unrecognized algorithms.
func (a Algorithm) HexSize() int {
	switch a {
	case AlgorithmMD5:
		return md5.Size * 2
	case AlgorithmSHA1:
		return sha1.Size * 2
	case AlgorithmSHA256:
		return sha256.Size * 2
	case AlgorithmSHA512:
		return sha512.Size * 2
	default:
		return 0
	}
}

// newHash returns a fresh hash.Hash for the algorithm. Callers must have
// validated the algorithm first; unrecognized values fall back to MD5 to
// mirror Normalize.
func (a Algorithm) newHash() hash.Hash {
	switch a {
	case AlgorithmSHA1:
		return sha1.New() //nolint:gosec // legacy checksum support
	case AlgorithmSHA256:
		return sha256.New()
	case AlgorithmSHA512:
		return sha512.New()
	default:
		return md5.New() //nolint:gosec // legacy checksum support
	}
}

// Parse converts a case-insensitive algorithm name to an Algorithm.
// The second return value reports whether the name was recognized.
// Common aliases with dashes (e.g. "SHA-256") are accepted.
func Parse(name string) (Algorithm, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	a := Algorithm(normalized)
	if a.IsValid() {
		return a, true
	}
	return DefaultAlgorithm, false
}

// Normalize converts a case-insensitive algorithm name to a supported
// Algorithm, substituting DefaultAlgorithm for unrecognized names.
//
// The substitution is a backward-compatibility concession for feeds that
// predate algorithm metadata, so it is logged rather than silent.
func Normalize(name string) Algorithm {
	a, ok := Parse(name)
	if !ok && strings.TrimSpace(name) != "" {
		slog.Warn("unrecognized checksum algorithm, using default",
			"algorithm", name,
			"default", DefaultAlgorithm.String(),
		)
	}
	return a
}
