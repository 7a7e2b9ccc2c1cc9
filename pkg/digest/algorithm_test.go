/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		want   Algorithm
		wantOK bool
	}{
		{"md5", AlgorithmMD5, true},
		{"MD5", AlgorithmMD5, true},
		{"sha1", AlgorithmSHA1, true},
		{"SHA-1", AlgorithmSHA1, true},
		{"sha256", AlgorithmSHA256, true},
		{"SHA-256", AlgorithmSHA256, true},
		{" sha512 ", AlgorithmSHA512, true},
		{"", AlgorithmMD5, false},
		{"crc32", AlgorithmMD5, false},
		{"sha3", AlgorithmMD5, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Parse(tc.name)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultAlgorithm, Normalize("not-a-real-algorithm"))
	assert.Equal(t, DefaultAlgorithm, Normalize(""))
	assert.Equal(t, AlgorithmSHA256, Normalize("Sha256"))
}

func TestHexSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32, AlgorithmMD5.HexSize())
	assert.Equal(t, 40, AlgorithmSHA1.HexSize())
	assert.Equal(t, 64, AlgorithmSHA256.HexSize())
	assert.Equal(t, 128, AlgorithmSHA512.HexSize())
	assert.Equal(t, 0, Algorithm("bogus").HexSize())
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	for _, a := range []Algorithm{AlgorithmMD5, AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512} {
		assert.True(t, a.IsValid(), "algorithm %s should be valid", a)
	}
	assert.False(t, Algorithm("xxh64").IsValid())
}
