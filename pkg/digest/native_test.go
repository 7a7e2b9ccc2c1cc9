/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package digest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Digests of the empty input, from the algorithm specifications.
const (
	emptyMD5    = "d41d8cd98f00b204e9800998ecf8427e"
	emptySHA1   = "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestNativeCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   []byte
		algorithm Algorithm
		want      string
	}{
		{"empty file md5", nil, AlgorithmMD5, emptyMD5},
		{"empty file sha1", nil, AlgorithmSHA1, emptySHA1},
		{"empty file sha256", nil, AlgorithmSHA256, emptySHA256},
		{
			name:      "abc sha256",
			content:   []byte("abc"),
			algorithm: AlgorithmSHA256,
			want:      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:      "abc md5",
			content:   []byte("abc"),
			algorithm: AlgorithmMD5,
			want:      "900150983cd24fb0d6963f7d28e17f72",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, "artifact.bin", tc.content)

			result, err := NewNative().Compute(context.Background(), Request{
				Path:      path,
				Algorithm: tc.algorithm,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Digest)
			assert.Equal(t, 0, result.ExitCode)
		})
	}
}

func TestNativeComputeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewNative().Compute(context.Background(), Request{
		Path:      filepath.Join(t.TempDir(), "missing.bin"),
		Algorithm: AlgorithmSHA256,
	})
	assert.Error(t, err)
}

func TestNativeComputeCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeTempFile(t, "artifact.bin", []byte("data"))

	_, err := NewNative().Compute(ctx, Request{
		Path:      path,
		Algorithm: AlgorithmSHA256,
	})
	assert.ErrorIs(t, err, context.Canceled)
}
