/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses coreutils format", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"# generated manifest",
			"d41d8cd98f00b204e9800998ecf8427e  file1.txt",
			"",
			"900150983CD24FB0D6963F7D28E17F72  subdir/file2.txt",
			"d41d8cd98f00b204e9800998ecf8427e  *binary.bin",
		}, "\n")

		entries, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "file1.txt", entries[0].Path)
		assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", entries[0].Digest)

		// Digests normalize to lowercase.
		assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", entries[1].Digest)
		assert.Equal(t, "subdir/file2.txt", entries[1].Path)

		// Binary-mode marker is stripped.
		assert.Equal(t, "binary.bin", entries[2].Path)
	})

	t.Run("path may contain spaces", func(t *testing.T) {
		t.Parallel()

		input := strings.Join([]string{
			"d41d8cd98f00b204e9800998ecf8427e  my artifact.bin",
			"d41d8cd98f00b204e9800998ecf8427e *binary with spaces.bin",
		}, "\n")

		entries, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "my artifact.bin", entries[0].Path)
		assert.Equal(t, "binary with spaces.bin", entries[1].Path)
	})

	t.Run("rejects malformed line", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{
			"not-a-manifest-line\n",
			"d41d8cd98f00b204e9800998ecf8427e\n",
			"d41d8cd98f00b204e9800998ecf8427e  \n",
		} {
			_, err := Parse(strings.NewReader(input))
			require.Error(t, err, "input %q", input)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		}
	})

	t.Run("empty input yields no entries", func(t *testing.T) {
		t.Parallel()

		entries, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(err))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("generates manifest for files", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		file1 := filepath.Join(tmpDir, "file1.txt")
		file2 := filepath.Join(tmpDir, "subdir", "file2.txt")
		require.NoError(t, os.WriteFile(file1, []byte("content1"), 0644))
		require.NoError(t, os.MkdirAll(filepath.Dir(file2), 0755))
		require.NoError(t, os.WriteFile(file2, []byte("content2"), 0644))

		err := Generate(context.Background(), tmpDir, digest.AlgorithmSHA256, []string{file1, file2})
		require.NoError(t, err)

		entries, err := ParseFile(FilePath(tmpDir))
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "file1.txt", entries[0].Path)
		assert.Equal(t, "subdir/file2.txt", entries[1].Path)

		for _, e := range entries {
			assert.Len(t, e.Digest, digest.AlgorithmSHA256.HexSize())
		}
	})

	t.Run("round-trips filenames with spaces", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		file := filepath.Join(tmpDir, "my artifact.bin")
		require.NoError(t, os.WriteFile(file, []byte("payload"), 0644))

		err := Generate(context.Background(), tmpDir, digest.AlgorithmSHA256, []string{file})
		require.NoError(t, err)

		entries, err := ParseFile(FilePath(tmpDir))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "my artifact.bin", entries[0].Path)
	})

	t.Run("returns error on cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Generate(ctx, t.TempDir(), digest.AlgorithmSHA256, nil)
		require.Error(t, err)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		err := Generate(context.Background(), tmpDir, digest.AlgorithmSHA256,
			[]string{filepath.Join(tmpDir, "does-not-exist.txt")})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(err))
	})
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/some/dir/checksums.txt", FilePath("/some/dir"))
}
