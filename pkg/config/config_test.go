/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NVIDIA/integrity-gate/pkg/defaults"
	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Policy.IgnoreAllChecksums)
	assert.False(t, cfg.Policy.AllowEmptyChecksums)
	assert.Equal(t, digest.DefaultAlgorithm.String(), cfg.Algorithm)
	assert.Empty(t, cfg.Tool.Path)
	assert.Equal(t, 5*time.Minute, cfg.Tool.Timeout())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
policy:
  ignoreAllChecksums: false
  allowEmptyChecksums: true
algorithm: sha256
tool:
  path: /usr/local/bin/checksum
  timeoutSeconds: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Policy.AllowEmptyChecksums)
	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, "/usr/local/bin/checksum", cfg.Tool.Path)
	assert.Equal(t, 30*time.Second, cfg.Tool.Timeout())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(err))
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "policy: [not a map\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	_, err := Load(writeConfig(t, "algorithm: crc32\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestLoadToolTimeoutBounds(t *testing.T) {
	// Zero means "use the default"; only negative values are rejected.
	cfg, err := Load(writeConfig(t, "tool:\n  timeoutSeconds: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, defaults.ToolTimeout, cfg.Tool.Timeout())

	_, err = Load(writeConfig(t, "tool:\n  timeoutSeconds: -1\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "algorithm: sha1\n")

	t.Setenv(EnvIgnoreChecksums, "true")
	t.Setenv(EnvAllowEmptyChecksums, "1")
	t.Setenv(EnvAlgorithm, "sha512")
	t.Setenv(EnvToolPath, "/opt/bin/hasher")
	t.Setenv(EnvToolTimeoutSeconds, "15")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Policy.IgnoreAllChecksums)
	assert.True(t, cfg.Policy.AllowEmptyChecksums)
	assert.Equal(t, "sha512", cfg.Algorithm)
	assert.Equal(t, "/opt/bin/hasher", cfg.Tool.Path)
	assert.Equal(t, 15*time.Second, cfg.Tool.Timeout())
}

func TestLoadIgnoresInvalidEnvValues(t *testing.T) {
	t.Setenv(EnvIgnoreChecksums, "not-a-bool")
	t.Setenv(EnvToolTimeoutSeconds, "-5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Policy.IgnoreAllChecksums)
	assert.Zero(t, cfg.Tool.TimeoutSeconds)
}

func TestBackendSelection(t *testing.T) {
	cfg := New()
	_, ok := cfg.Backend().(*digest.Native)
	assert.True(t, ok)

	cfg.Tool.Path = "/usr/bin/sha256sum"
	_, ok = cfg.Backend().(*digest.Tool)
	assert.True(t, ok)
}
