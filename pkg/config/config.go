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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/integrity-gate/pkg/defaults"
	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
)

// Environment variables recognized by Load. Each overrides the
// corresponding file setting.
const (
	EnvIgnoreChecksums     = "IG_IGNORE_CHECKSUMS"
	EnvAllowEmptyChecksums = "IG_ALLOW_EMPTY_CHECKSUMS"
	EnvAlgorithm           = "IG_ALGORITHM"
	EnvToolPath            = "IG_TOOL_PATH"
	EnvToolTimeoutSeconds  = "IG_TOOL_TIMEOUT_SECONDS"
)

// Tool configures the optional external checksum tool. When Path is empty
// digests are computed in process.
type Tool struct {
	Path           string `json:"path,omitempty" yaml:"path,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
}

// Timeout returns the configured tool timeout, or the default when unset.
func (t Tool) Timeout() time.Duration {
	if t.TimeoutSeconds > 0 {
		return time.Duration(t.TimeoutSeconds) * time.Second
	}
	return defaults.ToolTimeout
}

// Config holds the verification policy and backend configuration.
type Config struct {
	// Policy is the organizational checksum policy.
	Policy verifier.PolicyFlags `json:"policy" yaml:"policy"`

	// Algorithm is the default checksum algorithm name.
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// Tool configures the external checksum tool backend.
	Tool Tool `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// New returns a Config with default values: full enforcement,
// non-interactive, in-process hashing with the default algorithm.
func New() *Config {
	return &Config{
		Algorithm: digest.DefaultAlgorithm.String(),
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path when one is given, then environment overrides. A missing file is an
// error only when the caller named it explicitly.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeFileNotFound,
					fmt.Sprintf("config file %q does not exist", path), err)
			}
			return nil, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to read config file %q", path), err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to parse config file %q", path), err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides file settings from the environment.
func (c *Config) applyEnv() {
	if v, ok := envBool(EnvIgnoreChecksums); ok {
		c.Policy.IgnoreAllChecksums = v
	}
	if v, ok := envBool(EnvAllowEmptyChecksums); ok {
		c.Policy.AllowEmptyChecksums = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvToolPath); v != "" {
		c.Tool.Path = v
	}
	if v := os.Getenv(EnvToolTimeoutSeconds); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.Tool.TimeoutSeconds = seconds
		}
	}
}

// Validate checks the configuration for invalid settings.
func (c *Config) Validate() error {
	if c.Algorithm != "" {
		if _, ok := digest.Parse(c.Algorithm); !ok {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("unsupported checksum algorithm %q", c.Algorithm))
		}
	}

	if c.Tool.TimeoutSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "tool timeout must not be negative")
	}

	return nil
}

// Backend returns the digest backend the configuration selects: the
// external tool when one is configured, the in-process hasher otherwise.
func (c *Config) Backend() digest.Backend {
	if c.Tool.Path != "" {
		return digest.NewTool(c.Tool.Path, digest.WithTimeout(c.Tool.Timeout()))
	}
	return digest.NewNative()
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}

	return b, true
}
