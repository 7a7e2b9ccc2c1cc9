/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the checksum policy and backend configuration from a
// YAML file with environment variable overrides.
package config
