/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest generates and verifies checksum manifests in the
// coreutils "<digest>  <path>" format, applying the same policy gate to
// every entry.
package manifest
