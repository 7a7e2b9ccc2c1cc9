/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package verifier implements the checksum gate: given a file, an expected
// digest, and organizational policy, it decides whether the file may be
// trusted. Policy resolution is a pure decision table; digest computation and
// interactive confirmation are pluggable collaborators, so the gate can be
// embedded in CLIs, daemons, and pipelines alike.
package verifier
