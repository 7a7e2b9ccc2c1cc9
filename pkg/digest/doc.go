/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package digest computes cryptographic file digests for integrity
// verification.
//
// The package supports MD5, SHA1, SHA256, and SHA512, with case-insensitive
// algorithm names and an explicit, logged fallback to MD5 for unrecognized
// names (a compatibility concession to feeds that predate algorithm
// metadata).
//
// Computation is abstracted behind the Backend interface: the Native backend
// hashes in-process, and the Tool backend delegates to an external checksum
// executable with exit-code semantics. Either way the Computer classifies
// the result, distinguishing a backend that could not run from one that ran
// and reported a status.
//
// Usage:
//
//	c := digest.New()
//	sum, err := c.Compute(ctx, digest.Request{
//	    Path:      "/tmp/installer.run",
//	    Algorithm: digest.Normalize("SHA256"),
//	})
package digest
