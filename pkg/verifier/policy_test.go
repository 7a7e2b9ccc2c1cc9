/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		digest   string
		flags    PolicyFlags
		expected ResolvedAction
	}{
		{
			name:     "digest present no flags",
			digest:   "d41d8cd98f00b204e9800998ecf8427e",
			expected: ActionProceed,
		},
		{
			name:   "ignore overrides everything",
			digest: "d41d8cd98f00b204e9800998ecf8427e",
			flags: PolicyFlags{
				IgnoreAllChecksums:       true,
				AllowEmptyChecksums:      true,
				InteractiveHostAvailable: true,
			},
			expected: ActionSkipIgnorePolicy,
		},
		{
			name:     "ignore with empty digest",
			flags:    PolicyFlags{IgnoreAllChecksums: true},
			expected: ActionSkipIgnorePolicy,
		},
		{
			name:     "empty digest allowed",
			flags:    PolicyFlags{AllowEmptyChecksums: true},
			expected: ActionSkipEmptyAllowed,
		},
		{
			name: "allow-empty beats prompt",
			flags: PolicyFlags{
				AllowEmptyChecksums:      true,
				InteractiveHostAvailable: true,
			},
			expected: ActionSkipEmptyAllowed,
		},
		{
			name:     "empty digest interactive",
			flags:    PolicyFlags{InteractiveHostAvailable: true},
			expected: ActionPromptUser,
		},
		{
			name:     "empty digest no overrides",
			expected: ActionFailNoChecksum,
		},
		{
			name:     "whitespace digest is empty",
			digest:   "   ",
			expected: ActionFailNoChecksum,
		},
		{
			name:   "digest present interactive host",
			digest: "d41d8cd98f00b204e9800998ecf8427e",
			flags:  PolicyFlags{InteractiveHostAvailable: true},
			// The prompt path exists only for missing checksums.
			expected: ActionProceed,
		},
		{
			name:     "digest present allow empty",
			digest:   "d41d8cd98f00b204e9800998ecf8427e",
			flags:    PolicyFlags{AllowEmptyChecksums: true},
			expected: ActionProceed,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := Request{
				FilePath:       "/tmp/pkg.zip",
				ExpectedDigest: tc.digest,
			}

			assert.Equal(t, tc.expected, Resolve(req, tc.flags))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	req := Request{FilePath: "/tmp/pkg.zip"}
	flags := PolicyFlags{InteractiveHostAvailable: true}

	first := Resolve(req, flags)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(req, flags))
	}
}
