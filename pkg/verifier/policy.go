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

package verifier

// PolicyFlags is the resolved organizational policy on checksum enforcement.
// It is supplied by the configuration collaborator and treated as read-only
// input per call; the engine never reads config storage or the environment.
type PolicyFlags struct {
	// IgnoreAllChecksums globally disables checksum verification.
	// The highest-priority override: it wins even over a known-bad digest.
	IgnoreAllChecksums bool `json:"ignoreAllChecksums" yaml:"ignoreAllChecksums"`

	// AllowEmptyChecksums permits files whose feed published no checksum.
	AllowEmptyChecksums bool `json:"allowEmptyChecksums" yaml:"allowEmptyChecksums"`

	// InteractiveHostAvailable reports whether a human can be prompted.
	// Must be false in any automated context to avoid indefinite blocking.
	InteractiveHostAvailable bool `json:"interactiveHostAvailable" yaml:"interactiveHostAvailable"`
}

// ResolvedAction is the policy decision for one verification request.
type ResolvedAction string

const (
	// ActionProceed means an expected digest is present and must be checked.
	ActionProceed ResolvedAction = "proceed"

	// ActionSkipIgnorePolicy means verification is globally disabled.
	ActionSkipIgnorePolicy ResolvedAction = "skip-ignore-policy"

	// ActionSkipEmptyAllowed means no digest was published and policy
	// permits that.
	ActionSkipEmptyAllowed ResolvedAction = "skip-empty-allowed"

	// ActionPromptUser means no digest was published and a human must
	// decide.
	ActionPromptUser ResolvedAction = "prompt-user"

	// ActionFailNoChecksum means no digest was published, no policy
	// override applies, and no human can be asked.
	ActionFailNoChecksum ResolvedAction = "fail-no-checksum"
)

// String returns the string representation of the ResolvedAction.
func (a ResolvedAction) String() string {
	return string(a)
}

// Resolve decides how a verification request should be handled under the
// given policy. Pure function of its inputs: no I/O, no side effects, so
// the decision table is independently testable.
func Resolve(req Request, flags PolicyFlags) ResolvedAction {
	if flags.IgnoreAllChecksums {
		return ActionSkipIgnorePolicy
	}

	if req.expectedDigest() == "" {
		switch {
		case flags.AllowEmptyChecksums:
			return ActionSkipEmptyAllowed
		case flags.InteractiveHostAvailable:
			return ActionPromptUser
		default:
			return ActionFailNoChecksum
		}
	}

	return ActionProceed
}
