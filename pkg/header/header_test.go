/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	h := New(
		WithKind(KindVerificationOutcome),
		WithAPIVersion("gate.nvidia.com/v1alpha1"),
		WithMetadata("source", "unit-test"),
	)

	assert.Equal(t, KindVerificationOutcome, h.Kind)
	assert.Equal(t, "gate.nvidia.com/v1alpha1", h.APIVersion)
	assert.Equal(t, "unit-test", h.Metadata["source"])
}

func TestInit(t *testing.T) {
	t.Parallel()

	var h Header
	h.Init(KindManifestResult, "gate.nvidia.com/v1alpha1", "v1.2.3")

	assert.Equal(t, KindManifestResult, h.Kind)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])

	_, err := uuid.Parse(h.Metadata["id"])
	require.NoError(t, err, "metadata id should be a valid UUID")

	_, err = time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err, "metadata timestamp should be RFC3339")
}

func TestKindIsValid(t *testing.T) {
	t.Parallel()

	valid := []Kind{KindVerificationOutcome, KindManifestResult, KindManifest}
	for _, k := range valid {
		assert.True(t, k.IsValid(), "kind %s should be valid", k)
	}

	unknown := Kind("Bogus")
	assert.False(t, unknown.IsValid())
}
