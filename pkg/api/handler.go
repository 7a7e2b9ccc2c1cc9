/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NVIDIA/integrity-gate/pkg/config"
	"github.com/NVIDIA/integrity-gate/pkg/defaults"
	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
	"github.com/NVIDIA/integrity-gate/pkg/serializer"
	"github.com/NVIDIA/integrity-gate/pkg/server"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
)

// Handler serves verification requests over HTTP. Policy is resolved once at
// construction; per-request bodies cannot override it. The daemon is never
// interactive, so missing checksums fail unless policy allows them.
type Handler struct {
	gate      *verifier.Verifier
	flags     verifier.PolicyFlags
	algorithm string
}

// NewHandler builds a Handler from the loaded configuration.
func NewHandler(cfg *config.Config, version string) *Handler {
	flags := cfg.Policy
	flags.InteractiveHostAvailable = false

	return &Handler{
		gate: verifier.New(
			verifier.WithComputer(digest.New(digest.WithBackend(cfg.Backend()))),
			verifier.WithVersion(version),
		),
		flags:     flags,
		algorithm: cfg.Algorithm,
	}
}

// HandleVerifications handles POST /v1/verifications. The request body is a
// JSON verification request; the response is the serialized outcome. Domain
// failures (mismatch, missing checksum) are reported inside the outcome with
// a 200 status: the verification itself succeeded in producing a verdict.
func (h *Handler) HandleVerifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	var req verifier.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"Invalid verification request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if req.Algorithm == "" {
		req.Algorithm = h.algorithm
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.VerifyHandlerTimeout)
	defer cancel()

	outcome, err := h.gate.Verify(ctx, req, h.flags)
	if outcome == nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	if err != nil && errors.CodeOf(err) == errors.ErrCodeFileNotFound {
		server.WriteError(w, r, http.StatusNotFound, string(errors.ErrCodeFileNotFound),
			err.Error(), false, map[string]any{
				"path": req.FilePath,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, outcome)
}
