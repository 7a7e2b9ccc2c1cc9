/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/integrity-gate/pkg/config"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyFileMD5 = "d41d8cd98f00b204e9800998ecf8427e"

func newTestHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()
	if cfg == nil {
		cfg = config.New()
	}
	return NewHandler(cfg, "test")
}

func postVerification(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/verifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleVerifications(rec, req)
	return rec
}

func TestHandleVerificationsPassed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	h := newTestHandler(t, nil)
	rec := postVerification(t, h,
		`{"filePath":`+quote(path)+`,"expectedDigest":"`+emptyFileMD5+`","algorithm":"md5"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome verifier.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, verifier.StatusPassed, outcome.Status)
	assert.Equal(t, emptyFileMD5, outcome.ActualDigest)
}

func TestHandleVerificationsMismatchIsOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	h := newTestHandler(t, nil)
	rec := postVerification(t, h,
		`{"filePath":`+quote(path)+`,"expectedDigest":"ffffffffffffffffffffffffffffffff"}`)

	// A mismatch is a verdict, not a transport error.
	require.Equal(t, http.StatusOK, rec.Code)

	var outcome verifier.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, verifier.StatusFailed, outcome.Status)
	assert.False(t, outcome.Trusted())
}

func TestHandleVerificationsMissingChecksumFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	// The daemon is never interactive, so no prompt path exists.
	h := newTestHandler(t, nil)
	rec := postVerification(t, h, `{"filePath":`+quote(path)+`}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome verifier.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, verifier.StatusFailed, outcome.Status)
}

func TestHandleVerificationsPolicySkip(t *testing.T) {
	cfg := config.New()
	cfg.Policy.AllowEmptyChecksums = true

	path := filepath.Join(t.TempDir(), "pkg.zip")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	h := newTestHandler(t, cfg)
	rec := postVerification(t, h, `{"filePath":`+quote(path)+`}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome verifier.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, verifier.StatusSkipped, outcome.Status)
}

func TestHandleVerificationsMissingFile(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := postVerification(t, h,
		`{"filePath":"/nonexistent/pkg.zip","expectedDigest":"`+emptyFileMD5+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleVerificationsBadJSON(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := postVerification(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVerificationsEmptyPath(t *testing.T) {
	h := newTestHandler(t, nil)
	rec := postVerification(t, h, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVerificationsRejectsGet(t *testing.T) {
	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/verifications", nil)
	rec := httptest.NewRecorder()
	h.HandleVerifications(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

// quote JSON-quotes a string for request bodies.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
