/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NVIDIA/integrity-gate/pkg/config"
	"github.com/NVIDIA/integrity-gate/pkg/logging"
	"github.com/NVIDIA/integrity-gate/pkg/server"
)

const (
	name           = "igd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/integrity-gate/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the verification daemon and blocks until shutdown.
// It configures logging, loads policy, sets up routes, and handles graceful
// shutdown. Returns an error if the server fails to start or encounters a
// fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(os.Getenv("IG_CONFIG"))
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	slog.Info("policy loaded",
		"ignoreAllChecksums", cfg.Policy.IgnoreAllChecksums,
		"allowEmptyChecksums", cfg.Policy.AllowEmptyChecksums,
		"algorithm", cfg.Algorithm,
		"tool", cfg.Tool.Path,
	)

	h := NewHandler(cfg, version)

	r := map[string]http.HandlerFunc{
		"/v1/verifications": h.HandleVerifications,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(r),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
