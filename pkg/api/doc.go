// Package api provides the HTTP API layer for the integrity-gate
// verification daemon (igd).
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the verification handler. Pipelines that cannot embed
// the gate directly delegate checksum decisions to the daemon over HTTP.
//
// # Usage
//
// To start the daemon:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/integrity-gate/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /v1/verifications - Verify a file reachable from the daemon's filesystem
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/verifications)
//
// Example request body:
//
//	{
//	  "filePath": "/data/downloads/pkg.zip",
//	  "expectedDigest": "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
//	  "algorithm": "sha256",
//	  "provenanceUrl": "https://downloads.example.com/pkg.zip"
//	}
//
// The response is the verification outcome; a checksum mismatch is reported
// in the outcome body, not as an HTTP error. The daemon never prompts:
// missing checksums fail unless the configured policy allows them.
//
// # Configuration
//
// The daemon is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - IG_CONFIG: Policy configuration file path
//   - IG_IGNORE_CHECKSUMS, IG_ALLOW_EMPTY_CHECKSUMS: Policy overrides
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/integrity-gate/pkg/api.version=1.0.0'"
package api
