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

// Package server implements a reusable HTTP server shell for the
// verification daemon.
//
// The server is a stateless wrapper around injected application handlers
// with the following key components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Prometheus RED metrics for every mounted handler
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("igd"),
//	    server.WithVersion("1.0.0"),
//	    server.WithHandlers(map[string]http.HandlerFunc{
//	        "/v1/verifications": handler,
//	    }),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// System endpoints (no rate limiting):
//
//	GET /health  - Liveness probe, always 200 when the process is up
//	GET /ready   - Readiness probe, 503 until the server accepts traffic
//	GET /metrics - Prometheus metrics
//
// Application handlers are mounted behind the middleware chain (metrics,
// request ID, panic recovery, rate limiting, logging).
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format); the
// server generates one when absent and echoes it in the response header and
// error bodies. Rate limit status is exposed via X-RateLimit-* headers, and
// rejected requests get a 429 with Retry-After.
//
// # Configuration
//
// Environment variables:
//
//	PORT                      HTTP server port (default: 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown window
package server
