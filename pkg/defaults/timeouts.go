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

package defaults

import "time"

// Digest computation timeouts.
const (
	// ToolTimeout is the default timeout for external checksum tool
	// invocations. Large artifacts on slow disks can legitimately take
	// minutes, so this is generous. The caller's context deadline wins
	// when shorter.
	ToolTimeout = 5 * time.Minute
)

// Handler timeouts for HTTP request processing.
const (
	// VerifyHandlerTimeout is the timeout for verification requests.
	// Bounded by file size and I/O, not network round trips.
	VerifyHandlerTimeout = 60 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must cover VerifyHandlerTimeout plus serialization.
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Manifest verification defaults.
const (
	// ManifestParallelism is the default number of files verified
	// concurrently during manifest verification.
	ManifestParallelism = 4
)
