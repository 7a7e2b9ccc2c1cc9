// Package cli implements the command-line interface for the integrity-gate igctl tool.
//
// # Overview
//
// The igctl CLI gates files on their checksums inside install and deployment
// pipelines. It verifies single files against expected digests, and generates
// and verifies checksum manifests covering whole directories.
//
// # Commands
//
// verify - Verify a single file:
//
//	igctl verify --file pkg.zip --checksum HEX --algorithm sha256 [--url URL]
//
// Computes the file digest and compares it case-insensitively against the
// expected checksum. When no checksum is given, policy decides: fail, allow
// (--allow-empty-checksums), skip entirely (--ignore-checksums), or ask the
// user when stdin is an interactive terminal.
//
// manifest verify - Verify a checksum manifest:
//
//	igctl manifest verify --dir ./bundle [--parallel N]
//
// Verifies every entry of a coreutils-format checksums.txt against the files
// on disk, concurrently up to the parallelism bound.
//
// manifest generate - Generate a checksum manifest:
//
//	igctl manifest generate --dir ./bundle FILES...
//
// # Global Flags
//
//	--config       Policy configuration file (YAML)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity
//	IG_CONFIG                 Policy configuration file path
//	IG_IGNORE_CHECKSUMS       Skip all checksum verification
//	IG_ALLOW_EMPTY_CHECKSUMS  Allow files without a published checksum
//	IG_ALGORITHM              Default checksum algorithm
//	IG_TOOL_PATH              External checksum tool path
//	IG_TOOL_TIMEOUT_SECONDS   External tool timeout
//
// # Exit Codes
//
//	0  File(s) may be trusted (passed, skipped, or explicitly allowed)
//	1  Verification failed or the command could not run
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/verifier - Policy resolution and verification
//   - pkg/digest - Digest computation backends
//   - pkg/manifest - Checksum manifest handling
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/integrity-gate/pkg/cli.version=1.0.0'"
package cli
