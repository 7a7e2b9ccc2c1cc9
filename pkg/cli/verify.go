/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/integrity-gate/pkg/config"
	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/prompt"
	"github.com/NVIDIA/integrity-gate/pkg/serializer"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Verify a file against an expected checksum",
		Description: `Verify a downloaded file against its expected checksum before use.

The expected checksum is compared case-insensitively against the digest
computed from the file. When no checksum is provided, policy decides the
outcome: fail, allow, or ask the user when running on an interactive
terminal.

# Examples

Verify a file against a SHA256 checksum:
  igctl verify -f pkg.zip -c 9f86d081884c7d65... -a sha256

Verify using an external checksum tool:
  igctl verify -f pkg.zip -c 9f86d081884c7d65... --tool /usr/local/bin/checksum

Record provenance for diagnostics and prompts:
  igctl verify -f pkg.zip -c 9f86d081884c7d65... --url https://downloads.example.com/pkg.zip

Run unattended (missing checksums fail instead of prompting):
  igctl verify -f pkg.zip --non-interactive

Write the outcome to a file as JSON:
  igctl verify -f pkg.zip -c 9f86d081884c7d65... -o outcome.json -t json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the file to verify",
			},
			&cli.StringFlag{
				Name:    "checksum",
				Aliases: []string{"c"},
				Usage:   "Expected hex checksum (case-insensitive); empty triggers policy handling",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "Checksum algorithm: md5, sha1, sha256, sha512 (default from config)",
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "Provenance URL of the file, recorded in the outcome and prompts",
			},
			&cli.StringFlag{
				Name:  "tool",
				Usage: "Path to an external checksum tool (default: in-process hashing)",
			},
			&cli.BoolFlag{
				Name:  "ignore-checksums",
				Usage: "Skip all checksum verification (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "allow-empty-checksums",
				Usage: "Allow files without a published checksum (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "non-interactive",
				Usage: "Never prompt; missing checksums fail unless allowed by policy",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Value: true,
				Usage: "Exit with non-zero status when the file cannot be trusted",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			cfg, flags, err := resolvePolicy(cmd)
			if err != nil {
				return err
			}

			gate := newGate(cfg, cmd, flags.InteractiveHostAvailable)

			req := verifier.Request{
				FilePath:       cmd.String("file"),
				ExpectedDigest: cmd.String("checksum"),
				Algorithm:      algorithmFor(cfg, cmd),
				ProvenanceURL:  cmd.String("url"),
			}

			outcome, verr := gate.Verify(ctx, req, flags)
			if outcome == nil {
				return verr
			}

			// Serialize output
			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			if err := ser.Serialize(ctx, outcome); err != nil {
				return fmt.Errorf("failed to serialize outcome: %w", err)
			}

			slog.Info("verification completed",
				"path", outcome.FilePath,
				"status", outcome.Status,
				"duration", outcome.Duration)

			if verr != nil && cmd.Bool("fail-on-error") {
				return verr
			}

			return nil
		},
	}
}

// resolvePolicy loads the config file and applies command-line overrides.
func resolvePolicy(cmd *cli.Command) (*config.Config, verifier.PolicyFlags, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, verifier.PolicyFlags{}, err
	}

	flags := cfg.Policy

	if cmd.Bool("ignore-checksums") {
		flags.IgnoreAllChecksums = true
	}
	if cmd.Bool("allow-empty-checksums") {
		flags.AllowEmptyChecksums = true
	}

	// The process decides interactivity, not the config file: a prompt is
	// only possible on a real terminal the flag has not opted out of.
	flags.InteractiveHostAvailable = !cmd.Bool("non-interactive") && prompt.StdinIsInteractive()

	return cfg, flags, nil
}

// newGate builds the verification gate from the effective configuration.
func newGate(cfg *config.Config, cmd *cli.Command, interactive bool) *verifier.Verifier {
	backend := cfg.Backend()
	if toolPath := cmd.String("tool"); toolPath != "" {
		backend = digest.NewTool(toolPath, digest.WithTimeout(cfg.Tool.Timeout()))
	}

	opts := []verifier.Option{
		verifier.WithComputer(digest.New(digest.WithBackend(backend))),
		verifier.WithVersion(version),
	}

	if interactive {
		opts = append(opts, verifier.WithConfirmer(prompt.NewTerminal()))
	}

	return verifier.New(opts...)
}

// algorithmFor picks the algorithm: command flag first, then config.
func algorithmFor(cfg *config.Config, cmd *cli.Command) string {
	if a := cmd.String("algorithm"); a != "" {
		return a
	}
	return cfg.Algorithm
}
