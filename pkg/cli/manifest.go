/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/manifest"
	"github.com/NVIDIA/integrity-gate/pkg/serializer"
	"github.com/NVIDIA/integrity-gate/pkg/verifier"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Generate and verify checksum manifests",
		Commands: []*cli.Command{
			manifestVerifyCmd(),
			manifestGenerateCmd(),
		},
	}
}

func manifestVerifyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "verify",
		EnableShellCompletion: true,
		Usage:                 "Verify every entry of a checksum manifest",
		Description: `Verify all files listed in a checksum manifest against the files on disk.

The manifest uses the coreutils format, one "<digest>  <path>" pair per
line, with paths relative to the manifest's directory. Every entry is
verified; the run fails when any entry fails.

# Examples

Verify a bundle directory:
  igctl manifest verify --dir ./bundle

Verify a specific manifest with four workers:
  igctl manifest verify --manifest ./bundle/checksums.txt --parallel 4 --algorithm sha256`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory containing a checksums.txt manifest",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the manifest file (overrides --dir)",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   digest.AlgorithmSHA256.String(),
				Usage:   "Checksum algorithm used by the manifest",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "Maximum concurrent file verifications",
			},
			&cli.BoolFlag{
				Name:  "ignore-checksums",
				Usage: "Skip all checksum verification (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Value: true,
				Usage: "Exit with non-zero status when any entry fails",
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

			path := cmd.String("manifest")
			if path == "" {
				if cmd.String("dir") == "" {
					return fmt.Errorf("either --dir or --manifest is required")
				}
				path = manifest.FilePath(cmd.String("dir"))
			}

			cfg, flags, err := resolvePolicy(cmd)
			if err != nil {
				return err
			}

			// Batch runs never prompt.
			flags.InteractiveHostAvailable = false

			mv := manifest.NewVerifier(
				manifest.WithGate(newGate(cfg, cmd, false)),
				manifest.WithAlgorithm(cmd.String("algorithm")),
				manifest.WithParallelism(int(cmd.Int("parallel"))),
				manifest.WithVersion(version),
			)

			result, err := mv.Verify(ctx, path, flags)
			if err != nil {
				return fmt.Errorf("manifest verification failed: %w", err)
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

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize result: %w", err)
			}

			if cmd.Bool("fail-on-error") && result.Status == verifier.StatusFailed {
				return fmt.Errorf("manifest verification failed: %d file(s) did not pass", result.Failed)
			}

			return nil
		},
	}
}

func manifestGenerateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate a checksum manifest for files",
		Description: `Generate a checksums.txt manifest covering the given files.

Paths are recorded relative to the target directory so the manifest can
travel with it.

# Examples

Generate a SHA256 manifest for a bundle:
  igctl manifest generate --dir ./bundle ./bundle/a.bin ./bundle/sub/b.bin`,
		ArgsUsage: "FILES...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Directory the manifest is written to and paths are relative to",
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   digest.AlgorithmSHA256.String(),
				Usage:   "Checksum algorithm: md5, sha1, sha256, sha512",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return fmt.Errorf("at least one file argument is required")
			}

			algorithm, ok := digest.Parse(cmd.String("algorithm"))
			if !ok {
				return fmt.Errorf("unsupported checksum algorithm: %q", cmd.String("algorithm"))
			}

			dir := cmd.String("dir")
			if err := manifest.Generate(ctx, dir, algorithm, files); err != nil {
				return fmt.Errorf("failed to generate manifest: %w", err)
			}

			slog.Info("manifest generated",
				"path", filepath.Join(dir, manifest.FileName),
				"files", len(files),
				"algorithm", algorithm.String())

			return nil
		},
	}
}
