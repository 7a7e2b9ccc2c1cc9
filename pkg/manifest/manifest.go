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

package manifest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/NVIDIA/integrity-gate/pkg/digest"
	"github.com/NVIDIA/integrity-gate/pkg/errors"
)

// FileName is the standard name for checksum manifest files.
const FileName = "checksums.txt"

// Entry is one line of a checksum manifest: a hex digest and the path of the
// file it covers, relative to the manifest's directory.
type Entry struct {
	Digest string `json:"digest" yaml:"digest"`
	Path   string `json:"path" yaml:"path"`
}

// FilePath returns the full path to the standard manifest file in dir.
func FilePath(dir string) string {
	return filepath.Join(dir, FileName)
}

// Parse reads manifest entries in the coreutils checksum format: one
// "<digest>  <path>" pair per line. Blank lines and lines starting with '#'
// are ignored. Malformed lines are an error, not a warning, because a
// silently dropped entry is an unverified file.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		// coreutils writes "<digest>  <path>" in text mode and
		// "<digest> *<path>" in binary mode. Only the first separator is
		// structural: the path may itself contain spaces.
		sum, rest, found := strings.Cut(text, " ")
		path := strings.TrimPrefix(strings.TrimPrefix(rest, " "), "*")

		if !found || sum == "" || path == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("malformed manifest entry on line %d", line),
				map[string]any{"line": line})
		}

		entries = append(entries, Entry{
			Digest: strings.ToLower(sum),
			Path:   path,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read manifest", err)
	}

	return entries, nil
}

// ParseFile reads and parses the manifest at the given path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound,
				fmt.Sprintf("manifest %q does not exist", path), err)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to open manifest %q", path), err)
	}
	defer f.Close()

	return Parse(f)
}

// Generate writes a checksum manifest covering the given files. Paths are
// recorded relative to dir so the manifest travels with the directory.
func Generate(ctx context.Context, dir string, algorithm digest.Algorithm, files []string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "context cancelled", err)
	}

	computer := digest.New()
	lines := make([]string, 0, len(files))

	for _, file := range files {
		d, err := computer.Compute(ctx, digest.Request{
			Path:      file,
			Algorithm: algorithm,
		})
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = file
		}

		lines = append(lines, fmt.Sprintf("%s  %s", d, relPath))
	}

	path := FilePath(dir)
	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to write manifest %q", path), err)
	}

	slog.Debug("manifest generated",
		"file_count", len(lines),
		"algorithm", algorithm.String(),
		"path", path,
	)

	return nil
}
