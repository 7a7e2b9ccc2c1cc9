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

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer asks a human a single yes/no question. It is a boundary adapter:
// one prompt, one answer, no retries. Implementations must default to "no"
// so an accidental Enter rejects the unverified file.
type Confirmer interface {
	Confirm(ctx context.Context, fileName, provenanceURL string) (bool, error)
}

// Terminal is a Confirmer that prompts on an interactive terminal.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// TerminalOption is a functional option for configuring Terminal instances.
type TerminalOption func(*Terminal)

// WithStreams returns a TerminalOption that overrides the prompt's input and
// output streams. Used by tests; the default is stdin/stderr.
func WithStreams(in io.Reader, out io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.in = in
		t.out = out
	}
}

// NewTerminal creates a Confirmer that reads from stdin and writes the
// question to stderr, keeping stdout free for serialized outcomes.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:  os.Stdin,
		out: os.Stderr,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Confirm presents the question and reads one line. Only an explicit
// "y"/"yes" answer accepts; everything else, including an empty line or a
// closed input stream, denies. The read blocks for human response time,
// so callers in automated contexts must not route here at all.
func (t *Terminal) Confirm(ctx context.Context, fileName, provenanceURL string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context cancelled: %w", err)
	}

	if provenanceURL != "" {
		fmt.Fprintf(t.out, "No checksum is available for %q downloaded from %s.\n", fileName, provenanceURL)
	} else {
		fmt.Fprintf(t.out, "No checksum is available for %q.\n", fileName)
	}
	fmt.Fprint(t.out, "Do you want to allow it anyway? [y/N] ")

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && line == "" {
		// EOF without input, e.g. a closed pipe. Deny.
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// StdinIsInteractive reports whether stdin is attached to a terminal.
// Callers use this to decide the interactive-host capability flag; the
// engine itself never probes the environment.
func StdinIsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
