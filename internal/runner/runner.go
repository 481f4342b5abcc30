/*
Copyright © 2025 The hdfs-ozone-migration authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package runner wraps the invocation of external cluster tooling (hadoop,
// hdfs, ozone, kinit) behind a small interface so the pipeline can be
// exercised without a Hadoop installation.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/go-logr/logr"
)

// Command describes a single external invocation.
type Command struct {
	Program string
	Args    []string
	// Env entries are appended to the current process environment.
	Env map[string]string
	// Echo streams the child's output to the console while still capturing
	// it. Used for the long-running copy engine so operators see progress.
	Echo bool
}

// Result holds the captured output and exit status of a completed command.
type Result struct {
	Stdout   string
	Stderr   string
	Combined string
	ExitCode int
}

// Runner executes external commands. Implementations must return a non-nil
// Result whenever the program ran to completion, even with a nonzero exit
// status; an error is reserved for failures to launch at all.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct {
	Logger logr.Logger
}

var _ Runner = &ExecRunner{}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	execCmd.Env = os.Environ()
	for k, v := range cmd.Env {
		execCmd.Env = append(execCmd.Env, fmt.Sprintf("%s=%s", k, v))
	}

	var stdout, stderr bytes.Buffer
	combined := &lockedBuffer{}
	outWriters := []io.Writer{&stdout, combined}
	errWriters := []io.Writer{&stderr, combined}
	if cmd.Echo {
		outWriters = append(outWriters, os.Stdout)
		errWriters = append(errWriters, os.Stderr)
	}
	execCmd.Stdout = io.MultiWriter(outWriters...)
	execCmd.Stderr = io.MultiWriter(errWriters...)

	r.Logger.V(1).Info("running external command", "program", cmd.Program, "args", cmd.Args)
	err := execCmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("unable to run %s: %w", cmd.Program, err)
	}
	return result, nil
}

// lockedBuffer serializes interleaved stdout/stderr writes into the combined
// capture.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
