// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package magick invokes ImageMagick to turn one SVG into a multi-size ICO.
//
// Each call is synchronous and reports one of three outcomes: the binary
// could not be launched, it ran and exited non-zero, or it succeeded. The
// caller decides what to print; this package never writes to the console.
package magick

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdiddy/svg2ico/pkg/types"
)

// Result is the outcome of one conversion attempt.
type Result struct {
	Outcome types.Outcome

	// ExitCode is the process exit status. It is -1 when the process was
	// not launched or was killed by a signal.
	ExitCode int

	// Stderr is the captured diagnostic output, trimmed.
	Stderr string

	// Err is the launch error for OutcomeLaunchFailed, or the *exec.ExitError
	// (or context error) for OutcomeExitFailed.
	Err error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}

// Runner converts SVG files by shelling out to the configured binary.
type Runner struct {
	cfg  types.MagickConfig
	exec executor
}

// NewRunner returns a Runner using cfg. Empty Binary and Background fall
// back to "magick" and "none".
func NewRunner(cfg types.MagickConfig) *Runner {
	return newRunner(cfg, &osExecutor{})
}

func newRunner(cfg types.MagickConfig, exec executor) *Runner {
	if cfg.Binary == "" {
		cfg.Binary = types.DefaultMagickBinary
	}
	if cfg.Background == "" {
		cfg.Background = types.DefaultBackground
	}
	return &Runner{cfg: cfg, exec: exec}
}

// Binary returns the converter executable name or path.
func (r *Runner) Binary() string { return r.cfg.Binary }

// Available reports whether the binary resolves on PATH. A false result is
// advisory; Convert still attempts every file.
func (r *Runner) Available() bool {
	_, err := r.exec.LookPath(r.cfg.Binary)
	return err == nil
}

// Args builds the argument vector for converting svgPath into icoPath. Paths
// are passed as discrete tokens and never need shell quoting.
func (r *Runner) Args(svgPath, icoPath string) []string {
	return []string{
		"-background", r.cfg.Background,
		svgPath,
		"-define", resizeDefine(r.cfg.Sizes),
		icoPath,
	}
}

// Convert runs the converter once and classifies the result. It blocks until
// the process exits, ctx is done, or the configured timeout elapses.
func (r *Runner) Convert(ctx context.Context, svgPath, icoPath string) Result {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	err := r.exec.Run(ctx, r.cfg.Binary, r.Args(svgPath, icoPath), &stderr)
	return classify(err, strings.TrimSpace(stderr.String()))
}

// classify maps an exec error onto the three outcomes. Only *exec.ExitError
// means the process actually ran; everything else is a launch failure.
func classify(err error, stderr string) Result {
	if err == nil {
		return Result{Outcome: types.OutcomeSucceeded, ExitCode: 0, Stderr: stderr}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{
			Outcome:  types.OutcomeExitFailed,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err:      err,
		}
	}

	return Result{Outcome: types.OutcomeLaunchFailed, ExitCode: -1, Stderr: stderr, Err: err}
}

func resizeDefine(sizes []int) string {
	const key = "icon:auto-resize"
	if len(sizes) == 0 {
		return key
	}
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return key + "=" + strings.Join(parts, ",")
}
