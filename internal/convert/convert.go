// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a batch SVG-to-ICO run: pick a folder, list its SVG
// files, convert each one and confirm the ICO landed on disk.
//
// Per-file failures are reported as they happen and never stop the batch.
// Only a cancelled selection or an unreadable folder ends the run early, and
// neither is returned as an error.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/svg2ico/internal/magick"
	"github.com/pdiddy/svg2ico/internal/picker"
	"github.com/pdiddy/svg2ico/internal/scan"
	"github.com/pdiddy/svg2ico/pkg/types"
)

// Converter turns one SVG into one ICO. *magick.Runner implements it.
type Converter interface {
	Convert(ctx context.Context, svgPath, icoPath string) magick.Result
}

// BatchResult counts what happened during a run. Succeeded and Failed track
// the converter's exit status; Created and Missing track the file check.
// The two are independent.
type BatchResult struct {
	Attempted int
	Succeeded int
	Failed    int
	Created   int
	Missing   int
}

// HasFailures reports whether any conversion failed or any output is missing.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0 || r.Missing > 0
}

// Driver runs one batch. Stdout receives progress and success lines, Stderr
// receives failures.
type Driver struct {
	Picker    picker.Picker
	Converter Converter
	Stdout    io.Writer
	Stderr    io.Writer

	// CancelDelay is slept after a cancelled selection so the message stays
	// readable in a console window that closes on exit.
	CancelDelay time.Duration

	// Logger receives diagnostic detail. Nil discards it.
	Logger *slog.Logger

	sleep func(time.Duration)
}

// Run executes the batch. The returned error is non-nil only when ctx is
// cancelled mid-run; every other failure is printed and swallowed.
func (d *Driver) Run(ctx context.Context) (BatchResult, error) {
	log := d.logger()

	dir, err := d.Picker.Pick(ctx, picker.InitialDir)
	if err != nil {
		if errors.Is(err, picker.ErrCanceled) {
			fmt.Fprintln(d.Stderr, "No folder selected. Exiting.")
		} else {
			fmt.Fprintf(d.Stderr, "Failed to select folder: %v\n", err)
		}
		d.pause(d.CancelDelay)
		return BatchResult{}, nil
	}

	fmt.Fprintf(d.Stdout, "Selected folder: %s\n", dir)

	files, err := scan.Collect(dir)
	if err != nil {
		fmt.Fprintf(d.Stderr, "Failed to read folder: %v\n", err)
		return BatchResult{}, nil
	}

	if len(files) == 0 {
		fmt.Fprintln(d.Stdout, "No SVG files found in the selected folder.")
		return BatchResult{}, nil
	}

	fmt.Fprintf(d.Stdout, "Found %d SVG file(s).\n", len(files))

	var result BatchResult
	for _, svg := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", "remaining", len(files)-result.Attempted)
			return result, err
		}

		rep := ConvertFile(ctx, d.Converter, svg, d.Stdout, d.Stderr)
		result.add(rep)
		log.Debug("converted",
			"svg", rep.SVGPath,
			"ico", rep.ICOPath,
			"outcome", rep.Result.Outcome,
			"exit_code", rep.Result.ExitCode,
			"exists", rep.Exists,
		)
	}

	log.Debug("batch finished",
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"created", result.Created,
		"missing", result.Missing,
	)
	return result, nil
}

func (r *BatchResult) add(rep FileReport) {
	r.Attempted++
	if rep.Result.Outcome == types.OutcomeSucceeded {
		r.Succeeded++
	} else {
		r.Failed++
	}
	if rep.Checked {
		if rep.Exists {
			r.Created++
		} else {
			r.Missing++
		}
	}
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (d *Driver) pause(delay time.Duration) {
	if delay <= 0 {
		return
	}
	sleep := d.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(delay)
}

// ICOPath returns svgPath with its extension replaced by ".ico".
func ICOPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".ico"
}
