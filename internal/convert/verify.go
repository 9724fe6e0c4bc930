// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/svg2ico/internal/magick"
	"github.com/pdiddy/svg2ico/pkg/types"
)

// FileReport pairs the converter's result with the on-disk check for one file.
type FileReport struct {
	SVGPath string
	ICOPath string
	Result  magick.Result

	// Checked is false when the converter never launched; Exists is then
	// meaningless.
	Checked bool
	Exists  bool
}

// ConvertFile converts svgPath once and reports on stdout and stderr. The
// exit status and the existence of the ICO are reported separately: a tool
// can exit zero without writing output, or fail after leaving a stale file.
func ConvertFile(ctx context.Context, c Converter, svgPath string, stdout, stderr io.Writer) FileReport {
	rep := FileReport{SVGPath: svgPath, ICOPath: ICOPath(svgPath)}
	rep.Result = c.Convert(ctx, rep.SVGPath, rep.ICOPath)

	switch rep.Result.Outcome {
	case types.OutcomeLaunchFailed:
		fmt.Fprintf(stderr, "Error running command for file %s: %v\n", svgPath, rep.Result.Err)
		return rep
	case types.OutcomeExitFailed:
		fmt.Fprintf(stderr, "Failed to process file %s: %s\n", svgPath, failureText(rep.Result))
	default:
		fmt.Fprintf(stdout, "Processed file: %s\n", svgPath)
	}

	rep.Checked = true
	rep.Exists = fileExists(rep.ICOPath)
	if rep.Exists {
		fmt.Fprintf(stdout, "File successfully created: %s\n", rep.ICOPath)
	} else {
		fmt.Fprintf(stderr, "File creation failed: %s\n", rep.ICOPath)
	}
	return rep
}

// failureText prefers the tool's own diagnostics and falls back to the exit
// status when it printed nothing.
func failureText(r magick.Result) string {
	if r.Stderr != "" {
		return r.Stderr
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
