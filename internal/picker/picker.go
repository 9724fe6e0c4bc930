// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picker asks the user which folder to convert.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned when the user dismisses the folder dialog.
var ErrCanceled = errors.New("no folder selected")

// Picker returns a directory chosen by the user.
type Picker interface {
	// Pick shows a folder prompt opened at initial and returns the chosen
	// path, or ErrCanceled if the user backed out.
	Pick(ctx context.Context, initial string) (string, error)
}

// selectFunc matches zenity.SelectFile so tests can replace the dialog.
type selectFunc func(options ...zenity.Option) (string, error)

// Native shows the operating system's folder chooser (zenity/kdialog on
// Linux, the standard dialogs on macOS and Windows).
type Native struct {
	Title string

	selectFile selectFunc
}

// NewNative returns a Native picker with the given dialog title.
func NewNative(title string) *Native {
	return &Native{Title: title, selectFile: zenity.SelectFile}
}

// Pick opens the folder dialog at initial.
func (n *Native) Pick(ctx context.Context, initial string) (string, error) {
	opts := []zenity.Option{
		zenity.Context(ctx),
		zenity.Directory(),
		zenity.Filename(initial),
	}
	if n.Title != "" {
		opts = append(opts, zenity.Title(n.Title))
	}

	path, err := n.selectFile(opts...)
	if errors.Is(err, zenity.ErrCanceled) || (err == nil && path == "") {
		return "", ErrCanceled
	}
	if err != nil {
		return "", fmt.Errorf("opening folder dialog: %w", err)
	}
	return path, nil
}

// Static always returns the same directory. It stands in for the dialog when
// the folder is given on the command line or in the config file.
type Static struct {
	Dir string
}

// Pick returns s.Dir, ignoring initial. An empty Dir counts as cancelled.
func (s Static) Pick(_ context.Context, _ string) (string, error) {
	if s.Dir == "" {
		return "", ErrCanceled
	}
	return s.Dir, nil
}

// For returns a Static picker when dir is set, otherwise the native dialog.
func For(dir, title string) Picker {
	if dir != "" {
		return Static{Dir: dir}
	}
	return NewNative(title)
}

// InitialDir is the directory the dialog opens in: the working directory.
const InitialDir = "."
