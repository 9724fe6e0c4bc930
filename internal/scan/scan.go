// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan lists the SVG files that sit directly inside a folder.
package scan

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the extension (without dot) a file must carry to be converted.
// The comparison is case-sensitive: "logo.SVG" is not picked up.
const Ext = "svg"

// batchSize is how many directory entries are read per ReadDir call.
var batchSize = 64

// SVGFiles opens dir and returns a lazy sequence of the SVG paths inside it.
// Failing to open the directory is returned immediately. Once iteration has
// started, unreadable entries are dropped and a read error ends the sequence
// after the entries already read have been yielded.
//
// The directory handle is closed when iteration finishes or the consumer
// stops early. A sequence that is never ranged over leaks the handle until
// the garbage collector finalizes it.
func SVGFiles(dir string) (iter.Seq[string], error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	return func(yield func(string) bool) {
		defer f.Close()
		for {
			entries, err := f.ReadDir(batchSize)
			for _, e := range entries {
				if !HasExt(e.Name()) {
					continue
				}
				if _, err := e.Info(); err != nil {
					continue
				}
				if !yield(filepath.Join(dir, e.Name())) {
					return
				}
			}
			if err != nil {
				// io.EOF or a failed batch; either way the listing is over.
				return
			}
			if len(entries) == 0 {
				return
			}
		}
	}, nil
}

// Collect drains SVGFiles into a slice, preserving listing order.
func Collect(dir string) ([]string, error) {
	seq, err := SVGFiles(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for p := range seq {
		paths = append(paths, p)
	}
	return paths, nil
}

// HasExt reports whether name ends in ".svg". A dotfile named ".svg" has no
// extension and does not match.
func HasExt(name string) bool {
	stem, ok := strings.CutSuffix(name, "."+Ext)
	return ok && stem != ""
}
