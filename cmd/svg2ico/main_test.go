// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args. Flag values persist between
// calls in one process, so each test passes every flag it relies on.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "svg2ico dev\n", out)
}

func TestConfigPrintsYAML(t *testing.T) {
	out, _, err := execute(t, "config", "--magick", "/opt/im/magick", "--background", "white", "--sizes", "48,16", "--cancel-delay", "0s")
	require.NoError(t, err)

	assert.Contains(t, out, "magick: /opt/im/magick")
	assert.Contains(t, out, "background: white")
	assert.Contains(t, out, "- 48")
	assert.Contains(t, out, "- 16")
	assert.Contains(t, out, "cancel_delay: 0s")
}

func TestRootConvertsDirectoryArgument(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	bin := filepath.Join(t.TempDir(), "fake-magick")
	script := "#!/bin/sh\ncase \"$3\" in *bad.svg) echo 'no good' >&2; exit 1;; esac\ncp \"$3\" \"$6\"\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	dir := t.TempDir()
	for _, name := range []string{"ok.svg", "bad.svg", "skip.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<svg/>"), 0o644))
	}

	out, errOut, err := execute(t, dir, "--magick", bin, "--background", "none", "--cancel-delay", "0s")
	require.NoError(t, err, "per-file failures do not fail the command")

	assert.Contains(t, out, "Found 2 SVG file(s).")
	assert.Contains(t, out, "File successfully created: "+filepath.Join(dir, "ok.ico"))
	assert.Contains(t, errOut, "Failed to process file "+filepath.Join(dir, "bad.svg")+": no good")
	assert.Contains(t, errOut, "File creation failed: "+filepath.Join(dir, "bad.ico"))
	assert.FileExists(t, filepath.Join(dir, "ok.ico"))
	assert.NoFileExists(t, filepath.Join(dir, "skip.ico"))
}

func TestRootRejectsExtraArgs(t *testing.T) {
	_, _, err := execute(t, "a", "b")
	require.Error(t, err)
}
