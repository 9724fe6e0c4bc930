// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svg2ico CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svg2ico/internal/convert"
	"github.com/pdiddy/svg2ico/internal/magick"
	"github.com/pdiddy/svg2ico/internal/picker"
	"github.com/pdiddy/svg2ico/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const dialogTitle = "Select a folder containing SVG files"

// rootCmd converts every SVG in a folder to an ICO.
var rootCmd = &cobra.Command{
	Use:   "svg2ico [dir]",
	Short: "Convert every SVG in a folder to a multi-size ICO",
	Long: `svg2ico converts each .svg file directly inside a folder into a
same-named .ico file next to it, using ImageMagick:

  magick -background none <file>.svg -define icon:auto-resize <file>.ico

Without a directory argument a folder picker opens in the current directory.
Existing .ico files are overwritten. A failed file is reported and the run
moves on to the next one.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./svg2ico.yaml or ~/.config/svg2ico/svg2ico.yaml)")
	pf.String("magick", types.DefaultMagickBinary, "ImageMagick binary name or path")
	pf.String("background", types.DefaultBackground, "value passed to -background")
	pf.IntSlice("sizes", nil, "icon sizes for icon:auto-resize, e.g. 256,128,64,48,32,16 (default: ImageMagick's set)")
	pf.Duration("timeout", 0, "per-file conversion timeout (0 means none)")
	pf.Duration("cancel-delay", types.DefaultCancelDelay, "pause before exiting when no folder is selected")
	pf.BoolP("verbose", "v", false, "log diagnostic detail to stderr")

	for key, flag := range map[string]string{
		"magick":       "magick",
		"background":   "background",
		"sizes":        "sizes",
		"timeout":      "timeout",
		"cancel_delay": "cancel-delay",
		"verbose":      "verbose",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svg2ico")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svg2ico"))
		}
	}

	// dir has no flag; registering it lets SVG2ICO_DIR reach Unmarshal.
	viper.SetDefault("dir", "")

	viper.SetEnvPrefix("SVG2ICO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration from flags, environment
// and config file, with defaults applied.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Dir = args[0]
	}

	log := newLogger(cfg.Verbose)

	runner := magick.NewRunner(cfg.MagickConfig)
	if !runner.Available() {
		log.Debug("converter not found on PATH", "binary", runner.Binary())
	}

	d := &convert.Driver{
		Picker:      picker.For(cfg.Dir, dialogTitle),
		Converter:   runner,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
		CancelDelay: cfg.CancelDelay,
		Logger:      log,
	}

	_, err = d.Run(cmd.Context())
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
