// XkcdGrab: A small CLI tool for fetching and saving xkcd comics.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package commands

import (
	"XkcdGrab/internal/config"
	"XkcdGrab/pkg/cli"
	"XkcdGrab/pkg/core"
	"XkcdGrab/pkg/engine"
	"XkcdGrab/pkg/errors"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// options collects flag values for one command tree
type options struct {
	configPath string
	timeout    int
	output     core.OutputFormat
	num        int
	save       bool
	debug      bool
	noColor    bool
}

// NewRootCommand builds the xkcdgrab command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &options{output: core.OutputText}

	rootCmd := &cobra.Command{
		Use:   "xkcdgrab",
		Short: "xkcdgrab fetches xkcd comics.",
		Long: "xkcdgrab fetches the metadata of an xkcd comic, prints it as text or JSON " +
			"and can save the comic image to the current directory.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Track(err).AsConfig().Error()
	})

	rootCmd.Flags().IntVarP(&opts.timeout, "timeout", "t", config.DefaultTimeoutSeconds, "Set a connection timeout in seconds")
	rootCmd.Flags().IntVarP(&opts.num, "num", "n", 0, "The comic to load (default: the latest comic)")
	rootCmd.Flags().BoolVarP(&opts.save, "save", "s", false, "Save image file to current directory")

	rootCmd.PersistentFlags().VarP(&opts.output, "output", "o", "Print output in a format (text, json)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: ~/.xkcdgrab/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging and detailed error information")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newVersionCommand(opts))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
	if cli.NewFormatter(stderr, noColor).HandleError(err, debug) {
		return 1
	}
	return 0
}

// loadConfig merges the config file with explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Lookup("timeout") != nil && flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}

	return cfg, cfg.Validate()
}

func newEngine(cmd *cobra.Command, cfg config.Config, opts *options) *engine.Engine {
	eng := engine.New(engine.Options{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.TimeoutDuration(),
		Dir:          cfg.Dir,
		Output:       cmd.OutOrStdout(),
		DisableColor: opts.noColor || os.Getenv("NO_COLOR") != "",
		LogFile:      cfg.LogFile,
	})
	eng.SetDebugMode(opts.debug)
	return eng
}

func runFetch(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	eng := newEngine(cmd, cfg, opts)
	defer func() {
		if err := eng.Shutdown(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "failed to close log: %v\n", err)
		}
	}()

	req := engine.FetchRequest{
		Format: cfg.Output,
		Save:   opts.save,
	}
	if cmd.Flags().Changed("num") {
		n := opts.num
		req.Num = &n
	}

	_, err = eng.Run(cmd.Context(), req)
	return err
}
