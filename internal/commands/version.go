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
	"XkcdGrab/pkg/core"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information for xkcdgrab, including the log file and image directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			eng := newEngine(cmd, cfg, opts)
			defer func() { _ = eng.Shutdown() }()

			logFile := eng.LogFile()
			if logFile == "" {
				logFile = "disabled"
			}

			version := cmd.Root().Version
			if cfg.Output == core.OutputJSON {
				return eng.Formatter.PrintJSON(map[string]string{
					"version":    version,
					"go_version": runtime.Version(),
					"os":         runtime.GOOS,
					"arch":       runtime.GOARCH,
					"log_file":   logFile,
					"image_dir":  eng.Download.Dir(),
				})
			}

			eng.Formatter.PrintHeader("xkcdgrab version information")
			return eng.Formatter.PrintTable(
				[]string{"Key", "Value"},
				[][]string{
					{"Version", version},
					{"Go version", runtime.Version()},
					{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
					{"Log file", logFile},
					{"Image dir", eng.Download.Dir()},
				},
			)
		},
	}
}
