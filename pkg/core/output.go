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

package core

import (
	"XkcdGrab/pkg/errors"
	"strings"

	"github.com/spf13/pflag"
)

// OutputFormat selects how a comic is rendered
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

var _ pflag.Value = (*OutputFormat)(nil)

// OutputFormats lists the supported formats in help order
var OutputFormats = []OutputFormat{OutputText, OutputJSON}

// ParseOutputFormat resolves a user supplied format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	name := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range OutputFormats {
		if f == name {
			return f, nil
		}
	}

	return "", errors.Newf("%w: unknown output format %q (want one of %s)", errors.ErrInvalidInput, s, formatNames()).
		AsConfig().
		Error()
}

// String implements pflag.Value
func (o *OutputFormat) String() string {
	if *o == "" {
		return string(OutputText)
	}
	return string(*o)
}

// Set implements pflag.Value
func (o *OutputFormat) Set(s string) error {
	f, err := ParseOutputFormat(s)
	if err != nil {
		return err
	}
	*o = f
	return nil
}

// Type implements pflag.Value
func (o *OutputFormat) Type() string {
	return "format"
}

func formatNames() string {
	names := make([]string, len(OutputFormats))
	for i, f := range OutputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
