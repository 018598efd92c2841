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

package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// CLIFormatter renders errors for the terminal
type CLIFormatter struct {
	// ShowFunctionChain controls whether to show the function call chain and context
	ShowFunctionChain bool

	CategoryStyle *color.Color
	MessageStyle  *color.Color
	DetailStyle   *color.Color
}

// NewCLIFormatter creates a CLI error formatter with default styles
func NewCLIFormatter(showChain bool, disableColor bool) *CLIFormatter {
	f := &CLIFormatter{
		ShowFunctionChain: showChain,
		CategoryStyle:     color.New(color.Bold, color.FgRed),
		MessageStyle:      color.New(color.FgRed),
		DetailStyle:       color.New(color.FgHiBlack),
	}

	if disableColor {
		f.CategoryStyle.DisableColor()
		f.MessageStyle.DisableColor()
		f.DetailStyle.DisableColor()
	}

	return f
}

// Format returns the message for err, prefixed with its category
func (f *CLIFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	category := GetCategory(err)
	label := "ERROR"
	if category != CategoryUnknown {
		label = strings.ToUpper(string(category)) + " ERROR"
	}

	var sb strings.Builder
	sb.WriteString(f.CategoryStyle.Sprintf("[%s]", label))
	sb.WriteString(" ")
	sb.WriteString(f.MessageStyle.Sprint(err.Error()))

	var te *TrackedError
	if !f.ShowFunctionChain || !As(err, &te) {
		return sb.String()
	}

	if chain := te.GetFunctionChain(); chain != "" {
		sb.WriteString("\n")
		sb.WriteString(f.DetailStyle.Sprintf("  Function chain: %s", chain))
	}
	for _, call := range te.CallChain {
		sb.WriteString("\n")
		sb.WriteString(f.DetailStyle.Sprintf("    at %s (%s:%d)", call.ShortName, call.File, call.Line))
	}

	if len(te.Context) > 0 {
		keys := make([]string, 0, len(te.Context))
		for k := range te.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, te.Context[k])
		}
		sb.WriteString("\n")
		sb.WriteString(f.DetailStyle.Sprintf("  Context: %s", strings.Join(parts, ", ")))
	}

	return sb.String()
}

// FormatCLI formats an error for the command line. Debug adds the call chain and context.
func FormatCLI(err error, debug, disableColor bool) string {
	return NewCLIFormatter(debug, disableColor).Format(err)
}
