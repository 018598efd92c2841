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

package cli

import (
	"XkcdGrab/pkg/core"
	"XkcdGrab/pkg/errors"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// renderer writes one comic in a specific output format
type renderer func(f *Formatter, comic core.Comic) error

var renderers = map[core.OutputFormat]renderer{
	core.OutputText: (*Formatter).PrintComicText,
	core.OutputJSON: (*Formatter).PrintComicJSON,
}

// Formatter handles all CLI output formatting
type Formatter struct {
	// Writer is where the formatted output will be written
	Writer io.Writer

	// DisableColor disables colorized output
	DisableColor bool

	HeaderStyle      *color.Color
	DetailLabelStyle *color.Color
	DetailValueStyle *color.Color
	NumberStyle      *color.Color
	PathStyle        *color.Color
}

// NewFormatter creates a formatter writing to w (stdout when nil)
func NewFormatter(w io.Writer, disableColor bool) *Formatter {
	if w == nil {
		w = os.Stdout
	}

	f := &Formatter{
		Writer:       w,
		DisableColor: disableColor,
	}
	f.initStyles()

	return f
}

func (f *Formatter) initStyles() {
	f.HeaderStyle = color.New(color.Bold, color.FgCyan)
	f.DetailLabelStyle = color.New(color.FgHiBlue)
	f.DetailValueStyle = color.New(color.FgWhite)
	f.NumberStyle = color.New(color.FgHiYellow)
	f.PathStyle = color.New(color.FgHiGreen)

	if f.DisableColor {
		for _, style := range []*color.Color{f.HeaderStyle, f.DetailLabelStyle, f.DetailValueStyle, f.NumberStyle, f.PathStyle} {
			style.DisableColor()
		}
	}
}

// Render writes comic in the requested format
func (f *Formatter) Render(comic core.Comic, format core.OutputFormat) error {
	render, ok := renderers[format]
	if !ok {
		return errors.Newf("%w: no renderer for output format %q", errors.ErrInvalidInput, format).
			AsConfig().
			Error()
	}
	return render(f, comic)
}

// PrintComicText prints the fixed five line block: Title, Comic No, Date, Description, Image
func (f *Formatter) PrintComicText(comic core.Comic) error {
	details := []struct {
		label string
		value string
		style *color.Color
	}{
		{"Title", comic.Title, f.DetailValueStyle},
		{"Comic No", strconv.Itoa(comic.Num), f.NumberStyle},
		{"Date", comic.Date, f.DetailValueStyle},
		{"Description", comic.Desc, f.DetailValueStyle},
		{"Image", comic.ImgURL, f.PathStyle},
	}

	for _, d := range details {
		if err := f.printDetail(d.label, d.value, d.style); err != nil {
			return errors.Track(err).WithMessage("failed to write output").AsIO().Error()
		}
	}
	return nil
}

// PrintComicJSON prints comic as a single compact JSON document
func (f *Formatter) PrintComicJSON(comic core.Comic) error {
	data, err := encodeJSON(comic)
	if err != nil {
		return errors.Track(err).
			WithMessage("failed to encode comic").
			AsSerialization().
			Error()
	}

	if _, err := f.Writer.Write(data); err != nil {
		return errors.Track(err).WithMessage("failed to write output").AsIO().Error()
	}
	return nil
}

// PrintJSON prints any value as a compact JSON document
func (f *Formatter) PrintJSON(v interface{}) error {
	data, err := encodeJSON(v)
	if err != nil {
		return errors.Track(err).AsSerialization().Error()
	}
	_, err = f.Writer.Write(data)
	return errors.Track(err).AsIO().Error()
}

// encodeJSON encodes v on one line with a trailing newline. &, < and > are kept as is.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *Formatter) printDetail(label, value string, valueStyle *color.Color) error {
	if _, err := f.DetailLabelStyle.Fprintf(f.Writer, "%s: ", label); err != nil {
		return err
	}
	_, err := valueStyle.Fprintln(f.Writer, value)
	return err
}

// PrintHeader prints a header line
func (f *Formatter) PrintHeader(text string) {
	_, _ = f.HeaderStyle.Fprintln(f.Writer, text)
}

// PrintTable prints data in a table format
func (f *Formatter) PrintTable(headers []string, data [][]string) error {
	table := tablewriter.NewTable(f.Writer)
	table.Configure(func(tableConfig *tablewriter.Config) {
		tableConfig.Header.Alignment.Global = tw.AlignLeft
		tableConfig.Row.Alignment.Global = tw.AlignLeft
		tableConfig.Header.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
		tableConfig.Row.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
	})

	table.Header(headers)
	if err := table.Bulk(data); err != nil {
		return errors.Track(err).AsIO().Error()
	}

	if err := table.Render(); err != nil {
		return errors.Track(err).AsIO().Error()
	}
	return nil
}

// HandleError prints err using the CLI error format. It returns true if there was an error.
func (f *Formatter) HandleError(err error, debug bool) bool {
	if err == nil {
		return false
	}

	_, _ = fmt.Fprintln(f.Writer, errors.FormatCLI(err, debug, f.DisableColor))
	return true
}
