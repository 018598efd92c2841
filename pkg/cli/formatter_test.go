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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleComic = core.Comic{
	Title:  "A",
	Num:    500,
	Date:   "1-2-2010",
	Desc:   `desc with "quotes" & <tags>`,
	ImgURL: "https://x/y/z.png",
}

func TestPrintComicText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, true).Render(sampleComic, core.OutputText))

	want := "Title: A\n" +
		"Comic No: 500\n" +
		"Date: 1-2-2010\n" +
		"Description: desc with \"quotes\" & <tags>\n" +
		"Image: https://x/y/z.png\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintComicTextAlwaysFiveLines(t *testing.T) {
	comics := []core.Comic{
		{},
		sampleComic,
		{Title: "Unicode ☃", Num: -1, Date: "--", Desc: "", ImgURL: ""},
	}

	for _, comic := range comics {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf, true).PrintComicText(comic))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 5)
		for i, prefix := range []string{"Title: ", "Comic No: ", "Date: ", "Description: ", "Image: "} {
			assert.True(t, strings.HasPrefix(lines[i], prefix), "line %d = %q", i, lines[i])
		}
	}
}

func TestPrintComicJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, true).Render(sampleComic, core.OutputJSON))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var decoded core.Comic
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sampleComic, decoded)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Len(t, fields, 5)
	for _, key := range []string{"title", "num", "date", "desc", "img_url"} {
		assert.Contains(t, fields, key)
	}
}

func TestPrintComicJSONDoesNotEscapeMarkup(t *testing.T) {
	var buf bytes.Buffer
	comic := core.Comic{Title: "A & B", Num: 1, Date: "1-1-2020", Desc: "x < y > z", ImgURL: "https://x/a.png?b=1&c=2"}
	require.NoError(t, NewFormatter(&buf, true).PrintComicJSON(comic))

	out := buf.String()
	assert.Equal(t, `{"title":"A & B","num":1,"date":"1-1-2020","desc":"x < y > z","img_url":"https://x/a.png?b=1&c=2"}`+"\n", out)
	assert.NotContains(t, out, `\u0026`)
	assert.NotContains(t, out, `\u003c`)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(&buf, true).Render(sampleComic, core.OutputFormat("yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
	assert.Empty(t, buf.String())
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, true).PrintTable(
		[]string{"Key", "Value"},
		[][]string{{"Version", "dev"}, {"OS/Arch", "linux/amd64"}},
	))

	out := buf.String()
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "linux/amd64")
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	assert.False(t, f.HandleError(nil, false))
	assert.Empty(t, buf.String())

	assert.True(t, f.HandleError(errors.Track(fmt.Errorf("bad body")).AsParse().Error(), false))
	assert.Equal(t, "[PARSE ERROR] bad body\n", buf.String())

	buf.Reset()
	assert.True(t, f.HandleError(errors.New("boom").AsTransport().Error(), true))
	assert.Contains(t, buf.String(), "[TRANSPORT ERROR] boom")
	assert.Contains(t, buf.String(), "Function chain:")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, true).PrintJSON(map[string]string{"version": "dev"}))
	assert.Equal(t, "{\"version\":\"dev\"}\n", buf.String())

	err := NewFormatter(&buf, true).PrintJSON(make(chan int))
	require.Error(t, err)
	assert.True(t, errors.IsSerialization(err))
}
