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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{"month":"2","num":500,"link":"","year":"2010","news":"","safe_title":"A","transcript":"","alt":"desc","img":"https://x/y/z.png","title":"A","day":"1","extra_parts":{"pre":""}}`

func TestParseComicResponse(t *testing.T) {
	resp, err := ParseComicResponse(sampleBody)
	require.NoError(t, err)

	assert.Equal(t, ComicResponse{
		Month: "2", Num: 500, Year: "2010", SafeTitle: "A",
		Alt: "desc", Img: "https://x/y/z.png", Title: "A", Day: "1",
	}, *resp)
}

func TestParseComicResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"num": 5,`},
		{"empty", ``},
		{"html error page", `<html><body>Not Found</body></html>`},
		{"not an object", `[1,2,3]`},
		{"missing field", `{"month":"2","num":500,"link":"","year":"2010","news":"","safe_title":"A","transcript":"","alt":"desc","img":"x","title":"A"}`},
		{"num as string", `{"month":"2","num":"500","link":"","year":"2010","news":"","safe_title":"A","transcript":"","alt":"desc","img":"x","title":"A","day":"1"}`},
		{"day as number", `{"month":"2","num":500,"link":"","year":"2010","news":"","safe_title":"A","transcript":"","alt":"desc","img":"x","title":"A","day":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseComicResponse(tt.body)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, errors.IsParse(err), "expected parse error, got %v", err)
		})
	}
}

func TestToComic(t *testing.T) {
	resp := ComicResponse{
		Month: "12", Num: 1, Year: "2005", Title: "Barrel - Part 1",
		Alt: "Don't we all.", Img: "https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg", Day: "01",
	}

	comic := resp.ToComic()

	assert.Equal(t, Comic{
		Title:  "Barrel - Part 1",
		Num:    1,
		Date:   "01-12-2005",
		Desc:   "Don't we all.",
		ImgURL: "https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg",
	}, comic)
	assert.Equal(t, comic, resp.ToComic())
}

func TestToComicDateIsVerbatim(t *testing.T) {
	cases := []struct{ day, month, year, want string }{
		{"1", "2", "2010", "1-2-2010"},
		{"31", "2", "2010", "31-2-2010"},
		{"", "", "", "--"},
		{"x", "y", "z", "x-y-z"},
	}

	for _, c := range cases {
		got := ComicResponse{Day: c.day, Month: c.month, Year: c.year}.ToComic().Date
		assert.Equal(t, c.want, got)
	}
}

func TestComicJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Comic{Title: "A", Num: 500, Date: "1-2-2010", Desc: "desc", ImgURL: "u"})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t, []string{"title", "num", "date", "desc", "img_url"}, keys(fields))
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, f)

	_, err = ParseOutputFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestOutputFormatFlagValue(t *testing.T) {
	var f OutputFormat
	assert.Equal(t, "text", f.String())

	require.NoError(t, f.Set("json"))
	assert.Equal(t, OutputJSON, f)
	assert.Equal(t, "json", f.String())

	assert.Error(t, f.Set("xml"))
	assert.Equal(t, OutputJSON, f)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
