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
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed comic.schema.json
var comicSchemaJSON string

var (
	comicSchema     *gojsonschema.Schema
	comicSchemaErr  error
	comicSchemaOnce sync.Once
)

// ComicResponse is the payload served by the comic info endpoint, field for field
type ComicResponse struct {
	Month      string `json:"month"`
	Num        int    `json:"num"`
	Link       string `json:"link"`
	Year       string `json:"year"`
	News       string `json:"news"`
	SafeTitle  string `json:"safe_title"`
	Transcript string `json:"transcript"`
	Alt        string `json:"alt"`
	Img        string `json:"img"`
	Title      string `json:"title"`
	Day        string `json:"day"`
}

// Comic is the display model used for rendering and saving
type Comic struct {
	Title  string `json:"title"`
	Num    int    `json:"num"`
	Date   string `json:"date"`
	Desc   string `json:"desc"`
	ImgURL string `json:"img_url"`
}

// ParseComicResponse validates body against the comic schema and decodes it.
// Every field must be present with the right type; extra fields are ignored.
func ParseComicResponse(body string) (*ComicResponse, error) {
	schema, err := loadComicSchema()
	if err != nil {
		return nil, errors.Track(err).
			WithMessage("comic schema is invalid").
			AsParse().
			Error()
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, errors.Track(err).
			WithContext("body_preview", preview(body)).
			WithMessage("response is not valid JSON").
			AsParse().
			Error()
	}

	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return nil, errors.Newf("%w: %s", errors.ErrInvalidInput, strings.Join(problems, "; ")).
			WithContext("body_preview", preview(body)).
			WithMessage("response does not match the comic schema").
			AsParse().
			Error()
	}

	var resp ComicResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.Track(err).
			WithContext("body_preview", preview(body)).
			WithMessage("failed to decode comic").
			AsParse().
			Error()
	}

	return &resp, nil
}

// ToComic projects the response onto the display model. The date is
// "day-month-year" exactly as delivered, without padding or validation.
func (r ComicResponse) ToComic() Comic {
	return Comic{
		Title:  r.Title,
		Num:    r.Num,
		Date:   fmt.Sprintf("%s-%s-%s", r.Day, r.Month, r.Year),
		Desc:   r.Alt,
		ImgURL: r.Img,
	}
}

func loadComicSchema() (*gojsonschema.Schema, error) {
	comicSchemaOnce.Do(func() {
		comicSchema, comicSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(comicSchemaJSON))
	})
	return comicSchema, comicSchemaErr
}

// preview shortens a body for error context
func preview(body string) string {
	if len(body) > 200 {
		return body[:200]
	}
	return body
}
