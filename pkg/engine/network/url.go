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

package network

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the public comic endpoint
const DefaultBaseURL = "https://xkcd.com"

// infoFile is the metadata document served for every comic
const infoFile = "info.0.json"

// ComicURL builds the metadata URL for a comic. A nil num asks for the latest comic.
func ComicURL(base string, num *int) string {
	base = strings.TrimRight(base, "/")
	if num == nil {
		return fmt.Sprintf("%s/%s", base, infoFile)
	}
	return fmt.Sprintf("%s/%d/%s", base, *num, infoFile)
}
