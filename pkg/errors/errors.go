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

import stderrors "errors"

var (
	As     = stderrors.As
	Is     = stderrors.Is
	Unwrap = stderrors.Unwrap
)

var (
	ErrNotFound     = stderrors.New("resource not found")
	ErrServerError  = stderrors.New("server error")
	ErrBadStatus    = stderrors.New("unexpected status code")
	ErrNoFilename   = stderrors.New("url has no file name")
	ErrInvalidInput = stderrors.New("invalid input")
)

func IsConfig(err error) bool        { return hasCategory(err, CategoryConfig) }
func IsTransport(err error) bool     { return hasCategory(err, CategoryTransport) }
func IsParse(err error) bool         { return hasCategory(err, CategoryParse) }
func IsPath(err error) bool          { return hasCategory(err, CategoryPath) }
func IsIO(err error) bool            { return hasCategory(err, CategoryIO) }
func IsSerialization(err error) bool { return hasCategory(err, CategorySerialization) }
func IsNotFound(err error) bool      { return Is(err, ErrNotFound) }

// GetCategory returns the category of a tracked error, or CategoryUnknown
func GetCategory(err error) ErrorCategory {
	var te *TrackedError
	if As(err, &te) {
		return te.Category
	}
	return CategoryUnknown
}

func hasCategory(err error, category ErrorCategory) bool {
	return err != nil && GetCategory(err) == category
}
