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
	"net/http"
)

// ErrorBuilder provides a fluent interface for building tracked errors
type ErrorBuilder struct {
	err *TrackedError
}

// Track wraps any error with call tracking and returns a builder
func Track(err error) *ErrorBuilder {
	if err == nil {
		return nil
	}
	return &ErrorBuilder{err: trackError(err)}
}

// New creates a new error with tracking
func New(message string) *ErrorBuilder {
	return Track(fmt.Errorf("%s", message))
}

// Newf creates a new formatted error with tracking
func Newf(format string, args ...interface{}) *ErrorBuilder {
	return Track(fmt.Errorf(format, args...))
}

// WithContext adds context data to the error
func (b *ErrorBuilder) WithContext(key string, value interface{}) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	b.err.Context[key] = value
	return b
}

// WithMessage sets a user-friendly message
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	b.err.UserMessage = message
	return b
}

// WithMessagef sets a formatted user-friendly message
func (b *ErrorBuilder) WithMessagef(format string, args ...interface{}) *ErrorBuilder {
	return b.WithMessage(fmt.Sprintf(format, args...))
}

// AsCategory sets the error category. An error that already carries a
// category keeps it, so the stage that first saw the failure wins.
func (b *ErrorBuilder) AsCategory(category ErrorCategory) *ErrorBuilder {
	if b == nil || b.err == nil {
		return b
	}

	if b.err.Category == CategoryUnknown {
		b.err.Category = category
	}
	return b
}

func (b *ErrorBuilder) AsConfig() *ErrorBuilder        { return b.AsCategory(CategoryConfig) }
func (b *ErrorBuilder) AsTransport() *ErrorBuilder     { return b.AsCategory(CategoryTransport) }
func (b *ErrorBuilder) AsParse() *ErrorBuilder         { return b.AsCategory(CategoryParse) }
func (b *ErrorBuilder) AsPath() *ErrorBuilder          { return b.AsCategory(CategoryPath) }
func (b *ErrorBuilder) AsIO() *ErrorBuilder            { return b.AsCategory(CategoryIO) }
func (b *ErrorBuilder) AsSerialization() *ErrorBuilder { return b.AsCategory(CategorySerialization) }

// WithHTTPContext adds HTTP-related context
func (b *ErrorBuilder) WithHTTPContext(method, url string, statusCode int) *ErrorBuilder {
	return b.
		WithContext("method", method).
		WithContext("url", url).
		WithContext("status_code", statusCode)
}

// WithFileContext adds file-related context
func (b *ErrorBuilder) WithFileContext(path string, operation string) *ErrorBuilder {
	return b.
		WithContext("file_path", path).
		WithContext("file_operation", operation)
}

// Error returns the tracked error
func (b *ErrorBuilder) Error() error {
	if b == nil || b.err == nil {
		return nil
	}
	return b.err
}

// StatusError maps a non-2xx HTTP status to a transport error
func StatusError(method, url string, statusCode int) error {
	var base error
	switch {
	case statusCode == http.StatusNotFound:
		base = ErrNotFound
	case statusCode >= 500:
		base = ErrServerError
	default:
		base = ErrBadStatus
	}

	return Track(fmt.Errorf("%w: %d %s", base, statusCode, http.StatusText(statusCode))).
		WithHTTPContext(method, url, statusCode).
		AsTransport().
		Error()
}
