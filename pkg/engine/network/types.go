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

import "net/http"

// Request represents an HTTP request configuration
type Request struct {
	URL     string
	Method  string
	Headers map[string]string
}

// Response represents a fully read HTTP response
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
}

// Text returns the response body as a string
func (r *Response) Text() string {
	return string(r.Body)
}

// RequestBuilder - Builder for creating requests
type RequestBuilder struct {
	req *Request
}

// NewRequest creates a new GET request builder
func NewRequest(url string) *RequestBuilder {
	return &RequestBuilder{
		req: &Request{
			URL:     url,
			Method:  http.MethodGet,
			Headers: make(map[string]string),
		},
	}
}

// Header adds a header
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.req.Headers[key] = value
	return b
}

// Build returns the constructed request
func (b *RequestBuilder) Build() *Request {
	return b.req
}
