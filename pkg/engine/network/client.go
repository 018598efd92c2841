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
	"XkcdGrab/pkg/engine/logger"
	"XkcdGrab/pkg/errors"
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// DefaultTimeout applies when a client is built with a non-positive timeout
const DefaultTimeout = 30 * time.Second

// Client performs single, unretried HTTP requests
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Logger     logger.Logger
}

// NewClient creates a client whose timeout covers the whole request (connect and read)
func NewClient(log logger.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  "XkcdGrab",
		Logger:     log,
	}
}

// Request performs a GET against req.URL and reads the full body.
// Any non-2xx status is returned as a transport error without exposing the body.
func (c *Client) Request(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, errors.Track(err).
			WithContext("url", req.URL).
			WithMessage("failed to build request").
			AsTransport().
			Error()
	}

	httpReq.Header.Set("User-Agent", c.UserAgent)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	c.Logger.Debug("[HTTP] %s request to %s", method, req.URL)
	start := time.Now()

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Logger.Debug("[HTTP] Request failed after %v: %v", time.Since(start), err)
		return nil, errors.Track(err).
			WithContext("url", req.URL).
			WithMessage("request failed").
			AsTransport().
			Error()
	}
	defer func() {
		if err := httpResp.Body.Close(); err != nil {
			c.Logger.Warn("failed to close response body: %v", err)
		}
	}()

	c.Logger.Debug("[HTTP] Response received in %v: status %d", time.Since(start), httpResp.StatusCode)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, errors.StatusError(method, req.URL, httpResp.StatusCode)
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Track(err).
			WithContext("url", req.URL).
			WithMessage("failed to read response body").
			AsTransport().
			Error()
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		URL:        req.URL,
	}, nil
}

// FetchString fetches url and returns the body as text
func (c *Client) FetchString(ctx context.Context, url string) (string, error) {
	resp, err := c.Request(ctx, NewRequest(url).Header("Accept", "application/json").Build())
	if err != nil {
		return "", err
	}

	if !utf8.Valid(resp.Body) {
		return "", errors.New("response body is not valid UTF-8 text").
			WithContext("url", url).
			WithContext("body_length", len(resp.Body)).
			AsTransport().
			Error()
	}

	c.Logger.Debug("[HTTP] Response body (%d bytes)", len(resp.Body))
	return resp.Text(), nil
}

// FetchBytes fetches url and returns the raw body
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Request(ctx, NewRequest(url).Header("Accept", "image/*,*/*;q=0.8").Build())
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
