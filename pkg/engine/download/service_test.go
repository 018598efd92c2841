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

package download

import (
	"XkcdGrab/pkg/engine/logger"
	"XkcdGrab/pkg/engine/network"
	"XkcdGrab/pkg/errors"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(dir string) *Service {
	log := logger.NewService("")
	return NewService(network.NewClient(log, time.Second), log, dir)
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://imgs.xkcd.com/comics/foo.png", "foo.png"},
		{"https://x/y/z.png", "z.png"},
		{"https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg", "barrel_cropped_(1).jpg"},
		{"https://imgs.xkcd.com/comics/foo.png?v=2", "foo.png"},
		{"https://imgs.xkcd.com/comics/hello%20world.png", "hello%20world.png"},
		{"https://imgs.xkcd.com/comics/a%2Fb.png", "a%2Fb.png"},
	}

	for _, tt := range tests {
		got, err := FilenameFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestFilenameFromURLWithoutPath(t *testing.T) {
	for _, raw := range []string{"https://example.com", "https://example.com/", "https://example.com/comics/", "https://example.com/a/..", "://bad"} {
		_, err := FilenameFromURL(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.IsPath(err), "expected path error for %q, got %v", raw, err)
	}
}

func TestSaveImage(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/comics/foo.png", r.URL.Path)
		_, _ = w.Write(img)
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := newTestService(dir).SaveImage(context.Background(), server.URL+"/comics/foo.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, img, data)
}

func TestSaveImageKeepsEscapedName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := newTestService(dir).SaveImage(context.Background(), server.URL+"/comics/foo%20bar.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo%20bar.png"), path)

	_, err = os.Stat(filepath.Join(dir, "foo bar.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveImageOverwrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	defer server.Close()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo.png"), []byte("much older content"), 0644))

	path, err := newTestService(dir).SaveImage(context.Background(), server.URL+"/foo.png")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSaveImageUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/foo.png"
	server.Close()

	dir := t.TempDir()
	_, err := newTestService(dir).SaveImage(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.IsTransport(err))

	_, statErr := os.Stat(filepath.Join(dir, "foo.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveImageNoPath(t *testing.T) {
	_, err := newTestService(t.TempDir()).SaveImage(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.IsPath(err))
}

func TestSaveImageCannotCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	_, err := newTestService(missing).SaveImage(context.Background(), server.URL+"/foo.png")
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
}

func TestDefaultDir(t *testing.T) {
	assert.Equal(t, ".", newTestService("").Dir())
}
