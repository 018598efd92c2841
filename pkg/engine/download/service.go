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
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Service saves comic images to a directory
type Service struct {
	client *network.Client
	logger logger.Logger
	dir    string
}

// NewService creates a download service writing into dir ("" means the working directory)
func NewService(client *network.Client, logger logger.Logger, dir string) *Service {
	if dir == "" {
		dir = "."
	}

	return &Service{
		client: client,
		logger: logger,
		dir:    dir,
	}
}

// Dir returns the directory images are written to
func (s *Service) Dir() string {
	return s.dir
}

// SaveImage downloads imageURL and writes it under the URL's final path segment.
// An existing file of that name is overwritten. A failed write may leave a truncated file.
func (s *Service) SaveImage(ctx context.Context, imageURL string) (string, error) {
	filename, err := FilenameFromURL(imageURL)
	if err != nil {
		return "", err
	}
	destPath := filepath.Join(s.dir, filename)

	s.logger.Debug("Downloading image %s to %s", imageURL, destPath)

	data, err := s.client.FetchBytes(ctx, imageURL)
	if err != nil {
		return "", err
	}

	file, err := os.Create(destPath)
	if err != nil {
		return "", errors.Track(err).
			WithFileContext(destPath, "create").
			WithMessage("failed to create image file").
			AsIO().
			Error()
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return "", errors.Track(err).
			WithFileContext(destPath, "write").
			WithMessage("failed to write image file").
			AsIO().
			Error()
	}

	if err := file.Close(); err != nil {
		return "", errors.Track(err).
			WithFileContext(destPath, "close").
			WithMessage("failed to write image file").
			AsIO().
			Error()
	}

	s.logger.Info("Saved %d bytes to %s", len(data), destPath)
	return destPath, nil
}

// FilenameFromURL returns the final path segment of rawURL as it appears in the URL.
// Percent escapes are kept, so foo%20bar.png is saved as foo%20bar.png.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Track(err).
			WithContext("url", rawURL).
			WithMessage("invalid image url").
			AsPath().
			Error()
	}

	segments := strings.Split(u.EscapedPath(), "/")
	name := segments[len(segments)-1]

	if name == "" || name == "." || name == ".." {
		return "", errors.Newf("%w: %s", errors.ErrNoFilename, rawURL).
			WithContext("url", rawURL).
			AsPath().
			Error()
	}

	return name, nil
}
