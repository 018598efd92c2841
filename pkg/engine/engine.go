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

package engine

import (
	"XkcdGrab/pkg/cli"
	"XkcdGrab/pkg/core"
	"XkcdGrab/pkg/engine/download"
	"XkcdGrab/pkg/engine/logger"
	"XkcdGrab/pkg/engine/network"
	"XkcdGrab/pkg/errors"
	"context"
	"io"
	"time"
)

// Stage is a step of a fetch run. Runs only ever move forward.
type Stage string

const (
	StageStart     Stage = "start"
	StageURLBuilt  Stage = "url_built"
	StageFetched   Stage = "fetched"
	StageParsed    Stage = "parsed"
	StageConverted Stage = "converted"
	StageSaved     Stage = "saved"
	StageRendered  Stage = "rendered"
	StageDone      Stage = "done"
)

// Options configures a new Engine
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	Dir          string
	Output       io.Writer
	DisableColor bool
	// Logger overrides the file logger built from LogFile
	Logger  logger.Logger
	LogFile string
}

// FetchRequest describes one invocation
type FetchRequest struct {
	// Num is the comic to fetch, nil for the latest one
	Num    *int
	Format core.OutputFormat
	Save   bool
}

// Result reports how far a run got
type Result struct {
	URL       string
	Comic     core.Comic
	SavedPath string
	Stage     Stage
}

// Engine wires transport, persistence and output together
type Engine struct {
	Network   *network.Client
	Download  *download.Service
	Formatter *cli.Formatter
	Logger    logger.Logger
	BaseURL   string
}

// New creates a new Engine
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.NewService(opts.LogFile)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = network.DefaultBaseURL
	}

	networkClient := network.NewClient(log, opts.Timeout)

	e := &Engine{
		Network:   networkClient,
		Download:  download.NewService(networkClient, log, opts.Dir),
		Formatter: cli.NewFormatter(opts.Output, opts.DisableColor),
		Logger:    log,
		BaseURL:   baseURL,
	}

	log.Info("Engine initialized (base=%s, timeout=%v)", baseURL, networkClient.HTTPClient.Timeout)
	return e
}

// Run fetches one comic, optionally saves its image and renders it.
// The first failing step aborts the run; a failed save means nothing is rendered.
func (e *Engine) Run(ctx context.Context, req FetchRequest) (*Result, error) {
	result := &Result{Stage: StageStart}

	result.URL = network.ComicURL(e.BaseURL, req.Num)
	e.advance(result, StageURLBuilt)

	body, err := e.Network.FetchString(ctx, result.URL)
	if err != nil {
		return result, e.fail(result, err)
	}
	e.advance(result, StageFetched)

	resp, err := core.ParseComicResponse(body)
	if err != nil {
		return result, e.fail(result, err)
	}
	e.advance(result, StageParsed)

	result.Comic = resp.ToComic()
	e.advance(result, StageConverted)

	if req.Save {
		path, err := e.Download.SaveImage(ctx, result.Comic.ImgURL)
		if err != nil {
			return result, e.fail(result, err)
		}
		result.SavedPath = path
		e.advance(result, StageSaved)
	}

	format := req.Format
	if format == "" {
		format = core.OutputText
	}
	if err := e.Formatter.Render(result.Comic, format); err != nil {
		return result, e.fail(result, err)
	}
	e.advance(result, StageRendered)

	e.advance(result, StageDone)
	return result, nil
}

func (e *Engine) advance(result *Result, next Stage) {
	e.Logger.Debug("Stage %s -> %s", result.Stage, next)
	result.Stage = next
}

func (e *Engine) fail(result *Result, err error) error {
	e.Logger.Error("Run aborted after stage %s: %v", result.Stage, err)
	return errors.Track(err).
		WithContext("stage", string(result.Stage)).
		WithContext("url", result.URL).
		Error()
}

// SetDebugMode enables debug logging
func (e *Engine) SetDebugMode(enabled bool) {
	if enabled {
		e.Logger.SetLevel(logger.LevelDebug)
		e.Logger.Debug("Debug mode enabled")
	} else {
		e.Logger.SetLevel(logger.LevelInfo)
	}
}

// LogFile returns the active log file, if any
func (e *Engine) LogFile() string {
	if s, ok := e.Logger.(interface{ LogFile() string }); ok {
		return s.LogFile()
	}
	return ""
}

// Shutdown gracefully shuts down the engine
func (e *Engine) Shutdown() error {
	e.Logger.Info("Shutting down engine...")

	if closer, ok := e.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
