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

package config

import (
	"XkcdGrab/pkg/core"
	"XkcdGrab/pkg/engine/network"
	"XkcdGrab/pkg/errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvConfigFile = "XKCDGRAB_CONFIG"
	EnvBaseURL    = "XKCDGRAB_BASE_URL"
	EnvTimeout    = "XKCDGRAB_TIMEOUT"
	EnvOutput     = "XKCDGRAB_OUTPUT"
	EnvLogFile    = "XKCDGRAB_LOG_FILE"
)

// DefaultTimeoutSeconds is used when nothing else sets a timeout
const DefaultTimeoutSeconds = 30

// Config holds settings shared by every invocation. Flags are applied on top by the commands.
type Config struct {
	BaseURL string            `yaml:"base_url"`
	Timeout int               `yaml:"timeout"`
	Output  core.OutputFormat `yaml:"output"`
	LogFile string            `yaml:"log_file"`
	Dir     string            `yaml:"dir"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		BaseURL: network.DefaultBaseURL,
		Timeout: DefaultTimeoutSeconds,
		Output:  core.OutputText,
		LogFile: "",
		Dir:     ".",
	}
}

// TimeoutDuration returns the configured timeout
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate rejects settings no fetch could run with
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.Newf("%w: timeout must be a positive number of seconds, got %d", errors.ErrInvalidInput, c.Timeout).
			WithContext("timeout", c.Timeout).
			AsConfig().
			Error()
	}
	return nil
}

// HomeDir is the per-user config directory, empty if unknown
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xkcdgrab")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	if dir := HomeDir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return ""
}

// Load builds the configuration from defaults, the YAML file and the environment.
// With an empty path the XKCDGRAB_CONFIG variable or the default location is used,
// and a missing file is fine. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv(EnvConfigFile)); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultPath()
		}
	}

	if path != "" {
		fileCfg, err := readFile(path)
		switch {
		case err == nil:
			mergeInto(&cfg, &fileCfg)
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// no config file
		default:
			return cfg, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}

	output, err := core.ParseOutputFormat(string(cfg.Output))
	if err != nil {
		return cfg, err
	}
	cfg.Output = output

	return cfg, cfg.Validate()
}

func readFile(path string) (Config, error) {
	var fileCfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return fileCfg, errors.Track(err).
			WithFileContext(path, "read").
			WithMessage("cannot read config file").
			AsConfig().
			Error()
	}

	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fileCfg, errors.Track(err).
			WithFileContext(path, "parse").
			WithMessage("invalid config file").
			AsConfig().
			Error()
	}

	return fileCfg, nil
}

func mergeInto(dst *Config, src *Config) {
	if strings.TrimSpace(src.BaseURL) != "" {
		dst.BaseURL = strings.TrimSpace(src.BaseURL)
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if strings.TrimSpace(src.LogFile) != "" {
		dst.LogFile = strings.TrimSpace(src.LogFile)
	}
	if strings.TrimSpace(src.Dir) != "" {
		dst.Dir = strings.TrimSpace(src.Dir)
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Track(err).
				WithContext("env", EnvTimeout).
				WithMessagef("%s must be whole seconds", EnvTimeout).
				AsConfig().
				Error()
		}
		cfg.Timeout = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output = core.OutputFormat(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		// an empty value turns file logging off
		cfg.LogFile = strings.TrimSpace(v)
	}
	return nil
}
