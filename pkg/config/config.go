// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/consensys/go-bounds/pkg/engine"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DEFAULT_FILE is the configuration file used when none is given explicitly.
const DEFAULT_FILE = "bounds.yaml"

// Config captures the settings which can be given in a configuration file.
// Command-line flags take precedence over these.
type Config struct {
	// Colour determines whether reports are coloured ("auto", "always" or
	// "never").
	Colour string `yaml:"colour"`
	// Precision gives the number of decimal places to report, where -1 means
	// as few as necessary.
	Precision int `yaml:"precision"`
	// DefaultInclusion determines whether the endpoints of a pair "a..b" are
	// "closed" or "open".
	DefaultInclusion string `yaml:"default-inclusion"`
	// MaxCallDepth bounds the nesting of function calls.
	MaxCallDepth uint `yaml:"max-call-depth"`
	// LogLevel is any level understood by logrus (e.g. "debug").
	LogLevel string `yaml:"log-level"`
}

// Default returns the configuration used in the absence of a configuration
// file.
func Default() Config {
	return Config{
		Colour:           "auto",
		Precision:        -1,
		DefaultInclusion: "closed",
		MaxCallDepth:     engine.DEFAULT_MAX_CALL_DEPTH,
		LogLevel:         "warning",
	}
}

// Load reads a configuration file.  If no filename is given, then the default
// file is read if it exists, otherwise the default configuration is returned.
func Load(filename string) (Config, error) {
	var explicit = filename != ""
	//
	if !explicit {
		filename = DEFAULT_FILE
	}
	//
	data, err := os.ReadFile(filename)
	//
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	//
	log.Debugf("reading config file %s", filename)
	//
	cfg, err := Parse(data)
	//
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return cfg, nil
}

// Parse a configuration from YAML text.  Settings which are not given retain
// their default values, whilst unknown settings are rejected.
func Parse(data []byte) (Config, error) {
	var (
		cfg     = Default()
		decoder = yaml.NewDecoder(bytes.NewReader(data))
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks each setting has a permitted value.
func (c Config) Validate() error {
	switch {
	case c.Colour != "auto" && c.Colour != "always" && c.Colour != "never":
		return fmt.Errorf("invalid colour \"%s\" (expected auto, always or never)", c.Colour)
	case c.DefaultInclusion != "closed" && c.DefaultInclusion != "open":
		return fmt.Errorf("invalid default-inclusion \"%s\" (expected closed or open)", c.DefaultInclusion)
	case c.Precision < -1:
		return fmt.Errorf("invalid precision %d", c.Precision)
	case c.MaxCallDepth == 0:
		return errors.New("invalid max-call-depth 0")
	}
	//
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}
	//
	return nil
}

// Inclusive determines whether pairs "a..b" include their endpoints.
func (c Config) Inclusive() bool {
	return c.DefaultInclusion == "closed"
}

// Level returns the logging level.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	//
	if err != nil {
		return log.WarnLevel
	}
	//
	return level
}
