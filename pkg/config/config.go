// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads host connection profiles from .sceneport files.
// A profile names a host application instance, the engine used to reach
// it, and its command port address.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/sceneport/pkg/engine"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🖥️ Host is one connection profile: a named host application instance
// and how to reach its command port
type Host struct {
	Name           string `json:"name" yaml:"name" hcl:"name,label"`
	Engine         string `json:"engine,omitempty" yaml:"engine,omitempty" hcl:"engine,optional"`
	Address        string `json:"address" yaml:"address" hcl:"address"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" hcl:"timeout_seconds,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	DefaultHost string `json:"default_host,omitempty" yaml:"default_host,omitempty" hcl:"default_host,optional"`
	Hosts       []Host `json:"hosts" yaml:"hosts" hcl:"host,block"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Hosts) == 0 {
		return errors.Errorf("at least one host is required")
	}

	seen := make(map[string]bool, len(cfg.Hosts))
	for i := range cfg.Hosts {
		h := &cfg.Hosts[i]
		if h.Name == "" {
			return errors.Errorf("host name is required")
		}
		if seen[h.Name] {
			return errors.Errorf("duplicate host %q", h.Name)
		}
		seen[h.Name] = true

		if h.Address == "" {
			return errors.Errorf("host %q: address is required", h.Name)
		}

		// Defaults
		if h.Engine == "" {
			h.Engine = "commandport"
		}
		if h.TimeoutSeconds == 0 {
			h.TimeoutSeconds = 5
		}
		if h.TimeoutSeconds < 0 {
			return errors.Errorf("host %q: timeout_seconds must not be negative", h.Name)
		}
	}

	if cfg.DefaultHost == "" {
		cfg.DefaultHost = cfg.Hosts[0].Name
	}
	if !seen[cfg.DefaultHost] {
		return errors.Errorf("default_host %q does not name a configured host", cfg.DefaultHost)
	}

	return nil
}

// 🎯 Host returns the named profile, or the default profile for ""
func (cfg *Config) Host(name string) (*Host, error) {
	if name == "" {
		name = cfg.DefaultHost
	}
	for i := range cfg.Hosts {
		if cfg.Hosts[i].Name == name {
			return &cfg.Hosts[i], nil
		}
	}
	return nil, errors.Errorf("unknown host %q", name)
}

// ⚙️ Options translates the profile into engine options
func (h *Host) Options() engine.Options {
	return engine.Options{
		Address: h.Address,
		Timeout: time.Duration(h.TimeoutSeconds) * time.Second,
	}
}

// 📝 String returns a string representation of the profile
func (h *Host) String() string {
	return fmt.Sprintf("%s (%s via %s)", h.Name, h.Address, h.Engine)
}
