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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_config",
			config: `
default_host: render
hosts:
  - name: workstation
    address: localhost:7001
  - name: render
    address: render01.farm:7001
    engine: commandport
    timeout_seconds: 30
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "render", cfg.DefaultHost, "default host should match")
				require.Len(t, cfg.Hosts, 2, "should have 2 hosts")
				assert.Equal(t, "workstation", cfg.Hosts[0].Name, "first host name should match")
				assert.Equal(t, "localhost:7001", cfg.Hosts[0].Address, "first host address should match")
				assert.Equal(t, "commandport", cfg.Hosts[0].Engine, "engine should default to commandport")
				assert.Equal(t, 5, cfg.Hosts[0].TimeoutSeconds, "timeout should default to 5 seconds")
				assert.Equal(t, 30, cfg.Hosts[1].TimeoutSeconds, "explicit timeout should be kept")
			},
		},
		{
			name: "minimal_config",
			config: `
hosts:
  - name: workstation
    address: localhost:7001
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "workstation", cfg.DefaultHost, "default host should fall back to the first host")
			},
		},
		{
			name:        "no_hosts",
			config:      `hosts: []`,
			wantErr:     true,
			errContains: "at least one host is required",
		},
		{
			name: "missing_address",
			config: `
hosts:
  - name: workstation
`,
			wantErr:     true,
			errContains: "address is required",
		},
		{
			name: "duplicate_host",
			config: `
hosts:
  - name: workstation
    address: localhost:7001
  - name: workstation
    address: localhost:7002
`,
			wantErr:     true,
			errContains: "duplicate host",
		},
		{
			name: "unknown_default_host",
			config: `
default_host: farm
hosts:
  - name: workstation
    address: localhost:7001
`,
			wantErr:     true,
			errContains: "default_host",
		},
		{
			name: "unknown_field",
			config: `
hosts:
  - name: workstation
    address: localhost:7001
    por: 7001
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "sceneport.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file should succeed")

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err, "load should fail")
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains, "error should mention the cause")
				}
				return
			}

			require.NoError(t, err, "load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadHCL(t *testing.T) {
	config := `
default_host = "render"

host "workstation" {
  address = "localhost:7001"
}

host "render" {
  address         = "render01.farm:7001"
  timeout_seconds = 30
}
`
	dir := t.TempDir()
	path := filepath.Join(dir, ".sceneport.hcl")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644), "writing config file should succeed")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err, "load should succeed")

	assert.Equal(t, "render", cfg.DefaultHost, "default host should match")
	require.Len(t, cfg.Hosts, 2, "should have 2 hosts")
	assert.Equal(t, "workstation", cfg.Hosts[0].Name, "block label should become the host name")
	assert.Equal(t, "localhost:7001", cfg.Hosts[0].Address, "address should match")
}

func TestLoadJSON(t *testing.T) {
	config := `{"hosts": [{"name": "workstation", "address": "localhost:7001"}]}`
	dir := t.TempDir()
	path := filepath.Join(dir, "sceneport.json")
	require.NoError(t, os.WriteFile(path, []byte(config), 0644), "writing config file should succeed")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err, "load should succeed")
	assert.Equal(t, "workstation", cfg.DefaultHost, "default host should fall back to the first host")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sceneport.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0644), "writing config file should succeed")

	_, err := Load(context.Background(), path)
	require.Error(t, err, "load should fail")
	assert.Contains(t, err.Error(), "no parser found", "error should mention the missing parser")
}

func TestHostLookup(t *testing.T) {
	cfg := &Config{
		Hosts: []Host{
			{Name: "workstation", Address: "localhost:7001"},
			{Name: "render", Address: "render01.farm:7001", TimeoutSeconds: 30},
		},
	}
	require.NoError(t, cfg.Validate(), "config should be valid")

	h, err := cfg.Host("")
	require.NoError(t, err, "empty name should resolve to the default host")
	assert.Equal(t, "workstation", h.Name, "default host should be the first one")

	h, err = cfg.Host("render")
	require.NoError(t, err, "named lookup should succeed")
	opts := h.Options()
	assert.Equal(t, "render01.farm:7001", opts.Address, "options should carry the address")
	assert.Equal(t, 30*time.Second, opts.Timeout, "options should carry the timeout")

	_, err = cfg.Host("farm")
	require.Error(t, err, "unknown host should fail")
}
