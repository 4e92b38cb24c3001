package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, 0, cfg.Lines, "no fixed height by default")
	require.Equal(t, 4, cfg.UI.TabWidth)
	require.True(t, cfg.UI.Scrollbar)
	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{
			name:   "fixed height",
			mutate: func(c *Config) { c.Lines = 10 },
		},
		{
			name:        "negative lines",
			mutate:      func(c *Config) { c.Lines = -1 },
			errContains: "lines must not be negative",
		},
		{
			name:        "zero tab width",
			mutate:      func(c *Config) { c.UI.TabWidth = 0 },
			errContains: "ui.tab_width",
		},
		{
			name:        "huge tab width",
			mutate:      func(c *Config) { c.UI.TabWidth = MaxTabWidth + 1 },
			errContains: "ui.tab_width",
		},
		{
			name:   "max tab width",
			mutate: func(c *Config) { c.UI.TabWidth = MaxTabWidth },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDefaultConfigYAML_MatchesDefaults(t *testing.T) {
	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "# fp configuration")
	require.Contains(t, text, "# Columns per tab stop")

	var parsed struct {
		Lines int `yaml:"lines"`
		UI    struct {
			TabWidth  int  `yaml:"tab_width"`
			Scrollbar bool `yaml:"scrollbar"`
		} `yaml:"ui"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	defaults := Defaults()
	require.Equal(t, defaults.Lines, parsed.Lines)
	require.Equal(t, defaults.UI.TabWidth, parsed.UI.TabWidth)
	require.Equal(t, defaults.UI.Scrollbar, parsed.UI.Scrollbar)
}

func TestWriteDefaultConfig_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fp", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "tab_width: 4")
}

func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lines: 12\n"), 0o600))

	err := WriteDefaultConfig(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrConfigExists))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "lines: 12\n", string(data), "existing config must be untouched")
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	require.Equal(t, filepath.Join("/home/tester", ".config", "fp", "config.yaml"), DefaultConfigPath())
}
