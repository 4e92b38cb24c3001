// Package config provides configuration types, defaults, and persistence for fp.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/fp/internal/log"
)

// ErrConfigExists is returned by WriteDefaultConfig when the target file already exists.
var ErrConfigExists = errors.New("config file already exists")

// DefaultConfigYAML renders Defaults() as a commented YAML document.
func DefaultConfigYAML() ([]byte, error) {
	defaults := Defaults()

	linesKey := scalar("lines", "")
	linesKey.HeadComment = "Fixed number of content rows (0 = fill the terminal).\nOverridden by -l/--lines."
	uiKey := scalar("ui", "")
	uiKey.HeadComment = "UI settings"

	ui := mapping(
		scalar("tab_width", ""), scalar(strconv.Itoa(defaults.UI.TabWidth), "Columns per tab stop"),
		scalar("scrollbar", ""), scalar(strconv.FormatBool(defaults.UI.Scrollbar), "Draw a scrollbar in the right border"),
	)
	root := mapping(
		linesKey, scalar(strconv.Itoa(defaults.Lines), ""),
		uiKey, ui,
	)

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "fp configuration",
		Content:     []*yaml.Node{root},
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return buf.Bytes(), nil
}

// scalar builds a plain scalar node with an optional line comment.
func scalar(value, comment string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value, LineComment: comment}
}

// mapping builds a mapping node from alternating key and value nodes.
func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: content}
}

// WriteDefaultConfig writes the default configuration to configPath,
// creating parent directories as needed. An existing file is never overwritten.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
	}

	data, err := DefaultConfigYAML()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(configPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:gosec // G304: user-chosen config path
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
		return fmt.Errorf("writing config file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
