/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	cssfs "bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/registry"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "cssvalues"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Find returns the path of the first config file under rootDir, or "".
func Find(filesystem cssfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		p := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(p) {
			return p
		}
	}
	return ""
}

// Load searches for .config/cssvalues.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem cssfs.FileSystem, rootDir string) (*Config, error) {
	p := Find(filesystem, rootDir)
	if p == "" {
		return nil, nil
	}
	return LoadFile(filesystem, p)
}

// LoadFile decodes the config file at path. JSON files may contain
// comments and trailing commas.
func LoadFile(filesystem cssfs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".json" {
		data = jsonc.ToJSON(data)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if _, err := cfg.QuoteChar(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem cssfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles expands the glob patterns in Files relative to rootDir.
func (c *Config) ExpandFiles(filesystem cssfs.FileSystem, rootDir string) ([]string, error) {
	return expandAll(filesystem, rootDir, c.Files)
}

// Registry returns the embedded registry merged with every configured
// registry source. Remote sources need a fetcher.
func (c *Config) Registry(ctx context.Context, filesystem cssfs.FileSystem, rootDir string, fetcher registry.Fetcher) (*registry.Database, error) {
	sources, err := expandAll(filesystem, rootDir, c.Registries)
	if err != nil {
		return nil, err
	}
	return registry.Load(ctx, filesystem, fetcher, sources...)
}

func expandAll(filesystem cssfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// expandFilePath expands a single path which may contain globs. URLs are
// passed through unchanged.
func expandFilePath(filesystem cssfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if strings.HasPrefix(pattern, "https://") || strings.HasPrefix(pattern, "http://") {
		return []string{pattern}, nil
	}
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}
	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}
	return expandGlob(filesystem, pattern)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and keeps the files that
// match the rest.
func expandGlob(filesystem cssfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	relPattern := strings.TrimPrefix(strings.TrimPrefix(pattern, baseDir), string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		relPath := strings.TrimPrefix(strings.TrimPrefix(path, baseDir), string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, relPath); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
