/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads cssvalues project configuration.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bennypowers.dev/cssvalues/value"
)

// ErrInvalidConfig indicates a config file that could not be decoded or
// holds an unsupported setting.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the project configuration.
type Config struct {
	// Quote is the preferred string quote: "single", "double" or empty to
	// keep the quote used in the source.
	Quote string `yaml:"quote" json:"quote"`

	// Files are stylesheet paths or glob patterns checked by default.
	Files []string `yaml:"files" json:"files"`

	// Registries are extra property registry files or http(s) URLs merged
	// over the embedded registry, in order.
	Registries []string `yaml:"registries" json:"registries"`

	// Strict reports warnings as errors.
	Strict bool `yaml:"strict" json:"strict"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// QuoteChar returns the quote byte for Quote, or 0 when unset.
func (c *Config) QuoteChar() (byte, error) {
	return ParseQuote(c.Quote)
}

// ParseQuote maps "single" and "double" (or the characters themselves) to
// a quote byte. The empty string maps to 0.
func ParseQuote(s string) (byte, error) {
	switch s {
	case "":
		return 0, nil
	case "single", "'":
		return '\'', nil
	case "double", `"`:
		return '"', nil
	}
	return 0, fmt.Errorf("%w: quote must be single or double, got %q", ErrInvalidConfig, s)
}

// FactoryOptions returns value factory options for the configured quote,
// registry and logger. A nil registry or logger is skipped.
func (c *Config) FactoryOptions(keywords value.KeywordChecker, log *zap.Logger) ([]value.Option, error) {
	q, err := c.QuoteChar()
	if err != nil {
		return nil, err
	}
	var opts []value.Option
	if q != 0 {
		opts = append(opts, value.WithQuote(q))
	}
	if keywords != nil {
		opts = append(opts, value.WithRegistry(keywords))
	}
	if log != nil {
		opts = append(opts, value.WithLogger(log))
	}
	return opts, nil
}
