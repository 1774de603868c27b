/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package session assembles the configuration, registry and value factory
// shared by the CLI commands.
package session

import (
	"context"

	"github.com/spf13/viper"

	"bennypowers.dev/cssvalues/config"
	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/internal/logger"
	"bennypowers.dev/cssvalues/registry"
	"bennypowers.dev/cssvalues/value"
)

// Session is the per-invocation state of a command.
type Session struct {
	FS       fs.FileSystem
	Root     string
	Config   *config.Config
	Registry *registry.Database
	Factory  *value.Factory
}

// Load reads the config file named by the "config" setting, or searches
// the working directory, then applies the "quote" setting over it.
func Load(ctx context.Context, filesystem fs.FileSystem) (*Session, error) {
	s := &Session{FS: filesystem, Root: "."}

	var err error
	if path := viper.GetString("config"); path != "" {
		s.Config, err = config.LoadFile(filesystem, path)
	} else {
		s.Config, err = config.Load(filesystem, s.Root)
	}
	if err != nil {
		return nil, err
	}
	if s.Config == nil {
		s.Config = config.Default()
	}
	if q := viper.GetString("quote"); q != "" {
		s.Config.Quote = q
	}

	s.Registry, err = s.Config.Registry(ctx, filesystem, s.Root, registry.NewHTTPFetcher(registry.DefaultMaxSize))
	if err != nil {
		return nil, err
	}

	opts, err := s.Config.FactoryOptions(s.Registry, logger.Zap())
	if err != nil {
		return nil, err
	}
	s.Factory = value.NewFactory(opts...)
	return s, nil
}
