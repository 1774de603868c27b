/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap"

	"bennypowers.dev/cssvalues/internal/mapfs"
	"bennypowers.dev/cssvalues/registry"
	"bennypowers.dev/cssvalues/testutil"
	"bennypowers.dev/cssvalues/value"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Quote != "single" {
		t.Errorf("expected quote 'single', got %q", cfg.Quote)
	}
	if q, _ := cfg.QuoteChar(); q != '\'' {
		t.Errorf("expected quote char ', got %q", q)
	}
	if !cfg.Strict {
		t.Error("expected strict")
	}
	if !slices.Equal(cfg.Files, []string{"styles/**/*.css"}) {
		t.Errorf("unexpected files %v", cfg.Files)
	}
	if !slices.Equal(cfg.Registries, []string{"registry/extra.yaml"}) {
		t.Errorf("unexpected registries %v", cfg.Registries)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Quote != "double" {
		t.Errorf("expected quote 'double', got %q", cfg.Quote)
	}
	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %v", cfg.Files)
	}

	files, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{filepath.Join("/project", "app.css"), "https://example.com/remote.css"}
	if !slices.Equal(files, want) {
		t.Errorf("ExpandFiles() = %v, want %v", files, want)
	}
}

func TestLoad_InvalidQuote(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/bad-quote", "/project")

	_, err := Load(mfs, "/project")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.Quote != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_Malformed(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/cssvalues.yaml", "files: [\n")

	if _, err := Load(mfs, "/project"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	if LoadOrDefault(mfs, "/project") == nil {
		t.Error("expected default config")
	}
}

func TestLoad_ExtensionPriority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/cssvalues.json", `{"quote": "double"}`)
	mfs.AddFile("/project/.config/cssvalues.yaml", "quote: single\n")

	if got := Find(mfs, "/project"); got != filepath.Join("/project", ".config", "cssvalues.yaml") {
		t.Errorf("Find() = %q", got)
	}
}

func TestConfig_ExpandFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	cfg := LoadOrDefault(mfs, "/project")

	files, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slices.Sort(files)
	want := []string{
		filepath.Join("/project", "styles", "a.css"),
		filepath.Join("/project", "styles", "nested", "b.css"),
	}
	if !slices.Equal(files, want) {
		t.Errorf("ExpandFiles() = %v, want %v", files, want)
	}
}

func TestConfig_Registry(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	cfg := LoadOrDefault(mfs, "/project")

	db, err := cfg.Registry(context.Background(), mfs, "/project", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.IsKnownProperty("gutter") || !db.IsKnownProperty("color") {
		t.Error("expected the merged registry to know gutter and color")
	}

	remote := &Config{Registries: []string{"https://example.com/props.yaml"}}
	if _, err := remote.Registry(context.Background(), mfs, "/project", nil); !errors.Is(err, registry.ErrRemoteSource) {
		t.Errorf("expected ErrRemoteSource, got %v", err)
	}
}

func TestParseQuote(t *testing.T) {
	tests := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{"", 0, false},
		{"single", '\'', false},
		{"'", '\'', false},
		{"double", '"', false},
		{`"`, '"', false},
		{"backtick", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuote(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuote(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseQuote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_FactoryOptions(t *testing.T) {
	cfg := &Config{Quote: "single"}
	opts, err := cfg.FactoryOptions(registry.Default(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}

	v, err := value.NewFactory(opts...).ParsePropertyFor("display", `BLOCK`)
	if err != nil {
		t.Fatal(err)
	}
	if v.CSSText() != "block" {
		t.Errorf("expected registry keyword folding, got %q", v.CSSText())
	}

	s, err := value.NewFactory(opts...).ParseProperty(`"a"`)
	if err != nil {
		t.Fatal(err)
	}
	if s.CSSText() != "'a'" {
		t.Errorf("expected single quotes, got %q", s.CSSText())
	}

	if _, err := (&Config{Quote: "x"}).FactoryOptions(nil, nil); err == nil {
		t.Error("expected an error for a bad quote")
	}
}
