/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden-file helpers for tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/cssvalues/internal/mapfs"
)

// updateGolden rewrites golden files with actual output when -update is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataDirs are searched in order, since go test runs in the package
// directory.
var testdataDirs = []string{
	"testdata",
	filepath.Join("..", "testdata"),
	filepath.Join("..", "..", "testdata"),
}

func locate(rel string) (string, bool) {
	for _, dir := range testdataDirs {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// NewFixtureFS copies the fixture directory testdata/<fixtureDir> into an
// in-memory filesystem under rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	fixturePath, ok := locate(fixtureDir)
	if !ok {
		t.Fatalf("could not find fixtures at %s", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to load fixtures from %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	p, ok := locate(fixturePath)
	if !ok {
		t.Fatalf("could not find fixture %s", fixturePath)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// Golden compares actual with testdata/<goldenPath>. With -update it
// writes actual instead.
func Golden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if *updateGolden {
		target := filepath.Join("testdata", goldenPath)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("creating directory for %s: %v", goldenPath, err)
		}
		if err := os.WriteFile(target, actual, 0o644); err != nil {
			t.Fatalf("writing golden file %s: %v", goldenPath, err)
		}
		t.Logf("updated golden file: %s", target)
		return
	}
	want := LoadFixtureFile(t, goldenPath)
	if string(want) != string(actual) {
		t.Errorf("output does not match %s\n--- want\n%s\n--- got\n%s", goldenPath, want, actual)
	}
}
