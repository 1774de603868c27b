/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"bennypowers.dev/cssvalues/registry"
	"bennypowers.dev/cssvalues/resolver"
	"bennypowers.dev/cssvalues/validator"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read testdata/%s: %v", name, err)
	}
	return data
}

func find(errs []validator.ValidationError, path string) *validator.ValidationError {
	for i := range errs {
		if errs[i].Path == path {
			return &errs[i]
		}
	}
	return nil
}

func TestValidate_Valid(t *testing.T) {
	errs := validator.Validate(readTestdata(t, "valid.css"), "valid.css", validator.Options{Strict: true})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %d: %v", len(errs), errs)
	}
}

func TestValidate_Invalid(t *testing.T) {
	errs := validator.Validate(readTestdata(t, "invalid.css"), "invalid.css", validator.Options{})

	tests := []struct {
		path     string
		line     int
		severity validator.Severity
		message  string
	}{
		{"colr", 2, validator.SeverityWarning, "unknown property"},
		{"width", 3, validator.SeverityError, "does not match"},
		{"z-index", 4, validator.SeverityError, "does not match"},
		{"opacity", 6, validator.SeverityError, "does not match"},
		{"content", 7, validator.SeverityError, "invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := find(errs, tt.path)
			if e == nil {
				t.Fatalf("expected an error for %s, got %v", tt.path, errs)
			}
			if e.Line != tt.line {
				t.Errorf("Line = %d, want %d", e.Line, tt.line)
			}
			if e.Severity != tt.severity {
				t.Errorf("Severity = %v, want %v", e.Severity, tt.severity)
			}
			if !strings.Contains(e.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", e.Message, tt.message)
			}
		})
	}

	if find(errs, "margin-top") != nil {
		t.Error("margin-top: 10px should be valid")
	}
	if len(errs) != len(tests) {
		t.Errorf("expected %d errors, got %d: %v", len(tests), len(errs), errs)
	}

	if e := find(errs, "colr"); e != nil && !strings.Contains(e.Suggestion, `"color"`) {
		t.Errorf("expected a suggestion for color, got %q", e.Suggestion)
	}
	if e := find(errs, "width"); e != nil && !strings.Contains(e.Suggestion, "<length-percentage>") {
		t.Errorf("expected the syntax in the suggestion, got %q", e.Suggestion)
	}
	if !validator.HasErrors(errs) {
		t.Error("expected HasErrors to report errors")
	}
}

func TestValidate_Strict(t *testing.T) {
	src := []byte("color: red; widt: 10px;")

	lenient := validator.Validate(src, "", validator.Options{Inline: true})
	if len(lenient) != 1 || lenient[0].Severity != validator.SeverityWarning {
		t.Fatalf("expected one warning, got %v", lenient)
	}
	if validator.HasErrors(lenient) {
		t.Error("warnings alone should not count as errors")
	}

	strict := validator.Validate(src, "", validator.Options{Inline: true, Strict: true})
	if len(strict) != 1 || strict[0].Severity != validator.SeverityError {
		t.Fatalf("expected one error, got %v", strict)
	}
	if strict[0].Suggestion != `did you mean "width"?` {
		t.Errorf("Suggestion = %q", strict[0].Suggestion)
	}
}

func TestValidate_Cycles(t *testing.T) {
	errs := validator.Validate(readTestdata(t, "cycles.css"), "cycles.css", validator.Options{})

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	for i, name := range []string{"--a", "--b", "--c"} {
		if errs[i].Path != name {
			t.Errorf("errs[%d].Path = %q, want %q", i, errs[i].Path, name)
		}
		if errs[i].Message != resolver.ErrCircularReference.Error() {
			t.Errorf("errs[%d].Message = %q", i, errs[i].Message)
		}
		if errs[i].Line != i+2 {
			t.Errorf("errs[%d].Line = %d, want %d", i, errs[i].Line, i+2)
		}
	}
}

func TestValidate_CustomRegistry(t *testing.T) {
	extra, err := registry.Parse([]byte("properties:\n  - name: gutter\n    syntax: \"<length>\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	db := registry.Default().Merge(extra)

	errs := validator.Validate([]byte("gutter: 1rem; gutter: 10%;"), "", validator.Options{Inline: true, Registry: db})
	if len(errs) != 1 || errs[0].Path != "gutter" {
		t.Fatalf("expected one gutter error, got %v", errs)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		err  validator.ValidationError
		want string
	}{
		{validator.ValidationError{Message: "boom"}, "boom"},
		{validator.ValidationError{FilePath: "a.css", Path: "width", Message: "bad"}, "a.css: width: bad"},
		{validator.ValidationError{FilePath: "a.css", Line: 3, Path: "colr", Message: "unknown property", Suggestion: `did you mean "color"?`},
			`a.css:3: colr: unknown property (did you mean "color"?)`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestCombine(t *testing.T) {
	if validator.Combine(nil) != nil {
		t.Error("expected nil for no errors")
	}

	errs := validator.Validate(readTestdata(t, "invalid.css"), "invalid.css", validator.Options{})
	combined := validator.Combine(errs)
	if got := len(multierr.Errors(combined)); got != len(errs) {
		t.Errorf("expected %d combined errors, got %d", len(errs), got)
	}

	var ve *validator.ValidationError
	if !errors.As(combined, &ve) {
		t.Error("expected errors.As to find a ValidationError")
	}
}
