/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/cssvalues/resolver"
	"bennypowers.dev/cssvalues/value"
)

func defs(t *testing.T, src map[string]string) map[string]value.Value {
	t.Helper()
	out := make(map[string]value.Value, len(src))
	for name, text := range src {
		v, err := value.ParsePropertyFor(name, text)
		if err != nil {
			t.Fatalf("parsing %s: %v", name, err)
		}
		out[name] = v
	}
	return out
}

func TestReferences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"10px", nil},
		{"var(--a)", []string{"--a"}},
		{"var(--a, var(--b))", []string{"--a", "--b"}},
		{"calc(var(--a) + var(--b) * var(--a))", []string{"--a", "--b"}},
		{"1px solid var(--border-color)", []string{"--border-color"}},
		{"env(safe-area-inset-top, var(--gap))", []string{"--gap"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, err := value.ParseProperty(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if got := resolver.References(v); !slices.Equal(got, tt.want) {
				t.Errorf("References(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	graph := resolver.BuildDependencyGraph(defs(t, map[string]string{
		"--a": "1px",
		"--b": "var(--a)",
		"--c": "calc(var(--b) * 2)",
	}))

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if got := graph.Dependencies("--c"); !slices.Equal(got, []string{"--b"}) {
		t.Errorf("Dependencies(--c) = %v", got)
	}
	if got := graph.Dependents("--a"); !slices.Equal(got, []string{"--b"}) {
		t.Errorf("Dependents(--a) = %v", got)
	}
	if got := graph.Dependencies("--a"); len(got) != 0 {
		t.Errorf("Dependencies(--a) = %v, want none", got)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"--a", "--b", "--c"}) {
		t.Errorf("TopologicalSort() = %v", order)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	graph := resolver.BuildDependencyGraph(defs(t, map[string]string{
		"--a": "var(--c)",
		"--b": "var(--a)",
		"--c": "var(--b, 1px)",
		"--d": "var(--a)",
	}))

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if len(cycle) != 4 || cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("FindCycle() = %v, want a closed path of three names", cycle)
	}

	if got := graph.InCycle(); !slices.Equal(got, []string{"--a", "--b", "--c"}) {
		t.Errorf("InCycle() = %v", got)
	}

	if _, err := graph.TopologicalSort(); !errors.Is(err, resolver.ErrCircularReference) {
		t.Errorf("expected ErrCircularReference, got %v", err)
	}
}

func TestDependencyGraph_SelfReference(t *testing.T) {
	graph := resolver.BuildDependencyGraph(defs(t, map[string]string{
		"--a": "var(--a)",
	}))
	if got := graph.FindCycle(); !slices.Equal(got, []string{"--a", "--a"}) {
		t.Errorf("FindCycle() = %v", got)
	}
}
