/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver tracks dependencies between custom properties and
// substitutes var() references.
package resolver

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"bennypowers.dev/cssvalues/lexical"
	"bennypowers.dev/cssvalues/value"
)

// DependencyGraph is a directed graph of custom properties. An edge runs
// from a property to each name its value references.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
}

// BuildDependencyGraph builds the graph for a set of custom property
// definitions keyed by name.
func BuildDependencyGraph(defs map[string]value.Value) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
	}

	for name := range defs {
		graph.nodes = append(graph.nodes, name)
	}
	sort.Strings(graph.nodes)

	for _, name := range graph.nodes {
		deps := References(defs[name])
		if len(deps) > 0 {
			graph.dependencies[name] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], name)
			}
		}
	}

	return graph
}

// References returns the custom property names v refers to through var(),
// in order of first appearance. Names inside fallbacks count.
func References(v value.Value) []string {
	if v == nil {
		return nil
	}
	var refs []string
	var walk func(v value.Value)
	walk = func(v value.Value) {
		switch x := v.(type) {
		case *value.VarValue:
			refs = appendUnique(refs, x.Name())
			if fb := x.Fallback(); fb != nil {
				walk(fb)
			}
		case *value.EnvValue:
			if fb := x.Fallback(); fb != nil {
				walk(fb)
			}
		case *value.LexicalValue:
			refs = chainReferences(x.Chain(), refs)
		case *value.ValueList:
			for _, item := range x.Items() {
				walk(item)
			}
		case *value.FunctionValue:
			if args := x.Arguments(); args != nil {
				walk(args)
			}
		case *value.AttrValue:
			if fb := x.Fallback(); fb != nil {
				walk(fb)
			}
		}
	}
	walk(v)
	return refs
}

func chainReferences(u *lexical.Unit, refs []string) []string {
	for ; u != nil; u = u.Next {
		if u.Name() == "var" && u.Params != nil && u.Params.Type == lexical.TypeIdent {
			refs = appendUnique(refs, u.Params.Text)
			refs = chainReferences(u.Params.Next, refs)
			continue
		}
		refs = chainReferences(u.Params, refs)
	}
	return refs
}

func appendUnique(s []string, name string) []string {
	if slices.Contains(s, name) {
		return s
	}
	return append(s, name)
}

// Dependencies returns the names the given property references.
func (g *DependencyGraph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the properties that reference name.
func (g *DependencyGraph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// HasCycle reports whether any properties reference each other in a loop.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns one cycle as a path that starts and ends with the same
// name, or nil.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, onPath, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, onPath map[string]bool, path []string) []string {
	if onPath[node] {
		start := slices.Index(path, node)
		if start == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: %q on path but not in %v", node, path))
		}
		return append(slices.Clone(path[start:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	onPath[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, onPath, path); cycle != nil {
			return cycle
		}
	}

	onPath[node] = false
	return nil
}

// InCycle returns every defined property that lies on a cycle, sorted.
func (g *DependencyGraph) InCycle() []string {
	var out []string
	for _, node := range g.nodes {
		if g.reaches(node, node, make(map[string]bool)) {
			out = append(out, node)
		}
	}
	return out
}

func (g *DependencyGraph) reaches(from, target string, seen map[string]bool) bool {
	for _, dep := range g.dependencies[from] {
		if dep == target {
			return true
		}
		if !seen[dep] {
			seen[dep] = true
			if g.reaches(dep, target, seen) {
				return true
			}
		}
	}
	return false
}

// TopologicalSort returns the defined properties with dependencies first.
// It fails with ErrCircularReference when the graph has a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}

	defined := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		defined[n] = true
	}

	visited := make(map[string]bool)
	result := []string{}
	var visit func(string)
	visit = func(node string) {
		visited[node] = true
		for _, dep := range g.dependencies[node] {
			if !visited[dep] {
				visit(dep)
			}
		}
		if defined[node] {
			result = append(result, node)
		}
	}
	for _, node := range g.nodes {
		if !visited[node] {
			visit(node)
		}
	}
	return result, nil
}
