// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package astutil loads test and driver input in place of the HLSL parser
// this module does not implement: a Fixture is an *ast.Program built
// directly in Go source and registered under a name, the same way a real
// front end would hand the pipeline a parsed translation unit. cmd/xscc and
// the package test suites both load fixtures through Load rather than
// parsing HLSL text.
package astutil

import (
	"fmt"
	"sort"

	"github.com/gogpu/xsc/ast"
)

// Fixture is a ready-to-convert translation unit: the parsed Program, the
// stage to compile it for, and the entry point(s) to promote.
type Fixture struct {
	Program *ast.Program
	Stage   ast.Stage
	Entry   string
	Entry2  string // secondary entry point name, or "" if none
}

// Builder constructs a fresh Fixture. Builders return a new Program on every
// call so callers are free to mutate the result (the converter does) without
// corrupting the registry.
type Builder func() *Fixture

var registry = map[string]Builder{}

// Register adds a named fixture builder. Called from package init funcs in
// the fixtures.go files that ship with this package and with the test
// packages that need their own inputs.
func Register(name string, b Builder) {
	registry[name] = b
}

// Load builds and returns the fixture registered under name.
func Load(name string) (*Fixture, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("astutil: no fixture registered as %q (known: %v)", name, Names())
	}
	return b(), nil
}

// Names returns every registered fixture name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
