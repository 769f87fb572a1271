// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslgen

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
	"github.com/gogpu/xsc/typedenoter"
)

// requirement is one feature the shader body exercises that pushes the
// minimum GLSL version up, or that can instead be satisfied below that
// version by enabling an extension.
type requirement struct {
	feature         string
	minVersion      int
	extension       string
	belowExtVersion int // minimum version at which extension itself becomes available
}

// extensionAgent inspects a converted Program and computes the minimum GLSL
// version and #extension set it needs, implementing the five declarative
// rules: texture arrays, explicit binding layout, atomics, fragment-coord
// origin control, and double-precision types.
type extensionAgent struct {
	opts Options
	sink *report.Sink
}

func newExtensionAgent(opts Options, sink *report.Sink) *extensionAgent {
	return &extensionAgent{opts: opts, sink: sink}
}

// resolved is the outcome of running every rule: the version to actually
// emit in the #version directive, and the #extension lines to print
// immediately below it.
type resolved struct {
	version    Version
	extensions []string
}

// resolve walks program's declarations and used intrinsics against the five
// rules, escalating the requested version or adding an extension line for
// each feature the shader needs, and reporting a VersionMismatch when the
// requested version is below a feature's minimum and extensions are
// disallowed.
func (a *extensionAgent) resolve(program *ast.Program) resolved {
	out := resolved{version: a.opts.Version}
	seen := make(map[string]bool)

	add := func(req requirement, present bool) {
		if !present {
			return
		}
		if out.version.AtLeast(req.minVersion) {
			return
		}
		if a.opts.Extensions && req.extension != "" && out.version.AtLeast(req.belowExtVersion) {
			if !seen[req.extension] {
				seen[req.extension] = true
				out.extensions = append(out.extensions, req.extension)
			}
			return
		}
		if a.opts.Extensions && req.extension != "" {
			// Extension itself needs a higher base version than requested;
			// there is nothing left to do but raise the version outright.
			out.version.Number = req.minVersion
			return
		}
		a.report(report.VersionMismatch(program.Area,
			req.feature+" requires GLSL "+out.versionString(req.minVersion)+" or the "+req.extension+" extension"))
	}

	add(requirement{
		feature:         "arrays of texture samplers",
		minVersion:      150,
		extension:       "GL_EXT_texture_array",
		belowExtVersion: 120,
	}, a.usesTextureArrays(program))

	add(requirement{
		feature:         "explicit uniform binding layout",
		minVersion:      420,
		extension:       "GL_ARB_shading_language_420pack",
		belowExtVersion: 330,
	}, a.usesExplicitBinding(program))

	add(requirement{
		feature:         "atomic memory intrinsics",
		minVersion:      430,
		extension:       "GL_ARB_shader_atomic_counters",
		belowExtVersion: 150,
	}, a.usesAtomics(program))

	add(requirement{
		feature:         "gl_FragCoord origin/pixel-center control",
		minVersion:      150,
		extension:       "GL_ARB_fragment_coord_conventions",
		belowExtVersion: 110,
	}, program.LayoutFragment.FragCoordUsed)

	add(requirement{
		feature:         "double-precision types",
		minVersion:      400,
		extension:       "GL_ARB_gpu_shader_fp64",
		belowExtVersion: 150,
	}, a.usesDoubles(program))

	return out
}

func (r resolved) versionString(number int) string {
	v := r.version
	v.Number = number
	return v.String()
}

func (a *extensionAgent) report(rep *report.Report) {
	if a.sink != nil {
		a.sink.Add(rep)
	}
}

func (a *extensionAgent) usesTextureArrays(program *ast.Program) bool {
	for _, s := range program.GlobalStmnts {
		bd, ok := s.(*ast.BufferDeclStmt)
		if !ok {
			continue
		}
		for _, decl := range bd.Decls {
			if len(decl.ArrayDims) > 0 {
				return true
			}
		}
	}
	return false
}

func (a *extensionAgent) usesExplicitBinding(program *ast.Program) bool {
	for _, s := range program.GlobalStmnts {
		switch decl := s.(type) {
		case *ast.BufferDeclStmt:
			for _, d := range decl.Decls {
				if len(d.SlotRegisters) > 0 {
					return true
				}
			}
		case *ast.UniformBufferDecl:
			if len(decl.SlotRegisters) > 0 {
				return true
			}
		}
	}
	return false
}

func (a *extensionAgent) usesAtomics(program *ast.Program) bool {
	for _, id := range program.UsedIntrinsics() {
		switch id {
		case ast.IntrinsicInterlockedAdd, ast.IntrinsicInterlockedAnd, ast.IntrinsicInterlockedOr,
			ast.IntrinsicInterlockedXor, ast.IntrinsicInterlockedMin, ast.IntrinsicInterlockedMax,
			ast.IntrinsicInterlockedExchange, ast.IntrinsicInterlockedCompareExchange:
			return true
		}
	}
	return false
}

func (a *extensionAgent) usesDoubles(program *ast.Program) bool {
	for _, id := range program.UsedIntrinsics() {
		usage := program.FetchIntrinsicUsage(id)
		if usage == nil {
			continue
		}
		for _, t := range usage.ArgTypes {
			if t == typedenoter.Double {
				return true
			}
		}
	}
	return false
}
