// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package convert rewrites a reachability-marked ast.Program from HLSL into
// GLSL semantics in place: entry-point restructuring, intrinsic rewrites,
// structure inheritance flattening, and system-value identifier
// substitution. Each pass is idempotent on its own post-condition so
// running the converter twice on an already-converted Program is a no-op.
package convert

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
	"github.com/gogpu/xsc/typedenoter"
)

// Converter threads the shared state the conversion passes need: the target
// stage (which bounds what interface-block shapes are legal), the requested
// GLSL version number, and a diagnostic sink. No pass reads Version: entry
// point promotion binds SV_Target outputs to a generated global at every
// version and never to gl_FragData.
type Converter struct {
	Stage   ast.Stage
	Version int
	sink    *report.Sink

	clipHelpersEmitted map[typedenoter.DataType]bool
}

// New returns a Converter targeting stage, with diagnostics reported to sink.
func New(stage ast.Stage, version int, sink *report.Sink) *Converter {
	return &Converter{Stage: stage, Version: version, sink: sink, clipHelpersEmitted: make(map[typedenoter.DataType]bool)}
}

func (c *Converter) report(r *report.Report) {
	if c.sink != nil {
		c.sink.Add(r)
	}
}

// Convert runs every pass over program in the order §4.4 fixes: structure
// flattening information first (member ordering the later passes rely on),
// then entry-point promotion, then intrinsic and identifier rewrites, then
// node disabling.
func (c *Converter) Convert(program *ast.Program) {
	for _, s := range program.GlobalStmnts {
		if sd, ok := s.(*ast.StructDeclStmt); ok {
			FlattenStructMembers(sd.StructDecl)
		}
	}

	if program.EntryPointRef != nil {
		c.PromoteEntryPoint(program, program.EntryPointRef)
	}

	for _, s := range program.GlobalStmnts {
		c.rewriteStmt(program, s)
	}

	c.disableDeadNodes(program)
}

// FlattenStructMembers returns sd's members in base-then-derived order: the
// order the generator must emit them in, and the order member lookup must
// search to resolve inherited fields. It is idempotent: calling it again
// after the struct's own VarMembers already include the base's (which this
// function never does — it only computes an order, it does not mutate
// VarMembers) yields the same result.
func FlattenStructMembers(sd *ast.StructDecl) []*ast.VarDecl {
	if sd == nil {
		return nil
	}
	var order []*ast.VarDecl
	if sd.BaseStructRef != nil {
		order = append(order, FlattenStructMembers(sd.BaseStructRef)...)
	}
	for _, stmt := range sd.VarMembers {
		order = append(order, stmt.Decls...)
	}
	return order
}
