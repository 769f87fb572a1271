// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"strconv"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/typedenoter"
)

// EntryPointIO is the resolved binding of one entry-point input or output
// value to its GLSL destination: a built-in (gl_Position, gl_FragCoord, ...)
// for a system-value semantic, or a generated global name for a
// user-defined semantic.
type EntryPointIO struct {
	// VarDecl is the struct member or parameter this binding covers.
	VarDecl *ast.VarDecl
	// GLSLName is either a gl_* built-in or a generated in/out global name.
	GLSLName string
	IsBuiltin bool
}

// EntryPointBindings is the full promoted I/O surface of one entry point,
// computed once by PromoteEntryPoint and consulted by the generator.
type EntryPointBindings struct {
	Inputs  []EntryPointIO
	Outputs []EntryPointIO
	// SingleOutputVariable is set when the entry point returns a scalar or
	// vector directly (not a struct); every `return expr;` is rewritten to
	// assign through it.
	SingleOutputVariable string
}

// PromoteEntryPoint rewrites fn's signature into the GLSL `main` shape per
// §4.4.2: binds every input/output semantic to a GLSL built-in or a
// generated global, and rewrites every `return expr;` inside fn's body into
// an assignment through the resolved output binding followed by a bare
// `return;`.
func (c *Converter) PromoteEntryPoint(program *ast.Program, fn *ast.FunctionDecl) *EntryPointBindings {
	fn.SetBuildIn() // the converted entry point no longer matches its source signature
	b := &EntryPointBindings{}

	for _, param := range fn.Parameters {
		for _, v := range param.Decls {
			d, err := v.Type.DeriveTypeDenoter()
			if err == nil {
				if sd, ok := d.GetFully().Kind.(typedenoter.StructKind); ok {
					if s, ok := sd.StructDecl.(*ast.StructDecl); ok {
						s.IsShaderInput = true
						for _, member := range FlattenStructMembers(s) {
							member.StructDeclRef = s
							c.bindInput(program, b, member)
						}
						continue
					}
				}
			}
			c.bindInput(program, b, v)
		}
	}

	if fn.ReturnType != nil {
		d, err := fn.ReturnType.DeriveTypeDenoter()
		if err == nil && !d.IsVoid() {
			if sd, ok := d.GetFully().Kind.(typedenoter.StructKind); ok {
				if s, ok := sd.StructDecl.(*ast.StructDecl); ok {
					s.IsShaderOutput = true
					for _, member := range FlattenStructMembers(s) {
						member.StructDeclRef = s
						c.bindOutput(program, b, member)
					}
				}
			} else if fn.HasSemantic {
				b.SingleOutputVariable = c.systemValueOrGlobal(program, fn.Semantic, resultGLSLBaseName(fn))
			}
		}
	}

	if fn.CodeBlock != nil {
		c.rewriteReturns(fn.CodeBlock, b)
	}

	return b
}

func resultGLSLBaseName(fn *ast.FunctionDecl) string {
	if fn.Semantic.Name != "" {
		return fn.Semantic.String()
	}
	return fn.Ident + "Result"
}

func (c *Converter) bindInput(program *ast.Program, b *EntryPointBindings, v *ast.VarDecl) {
	v.IsShaderInput = true
	if v.HasSemantic {
		name := c.systemValueOrGlobal(program, v.Semantic, v.Ident)
		b.Inputs = append(b.Inputs, EntryPointIO{VarDecl: v, GLSLName: name, IsBuiltin: isSystemValue(v.Semantic)})
	} else {
		b.Inputs = append(b.Inputs, EntryPointIO{VarDecl: v, GLSLName: v.Ident})
	}
}

func (c *Converter) bindOutput(program *ast.Program, b *EntryPointBindings, v *ast.VarDecl) {
	v.IsShaderOutput = true
	v.IsEntryPointOutput = true
	if v.HasSemantic {
		name := c.systemValueOrGlobal(program, v.Semantic, v.Ident)
		b.Outputs = append(b.Outputs, EntryPointIO{VarDecl: v, GLSLName: name, IsBuiltin: isSystemValue(v.Semantic)})
	} else {
		b.Outputs = append(b.Outputs, EntryPointIO{VarDecl: v, GLSLName: v.Ident})
	}
}

func isSystemValue(s ast.Semantic) bool { return s.IsSystemValue() }

// systemValueOrGlobal resolves a semantic to its GLSL destination: a
// built-in variable for a recognized SV_* semantic, or a generated global
// name derived from fallback for anything else.
func (c *Converter) systemValueOrGlobal(program *ast.Program, sem ast.Semantic, fallback string) string {
	if !sem.IsSystemValue() {
		return fallback
	}
	switch sem.Name {
	case ast.SVPosition:
		return "gl_Position"
	case ast.SVVertexID:
		return "gl_VertexID"
	case ast.SVInstanceID:
		return "gl_InstanceID"
	case ast.SVIsFrontFace:
		return "gl_FrontFacing"
	case ast.SVDepth:
		return "gl_FragDepth"
	case ast.SVDispatchThreadID:
		return "gl_GlobalInvocationID"
	case ast.SVGroupID:
		return "gl_WorkGroupID"
	case ast.SVGroupThreadID:
		return "gl_LocalInvocationID"
	case ast.SVGroupIndex:
		return "gl_LocalInvocationIndex"
	case ast.SVPrimitiveID:
		return "gl_PrimitiveID"
	case ast.SVSampleIndex:
		return "gl_SampleID"
	case ast.SVOutputControlPointID:
		return "gl_InvocationID"
	case ast.SVTarget:
		// Open question in the source material this compiler follows: the
		// location index for SV_TargetN is not fixed by a declared table.
		// We derive it from the semantic's own trailing digit, so
		// SV_Target2 binds to location 2 and bare SV_Target binds to 0.
		return c.fragTargetGlobalName(program, sem.Index)
	default:
		return fallback
	}
}

// fragTargetGlobalName names the generated `out` global for one SV_TargetN
// output; it registers nothing. The name depends only on the index, so
// repeated calls for the same index return the same name.
func (c *Converter) fragTargetGlobalName(program *ast.Program, index int) string {
	if index == 0 {
		return "SV_Target"
	}
	return "SV_Target" + strconv.Itoa(index)
}

// rewriteReturns rewrites every `return expr;` reachable in block (not
// descending into nested function declarations, which have none inside a
// code block) into an assignment through the output binding followed by a
// bare `return;`, per §4.4.2. A struct-typed return assigns each flattened
// member from the corresponding field access.
func (c *Converter) rewriteReturns(block *ast.CodeBlock, b *EntryPointBindings) {
	for i, s := range block.Stmts {
		block.Stmts[i] = c.rewriteReturnsInStmt(s, b)
	}
}

func (c *Converter) rewriteReturnsInStmt(s ast.Stmt, b *EntryPointBindings) ast.Stmt {
	switch stmt := s.(type) {
	case *ast.CodeBlock:
		c.rewriteReturns(stmt, b)
	case *ast.CodeBlockStmt:
		c.rewriteReturns(stmt.Body, b)
	case *ast.ForLoopStmt:
		stmt.Body = c.rewriteReturnsInStmt(stmt.Body, b)
	case *ast.WhileLoopStmt:
		stmt.Body = c.rewriteReturnsInStmt(stmt.Body, b)
	case *ast.DoWhileLoopStmt:
		stmt.Body = c.rewriteReturnsInStmt(stmt.Body, b)
	case *ast.IfStmt:
		stmt.Body = c.rewriteReturnsInStmt(stmt.Body, b)
		if stmt.Else != nil {
			stmt.Else = c.rewriteReturnsInStmt(stmt.Else, b)
		}
	case *ast.SwitchStmt:
		for ci := range stmt.Cases {
			for si, cs := range stmt.Cases[ci].Stmts {
				stmt.Cases[ci].Stmts[si] = c.rewriteReturnsInStmt(cs, b)
			}
		}
	case *ast.ReturnStmt:
		return c.rewriteReturn(stmt, b)
	}
	return s
}

// rewriteReturn implements "every `return <expr>;` inside the entry point
// is rewritten as `<singleOutputVariable> = <expr>; return;`" for a
// scalar/vector result, or one assignment per flattened output member for a
// struct result. Multiple resulting statements are packed into a
// CodeBlockStmt so the rewrite still satisfies the single-Stmt slot it replaces.
func (c *Converter) rewriteReturn(ret *ast.ReturnStmt, b *EntryPointBindings) ast.Stmt {
	if ret.Expr == nil {
		return ret
	}

	var assigns []ast.Stmt
	switch {
	case b.SingleOutputVariable != "":
		assigns = append(assigns, assignStmt(ret.Area, b.SingleOutputVariable, ret.Expr))
	case len(b.Outputs) > 0:
		for _, out := range b.Outputs {
			member := memberAccess(ret.Area, ret.Expr, out.VarDecl.Ident)
			assigns = append(assigns, assignStmt(ret.Area, out.GLSLName, member))
		}
	default:
		return ret
	}

	bareReturn := &ast.ReturnStmt{Node: ast.Node{Area: ret.Area}, IsEndOfFunction: ret.IsEndOfFunction}
	assigns = append(assigns, bareReturn)
	wrapper := &ast.CodeBlock{Node: ast.Node{Area: ret.Area}, Stmts: assigns}
	wrapper.SetBuildIn()
	return &ast.CodeBlockStmt{Node: ast.Node{Area: ret.Area}, Body: wrapper}
}

// assignStmt builds "<name> = <expr>;" as an ExprStmt wrapping a
// VarAccessExpr assignment, the same shape the parser would have produced
// for a plain assignment statement.
func assignStmt(area ast.SourceArea, name string, value ast.Expr) ast.Stmt {
	access := &ast.VarAccessExpr{
		Node:       ast.Node{Area: area},
		VarIdent:   &ast.VarIdent{Node: ast.Node{Area: area}, Ident: name, Immutable: true},
		AssignOp:   ast.AssignOpSet,
		AssignExpr: value,
	}
	access.SetBuildIn()
	return &ast.ExprStmt{Node: ast.Node{Area: area}, Expr: access}
}

// memberAccess builds "<base>.<member>" as a SuffixExpr.
func memberAccess(area ast.SourceArea, base ast.Expr, member string) ast.Expr {
	return &ast.SuffixExpr{
		Node:     ast.Node{Area: area},
		Expr:     base,
		VarIdent: &ast.VarIdent{Node: ast.Node{Area: area}, Ident: member},
	}
}

// substituteSystemValueIdent implements §4.4.5: when a VarIdent chain's
// resolved member carries a system-value semantic, the chain is rewritten
// to start at the GLSL built-in and keep any trailing subscript, e.g.
// "vertexOutput.position.xyz" ⇒ "gl_Position.xyz".
func (c *Converter) substituteSystemValueIdent(program *ast.Program, chain *ast.VarIdent) *ast.VarIdent {
	var trail []string
	for cur := chain; cur != nil; cur = cur.Next {
		if decl := cur.FetchVarDecl(); decl != nil && decl.HasSemantic && decl.Semantic.IsSystemValue() {
			builtin := c.systemValueOrGlobal(program, decl.Semantic, decl.Ident)
			rest := cur.Next
			for rest != nil {
				trail = append(trail, rest.Ident)
				rest = rest.Next
			}
			return buildIdentChain(builtin, trail, chain.Area)
		}
	}
	return chain
}

func buildIdentChain(head string, trail []string, area ast.SourceArea) *ast.VarIdent {
	root := &ast.VarIdent{Node: ast.Node{Area: area}, Ident: head, Immutable: true}
	cur := root
	for _, ident := range trail {
		next := &ast.VarIdent{Node: ast.Node{Area: area}, Ident: ident}
		cur.Next = next
		cur = next
	}
	return root
}
