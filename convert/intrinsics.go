// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
	"github.com/gogpu/xsc/typedenoter"
)

// ClipHelper is a synthesized file-scope function the generator emits once
// per argument base type that any reachable `clip(x)` call uses.
type ClipHelper struct {
	ArgType typedenoter.DataType
}

// ClipHelpers returns the set of clip() helper signatures this Converter
// observed a call site for. The order of the returned helpers is not
// defined.
func (c *Converter) ClipHelpers() []ClipHelper {
	helpers := make([]ClipHelper, 0, len(c.clipHelpersEmitted))
	for t := range c.clipHelpersEmitted {
		helpers = append(helpers, ClipHelper{ArgType: t})
	}
	return helpers
}

// rewriteStmt walks s rewriting every reachable expression it contains via
// rewriteExpr, recursing into nested statements.
func (c *Converter) rewriteStmt(program *ast.Program, s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.CodeBlock:
		for i, inner := range stmt.Stmts {
			c.rewriteStmt(program, inner)
			stmt.Stmts[i] = inner
		}
	case *ast.CodeBlockStmt:
		c.rewriteStmt(program, stmt.Body)
	case *ast.ForLoopStmt:
		if stmt.Init != nil {
			c.rewriteStmt(program, stmt.Init)
		}
		stmt.Condition = c.rewriteExprOrNil(program, stmt.Condition)
		stmt.Iteration = c.rewriteExprOrNil(program, stmt.Iteration)
		c.rewriteStmt(program, stmt.Body)
	case *ast.WhileLoopStmt:
		stmt.Condition = c.rewriteExpr(program, stmt.Condition)
		c.rewriteStmt(program, stmt.Body)
	case *ast.DoWhileLoopStmt:
		c.rewriteStmt(program, stmt.Body)
		stmt.Condition = c.rewriteExpr(program, stmt.Condition)
	case *ast.IfStmt:
		stmt.Condition = c.rewriteExpr(program, stmt.Condition)
		c.rewriteStmt(program, stmt.Body)
		if stmt.Else != nil {
			c.rewriteStmt(program, stmt.Else)
		}
	case *ast.SwitchStmt:
		stmt.Selector = c.rewriteExpr(program, stmt.Selector)
		for ci := range stmt.Cases {
			for si, cs := range stmt.Cases[ci].Stmts {
				c.rewriteStmt(program, cs)
				stmt.Cases[ci].Stmts[si] = cs
			}
		}
	case *ast.ExprStmt:
		stmt.Expr = c.rewriteExpr(program, stmt.Expr)
	case *ast.ReturnStmt:
		stmt.Expr = c.rewriteExprOrNil(program, stmt.Expr)
	case *ast.VarDeclStmt:
		for _, v := range stmt.Decls {
			if v.Initializer != nil {
				v.Initializer = c.rewriteExpr(program, v.Initializer)
			}
		}
	case *ast.FunctionDecl:
		if stmt.CodeBlock != nil {
			c.rewriteStmt(program, stmt.CodeBlock)
		}
	}
}

func (c *Converter) rewriteExprOrNil(program *ast.Program, e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return c.rewriteExpr(program, e)
}

// rewriteExpr applies the intrinsic and system-value rewrites bottom-up:
// operands are rewritten before the expression containing them, so a
// nested `mul(mul(A,B),C)` rewrites its inner call first.
func (c *Converter) rewriteExpr(program *ast.Program, e ast.Expr) ast.Expr {
	switch expr := e.(type) {
	case *ast.ListExpr:
		expr.First = c.rewriteExpr(program, expr.First)
		expr.Rest = c.rewriteExpr(program, expr.Rest)
	case *ast.TernaryExpr:
		expr.Cond = c.rewriteExpr(program, expr.Cond)
		expr.Then = c.rewriteExpr(program, expr.Then)
		expr.Else = c.rewriteExpr(program, expr.Else)
	case *ast.BinaryExpr:
		expr.LHS = c.rewriteExpr(program, expr.LHS)
		expr.RHS = c.rewriteExpr(program, expr.RHS)
	case *ast.UnaryExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
	case *ast.PostUnaryExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
	case *ast.BracketExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
	case *ast.SuffixExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
		return c.rewriteSuffixSystemValue(program, expr)
	case *ast.ArrayAccessExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
		for i, idx := range expr.ArrayIndices {
			expr.ArrayIndices[i] = c.rewriteExpr(program, idx)
		}
	case *ast.CastExpr:
		expr.Expr = c.rewriteExpr(program, expr.Expr)
	case *ast.VarAccessExpr:
		if expr.AssignExpr != nil {
			expr.AssignExpr = c.rewriteExpr(program, expr.AssignExpr)
		}
		expr.VarIdent = c.substituteSystemValueIdent(program, expr.VarIdent)
	case *ast.InitializerExpr:
		for i, sub := range expr.Exprs {
			expr.Exprs[i] = c.rewriteExpr(program, sub)
		}
	case *ast.FunctionCallExpr:
		for i, arg := range expr.Call.Args {
			expr.Call.Args[i] = c.rewriteExpr(program, arg)
		}
		if expr.Call.PrefixExpr != nil {
			expr.Call.PrefixExpr = c.rewriteExpr(program, expr.Call.PrefixExpr)
		}
		return c.rewriteCall(program, expr)
	}
	return e
}

// rewriteSuffixSystemValue substitutes the whole suffix chain when its
// underlying VarIdent resolves through a system-value member; otherwise it
// returns the (already operand-rewritten) expression unchanged.
func (c *Converter) rewriteSuffixSystemValue(program *ast.Program, expr *ast.SuffixExpr) ast.Expr {
	if access, ok := expr.Expr.(*ast.VarAccessExpr); ok {
		chain := &ast.VarIdent{Node: access.VarIdent.Node, Ident: access.VarIdent.Ident, Next: expr.VarIdent, SymbolRef: access.VarIdent.SymbolRef}
		substituted := c.substituteSystemValueIdent(program, chain)
		if substituted != chain {
			return &ast.VarAccessExpr{Node: expr.Node, VarIdent: substituted}
		}
	}
	return expr
}

// rewriteCall dispatches a call expression to its intrinsic rewrite, or
// leaves an ordinary user-function call untouched.
func (c *Converter) rewriteCall(program *ast.Program, expr *ast.FunctionCallExpr) ast.Expr {
	call := expr.Call
	switch call.Intrinsic {
	case ast.IntrinsicMul:
		return c.rewriteMul(expr)
	case ast.IntrinsicRcp:
		return c.rewriteRcp(expr)
	case ast.IntrinsicClip:
		return c.rewriteClip(expr)
	case ast.IntrinsicInterlockedAdd, ast.IntrinsicInterlockedAnd, ast.IntrinsicInterlockedOr,
		ast.IntrinsicInterlockedXor, ast.IntrinsicInterlockedMin, ast.IntrinsicInterlockedMax,
		ast.IntrinsicInterlockedExchange, ast.IntrinsicInterlockedCompareExchange:
		return c.rewriteInterlocked(expr)
	case ast.IntrinsicTextureSample, ast.IntrinsicTextureSampleLevel, ast.IntrinsicTextureSampleBias,
		ast.IntrinsicTextureSampleGrad, ast.IntrinsicTextureSampleCmp, ast.IntrinsicTextureSampleCmpLevelZero,
		ast.IntrinsicTextureLoad, ast.IntrinsicTextureGetDimensions:
		return c.rewriteTextureMethod(expr)
	default:
		return expr
	}
}

// isBracketable reports whether wrapping e's textual form needs parens to
// preserve precedence when used as a binary operand, per §4.4.3's "wrapping
// each operand in brackets iff its category is ternary/binary/unary/post-unary".
func isBracketable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.TernaryExpr, *ast.BinaryExpr, *ast.UnaryExpr, *ast.PostUnaryExpr:
		return true
	default:
		return false
	}
}

func maybeBracket(e ast.Expr) ast.Expr {
	if isBracketable(e) {
		return &ast.BracketExpr{Node: *e.Base(), Expr: e}
	}
	return e
}

// rewriteMul implements "mul(A,B)" → "(A * B)", §4.4.3.
func (c *Converter) rewriteMul(expr *ast.FunctionCallExpr) ast.Expr {
	args := expr.Call.Args
	if len(args) != 2 {
		c.report(report.InvalidNumArgs(expr.Area, "mul expects 2 arguments, got %d", len(args)))
		return expr
	}
	bin := &ast.BinaryExpr{Node: expr.Node, LHS: maybeBracket(args[0]), Op: ast.BinaryOpMul, RHS: maybeBracket(args[1])}
	return &ast.BracketExpr{Node: expr.Node, Expr: bin}
}

// rewriteRcp implements "rcp(x)" → "(T(1) / (x))", §4.4.3.
func (c *Converter) rewriteRcp(expr *ast.FunctionCallExpr) ast.Expr {
	args := expr.Call.Args
	if len(args) != 1 {
		c.report(report.InvalidNumArgs(expr.Area, "rcp expects 1 argument, got %d", len(args)))
		return expr
	}
	d, err := args[0].GetTypeDenoter()
	if err != nil {
		c.report(report.InvalidArgument(expr.Area, "rcp argument has no resolvable type: %v", err))
		return expr
	}
	base, ok := d.GetFully().Kind.(typedenoter.BaseKind)
	if !ok {
		c.report(report.InvalidArgument(expr.Area, "rcp requires a scalar, vector, or matrix argument"))
		return expr
	}
	baseType := typedenoter.BaseDataType(base.DataType)
	one := &ast.FunctionCallExpr{
		Node: expr.Node,
		Call: &ast.FunctionCall{Node: expr.Call.Node, Ident: baseType.String(), Args: []ast.Expr{
			&ast.LiteralExpr{Node: expr.Node, DataType: baseType, Value: "1"},
		}},
	}
	bin := &ast.BinaryExpr{Node: expr.Node, LHS: one, Op: ast.BinaryOpDiv, RHS: &ast.BracketExpr{Node: expr.Node, Expr: args[0]}}
	return &ast.BracketExpr{Node: expr.Node, Expr: bin}
}

// rewriteClip implements §4.4.3's clip() helper: the call site is left
// untouched (GLSL overload resolution picks the right helper by argument
// type), and the needed helper's argument type is recorded so the generator
// emits a matching "clip(T)" overload once at file scope regardless of call count.
func (c *Converter) rewriteClip(expr *ast.FunctionCallExpr) ast.Expr {
	args := expr.Call.Args
	if len(args) != 1 {
		c.report(report.InvalidNumArgs(expr.Area, "clip expects 1 argument, got %d", len(args)))
		return expr
	}
	d, err := args[0].GetTypeDenoter()
	if err != nil {
		c.report(report.InvalidArgument(expr.Area, "clip argument has no resolvable type: %v", err))
		return expr
	}
	base, ok := d.GetFully().Kind.(typedenoter.BaseKind)
	if !ok {
		c.report(report.InvalidArgument(expr.Area, "clip requires a scalar or vector argument"))
		return expr
	}
	c.clipHelpersEmitted[base.DataType] = true
	return expr
}

// rewriteInterlocked implements the atomic family rewrite: "InterlockedAdd(dst,val)"
// → "atomicAdd(dst, val)"; a third "original_value" output argument becomes
// "original_value = atomicAdd(dst, val)".
func (c *Converter) rewriteInterlocked(expr *ast.FunctionCallExpr) ast.Expr {
	args := expr.Call.Args
	if len(args) < 2 {
		c.report(report.InvalidNumArgs(expr.Area, "%s expects at least 2 arguments, got %d", expr.Call.Intrinsic, len(args)))
		return expr
	}
	glslName := interlockedGLSLName(expr.Call.Intrinsic)
	call := &ast.FunctionCallExpr{
		Node: expr.Node,
		Call: &ast.FunctionCall{Node: expr.Call.Node, Ident: glslName, Args: args[:2]},
	}
	if len(args) == 3 {
		return &ast.VarAccessExpr{
			Node:       expr.Node,
			VarIdent:   args[2].FetchVarIdent(),
			AssignOp:   ast.AssignOpSet,
			AssignExpr: call,
		}
	}
	return call
}

func interlockedGLSLName(i ast.Intrinsic) string {
	switch i {
	case ast.IntrinsicInterlockedAdd:
		return "atomicAdd"
	case ast.IntrinsicInterlockedAnd:
		return "atomicAnd"
	case ast.IntrinsicInterlockedOr:
		return "atomicOr"
	case ast.IntrinsicInterlockedXor:
		return "atomicXor"
	case ast.IntrinsicInterlockedMin:
		return "atomicMin"
	case ast.IntrinsicInterlockedMax:
		return "atomicMax"
	case ast.IntrinsicInterlockedExchange:
		return "atomicExchange"
	case ast.IntrinsicInterlockedCompareExchange:
		return "atomicCompSwap"
	default:
		return "atomicAdd"
	}
}

// rewriteTextureMethod implements §4.4.3/§4.4.4: "tex.Sample(samp, uv)" →
// "texture(tex, uv)" (the sampler argument is dropped: a combined
// texture+sampler object is the GLSL `sampler*` uniform itself), and the
// analogous free-function names for the other texture methods.
func (c *Converter) rewriteTextureMethod(expr *ast.FunctionCallExpr) ast.Expr {
	call := expr.Call
	if call.PrefixExpr == nil {
		c.report(report.MissingReference(expr.Area, "texture method %s has no receiver", call.Ident))
		return expr
	}

	glslName, dropsSampler := textureMethodGLSLName(call.Intrinsic)
	args := call.Args
	if dropsSampler && len(args) > 0 {
		args = args[1:]
	}
	newArgs := append([]ast.Expr{call.PrefixExpr}, args...)

	return &ast.FunctionCallExpr{
		Node: expr.Node,
		Call: &ast.FunctionCall{Node: call.Node, Ident: glslName, Args: newArgs},
	}
}

func textureMethodGLSLName(i ast.Intrinsic) (name string, dropsSampler bool) {
	switch i {
	case ast.IntrinsicTextureSample:
		return "texture", true
	case ast.IntrinsicTextureSampleLevel:
		return "textureLod", true
	case ast.IntrinsicTextureSampleBias:
		return "texture", true // bias becomes texture()'s optional trailing bias argument
	case ast.IntrinsicTextureSampleGrad:
		return "textureGrad", true
	case ast.IntrinsicTextureSampleCmp:
		return "texture", true // the comparison value is passed on as texture()'s trailing argument
	case ast.IntrinsicTextureSampleCmpLevelZero:
		return "texture", true
	case ast.IntrinsicTextureLoad:
		return "texelFetch", false
	case ast.IntrinsicTextureGetDimensions:
		return "textureSize", false
	default:
		return "texture", true
	}
}
