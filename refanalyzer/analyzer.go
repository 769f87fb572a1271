// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package refanalyzer walks an ast.Program from its chosen entry point and
// marks every transitively referenced declaration, statement, expression,
// and intrinsic as reachable, the way a mark phase of a tracing collector
// walks live object references.
package refanalyzer

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
	"github.com/gogpu/xsc/typedenoter"
)

// Analyzer performs one reachability pass over a Program. It is not
// reentrant-safe for concurrent use on the same Program, but independent
// Analyzers over disjoint Programs never share state.
type Analyzer struct {
	visited map[interface{}]bool
	program *ast.Program
	sink    *report.Sink
}

// New returns an Analyzer that reports diagnostics to sink (which may be nil
// to discard them).
func New(sink *report.Sink) *Analyzer {
	return &Analyzer{visited: make(map[interface{}]bool), sink: sink}
}

// Analyze marks every node reachable from program.EntryPointRef. It returns
// a MissingReference report if no entry point is set.
func (a *Analyzer) Analyze(program *ast.Program) *report.Report {
	a.program = program
	a.visited = make(map[interface{}]bool)

	if program.EntryPointRef == nil {
		err := report.MissingReference(ast.SourceArea{}, "program has no resolved entry point")
		a.report(err)
		return err
	}

	a.visitFunction(program.EntryPointRef)
	return nil
}

func (a *Analyzer) report(r *report.Report) {
	if a.sink != nil {
		a.sink.Add(r)
	}
}

func (a *Analyzer) seen(key interface{}) bool {
	if a.visited[key] {
		return true
	}
	a.visited[key] = true
	return false
}

func (a *Analyzer) visitFunction(f *ast.FunctionDecl) {
	if f == nil || a.seen(f) {
		return
	}
	f.SetReachable()

	// A forward declaration and its implementation are reachable together;
	// walking either side reaches the other.
	if f.FuncImplRef != nil {
		a.visitFunction(f.FuncImplRef)
	}
	for _, fwd := range f.FuncForwardDeclRefs {
		a.visitFunction(fwd)
	}

	if f.StructDeclRef != nil {
		a.visitStruct(f.StructDeclRef)
	}

	for _, param := range f.Parameters {
		a.visitVarDeclStmt(param)
	}
	if f.ReturnType != nil {
		a.visitTypeSpecifier(f.ReturnType)
	}
	if f.CodeBlock != nil {
		a.visitCodeBlock(f.CodeBlock)
	}
}

func (a *Analyzer) visitVarDeclStmt(s *ast.VarDeclStmt) {
	if s == nil || a.seen(s) {
		return
	}
	s.SetReachable()
	if s.Type != nil {
		a.visitTypeSpecifier(s.Type)
	}
	for _, v := range s.Decls {
		a.visitVarDecl(v)
	}
}

func (a *Analyzer) visitVarDecl(v *ast.VarDecl) {
	if v == nil || a.seen(v) {
		return
	}
	v.SetReachable()
	if v.StructDeclRef != nil {
		a.visitStruct(v.StructDeclRef)
	}
	if v.Initializer != nil {
		a.visitExpr(v.Initializer)
	}
}

func (a *Analyzer) visitTypeSpecifier(t *ast.TypeSpecifier) {
	if t == nil || a.seen(t) {
		return
	}
	t.SetReachable()
	if t.StructDecl != nil {
		a.visitStruct(t.StructDecl)
	}
}

// visitStruct marks a struct and, per §4.2, all of its members and any base
// struct chain.
func (a *Analyzer) visitStruct(s *ast.StructDecl) {
	if s == nil || a.seen(s) {
		return
	}
	s.SetReachable()
	if s.BaseStructRef != nil {
		a.visitStruct(s.BaseStructRef)
	}
	for _, member := range s.VarMembers {
		a.visitVarDeclStmt(member)
	}
	for _, fn := range s.FuncMembers {
		a.visitFunction(fn)
	}
}

func (a *Analyzer) visitCodeBlock(b *ast.CodeBlock) {
	if b == nil || a.seen(b) {
		return
	}
	b.SetReachable()
	for _, s := range b.Stmts {
		a.visitStmt(s)
	}
}

func (a *Analyzer) visitStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	if a.seen(s) {
		return
	}
	s.Base().SetReachable()

	switch stmt := s.(type) {
	case *ast.CodeBlock:
		for _, inner := range stmt.Stmts {
			a.visitStmt(inner)
		}
	case *ast.CodeBlockStmt:
		a.visitCodeBlock(stmt.Body)
	case *ast.ForLoopStmt:
		a.visitStmt(stmt.Init)
		a.visitExpr(stmt.Condition)
		a.visitExpr(stmt.Iteration)
		a.visitStmt(stmt.Body)
	case *ast.WhileLoopStmt:
		a.visitExpr(stmt.Condition)
		a.visitStmt(stmt.Body)
	case *ast.DoWhileLoopStmt:
		a.visitStmt(stmt.Body)
		a.visitExpr(stmt.Condition)
	case *ast.IfStmt:
		a.visitExpr(stmt.Condition)
		a.visitStmt(stmt.Body)
		a.visitStmt(stmt.Else)
	case *ast.SwitchStmt:
		a.visitExpr(stmt.Selector)
		for _, c := range stmt.Cases {
			a.visitExpr(c.CaseExpr)
			for _, cs := range c.Stmts {
				a.visitStmt(cs)
			}
		}
	case *ast.ExprStmt:
		a.visitExpr(stmt.Expr)
	case *ast.ReturnStmt:
		a.visitExpr(stmt.Expr)
	case *ast.CtrlTransferStmt:
		// no children
	case *ast.VarDeclStmt:
		a.visitVarDeclStmt(stmt)
	case *ast.BufferDeclStmt:
		for _, d := range stmt.Decls {
			a.visitBuffer(d)
		}
	case *ast.SamplerDeclStmt:
		for _, d := range stmt.Decls {
			a.visitSampler(d)
		}
	case *ast.StructDeclStmt:
		a.visitStruct(stmt.StructDecl)
	case *ast.AliasDeclStmt:
		for _, d := range stmt.Decls {
			d.SetReachable()
		}
	case *ast.FunctionDecl:
		a.visitFunction(stmt)
	case *ast.UniformBufferDecl:
		a.visitUniformBuffer(stmt)
	}
}

func (a *Analyzer) visitBuffer(b *ast.BufferDecl) {
	if b == nil || a.seen(b) {
		return
	}
	b.SetReachable()
}

func (a *Analyzer) visitSampler(s *ast.SamplerDecl) {
	if s == nil || a.seen(s) {
		return
	}
	s.SetReachable()
}

func (a *Analyzer) visitUniformBuffer(u *ast.UniformBufferDecl) {
	if u == nil || a.seen(u) {
		return
	}
	u.SetReachable()
	for _, member := range u.VarMembers {
		a.visitVarDeclStmt(member)
	}
}

func (a *Analyzer) visitExpr(e ast.Expr) {
	if e == nil {
		return
	}
	if a.seen(e) {
		return
	}
	e.Base().SetReachable()

	switch expr := e.(type) {
	case *ast.ListExpr:
		a.visitExpr(expr.First)
		a.visitExpr(expr.Rest)
	case *ast.LiteralExpr:
		// leaf
	case *ast.TypeSpecifierExpr:
		a.visitTypeSpecifier(expr.TypeSpecifier)
	case *ast.TernaryExpr:
		a.visitExpr(expr.Cond)
		a.visitExpr(expr.Then)
		a.visitExpr(expr.Else)
	case *ast.BinaryExpr:
		a.visitExpr(expr.LHS)
		a.visitExpr(expr.RHS)
	case *ast.UnaryExpr:
		a.visitExpr(expr.Expr)
	case *ast.PostUnaryExpr:
		a.visitExpr(expr.Expr)
	case *ast.FunctionCallExpr:
		a.visitCall(expr.Call)
	case *ast.BracketExpr:
		a.visitExpr(expr.Expr)
	case *ast.SuffixExpr:
		a.visitExpr(expr.Expr)
		a.visitVarIdentSuffix(expr.Expr, expr.VarIdent)
	case *ast.ArrayAccessExpr:
		a.visitExpr(expr.Expr)
		for _, idx := range expr.ArrayIndices {
			a.visitExpr(idx)
		}
	case *ast.CastExpr:
		a.visitTypeSpecifier(expr.TypeSpecifier)
		a.visitExpr(expr.Expr)
	case *ast.VarAccessExpr:
		a.visitVarIdent(expr.VarIdent)
		a.visitExpr(expr.AssignExpr)
	case *ast.InitializerExpr:
		for _, sub := range expr.Exprs {
			a.visitExpr(sub)
		}
	}
}

// visitVarIdentSuffix marks the member a suffix expression names reachable
// on whatever struct the base expression's type resolves to.
func (a *Analyzer) visitVarIdentSuffix(base ast.Expr, suffix *ast.VarIdent) {
	if suffix == nil {
		return
	}
	d, err := base.GetTypeDenoter()
	if err != nil {
		return
	}
	if sk, ok := d.GetFully().Kind.(typedenoter.StructKind); ok {
		if sd, ok := sk.StructDecl.(*ast.StructDecl); ok {
			if member, owner := sd.Fetch(suffix.Ident); member != nil {
				a.visitVarDecl(member)
				a.visitStruct(owner)
			}
		}
	}
}

func (a *Analyzer) visitVarIdent(v *ast.VarIdent) {
	if v == nil || a.seen(v) {
		return
	}
	v.SetReachable()
	for _, idx := range v.ArrayIndices {
		a.visitExpr(idx)
	}
	if decl := v.FetchVarDecl(); decl != nil {
		a.visitVarDecl(decl)
	}
	if fn := v.FetchFunctionDecl(); fn != nil {
		a.visitFunction(fn)
	}
	if v.Next != nil {
		a.visitVarIdent(v.Next)
	}
}

// visitCall marks a call site reachable, recursing into a resolved
// user-function implementation or, for an intrinsic, registering its usage
// with the observed argument base types.
func (a *Analyzer) visitCall(c *ast.FunctionCall) {
	if c == nil || a.seen(c) {
		return
	}
	c.SetReachable()

	if c.PrefixExpr != nil {
		a.visitExpr(c.PrefixExpr)
	}
	for _, arg := range c.Args {
		a.visitExpr(arg)
	}

	if c.Intrinsic != ast.IntrinsicUndefined {
		a.program.RegisterIntrinsicUsage(ast.IntrinsicUsage{
			Intrinsic: c.Intrinsic,
			ArgTypes:  argBaseTypes(c.Args),
		})
		return
	}

	if c.FuncDeclRef != nil {
		a.visitFunction(c.FuncDeclRef)
	} else if _, isConstructor := c.ConstructorType(); !isConstructor {
		a.report(report.MissingReference(c.Area, "call to %q has no resolved function declaration", c.Ident))
	}
}

func argBaseTypes(args []ast.Expr) []typedenoter.DataType {
	types := make([]typedenoter.DataType, 0, len(args))
	for _, arg := range args {
		d, err := arg.GetTypeDenoter()
		if err != nil {
			types = append(types, typedenoter.Undefined)
			continue
		}
		if b, ok := d.GetFully().Kind.(typedenoter.BaseKind); ok {
			types = append(types, typedenoter.BaseDataType(b.DataType))
		} else {
			types = append(types, typedenoter.Undefined)
		}
	}
	return types
}
