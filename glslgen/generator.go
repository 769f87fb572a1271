// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/convert"
	"github.com/gogpu/xsc/report"
	"github.com/gogpu/xsc/typedenoter"
)

// noIOQualifier tells emitVarDecl to suppress any in/out/const qualifier
// inference from the VarDecl's own IsShaderInput/IsShaderOutput flags,
// because the caller already wrote that qualifier on an enclosing struct
// or interface-block header.
const noIOQualifier = "\x00"

// generator walks a converted Program and emits GLSL source text, following
// the eight-step emission order: banner, version, extensions, stage
// pre-header, entry-point layout, intrinsic helpers, fragment outputs, body.
type generator struct {
	w     *writer
	names *namer
	opts  Options
	stage ast.Stage
	sink  *report.Sink
}

// Generate emits program as one GLSL translation unit targeting stage, using
// bindings (the result of convert.PromoteEntryPoint for program's entry
// point, or nil if the program has none) and helpers (convert.ClipHelpers())
// to drive the entry-point pre-header and intrinsic-helper steps.
func Generate(program *ast.Program, stage ast.Stage, bindings *convert.EntryPointBindings, helpers []convert.ClipHelper, opts Options, sink *report.Sink) string {
	agent := newExtensionAgent(opts, sink)
	res := agent.resolve(program)

	g := &generator{w: newWriter(opts), names: newNamer(), opts: opts, stage: stage, sink: sink}
	g.reserveBuiltinNames()

	entryName := ""
	if program.EntryPointRef != nil {
		entryName = program.EntryPointRef.Ident
	}

	g.emitBanner(entryName)
	g.emitVersion(res.version)
	g.emitExtensions(res.extensions)
	g.emitStagePreHeader(program)
	g.emitEntryPointLayout(program, bindings)
	g.emitClipHelpers(helpers)
	g.emitFragOutputs(program, bindings)

	if g.opts.Formatting.Blanks {
		g.w.blank()
	}
	for _, s := range program.GlobalStmnts {
		g.emitGlobalStmt(s)
	}

	return g.w.String()
}

func (g *generator) reserveBuiltinNames() {
	for _, n := range []string{
		"gl_Position", "gl_PointSize", "gl_FragCoord", "gl_FragDepth", "gl_FrontFacing",
		"gl_VertexID", "gl_InstanceID", "gl_GlobalInvocationID", "gl_LocalInvocationID",
		"gl_WorkGroupID", "gl_LocalInvocationIndex", "gl_PrimitiveID", "gl_InvocationID",
		"gl_SampleID", "main",
	} {
		g.names.reserve(n)
	}
}

func (g *generator) emitBanner(entry string) {
	if !g.opts.Formatting.Commentaries {
		return
	}
	g.w.line("// GLSL %s \"%s\"", g.stage, entry)
	g.w.line("// generated by xsc, do not edit by hand")
	g.w.line("// %s", time.Now().UTC().Format(time.RFC3339))
}

func (g *generator) emitVersion(v Version) {
	g.w.line("#version %s", v.String())
}

func (g *generator) emitExtensions(exts []string) {
	for _, e := range exts {
		g.w.line("#extension %s : require", e)
	}
}

func (g *generator) emitStagePreHeader(program *ast.Program) {
	switch g.stage {
	case ast.StageFragment:
		if program.LayoutFragment.FragCoordUsed && program.LayoutFragment.PixelCenterInteger {
			g.w.line("layout(origin_upper_left, pixel_center_integer) in vec4 gl_FragCoord;")
		} else if program.LayoutFragment.FragCoordUsed {
			g.w.line("layout(origin_upper_left) in vec4 gl_FragCoord;")
		}
		if program.LayoutFragment.EarlyDepthStencil {
			g.w.line("layout(early_fragment_tests) in;")
		}
	case ast.StageCompute:
		nt := program.LayoutCompute.NumThreads
		g.w.line("layout(local_size_x=%d, local_size_y=%d, local_size_z=%d) in;", nt[0], nt[1], nt[2])
	}
}

// emitEntryPointLayout declares the `in`/`out` globals PromoteEntryPoint
// bound non-built-in semantics to; built-ins (gl_Position and friends) need
// no declaration.
func (g *generator) emitEntryPointLayout(program *ast.Program, bindings *convert.EntryPointBindings) {
	if bindings == nil {
		return
	}
	for _, in := range bindings.Inputs {
		if in.IsBuiltin || g.memberResolvesToInterfaceBlock(in.VarDecl) {
			continue
		}
		d, err := in.VarDecl.Type.DeriveTypeDenoter()
		if err != nil {
			g.report(report.MappingError(in.VarDecl.Area, "cannot resolve type of entry-point input %q: %v", in.VarDecl.Ident, err))
			continue
		}
		g.w.line("in %s %s;", g.typeName(d), in.GLSLName)
	}
	for _, out := range bindings.Outputs {
		if out.IsBuiltin || g.memberResolvesToInterfaceBlock(out.VarDecl) {
			continue
		}
		d, err := out.VarDecl.Type.DeriveTypeDenoter()
		if err != nil {
			g.report(report.MappingError(out.VarDecl.Area, "cannot resolve type of entry-point output %q: %v", out.VarDecl.Ident, err))
			continue
		}
		g.w.line("out %s %s;", g.typeName(d), out.GLSLName)
	}
	if bindings.SingleOutputVariable != "" && g.stage != ast.StageFragment && !strings.HasPrefix(bindings.SingleOutputVariable, "gl_") {
		// A fragment shader's bare-value return is handled by emitFragOutputs
		// instead, since it needs a location index, not a plain `out` global.
		// A "gl_"-prefixed name (e.g. SV_Position -> gl_Position) is already a
		// built-in and must never be redeclared.
		if program.EntryPointRef != nil {
			retType, err := program.EntryPointRef.ReturnType.DeriveTypeDenoter()
			if err == nil {
				g.w.line("out %s %s;", g.typeName(retType), bindings.SingleOutputVariable)
			}
		}
	}
}

// memberResolvesToInterfaceBlock reports whether v is a flattened struct
// member whose owning struct renders as a GLSL interface block rather than
// loose globals, so emitEntryPointLayout/emitFragOutputs must leave its
// declaration to emitInterfaceBlockOrFlattened instead of declaring it again.
func (g *generator) memberResolvesToInterfaceBlock(v *ast.VarDecl) bool {
	return v.StructDeclRef != nil && !mustResolveStruct(g.stage, v.StructDeclRef)
}

// emitClipHelpers emits the per-argument-type clip() free function, §4.4.3:
// GLSL has no clip() built-in, so one helper discards the fragment when any
// component of its argument is negative. Every helper is named plainly
// "clip", relying on GLSL overload resolution by parameter type to pick the
// right one at each call site, since rewriteClip leaves the call's
// identifier untouched.
func (g *generator) emitClipHelpers(helpers []convert.ClipHelper) {
	for _, h := range helpers {
		typeName := dataTypeToGLSL(h.ArgType)
		g.w.openScope(fmt.Sprintf("void clip(%s x)", typeName))
		if typedenoter.IsVectorType(h.ArgType) {
			g.w.line("if (any(lessThan(x, %s(0.0)))) discard;", typeName)
		} else {
			g.w.line("if (x < 0.0) discard;")
		}
		g.w.closeScope()
		if g.opts.Formatting.Blanks {
			g.w.blank()
		}
	}
}

// emitFragOutputs emits the fragment shader's `layout(location=N) out T name;`
// declarations for every SV_TargetN the entry point writes, covering both a
// struct return's flattened SV_TargetN members and a scalar/vector return
// bound directly through SingleOutputVariable.
func (g *generator) emitFragOutputs(program *ast.Program, bindings *convert.EntryPointBindings) {
	if g.stage != ast.StageFragment || bindings == nil {
		return
	}
	for _, out := range bindings.Outputs {
		if !strings.HasPrefix(strings.ToUpper(out.VarDecl.Semantic.Name), "SV_TARGET") {
			continue
		}
		if g.memberResolvesToInterfaceBlock(out.VarDecl) {
			continue
		}
		d, err := out.VarDecl.Type.DeriveTypeDenoter()
		if err != nil {
			continue
		}
		g.w.line("layout(location=%d) out %s %s;", out.VarDecl.Semantic.Index, g.typeName(d), out.GLSLName)
	}
	if bindings.SingleOutputVariable != "" && !strings.HasPrefix(bindings.SingleOutputVariable, "gl_") && program.EntryPointRef != nil {
		retType, err := program.EntryPointRef.ReturnType.DeriveTypeDenoter()
		if err == nil {
			g.w.line("layout(location=%d) out %s %s;", targetIndex(bindings.SingleOutputVariable), g.typeName(retType), bindings.SingleOutputVariable)
		}
	}
}

// targetIndex extracts the trailing numeric index from a generated
// "SV_Target"/"SV_TargetN" global name, the inverse of
// Converter.fragTargetGlobalName.
func targetIndex(name string) int {
	trimmed := strings.TrimPrefix(name, "SV_Target")
	if trimmed == "" {
		return 0
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}

func (g *generator) report(r *report.Report) {
	if g.sink != nil {
		g.sink.Add(r)
	}
}

// typeName resolves a Denoter to its GLSL spelling, handling every Kind
// variant the generator may encounter in a declaration position.
func (g *generator) typeName(d *typedenoter.Denoter) string {
	resolved := d.GetFully()
	switch k := resolved.Kind.(type) {
	case typedenoter.VoidKind:
		return "void"
	case typedenoter.BaseKind:
		return dataTypeToGLSL(k.DataType)
	case typedenoter.StructKind:
		return k.StructDecl.StructIdent()
	case typedenoter.SamplerKind:
		return samplerTypeToGLSL(k.SamplerType)
	case typedenoter.TextureKind:
		return textureTypeToGLSL(k.BufferType, false)
	case typedenoter.BufferKind:
		if k.Elem != nil {
			return g.typeName(k.Elem)
		}
		return "uint"
	case typedenoter.ArrayKind:
		return g.typeName(k.Base)
	default:
		return "float"
	}
}

// arraySuffix renders a Denoter's array dimensions as GLSL's trailing
// "[N][M]" syntax, or "" for a non-array type.
func arraySuffix(d *typedenoter.Denoter) string {
	arr, ok := d.GetFully().Kind.(typedenoter.ArrayKind)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, dim := range arr.Dims {
		if dim == 0 {
			b.WriteString("[]")
		} else {
			fmt.Fprintf(&b, "[%d]", dim)
		}
	}
	return b.String()
}

// --- global declarations -------------------------------------------------

func (g *generator) emitGlobalStmt(s ast.Stmt) {
	switch decl := s.(type) {
	case *ast.UniformBufferDecl:
		g.emitUniformBuffer(decl)
	case *ast.BufferDeclStmt:
		g.emitBufferDeclStmt(decl)
	case *ast.SamplerDeclStmt:
		g.emitSamplerDeclStmt(decl)
	case *ast.StructDeclStmt:
		g.emitStructDecl(decl.StructDecl)
	case *ast.AliasDeclStmt:
		// A type alias introduces no GLSL declaration of its own; every use
		// site already resolved to the aliased Denoter during conversion.
	case *ast.VarDeclStmt:
		g.emitVarDeclStmt(decl, "")
	case *ast.FunctionDecl:
		g.emitFunction(decl)
	}
	if g.opts.Formatting.Blanks {
		g.w.blank()
	}
}

func registerSlot(regs []ast.Register) (int, bool) {
	if len(regs) == 0 {
		return 0, false
	}
	return regs[0].Slot, true
}

func (g *generator) emitUniformBuffer(u *ast.UniformBufferDecl) {
	layout := "std140"
	if slot, ok := registerSlot(u.SlotRegisters); ok {
		layout += fmt.Sprintf(", binding = %d", slot)
	}
	g.w.openScope(fmt.Sprintf("layout(%s) uniform %s", layout, u.Ident))
	for _, member := range u.VarMembers {
		g.emitVarDeclStmt(member, "")
	}
	g.w.decIndent()
	g.w.line("};")
	g.w.incIndent()
}

func (g *generator) emitBufferDeclStmt(bd *ast.BufferDeclStmt) {
	for _, decl := range bd.Decls {
		d, err := decl.DeriveTypeDenoter()
		if err != nil {
			g.report(report.MappingError(decl.Area, "cannot resolve texture/buffer type for %q: %v", decl.Ident, err))
			continue
		}
		typeName := g.typeName(d)
		if slot, ok := registerSlot(decl.SlotRegisters); ok {
			g.w.line("layout(binding = %d) uniform %s %s%s;", slot, typeName, decl.Ident, arraySuffix(d))
		} else {
			g.w.line("uniform %s %s%s;", typeName, decl.Ident, arraySuffix(d))
		}
	}
}

// emitSamplerDeclStmt is a deliberate no-op: a bare HLSL SamplerState never
// reaches GLSL on its own, since rewriteTextureMethod folds every sampler
// use into the combined sampler* uniform its paired texture object declares.
func (g *generator) emitSamplerDeclStmt(_ *ast.SamplerDeclStmt) {}

func (g *generator) emitStructDecl(s *ast.StructDecl) {
	if s == nil || s.IsAnonymous() {
		return
	}
	switch {
	case s.IsShaderInput || s.IsShaderOutput:
		g.emitInterfaceBlockOrFlattened(s)
	default:
		g.w.openScope(fmt.Sprintf("struct %s", s.Ident))
		for _, member := range convert.FlattenStructMembers(s) {
			g.emitVarDecl(member, noIOQualifier)
		}
		g.w.decIndent()
		g.w.line("};")
		g.w.incIndent()
	}
}

// emitInterfaceBlockOrFlattened follows §4.5: a struct used as shader I/O
// either becomes an interface block (when this stage can express one for
// its direction) or has each of its non-system-value members flattened into
// a plain global; system-value members never get a declaration of their own
// since they resolved to a gl_* built-in during conversion. When this stage
// forces flattening, the members are already declared by
// emitEntryPointLayout/emitFragOutputs from the promoted bindings, so there
// is nothing left for the struct's own declaration to emit.
func (g *generator) emitInterfaceBlockOrFlattened(s *ast.StructDecl) {
	if mustResolveStruct(g.stage, s) {
		return
	}
	members := convert.FlattenStructMembers(s)
	prefix := "in"
	if s.IsShaderOutput {
		prefix = "out"
	}
	g.w.openScope(fmt.Sprintf("%s %s%s", prefix, prefix, s.Ident))
	for _, member := range members {
		if member.HasSemantic && member.Semantic.IsSystemValue() {
			continue
		}
		g.emitVarDecl(member, noIOQualifier)
	}
	g.w.decIndent()
	alias := s.AliasName
	if alias == "" {
		alias = strings.ToLower(s.Ident)
	}
	g.w.line("} %s;", alias)
	g.w.incIndent()
}

// mustResolveStruct reports whether stage cannot legally express an
// interface block for a struct in the given I/O direction: a vertex
// shader has no `in` interface blocks (its inputs are plain attributes) and
// a fragment shader has no `out` interface blocks (its outputs are plain
// draw-buffer globals), and tessellation/geometry stages that pass whole
// patches/primitives may not without block arrays this compiler does not
// model. Falls back to flattened globals in each case. Conservatively false
// (interface block allowed) outside those cases.
func mustResolveStruct(stage ast.Stage, s *ast.StructDecl) bool {
	switch stage {
	case ast.StageVertex:
		return s.IsShaderInput
	case ast.StageFragment:
		return s.IsShaderOutput
	case ast.StageTessControl, ast.StageTessEvaluation, ast.StageGeometry:
		return true
	default:
		return false
	}
}

func (g *generator) emitVarDeclStmt(stmt *ast.VarDeclStmt, prefix string) {
	for _, decl := range stmt.Decls {
		g.emitVarDecl(decl, prefix)
	}
}

func (g *generator) emitVarDecl(v *ast.VarDecl, explicitPrefix string) {
	d, err := v.Type.DeriveTypeDenoter()
	if err != nil {
		g.report(report.MappingError(v.Area, "cannot resolve type of %q: %v", v.Ident, err))
		return
	}

	var quals []string
	switch explicitPrefix {
	case noIOQualifier:
		// Caller has already emitted the in/out qualifier at the enclosing
		// interface-block or struct level; per-member qualifiers would be
		// both redundant and illegal GLSL.
	case "":
		switch {
		case v.IsShaderInput:
			quals = append(quals, "in")
		case v.IsShaderOutput:
			quals = append(quals, "out")
		}
	default:
		quals = append(quals, explicitPrefix)
	}
	if v.Type.IsConst() {
		quals = append(quals, "const")
	}
	quals = append(quals, interpQualifiers(v.Type)...)

	name := v.Ident
	prefix := strings.Join(quals, " ")
	if prefix != "" {
		prefix += " "
	}

	arrayDimSuffix := ""
	for _, dim := range v.ArrayDims {
		if dim.HasDynamicSize() {
			arrayDimSuffix += "[]"
		} else {
			arrayDimSuffix += fmt.Sprintf("[%d]", dim.Size)
		}
	}

	if v.Initializer != nil {
		g.w.writeIndent()
		g.w.raw(fmt.Sprintf("%s%s %s%s = ", prefix, g.typeName(d), name, arrayDimSuffix))
		g.emitExpr(v.Initializer)
		g.w.raw(";\n")
		return
	}
	g.w.line("%s%s %s%s;", prefix, g.typeName(d), name, arrayDimSuffix)
}

func interpQualifiers(t *ast.TypeSpecifier) []string {
	var out []string
	for m := range t.InterpModifiers {
		switch m {
		case ast.InterpModifierCentroid:
			out = append(out, "centroid")
		case ast.InterpModifierNoInterpolation:
			out = append(out, "flat")
		case ast.InterpModifierNoPerspective:
			out = append(out, "noperspective")
		case ast.InterpModifierSample:
			out = append(out, "sample")
		}
	}
	return out
}

// --- functions -------------------------------------------------------------

func (g *generator) emitFunction(fn *ast.FunctionDecl) {
	if fn.IsEntryPoint {
		g.emitEntryPointFunction(fn)
		return
	}

	retType := "void"
	if fn.ReturnType != nil {
		if d, err := fn.ReturnType.DeriveTypeDenoter(); err == nil {
			retType = g.typeName(d)
		}
	}

	var params []string
	for _, p := range fn.Parameters {
		for _, v := range p.Decls {
			d, err := v.Type.DeriveTypeDenoter()
			if err != nil {
				continue
			}
			q := ""
			if v.Type.IsConstOrUniform() {
				q = "const "
			}
			params = append(params, fmt.Sprintf("%s%s %s", q, g.typeName(d), v.Ident))
		}
	}

	header := fmt.Sprintf("%s %s(%s)", retType, fn.Ident, strings.Join(params, ", "))
	if fn.IsForwardDecl() {
		g.w.line("%s;", header)
		return
	}
	g.w.openScope(header)
	g.emitBlockStmts(fn.CodeBlock.Stmts)
	g.w.closeScope()
}

func (g *generator) emitEntryPointFunction(fn *ast.FunctionDecl) {
	g.w.openScope("void main()")
	if fn.CodeBlock != nil {
		g.emitBlockStmts(fn.CodeBlock.Stmts)
	}
	g.w.closeScope()
}

// --- statements --------------------------------------------------------

func (g *generator) emitBlockStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		if s.Base().DisableCodeGen() {
			continue
		}
		g.emitStmt(s)
	}
}

func (g *generator) emitStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.NullStmt:
		g.w.line(";")
	case *ast.CodeBlock:
		g.w.openScope("")
		g.emitBlockStmts(stmt.Stmts)
		g.w.closeScope()
	case *ast.CodeBlockStmt:
		if stmt.Body.IsBuildIn() {
			// A converter-synthesized statement-packing wrapper (e.g. the
			// multi-assignment return rewrite in PromoteEntryPoint), not an
			// explicit nested scope from the source: splice its statements
			// in directly rather than introducing a spurious "{ }".
			g.emitBlockStmts(stmt.Body.Stmts)
			return
		}
		g.w.openScope("")
		g.emitBlockStmts(stmt.Body.Stmts)
		g.w.closeScope()
	case *ast.ForLoopStmt:
		g.emitForLoop(stmt)
	case *ast.WhileLoopStmt:
		g.w.writeIndent()
		g.w.raw("while (")
		g.emitExpr(stmt.Condition)
		g.w.raw(")")
		g.emitLoopBody(stmt.Body)
	case *ast.DoWhileLoopStmt:
		g.w.line("do")
		g.emitLoopBody(stmt.Body)
		g.w.writeIndent()
		g.w.raw("while (")
		g.emitExpr(stmt.Condition)
		g.w.raw(");\n")
	case *ast.IfStmt:
		g.emitIf(stmt)
	case *ast.SwitchStmt:
		g.emitSwitch(stmt)
	case *ast.ExprStmt:
		g.w.writeIndent()
		g.emitExpr(stmt.Expr)
		g.w.raw(";\n")
	case *ast.ReturnStmt:
		if stmt.Expr == nil {
			g.w.line("return;")
			return
		}
		g.w.writeIndent()
		g.w.raw("return ")
		g.emitExpr(stmt.Expr)
		g.w.raw(";\n")
	case *ast.CtrlTransferStmt:
		switch stmt.Transfer {
		case ast.CtrlTransferBreak:
			g.w.line("break;")
		case ast.CtrlTransferContinue:
			g.w.line("continue;")
		case ast.CtrlTransferDiscard:
			g.w.line("discard;")
		}
	case *ast.VarDeclStmt:
		g.emitVarDeclStmt(stmt, "")
	case *ast.StructDeclStmt:
		g.emitStructDecl(stmt.StructDecl)
	}
}

// emitLoopBody renders a loop/if body following the statement-form header
// it was just appended to with a space: "{ ... }" on the following lines for
// a brace body, or the single statement indented on its own line otherwise.
func (g *generator) emitLoopBody(body ast.Stmt) {
	switch b := body.(type) {
	case *ast.CodeBlockStmt:
		g.w.raw(" {\n")
		g.w.incIndent()
		g.emitBlockStmts(b.Body.Stmts)
		g.w.decIndent()
		g.w.line("}")
	default:
		g.w.raw("\n")
		g.w.incIndent()
		g.emitStmt(body)
		g.w.decIndent()
	}
}

func (g *generator) emitForLoop(stmt *ast.ForLoopStmt) {
	g.w.writeIndent()
	g.w.raw("for (")
	if stmt.Init != nil {
		g.emitInlineStmt(stmt.Init)
	}
	g.w.raw("; ")
	if stmt.Condition != nil {
		g.emitExpr(stmt.Condition)
	}
	g.w.raw("; ")
	if stmt.Iteration != nil {
		g.emitExpr(stmt.Iteration)
	}
	g.w.raw(")")
	g.emitLoopBody(stmt.Body)
}

// emitInlineStmt renders a for-loop's init clause without its own
// terminating newline, since the for-header composes it inline.
func (g *generator) emitInlineStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.VarDeclStmt:
		for i, decl := range stmt.Decls {
			if i > 0 {
				g.w.raw(", ")
			}
			d, err := decl.Type.DeriveTypeDenoter()
			if err != nil {
				continue
			}
			if i == 0 {
				g.w.raw(g.typeName(d) + " ")
			}
			g.w.raw(decl.Ident)
			if decl.Initializer != nil {
				g.w.raw(" = ")
				g.emitExpr(decl.Initializer)
			}
		}
	case *ast.ExprStmt:
		g.emitExpr(stmt.Expr)
	}
}

func (g *generator) emitIf(stmt *ast.IfStmt) {
	g.w.writeIndent()
	g.w.raw("if (")
	g.emitExpr(stmt.Condition)
	g.w.raw(")")
	g.emitLoopBody(stmt.Body)
	if stmt.Else != nil {
		g.w.writeIndent()
		g.w.raw("else")
		if nested, ok := stmt.Else.(*ast.IfStmt); ok {
			g.w.raw(" ")
			g.emitIfInline(nested)
			return
		}
		g.emitLoopBody(stmt.Else)
	}
}

func (g *generator) emitIfInline(stmt *ast.IfStmt) {
	g.w.raw("if (")
	g.emitExpr(stmt.Condition)
	g.w.raw(")")
	g.emitLoopBody(stmt.Body)
	if stmt.Else != nil {
		g.w.writeIndent()
		g.w.raw("else")
		if nested, ok := stmt.Else.(*ast.IfStmt); ok {
			g.w.raw(" ")
			g.emitIfInline(nested)
			return
		}
		g.emitLoopBody(stmt.Else)
	}
}

func (g *generator) emitSwitch(stmt *ast.SwitchStmt) {
	g.w.writeIndent()
	g.w.raw("switch (")
	g.emitExpr(stmt.Selector)
	g.w.raw(") {\n")
	g.w.incIndent()
	for _, c := range stmt.Cases {
		if c.CaseExpr == nil {
			g.w.line("default:")
		} else {
			g.w.writeIndent()
			g.w.raw("case ")
			g.emitExpr(c.CaseExpr)
			g.w.raw(":\n")
		}
		g.w.incIndent()
		g.emitBlockStmts(c.Stmts)
		g.w.decIndent()
	}
	g.w.decIndent()
	g.w.line("}")
}

// --- expressions ---------------------------------------------------------

func (g *generator) emitExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.NullExpr:
	case *ast.ListExpr:
		g.emitExpr(expr.First)
		g.w.raw(", ")
		g.emitExpr(expr.Rest)
	case *ast.LiteralExpr:
		g.w.raw(expr.Value)
	case *ast.TypeSpecifierExpr:
		if d, err := expr.TypeSpecifier.DeriveTypeDenoter(); err == nil {
			g.w.raw(g.typeName(d))
		}
	case *ast.TernaryExpr:
		g.emitExpr(expr.Cond)
		g.w.raw(" ? ")
		g.emitExpr(expr.Then)
		g.w.raw(" : ")
		g.emitExpr(expr.Else)
	case *ast.BinaryExpr:
		g.emitExpr(expr.LHS)
		g.w.raw(" " + expr.Op.String() + " ")
		g.emitExpr(expr.RHS)
	case *ast.UnaryExpr:
		g.w.raw(expr.Op.String())
		g.emitExpr(expr.Expr)
	case *ast.PostUnaryExpr:
		g.emitExpr(expr.Expr)
		g.w.raw(expr.Op.String())
	case *ast.FunctionCallExpr:
		g.emitCall(expr.Call)
	case *ast.BracketExpr:
		g.w.raw("(")
		g.emitExpr(expr.Expr)
		g.w.raw(")")
	case *ast.SuffixExpr:
		g.emitExpr(expr.Expr)
		g.w.raw("." + expr.VarIdent.Ident)
	case *ast.ArrayAccessExpr:
		g.emitExpr(expr.Expr)
		for _, idx := range expr.ArrayIndices {
			g.w.raw("[")
			g.emitExpr(idx)
			g.w.raw("]")
		}
	case *ast.CastExpr:
		if d, err := expr.TypeSpecifier.DeriveTypeDenoter(); err == nil {
			g.w.raw(g.typeName(d) + "(")
			g.emitExpr(expr.Expr)
			g.w.raw(")")
		}
	case *ast.VarAccessExpr:
		g.emitVarIdent(expr.VarIdent)
		if expr.AssignOp != ast.AssignOpUndefined {
			g.w.raw(" " + expr.AssignOp.String() + " ")
			g.emitExpr(expr.AssignExpr)
		}
	case *ast.InitializerExpr:
		g.w.raw("{ ")
		for i, sub := range expr.Exprs {
			if i > 0 {
				g.w.raw(", ")
			}
			g.emitExpr(sub)
		}
		g.w.raw(" }")
	}
}

func (g *generator) emitVarIdent(v *ast.VarIdent) {
	g.w.raw(v.Ident)
	for _, idx := range v.ArrayIndices {
		g.w.raw("[")
		g.emitExpr(idx)
		g.w.raw("]")
	}
	if v.Next != nil {
		g.w.raw(".")
		g.emitVarIdent(v.Next)
	}
}

func (g *generator) emitCall(call *ast.FunctionCall) {
	ident := call.Ident
	if dt, ok := call.ConstructorType(); ok {
		ident = dataTypeToGLSL(dt)
	}
	if call.PrefixExpr != nil {
		g.emitExpr(call.PrefixExpr)
		g.w.raw("." + ident + "(")
	} else {
		g.w.raw(ident + "(")
	}
	for i, arg := range call.Args {
		if i > 0 {
			g.w.raw(", ")
		}
		g.emitExpr(arg)
	}
	g.w.raw(")")
}
