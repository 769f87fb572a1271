package convert

import (
	"testing"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/ast/astutil"
	"github.com/gogpu/xsc/typedenoter"
)

func TestFlattenStructMembersBaseThenDerived(t *testing.T) {
	base := &ast.StructDecl{
		Decl: ast.Decl{Ident: "Base"},
		VarMembers: []*ast.VarDeclStmt{
			{Decls: []*ast.VarDecl{{Decl: ast.Decl{Ident: "position"}}}},
		},
	}
	derived := &ast.StructDecl{
		Decl:          ast.Decl{Ident: "Derived"},
		BaseStructRef: base,
		VarMembers: []*ast.VarDeclStmt{
			{Decls: []*ast.VarDecl{{Decl: ast.Decl{Ident: "color"}}}},
		},
	}

	members := FlattenStructMembers(derived)
	if len(members) != 2 {
		t.Fatalf("FlattenStructMembers = %d members, want 2", len(members))
	}
	if members[0].Ident != "position" || members[1].Ident != "color" {
		t.Errorf("FlattenStructMembers order = [%s, %s], want [position, color]", members[0].Ident, members[1].Ident)
	}
}

func TestFlattenStructMembersNil(t *testing.T) {
	if got := FlattenStructMembers(nil); got != nil {
		t.Errorf("FlattenStructMembers(nil) = %v, want nil", got)
	}
}

func TestConvertVertexMinimalMarksEntryPointBuildIn(t *testing.T) {
	fx, err := astutil.Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	c := New(ast.StageVertex, 330, nil)
	c.Convert(fx.Program)

	if !fx.Program.EntryPointRef.IsBuildIn() {
		t.Error("the promoted entry point should be marked build-in")
	}
}

func TestPromoteEntryPointScalarReturnBindsGLPosition(t *testing.T) {
	fx, err := astutil.Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	c := New(ast.StageVertex, 330, nil)
	bindings := c.PromoteEntryPoint(fx.Program, fx.Program.EntryPointRef)

	if bindings.SingleOutputVariable != "gl_Position" {
		t.Errorf("SingleOutputVariable = %q, want gl_Position", bindings.SingleOutputVariable)
	}
	if len(bindings.Outputs) != 0 {
		t.Errorf("Outputs = %v, want empty for a scalar-return entry point", bindings.Outputs)
	}
}

func TestPromoteEntryPointFragmentTargetBindsGeneratedGlobal(t *testing.T) {
	fx, err := astutil.Load("fragment_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	c := New(ast.StageFragment, 330, nil)
	bindings := c.PromoteEntryPoint(fx.Program, fx.Program.EntryPointRef)

	if bindings.SingleOutputVariable != "SV_Target" {
		t.Errorf("SingleOutputVariable = %q, want SV_Target", bindings.SingleOutputVariable)
	}
}

func TestRewriteReturnRewritesScalarReturnToAssignment(t *testing.T) {
	fx, err := astutil.Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	c := New(ast.StageVertex, 330, nil)
	c.PromoteEntryPoint(fx.Program, fx.Program.EntryPointRef)

	body := fx.Program.EntryPointRef.CodeBlock.Stmts
	if len(body) != 1 {
		t.Fatalf("entry point body has %d statements, want 1 (the rewritten return wrapper)", len(body))
	}
	wrapper, ok := body[0].(*ast.CodeBlockStmt)
	if !ok {
		t.Fatalf("rewritten return is a %T, want *ast.CodeBlockStmt", body[0])
	}
	if !wrapper.Body.IsBuildIn() {
		t.Error("the synthesized statement-packing block should be marked build-in")
	}
	if len(wrapper.Body.Stmts) != 2 {
		t.Fatalf("wrapped statements = %d, want 2 (assignment + bare return)", len(wrapper.Body.Stmts))
	}
	assign, ok := wrapper.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("first wrapped statement is a %T, want *ast.ExprStmt", wrapper.Body.Stmts[0])
	}
	access, ok := assign.Expr.(*ast.VarAccessExpr)
	if !ok || access.VarIdent.Ident != "gl_Position" {
		t.Errorf("rewritten assignment target = %v, want gl_Position", assign.Expr)
	}
	if _, ok := wrapper.Body.Stmts[1].(*ast.ReturnStmt); !ok {
		t.Errorf("second wrapped statement is a %T, want a bare *ast.ReturnStmt", wrapper.Body.Stmts[1])
	}
}

func TestRewriteMulProducesBracketedBinaryExpr(t *testing.T) {
	c := New(ast.StageVertex, 330, nil)
	a := &ast.LiteralExpr{DataType: typedenoter.Float4x4, Value: "A"}
	b := &ast.LiteralExpr{DataType: typedenoter.Float4, Value: "B"}
	call := &ast.FunctionCallExpr{Call: &ast.FunctionCall{Ident: "mul", Intrinsic: ast.IntrinsicMul, Args: []ast.Expr{a, b}}}

	rewritten := c.rewriteMul(call)
	outer, ok := rewritten.(*ast.BracketExpr)
	if !ok {
		t.Fatalf("rewriteMul result is a %T, want *ast.BracketExpr", rewritten)
	}
	bin, ok := outer.Expr.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.BinaryOpMul {
		t.Fatalf("inner expr is a %T (op %v), want *ast.BinaryExpr with BinaryOpMul", outer.Expr, bin)
	}
}

func TestRewriteRcpProducesDivision(t *testing.T) {
	c := New(ast.StageVertex, 330, nil)
	x := &ast.LiteralExpr{DataType: typedenoter.Float, Value: "2"}
	call := &ast.FunctionCallExpr{Call: &ast.FunctionCall{Ident: "rcp", Intrinsic: ast.IntrinsicRcp, Args: []ast.Expr{x}}}

	rewritten := c.rewriteRcp(call)
	outer, ok := rewritten.(*ast.BracketExpr)
	if !ok {
		t.Fatalf("rewriteRcp result is a %T, want *ast.BracketExpr", rewritten)
	}
	bin, ok := outer.Expr.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.BinaryOpDiv {
		t.Fatalf("inner expr is a %T (op %v), want *ast.BinaryExpr with BinaryOpDiv", outer.Expr, bin)
	}
	one, ok := bin.LHS.(*ast.FunctionCallExpr)
	if !ok || one.Call.Ident != "float" || len(one.Call.Args) != 1 {
		t.Fatalf("numerator = %v, want the constructor call float(1)", bin.LHS)
	}
	if lit, ok := one.Call.Args[0].(*ast.LiteralExpr); !ok || lit.Value != "1" {
		t.Errorf("constructor argument = %v, want literal 1", one.Call.Args[0])
	}
}

func TestPromoteEntryPointFlattensStructParameterAndReturn(t *testing.T) {
	fx, err := astutil.Load("vertex_struct_io")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	c := New(ast.StageVertex, 330, nil)
	bindings := c.PromoteEntryPoint(fx.Program, fx.Program.EntryPointRef)

	if len(bindings.Inputs) != 1 {
		t.Fatalf("Inputs = %d, want 1 (flattened VSInput.position)", len(bindings.Inputs))
	}
	if bindings.Inputs[0].VarDecl.Ident != "position" {
		t.Errorf("Inputs[0].VarDecl.Ident = %q, want position", bindings.Inputs[0].VarDecl.Ident)
	}

	if len(bindings.Outputs) != 2 {
		t.Fatalf("Outputs = %d, want 2 (flattened VSOutput members)", len(bindings.Outputs))
	}
	if bindings.Outputs[0].GLSLName != "gl_Position" {
		t.Errorf("Outputs[0].GLSLName = %q, want gl_Position", bindings.Outputs[0].GLSLName)
	}
	if bindings.Outputs[1].VarDecl.Ident != "color" {
		t.Errorf("Outputs[1].VarDecl.Ident = %q, want color", bindings.Outputs[1].VarDecl.Ident)
	}

	var vsInput, vsOutput *ast.StructDecl
	for _, s := range fx.Program.GlobalStmnts {
		sd, ok := s.(*ast.StructDeclStmt)
		if !ok {
			continue
		}
		switch sd.StructDecl.Ident {
		case "VSInput":
			vsInput = sd.StructDecl
		case "VSOutput":
			vsOutput = sd.StructDecl
		}
	}
	if vsInput == nil || !vsInput.IsShaderInput {
		t.Error("VSInput.IsShaderInput should be set by PromoteEntryPoint")
	}
	if vsOutput == nil || !vsOutput.IsShaderOutput {
		t.Error("VSOutput.IsShaderOutput should be set by PromoteEntryPoint")
	}
}

func TestRewriteClipRecordsHelperByArgType(t *testing.T) {
	c := New(ast.StageFragment, 330, nil)
	x := &ast.LiteralExpr{DataType: typedenoter.Float3, Value: "x"}
	call := &ast.FunctionCallExpr{Call: &ast.FunctionCall{Ident: "clip", Intrinsic: ast.IntrinsicClip, Args: []ast.Expr{x}}}

	c.rewriteClip(call)
	helpers := c.ClipHelpers()
	if len(helpers) != 1 || helpers[0].ArgType != typedenoter.Float3 {
		t.Errorf("ClipHelpers() = %v, want one entry for Float3", helpers)
	}
}

func TestRewriteTextureMethodDropsSamplerForSample(t *testing.T) {
	c := New(ast.StageFragment, 330, nil)
	tex := &ast.VarAccessExpr{VarIdent: &ast.VarIdent{Ident: "tex"}}
	samp := &ast.VarAccessExpr{VarIdent: &ast.VarIdent{Ident: "samp"}}
	uv := &ast.VarAccessExpr{VarIdent: &ast.VarIdent{Ident: "uv"}}
	call := &ast.FunctionCallExpr{Call: &ast.FunctionCall{
		Ident: "Sample", Intrinsic: ast.IntrinsicTextureSample,
		PrefixExpr: tex, Args: []ast.Expr{samp, uv},
	}}

	rewritten := c.rewriteTextureMethod(call)
	fc, ok := rewritten.(*ast.FunctionCallExpr)
	if !ok {
		t.Fatalf("rewriteTextureMethod result is a %T, want *ast.FunctionCallExpr", rewritten)
	}
	if fc.Call.Ident != "texture" {
		t.Errorf("Ident = %q, want texture", fc.Call.Ident)
	}
	if len(fc.Call.Args) != 2 {
		t.Fatalf("Args = %v, want [tex, uv] (sampler dropped)", fc.Call.Args)
	}
	if fc.Call.Args[0] != tex || fc.Call.Args[1] != uv {
		t.Error("rewritten args should be [tex, uv] with the sampler argument dropped")
	}
}

func TestRewriteInterlockedWithOriginalValue(t *testing.T) {
	c := New(ast.StageCompute, 430, nil)
	dst := &ast.LiteralExpr{DataType: typedenoter.Int, Value: "dst"}
	val := &ast.LiteralExpr{DataType: typedenoter.Int, Value: "1"}
	orig := &ast.VarAccessExpr{VarIdent: &ast.VarIdent{Ident: "orig"}}
	call := &ast.FunctionCallExpr{Call: &ast.FunctionCall{
		Ident: "InterlockedAdd", Intrinsic: ast.IntrinsicInterlockedAdd,
		Args: []ast.Expr{dst, val, orig},
	}}

	rewritten := c.rewriteInterlocked(call)
	assign, ok := rewritten.(*ast.VarAccessExpr)
	if !ok {
		t.Fatalf("rewriteInterlocked result is a %T, want *ast.VarAccessExpr", rewritten)
	}
	if assign.VarIdent.Ident != "orig" {
		t.Errorf("assignment target = %q, want orig", assign.VarIdent.Ident)
	}
	inner, ok := assign.AssignExpr.(*ast.FunctionCallExpr)
	if !ok || inner.Call.Ident != "atomicAdd" {
		t.Errorf("assigned expr = %v, want a call to atomicAdd", assign.AssignExpr)
	}
}

func TestDisableDeadNodesMarksStatementsAfterReturn(t *testing.T) {
	live := &ast.ExprStmt{}
	ret := &ast.ReturnStmt{}
	dead := &ast.ExprStmt{}
	fn := &ast.FunctionDecl{CodeBlock: &ast.CodeBlock{Stmts: []ast.Stmt{live, ret, dead}}}
	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{fn}

	c := New(ast.StageVertex, 330, nil)
	c.disableDeadNodes(program)

	if live.IsDeadCode() || ret.IsDeadCode() {
		t.Error("statements up to and including the return should not be marked dead")
	}
	if !dead.IsDeadCode() || !dead.DisableCodeGen() {
		t.Error("the statement following an unconditional return should be marked dead and disabled")
	}
}
