// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package astutil

import (
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/typedenoter"
)

func init() {
	Register("vertex_minimal", buildVertexMinimal)
	Register("fragment_minimal", buildFragmentMinimal)
	Register("compute_minimal", buildComputeMinimal)
	Register("vertex_struct_io", buildVertexStructIO)
}

func area(row int) ast.SourceArea { return ast.SourceArea{File: "fixture", Row: row} }

func typeSpec(dt typedenoter.DataType) *ast.TypeSpecifier {
	return &ast.TypeSpecifier{TypeDenoter: typedenoter.Base(dt)}
}

func literal(row int, dt typedenoter.DataType, value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{Node: ast.Node{Area: area(row)}, DataType: dt, Value: value}
}

func varAccess(row int, name string) *ast.VarAccessExpr {
	return &ast.VarAccessExpr{Node: ast.Node{Area: area(row)}, VarIdent: &ast.VarIdent{Node: ast.Node{Area: area(row)}, Ident: name}}
}

func call(row int, ident string, args ...ast.Expr) *ast.FunctionCallExpr {
	return &ast.FunctionCallExpr{Node: ast.Node{Area: area(row)}, Call: &ast.FunctionCall{Node: ast.Node{Area: area(row)}, Ident: ident, Args: args}}
}

// buildVertexMinimal builds:
//
//	float4 VertexMain(float3 coord : COORD) : SV_Position { return float4(coord, 1); }
func buildVertexMinimal() *Fixture {
	coord := &ast.VarDecl{
		Decl:        ast.Decl{Node: ast.Node{Area: area(1)}, Ident: "coord"},
		Type:        typeSpec(typedenoter.Float3),
		Semantic:    ast.Semantic{Name: "COORD"},
		HasSemantic: true,
	}
	param := &ast.VarDeclStmt{Node: ast.Node{Area: area(1)}, Type: coord.Type, Decls: []*ast.VarDecl{coord}}

	ret := &ast.ReturnStmt{
		Node:            ast.Node{Area: area(1)},
		Expr:            call(1, "float4", varAccess(1, "coord"), literal(1, typedenoter.Int, "1")),
		IsEndOfFunction: true,
	}

	fn := &ast.FunctionDecl{
		Node:        ast.Node{Area: area(1)},
		ReturnType:  typeSpec(typedenoter.Float4),
		Ident:       "VertexMain",
		Parameters:  []*ast.VarDeclStmt{param},
		Semantic:    ast.Semantic{Name: ast.SVPosition},
		HasSemantic: true,
		CodeBlock:   &ast.CodeBlock{Node: ast.Node{Area: area(1)}, Stmts: []ast.Stmt{ret}},
		IsEntryPoint: true,
	}

	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{fn}
	program.EntryPointRef = fn

	return &Fixture{Program: program, Stage: ast.StageVertex, Entry: "VertexMain"}
}

// buildFragmentMinimal builds:
//
//	float4 PS() : SV_Target { return float4(1); }
func buildFragmentMinimal() *Fixture {
	ret := &ast.ReturnStmt{
		Node:            ast.Node{Area: area(1)},
		Expr:            call(1, "float4", literal(1, typedenoter.Int, "1")),
		IsEndOfFunction: true,
	}
	fn := &ast.FunctionDecl{
		Node:         ast.Node{Area: area(1)},
		ReturnType:   typeSpec(typedenoter.Float4),
		Ident:        "PS",
		Semantic:     ast.Semantic{Name: ast.SVTarget},
		HasSemantic:  true,
		CodeBlock:    &ast.CodeBlock{Node: ast.Node{Area: area(1)}, Stmts: []ast.Stmt{ret}},
		IsEntryPoint: true,
	}

	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{fn}
	program.EntryPointRef = fn

	return &Fixture{Program: program, Stage: ast.StageFragment, Entry: "PS"}
}

// buildVertexStructIO builds:
//
//	struct VSInput { float3 position : POSITION; };
//	struct VSOutput { float4 clipPosition : SV_Position; float4 color : COLOR; };
//	VSOutput VSMain(VSInput input) { return input; }
//
// exercising struct flattening on both the parameter and the return side: a
// vertex-stage struct input must flatten to plain attributes (vertex has no
// `in` interface blocks) and its own StructDecl must be marked IsShaderInput;
// the struct return must flatten its members to generated/gl_* outputs and
// mark VSOutput's StructDecl IsShaderOutput.
func buildVertexStructIO() *Fixture {
	inPosition := &ast.VarDecl{
		Decl:        ast.Decl{Node: ast.Node{Area: area(1)}, Ident: "position"},
		Type:        typeSpec(typedenoter.Float3),
		Semantic:    ast.Semantic{Name: "POSITION"},
		HasSemantic: true,
	}
	vsInput := &ast.StructDecl{
		Decl:       ast.Decl{Node: ast.Node{Area: area(1)}, Ident: "VSInput"},
		VarMembers: []*ast.VarDeclStmt{{Node: ast.Node{Area: area(1)}, Decls: []*ast.VarDecl{inPosition}}},
	}

	outClipPosition := &ast.VarDecl{
		Decl:        ast.Decl{Node: ast.Node{Area: area(2)}, Ident: "clipPosition"},
		Type:        typeSpec(typedenoter.Float4),
		Semantic:    ast.Semantic{Name: ast.SVPosition},
		HasSemantic: true,
	}
	outColor := &ast.VarDecl{
		Decl:        ast.Decl{Node: ast.Node{Area: area(2)}, Ident: "color"},
		Type:        typeSpec(typedenoter.Float4),
		Semantic:    ast.Semantic{Name: "COLOR"},
		HasSemantic: true,
	}
	vsOutput := &ast.StructDecl{
		Decl: ast.Decl{Node: ast.Node{Area: area(2)}, Ident: "VSOutput"},
		VarMembers: []*ast.VarDeclStmt{
			{Node: ast.Node{Area: area(2)}, Decls: []*ast.VarDecl{outClipPosition}},
			{Node: ast.Node{Area: area(2)}, Decls: []*ast.VarDecl{outColor}},
		},
	}

	inputParam := &ast.VarDecl{
		Decl: ast.Decl{Node: ast.Node{Area: area(3)}, Ident: "input"},
		Type: &ast.TypeSpecifier{StructDecl: vsInput},
	}
	param := &ast.VarDeclStmt{Node: ast.Node{Area: area(3)}, Type: inputParam.Type, Decls: []*ast.VarDecl{inputParam}}

	ret := &ast.ReturnStmt{
		Node:            ast.Node{Area: area(3)},
		Expr:            varAccess(3, "input"),
		IsEndOfFunction: true,
	}

	fn := &ast.FunctionDecl{
		Node:         ast.Node{Area: area(3)},
		ReturnType:   &ast.TypeSpecifier{StructDecl: vsOutput},
		Ident:        "VSMain",
		Parameters:   []*ast.VarDeclStmt{param},
		CodeBlock:    &ast.CodeBlock{Node: ast.Node{Area: area(3)}, Stmts: []ast.Stmt{ret}},
		IsEntryPoint: true,
	}

	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{
		&ast.StructDeclStmt{Node: ast.Node{Area: area(1)}, StructDecl: vsInput},
		&ast.StructDeclStmt{Node: ast.Node{Area: area(2)}, StructDecl: vsOutput},
		fn,
	}
	program.EntryPointRef = fn

	return &Fixture{Program: program, Stage: ast.StageVertex, Entry: "VSMain"}
}

// buildComputeMinimal builds:
//
//	[numthreads(8,8,1)] void CSMain(uint3 id : SV_DispatchThreadID) { }
func buildComputeMinimal() *Fixture {
	id := &ast.VarDecl{
		Decl:        ast.Decl{Node: ast.Node{Area: area(1)}, Ident: "id"},
		Type:        typeSpec(typedenoter.UInt3),
		Semantic:    ast.Semantic{Name: ast.SVDispatchThreadID},
		HasSemantic: true,
	}
	param := &ast.VarDeclStmt{Node: ast.Node{Area: area(1)}, Type: id.Type, Decls: []*ast.VarDecl{id}}

	fn := &ast.FunctionDecl{
		Node:         ast.Node{Area: area(1)},
		ReturnType:   &ast.TypeSpecifier{TypeDenoter: typedenoter.Void()},
		Ident:        "CSMain",
		Parameters:   []*ast.VarDeclStmt{param},
		CodeBlock:    &ast.CodeBlock{Node: ast.Node{Area: area(1)}},
		IsEntryPoint: true,
	}

	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{fn}
	program.EntryPointRef = fn
	program.LayoutCompute = ast.LayoutCompute{NumThreads: [3]int{8, 8, 1}}

	return &Fixture{Program: program, Stage: ast.StageCompute, Entry: "CSMain"}
}
