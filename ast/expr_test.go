package ast

import (
	"testing"

	"github.com/gogpu/xsc/typedenoter"
)

func floatLit(v string) *LiteralExpr {
	return &LiteralExpr{DataType: typedenoter.Float, Value: v}
}

func TestLiteralExprGetTypeDenoter(t *testing.T) {
	lit := floatLit("1.0")
	d, err := lit.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	if !d.IsBase() {
		t.Fatal("literal type denoter should be Base")
	}

	null := &LiteralExpr{DataType: typedenoter.Undefined}
	if !null.IsNull() {
		t.Error("a literal with Undefined DataType should be IsNull")
	}
	d, err = null.GetTypeDenoter()
	if err != nil || !d.IsVoid() {
		t.Errorf("null literal GetTypeDenoter = %v, %v; want Void, nil", d, err)
	}
}

func TestBinaryExprGetTypeDenoterBooleanOp(t *testing.T) {
	e := &BinaryExpr{LHS: floatLit("1"), Op: BinaryOpLess, RHS: floatLit("2")}
	d, err := e.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	b, ok := d.Kind.(typedenoter.BaseKind)
	if !ok || b.DataType != typedenoter.Bool {
		t.Errorf("comparison expr type = %v, want Bool", d.Kind)
	}
}

func TestBinaryExprGetTypeDenoterVectorBooleanOp(t *testing.T) {
	vecLit := &LiteralExpr{DataType: typedenoter.Float3, Value: "v"}
	e := &BinaryExpr{LHS: vecLit, Op: BinaryOpEqual, RHS: vecLit}
	d, err := e.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	b, ok := d.Kind.(typedenoter.BaseKind)
	if !ok || b.DataType != typedenoter.Bool3 {
		t.Errorf("vector comparison expr type = %v, want Bool3", d.Kind)
	}
}

func TestBinaryExprGetTypeDenoterArithmeticOp(t *testing.T) {
	e := &BinaryExpr{LHS: floatLit("1"), Op: BinaryOpAdd, RHS: floatLit("2")}
	d, err := e.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	b, ok := d.Kind.(typedenoter.BaseKind)
	if !ok || b.DataType != typedenoter.Float {
		t.Errorf("arithmetic expr type = %v, want Float", d.Kind)
	}
}

func TestBinaryOpClassifiers(t *testing.T) {
	if !BinaryOpLogicalAnd.IsLogicalOp() || !BinaryOpLogicalAnd.IsBooleanOp() {
		t.Error("&& should be a logical and boolean op")
	}
	if !BinaryOpLess.IsCompareOp() || !BinaryOpLess.IsBooleanOp() {
		t.Error("< should be a compare and boolean op")
	}
	if !BinaryOpOr.IsBitwiseOp() {
		t.Error("| should be a bitwise op")
	}
	if BinaryOpAdd.IsBooleanOp() || BinaryOpAdd.IsBitwiseOp() {
		t.Error("+ should be neither boolean nor bitwise")
	}
	if got := BinaryOpMul.String(); got != "*" {
		t.Errorf("BinaryOpMul.String() = %q, want *", got)
	}
}

func TestUnaryOpClassifiers(t *testing.T) {
	if !UnaryOpInc.IsLValueOp() || !UnaryOpDec.IsLValueOp() {
		t.Error("++ and -- should be lvalue ops")
	}
	if UnaryOpNegate.IsLValueOp() {
		t.Error("unary minus should not be an lvalue op")
	}
	if got := UnaryOpNegate.String(); got != "-" {
		t.Errorf("UnaryOpNegate.String() = %q, want -", got)
	}
}

func TestAssignOpToBinaryOp(t *testing.T) {
	if AssignOpAdd.ToBinaryOp() != BinaryOpAdd {
		t.Error("AssignOpAdd should desugar to BinaryOpAdd")
	}
	if AssignOpSet.ToBinaryOp() != BinaryOpUndefined {
		t.Error("a plain '=' should desugar to BinaryOpUndefined")
	}
	if !AssignOpXor.IsBitwiseOp() {
		t.Error("^= should be a bitwise compound assignment")
	}
}

func TestFunctionCallConstructorType(t *testing.T) {
	ctor := &FunctionCall{Ident: "float4"}
	dt, ok := ctor.ConstructorType()
	if !ok || dt != typedenoter.Float4 {
		t.Errorf("ConstructorType() for float4 = %v, %v, want Float4, true", dt, ok)
	}

	ordinary := &FunctionCall{Ident: "ComputeLighting"}
	if _, ok := ordinary.ConstructorType(); ok {
		t.Error("an ordinary function name should not resolve as a constructor")
	}
}

func TestFunctionCallExprGetTypeDenoterConstructor(t *testing.T) {
	call := &FunctionCallExpr{Call: &FunctionCall{Ident: "float3", Args: []Expr{floatLit("1"), floatLit("2"), floatLit("3")}}}
	d, err := call.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	b, ok := d.Kind.(typedenoter.BaseKind)
	if !ok || b.DataType != typedenoter.Float3 {
		t.Errorf("constructor call type = %v, want Float3", d.Kind)
	}
}

func TestFunctionCallExprGetTypeDenoterUnresolved(t *testing.T) {
	call := &FunctionCallExpr{Call: &FunctionCall{Ident: "SomeHelper"}}
	if _, err := call.GetTypeDenoter(); err == nil {
		t.Error("an unresolved, non-constructor call should fail to derive a type")
	}
}

func TestFunctionCallExprGetTypeDenoterResolvedFunction(t *testing.T) {
	fn := &FunctionDecl{
		Ident:      "ComputeLighting",
		ReturnType: &TypeSpecifier{TypeDenoter: typedenoter.Base(typedenoter.Float4)},
	}
	call := &FunctionCallExpr{Call: &FunctionCall{Ident: "ComputeLighting", FuncDeclRef: fn}}
	d, err := call.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	if b, ok := d.Kind.(typedenoter.BaseKind); !ok || b.DataType != typedenoter.Float4 {
		t.Errorf("resolved call type = %v, want Float4", d.Kind)
	}
}

func TestSuffixExprGetTypeDenoter(t *testing.T) {
	vec := &LiteralExpr{DataType: typedenoter.Float4, Value: "v"}
	suffix := &SuffixExpr{Expr: vec, VarIdent: &VarIdent{Ident: "xyz"}}
	d, err := suffix.GetTypeDenoter()
	if err != nil {
		t.Fatalf("GetTypeDenoter error: %v", err)
	}
	if b, ok := d.Kind.(typedenoter.BaseKind); !ok || b.DataType != typedenoter.Float3 {
		t.Errorf("swizzle .xyz on a Float4 = %v, want Float3", d.Kind)
	}
}

func TestInitializerExprNumElements(t *testing.T) {
	init := &InitializerExpr{Exprs: []Expr{
		floatLit("1"),
		&InitializerExpr{Exprs: []Expr{floatLit("2"), floatLit("3")}},
		floatLit("4"),
	}}
	if got := init.NumElements(); got != 4 {
		t.Errorf("NumElements() = %d, want 4", got)
	}
}
