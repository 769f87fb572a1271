package ast

import (
	"fmt"

	"github.com/gogpu/xsc/typedenoter"
)

// Expr is the sum type of expression nodes. Every concrete expression type
// implements it via a marker method and exposes its (possibly cached) type
// denoter through GetTypeDenoter.
type Expr interface {
	exprKind()
	Base() *Node
	GetTypeDenoter() (*typedenoter.Denoter, error)
	// FetchVarIdent returns the VarIdent this expression ultimately names,
	// if any (a plain variable access, or one wrapped in parens/a suffix).
	FetchVarIdent() *VarIdent
}

// baseFetchVarIdent is the default FetchVarIdent for expression kinds that
// never name a variable directly (literals, casts, calls, ...).
func baseFetchVarIdent() *VarIdent { return nil }

// NullExpr stands in for an omitted expression, e.g. a dynamically-sized
// array dimension's missing extent.
type NullExpr struct{ Node }

func (*NullExpr) exprKind()      {}
func (e *NullExpr) Base() *Node   { return &e.Node }
func (e *NullExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *NullExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return typedenoter.Void(), nil
}

// ListExpr is a comma expression: "a, b".
type ListExpr struct {
	Node
	TypeCache
	First Expr
	Rest  Expr
}

func (*ListExpr) exprKind()      {}
func (e *ListExpr) Base() *Node   { return &e.Node }
func (e *ListExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *ListExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		return e.Rest.GetTypeDenoter()
	})
}

// LiteralExpr is a scalar or string literal.
type LiteralExpr struct {
	Node
	TypeCache
	DataType typedenoter.DataType // Undefined for a NULL literal
	Value    string
}

func (*LiteralExpr) exprKind()      {}
func (e *LiteralExpr) Base() *Node   { return &e.Node }
func (e *LiteralExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *LiteralExpr) IsNull() bool  { return e.DataType == typedenoter.Undefined }
func (e *LiteralExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		if e.IsNull() {
			return typedenoter.Void(), nil
		}
		return typedenoter.Base(e.DataType), nil
	})
}

// TypeSpecifierExpr wraps a bare type name used where an expression is
// grammatically expected, e.g. the left operand of a C-style cast.
type TypeSpecifierExpr struct {
	Node
	TypeSpecifier *TypeSpecifier
}

func (*TypeSpecifierExpr) exprKind()      {}
func (e *TypeSpecifierExpr) Base() *Node   { return &e.Node }
func (e *TypeSpecifierExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *TypeSpecifierExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeSpecifier.DeriveTypeDenoter()
}

// TernaryExpr is "cond ? then : else".
type TernaryExpr struct {
	Node
	TypeCache
	Cond Expr
	Then Expr
	Else Expr
}

func (*TernaryExpr) exprKind()      {}
func (e *TernaryExpr) Base() *Node   { return &e.Node }
func (e *TernaryExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }

// IsVectorCondition reports whether the condition operand is a vector type,
// in which case the ternary applies component-wise rather than selecting a
// whole operand.
func (e *TernaryExpr) IsVectorCondition() bool {
	d, err := e.Cond.GetTypeDenoter()
	if err != nil {
		return false
	}
	b, ok := d.GetFully().Kind.(typedenoter.BaseKind)
	return ok && typedenoter.IsVectorType(b.DataType)
}

func (e *TernaryExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		return e.Then.GetTypeDenoter()
	})
}

// BinaryOp enumerates HLSL's binary operators.
type BinaryOp int

const (
	BinaryOpUndefined BinaryOp = iota
	BinaryOpLogicalAnd
	BinaryOpLogicalOr
	BinaryOpOr
	BinaryOpXor
	BinaryOpAnd
	BinaryOpLShift
	BinaryOpRShift
	BinaryOpAdd
	BinaryOpSub
	BinaryOpMul
	BinaryOpDiv
	BinaryOpMod
	BinaryOpEqual
	BinaryOpNotEqual
	BinaryOpLess
	BinaryOpGreater
	BinaryOpLessEqual
	BinaryOpGreaterEqual
)

var binaryOpSymbols = map[BinaryOp]string{
	BinaryOpLogicalAnd: "&&", BinaryOpLogicalOr: "||",
	BinaryOpOr: "|", BinaryOpXor: "^", BinaryOpAnd: "&",
	BinaryOpLShift: "<<", BinaryOpRShift: ">>",
	BinaryOpAdd: "+", BinaryOpSub: "-", BinaryOpMul: "*", BinaryOpDiv: "/", BinaryOpMod: "%",
	BinaryOpEqual: "==", BinaryOpNotEqual: "!=",
	BinaryOpLess: "<", BinaryOpGreater: ">", BinaryOpLessEqual: "<=", BinaryOpGreaterEqual: ">=",
}

// String returns the operator's HLSL/GLSL-shared spelling.
func (o BinaryOp) String() string {
	if s, ok := binaryOpSymbols[o]; ok {
		return s
	}
	return "<undefined>"
}

// IsLogicalOp reports whether o is "&&" or "||".
func (o BinaryOp) IsLogicalOp() bool { return o == BinaryOpLogicalAnd || o == BinaryOpLogicalOr }

// IsBitwiseOp reports whether o is one of the bitwise operators "|","^","&","<<",">>".
func (o BinaryOp) IsBitwiseOp() bool { return o >= BinaryOpOr && o <= BinaryOpRShift }

// IsCompareOp reports whether o is one of the six relational/equality operators.
func (o BinaryOp) IsCompareOp() bool { return o >= BinaryOpEqual && o <= BinaryOpGreaterEqual }

// IsBooleanOp reports whether o always yields a boolean (or boolean-vector) result.
func (o BinaryOp) IsBooleanOp() bool { return o.IsLogicalOp() || o.IsCompareOp() }

// BinaryExpr is "lhs op rhs".
type BinaryExpr struct {
	Node
	TypeCache
	LHS Expr
	Op  BinaryOp
	RHS Expr
}

func (*BinaryExpr) exprKind()      {}
func (e *BinaryExpr) Base() *Node   { return &e.Node }
func (e *BinaryExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *BinaryExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		if e.Op.IsBooleanOp() {
			lhs, err := e.LHS.GetTypeDenoter()
			if err != nil {
				return nil, err
			}
			if b, ok := lhs.GetFully().Kind.(typedenoter.BaseKind); ok && typedenoter.IsVectorType(b.DataType) {
				dim := typedenoter.VectorTypeDim(b.DataType)
				return typedenoter.Base(typedenoter.VectorDataType(typedenoter.Bool, dim)), nil
			}
			return typedenoter.Base(typedenoter.Bool), nil
		}
		return e.LHS.GetTypeDenoter()
	})
}

// UnaryOp enumerates HLSL's prefix unary operators.
type UnaryOp int

const (
	UnaryOpUndefined UnaryOp = iota
	UnaryOpLogicalNot
	UnaryOpNot
	UnaryOpNop
	UnaryOpNegate
	UnaryOpInc
	UnaryOpDec
)

var unaryOpSymbols = map[UnaryOp]string{
	UnaryOpLogicalNot: "!", UnaryOpNot: "~", UnaryOpNop: "+", UnaryOpNegate: "-",
	UnaryOpInc: "++", UnaryOpDec: "--",
}

// String returns the operator's HLSL/GLSL-shared spelling.
func (o UnaryOp) String() string {
	if s, ok := unaryOpSymbols[o]; ok {
		return s
	}
	return "<undefined>"
}

// IsLValueOp reports whether o requires an assignable operand ("++" or "--").
func (o UnaryOp) IsLValueOp() bool { return o == UnaryOpInc || o == UnaryOpDec }

// UnaryExpr is a prefix unary expression, e.g. "-x" or "++x".
type UnaryExpr struct {
	Node
	Op   UnaryOp
	Expr Expr
}

func (*UnaryExpr) exprKind()      {}
func (e *UnaryExpr) Base() *Node   { return &e.Node }
func (e *UnaryExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *UnaryExpr) GetTypeDenoter() (*typedenoter.Denoter, error) { return e.Expr.GetTypeDenoter() }

// PostUnaryExpr is a postfix unary expression, e.g. "x++" or "x--".
type PostUnaryExpr struct {
	Node
	Expr Expr
	Op   UnaryOp
}

func (*PostUnaryExpr) exprKind()      {}
func (e *PostUnaryExpr) Base() *Node   { return &e.Node }
func (e *PostUnaryExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *PostUnaryExpr) GetTypeDenoter() (*typedenoter.Denoter, error) { return e.Expr.GetTypeDenoter() }

// FunctionCall is the callee and argument list shared by a call expression,
// factored out so FunctionCallExpr can carry it without an awkward pointer
// cycle to Expr.
type FunctionCall struct {
	Node
	Ident       string
	Intrinsic   Intrinsic // IntrinsicUndefined for an ordinary call
	Args        []Expr
	FuncDeclRef *FunctionDecl // non-nil once resolved to a user function
	// PrefixExpr is the left-hand-side object a method-style call targets,
	// e.g. the texture object in "tex.Sample(samp, uv)"; nil for a
	// free-standing function or intrinsic call.
	PrefixExpr Expr
}

// ConstructorType reports the DataType c.Ident names as a scalar/vector/
// matrix type constructor ("float4(...)", "int3x3(...)"), and whether Ident
// names one at all. HLSL type constructors have no Intrinsic entry and
// never resolve to a FuncDeclRef, so this is the only signal that
// distinguishes a constructor call from an unresolved one.
func (c *FunctionCall) ConstructorType() (typedenoter.DataType, bool) {
	return typedenoter.ByHLSLName(c.Ident)
}

// FunctionCallExpr is a call expression, e.g. "foo(1, 2)" or "tex.Sample(s, uv)".
type FunctionCallExpr struct {
	Node
	TypeCache
	Call *FunctionCall
}

func (*FunctionCallExpr) exprKind()      {}
func (e *FunctionCallExpr) Base() *Node   { return &e.Node }
func (e *FunctionCallExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *FunctionCallExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		if e.Call.FuncDeclRef != nil {
			return e.Call.FuncDeclRef.ReturnType.DeriveTypeDenoter()
		}
		if dt, ok := e.Call.ConstructorType(); ok {
			return typedenoter.Base(dt), nil
		}
		return nil, fmt.Errorf("cannot derive the return type of unresolved call %q", e.Call.Ident)
	})
}

// BracketExpr is a parenthesized sub-expression, e.g. "(a + b)".
type BracketExpr struct {
	Node
	Expr Expr
}

func (*BracketExpr) exprKind()      {}
func (e *BracketExpr) Base() *Node   { return &e.Node }
func (e *BracketExpr) FetchVarIdent() *VarIdent { return e.Expr.FetchVarIdent() }
func (e *BracketExpr) GetTypeDenoter() (*typedenoter.Denoter, error) { return e.Expr.GetTypeDenoter() }

// SuffixExpr applies a trailing ".member" access to an arbitrary
// sub-expression, e.g. "foo().xyz" or "GetPoint().position".
type SuffixExpr struct {
	Node
	TypeCache
	Expr     Expr
	VarIdent *VarIdent
}

func (*SuffixExpr) exprKind()      {}
func (e *SuffixExpr) Base() *Node   { return &e.Node }
func (e *SuffixExpr) FetchVarIdent() *VarIdent { return e.VarIdent }
func (e *SuffixExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		base, err := e.Expr.GetTypeDenoter()
		if err != nil {
			return nil, err
		}
		dt, err := base.Subscript(e.VarIdent.Ident)
		if err != nil {
			return nil, err
		}
		return typedenoter.Base(dt), nil
	})
}

// ArrayAccessExpr is "expr[index0][index1]...".
type ArrayAccessExpr struct {
	Node
	TypeCache
	Expr         Expr
	ArrayIndices []Expr
}

func (*ArrayAccessExpr) exprKind()      {}
func (e *ArrayAccessExpr) Base() *Node   { return &e.Node }
func (e *ArrayAccessExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *ArrayAccessExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		d, err := e.Expr.GetTypeDenoter()
		if err != nil {
			return nil, err
		}
		resolved := d.GetFully()
		for range e.ArrayIndices {
			arr, ok := resolved.Kind.(typedenoter.ArrayKind)
			if !ok {
				return nil, fmt.Errorf("cannot index a non-array type")
			}
			if len(arr.Dims) > 1 {
				resolved = typedenoter.Array(arr.Base, arr.Dims[1:]).GetFully()
			} else {
				resolved = arr.Base.GetFully()
			}
		}
		return resolved, nil
	})
}

// CastExpr is an explicit type conversion, e.g. "(float3)x" or "float3(x)".
type CastExpr struct {
	Node
	TypeSpecifier *TypeSpecifier
	Expr          Expr
}

func (*CastExpr) exprKind()      {}
func (e *CastExpr) Base() *Node   { return &e.Node }
func (e *CastExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }
func (e *CastExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeSpecifier.DeriveTypeDenoter()
}

// AssignOp enumerates HLSL's assignment operators, including the compound
// forms ("+=", "-=", ...).
type AssignOp int

const (
	AssignOpUndefined AssignOp = iota
	AssignOpSet
	AssignOpAdd
	AssignOpSub
	AssignOpMul
	AssignOpDiv
	AssignOpMod
	AssignOpLShift
	AssignOpRShift
	AssignOpOr
	AssignOpAnd
	AssignOpXor
)

var assignOpSymbols = map[AssignOp]string{
	AssignOpSet: "=", AssignOpAdd: "+=", AssignOpSub: "-=", AssignOpMul: "*=",
	AssignOpDiv: "/=", AssignOpMod: "%=", AssignOpLShift: "<<=", AssignOpRShift: ">>=",
	AssignOpOr: "|=", AssignOpAnd: "&=", AssignOpXor: "^=",
}

// String returns the operator's HLSL/GLSL-shared spelling.
func (o AssignOp) String() string {
	if s, ok := assignOpSymbols[o]; ok {
		return s
	}
	return "<undefined>"
}

// IsBitwiseOp reports whether o is one of the compound bitwise-assign forms.
func (o AssignOp) IsBitwiseOp() bool { return o >= AssignOpLShift && o <= AssignOpXor }

// ToBinaryOp returns the BinaryOp a compound assignment "x op= y" desugars
// to ("x = x op y"), or BinaryOpUndefined for a plain "=".
func (o AssignOp) ToBinaryOp() BinaryOp {
	switch o {
	case AssignOpAdd:
		return BinaryOpAdd
	case AssignOpSub:
		return BinaryOpSub
	case AssignOpMul:
		return BinaryOpMul
	case AssignOpDiv:
		return BinaryOpDiv
	case AssignOpMod:
		return BinaryOpMod
	case AssignOpLShift:
		return BinaryOpLShift
	case AssignOpRShift:
		return BinaryOpRShift
	case AssignOpOr:
		return BinaryOpOr
	case AssignOpAnd:
		return BinaryOpAnd
	case AssignOpXor:
		return BinaryOpXor
	default:
		return BinaryOpUndefined
	}
}

// VarAccessExpr is a variable access, optionally as the target of an
// assignment: "x", or "x = expr", or "x += expr".
type VarAccessExpr struct {
	Node
	VarIdent   *VarIdent
	AssignOp   AssignOp // AssignOpUndefined for a plain read
	AssignExpr Expr     // non-nil iff AssignOp != AssignOpUndefined
}

func (*VarAccessExpr) exprKind()      {}
func (e *VarAccessExpr) Base() *Node   { return &e.Node }
func (e *VarAccessExpr) FetchVarIdent() *VarIdent { return e.VarIdent }
func (e *VarAccessExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.VarIdent.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		if decl := e.VarIdent.FetchVarDecl(); decl != nil {
			return decl.DeriveTypeDenoter()
		}
		return nil, fmt.Errorf("variable identifier %q has no resolved symbol", e.VarIdent.String())
	})
}

// InitializerExpr is a brace initializer list, e.g. "{ 1, 2, 3 }".
type InitializerExpr struct {
	Node
	TypeCache
	Exprs []Expr
}

func (*InitializerExpr) exprKind()      {}
func (e *InitializerExpr) Base() *Node   { return &e.Node }
func (e *InitializerExpr) FetchVarIdent() *VarIdent { return baseFetchVarIdent() }

// NumElements returns the total scalar element count, recursing into any
// nested initializer lists.
func (e *InitializerExpr) NumElements() int {
	n := 0
	for _, sub := range e.Exprs {
		if nested, ok := sub.(*InitializerExpr); ok {
			n += nested.NumElements()
		} else {
			n++
		}
	}
	return n
}

func (e *InitializerExpr) GetTypeDenoter() (*typedenoter.Denoter, error) {
	return e.TypeCache.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		if len(e.Exprs) == 0 {
			return typedenoter.Void(), nil
		}
		first, err := e.Exprs[0].GetTypeDenoter()
		if err != nil {
			return nil, err
		}
		return typedenoter.Array(first, []int{len(e.Exprs)}), nil
	})
}
