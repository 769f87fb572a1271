package ast

import "github.com/gogpu/xsc/typedenoter"

// Decl is the common shape of every declaration node: VarDecl, BufferDecl,
// SamplerDecl, StructDecl, and AliasDecl. Each carries an identifier and a
// TypeCache, and is addressable as the non-owning target of a VarIdent's
// symbolRef.
type Decl struct {
	Node
	TypeCache
	Ident string
}

// ArrayDimension is one dimension of an array declaration. Size is the
// evaluated constant extent; zero means a dynamically-sized (unbounded)
// dimension, only legal as the outermost dimension of a buffer element type.
type ArrayDimension struct {
	Node
	Expr Expr
	Size int
}

// HasDynamicSize reports whether this dimension has no fixed extent.
func (d ArrayDimension) HasDynamicSize() bool { return d.Size == 0 }

// RegisterKind distinguishes the four HLSL register classes.
type RegisterKind int

const (
	RegisterB RegisterKind = iota // constant buffers
	RegisterT                     // textures and read-only buffers
	RegisterS                     // samplers
	RegisterU                     // read/write (UAV) resources
)

// Register is a parsed HLSL `register(...)` slot assignment.
type Register struct {
	Node
	Kind      RegisterKind
	Slot      int
	SpaceName string // "" unless an explicit register space was given
}

// PackOffset is a parsed HLSL `packoffset(...)` attribute on a cbuffer member.
type PackOffset struct {
	Node
	RegisterName   string
	VectorComponent string // "x"/"y"/"z"/"w", or "" if unspecified
}

// VarIdent is a (possibly dotted) variable identifier chain: "a.b.c" is
// represented as three linked VarIdent nodes. Each link may carry array
// indices (for an array element or matrix/vector subscript access).
// SymbolRef is the non-owning back-reference a prior analysis pass resolves
// this identifier to (a *VarDecl, *FunctionDecl, or similar Decl); it is nil
// until resolved.
type VarIdent struct {
	Node
	TypeCache
	Ident        string
	ArrayIndices []Expr
	Next         *VarIdent
	SymbolRef    interface{}
	// Immutable marks an identifier the converter must never rename or
	// rewrite further (e.g. after substituting in a GLSL built-in name).
	Immutable bool
}

// Last follows the Next chain and returns its final link.
func (v *VarIdent) Last() *VarIdent {
	cur := v
	for cur.Next != nil {
		cur = cur.Next
	}
	return cur
}

// String reconstructs the dotted identifier chain, e.g. "input.position".
func (v *VarIdent) String() string {
	s := v.Ident
	if v.Next != nil {
		s += "." + v.Next.String()
	}
	return s
}

// FetchVarDecl returns the VarDecl this identifier's symbol resolves to, or nil.
func (v *VarIdent) FetchVarDecl() *VarDecl {
	if d, ok := v.SymbolRef.(*VarDecl); ok {
		return d
	}
	return nil
}

// FetchFunctionDecl returns the FunctionDecl this identifier's symbol resolves to, or nil.
func (v *VarIdent) FetchFunctionDecl() *FunctionDecl {
	if d, ok := v.SymbolRef.(*FunctionDecl); ok {
		return d
	}
	return nil
}

// VarDecl is a single variable declaration: a parameter, a struct member, a
// cbuffer member, or a local. Several VarDecls can share one VarDeclStmnt
// (e.g. "float a, b;").
type VarDecl struct {
	Decl

	Type        *TypeSpecifier
	ArrayDims   []ArrayDimension
	Semantic    Semantic
	HasSemantic bool
	PackOffset  *PackOffset
	Initializer Expr

	// DeclStmntRef is the VarDeclStmnt that introduces this declaration.
	DeclStmntRef *VarDeclStmt
	// BufferDeclRef is set when this VarDecl is a cbuffer/tbuffer member.
	BufferDeclRef *UniformBufferDecl
	// StructDeclRef is set when this VarDecl is a struct member.
	StructDeclRef *StructDecl

	IsShaderInput      bool
	IsShaderOutput     bool
	IsSystemValue      bool
	IsDynamicArray     bool
	IsWrittenTo        bool
	IsEntryPointOutput bool
	IsEntryPointLocal  bool
}

// DeriveTypeDenoter computes this variable's Denoter: its declared type,
// wrapped in an Array Denoter once per array dimension (outermost first).
func (v *VarDecl) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	return v.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		base, err := v.Type.DeriveTypeDenoter()
		if err != nil {
			return nil, err
		}
		if len(v.ArrayDims) == 0 {
			return base, nil
		}
		dims := make([]int, len(v.ArrayDims))
		for i, d := range v.ArrayDims {
			dims[i] = d.Size
		}
		return typedenoter.Array(base, dims), nil
	})
}

// BufferDecl declares one buffer or texture object within a BufferDeclStmnt,
// e.g. the "tex" in "Texture2D tex : register(t0);".
type BufferDecl struct {
	Decl

	ArrayDims     []ArrayDimension
	SlotRegisters []Register

	// DeclStmntRef is the BufferDeclStmnt that fixes this object's BufferType
	// and, for structured buffers, its element type.
	DeclStmntRef *BufferDeclStmt
}

// TextureIdent implements typedenoter.TextureRef.
func (b *BufferDecl) TextureIdent() string { return b.Ident }

// GetBufferType returns the buffer/texture shape fixed by the owning statement.
func (b *BufferDecl) GetBufferType() typedenoter.BufferType {
	if b.DeclStmntRef == nil {
		return typedenoter.BufferUndefined
	}
	return b.DeclStmntRef.BufferType
}

// DeriveTypeDenoter computes this buffer's Denoter from its owning
// statement's shape and element type.
func (b *BufferDecl) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	return b.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		bt := b.GetBufferType()
		if isTextureBufferType(bt) {
			return typedenoter.Texture(bt, b), nil
		}
		var elem *typedenoter.Denoter
		if b.DeclStmntRef != nil {
			elem = b.DeclStmntRef.ElemType
		}
		return typedenoter.Buffer(bt, elem), nil
	})
}

func isTextureBufferType(t typedenoter.BufferType) bool {
	switch t {
	case typedenoter.BufferTexture1D, typedenoter.BufferTexture1DArray,
		typedenoter.BufferTexture2D, typedenoter.BufferTexture2DArray,
		typedenoter.BufferTexture2DMS, typedenoter.BufferTexture2DMSArray,
		typedenoter.BufferTexture3D, typedenoter.BufferTextureCube,
		typedenoter.BufferTextureCubeArray,
		typedenoter.BufferRWTexture1D, typedenoter.BufferRWTexture1DArray,
		typedenoter.BufferRWTexture2D, typedenoter.BufferRWTexture2DArray,
		typedenoter.BufferRWTexture3D:
		return true
	default:
		return false
	}
}

// SamplerDecl declares one sampler object, e.g. the "samp" in
// "SamplerState samp : register(s0);".
type SamplerDecl struct {
	Decl

	ArrayDims     []ArrayDimension
	SlotRegisters []Register
	// TextureIdent optionally names a paired texture object, for legacy
	// DirectX9-style combined sampler declarations.
	TextureIdent string

	SamplerType typedenoter.SamplerType
}

// DeriveTypeDenoter computes this sampler's Denoter.
func (s *SamplerDecl) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	return s.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		return typedenoter.Sampler(s.SamplerType), nil
	})
}

// StructDecl declares a struct type, optionally inheriting from a single
// base struct named by BaseStructName / resolved via BaseStructRef.
type StructDecl struct {
	Decl

	BaseStructName string
	BaseStructRef  *StructDecl

	LocalStmnts []Stmt
	VarMembers  []*VarDeclStmt
	FuncMembers []*FunctionDecl

	// AliasName is the interface-block alias used when this struct is
	// promoted to a GLSL `in`/`out` block at an entry point boundary.
	AliasName string

	// SystemValuesRef maps a normalized semantic name to the member VarDecl
	// that carries it. Neither the reference analyzer nor the converter
	// fills it in.
	SystemValuesRef map[string]*VarDecl
	// NestedStructDeclRefs lists struct-typed members' declarations.
	NestedStructDeclRefs []*StructDecl
	// ShaderOutputVarDeclRefs collects members used as entry-point outputs.
	ShaderOutputVarDeclRefs map[*VarDecl]struct{}

	IsShaderInput       bool
	IsShaderOutput      bool
	IsNestedStruct      bool
	IsNonEntryPointParam bool
}

// StructIdent implements typedenoter.StructRef.
func (s *StructDecl) StructIdent() string { return s.Ident }

// IsAnonymous reports whether this struct was declared without a name.
func (s *StructDecl) IsAnonymous() bool { return s.Ident == "" }

// DeriveTypeDenoter computes this struct's Denoter (a back-reference to itself).
func (s *StructDecl) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	return s.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		return typedenoter.Struct(s), nil
	})
}

// Fetch returns the member VarDecl for ident, searching the base struct
// chain if it is not a direct member, and reports which struct owns it.
func (s *StructDecl) Fetch(ident string) (*VarDecl, *StructDecl) {
	for cur := s; cur != nil; cur = cur.BaseStructRef {
		for _, stmt := range cur.VarMembers {
			for _, v := range stmt.Decls {
				if v.Ident == ident {
					return v, cur
				}
			}
		}
	}
	return nil, nil
}

// IsBaseOf reports whether s is an ancestor of sub through the BaseStructRef chain.
func (s *StructDecl) IsBaseOf(sub *StructDecl) bool {
	for cur := sub.BaseStructRef; cur != nil; cur = cur.BaseStructRef {
		if cur == s {
			return true
		}
	}
	return false
}

// HasNonSystemValueMembers reports whether at least one member (including
// inherited members) lacks a system-value semantic.
func (s *StructDecl) HasNonSystemValueMembers() bool {
	for cur := s; cur != nil; cur = cur.BaseStructRef {
		for _, stmt := range cur.VarMembers {
			for _, v := range stmt.Decls {
				if !v.HasSemantic || !v.Semantic.IsSystemValue() {
					return true
				}
			}
		}
	}
	return false
}

// AliasDecl declares a type alias, e.g. "typedef float3 Vec3;".
type AliasDecl struct {
	Decl
	AliasedTypeDenoter *typedenoter.Denoter
}

// AliasIdent implements typedenoter.AliasRef.
func (a *AliasDecl) AliasIdent() string { return a.Ident }

// AliasedType implements typedenoter.AliasRef.
func (a *AliasDecl) AliasedType() *typedenoter.Denoter { return a.AliasedTypeDenoter }

// DeriveTypeDenoter computes this alias's Denoter (a back-reference to itself).
func (a *AliasDecl) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	return a.GetTypeDenoter(func() (*typedenoter.Denoter, error) {
		return typedenoter.Alias(a), nil
	})
}

// ParameterSemantics partitions a function's parameters (or return value,
// for the output side) into user-defined and system-value semantics, the
// split the converter needs to decide which become a generated GLSL global
// (system values) and which become an interface-block field (user values).
type ParameterSemantics struct {
	VarDeclRefs   []*VarDecl
	VarDeclRefsSV []*VarDecl
}

// Add files v into the user or system-value list per its semantic.
func (p *ParameterSemantics) Add(v *VarDecl) {
	if v.HasSemantic && v.Semantic.IsSystemValue() {
		p.VarDeclRefsSV = append(p.VarDeclRefsSV, v)
	} else {
		p.VarDeclRefs = append(p.VarDeclRefs, v)
	}
}

// Empty reports whether both lists are empty.
func (p *ParameterSemantics) Empty() bool {
	return len(p.VarDeclRefs) == 0 && len(p.VarDeclRefsSV) == 0
}

// FunctionDecl declares a function: the shader entry point, a secondary
// entry point (e.g. a tessellation patch-constant function), or an ordinary
// helper or member function.
type FunctionDecl struct {
	Node
	TypeCache

	ReturnType *TypeSpecifier
	Ident      string
	Parameters []*VarDeclStmt
	Semantic   Semantic
	HasSemantic bool
	CodeBlock  *CodeBlock // nil for a forward declaration

	InputSemantics  ParameterSemantics
	OutputSemantics ParameterSemantics

	FuncImplRef        *FunctionDecl
	FuncForwardDeclRefs []*FunctionDecl
	StructDeclRef      *StructDecl

	IsEntryPoint            bool
	IsSecondaryEntryPoint   bool
	HasNonReturnControlPath bool
}

// IsForwardDecl reports whether this is a prototype without a body.
func (f *FunctionDecl) IsForwardDecl() bool { return f.CodeBlock == nil }

// HasVoidReturnType reports whether the function returns no value.
func (f *FunctionDecl) HasVoidReturnType() bool {
	return f.ReturnType != nil && f.ReturnType.TypeDenoter != nil && f.ReturnType.TypeDenoter.IsVoid()
}

// IsMemberFunction reports whether this function belongs to a struct.
func (f *FunctionDecl) IsMemberFunction() bool { return f.StructDeclRef != nil }

// NumMinArgs returns the minimum legal call arity: parameters without a
// default initializer.
func (f *FunctionDecl) NumMinArgs() int {
	n := 0
	for _, p := range f.Parameters {
		for _, v := range p.Decls {
			if v.Initializer == nil {
				n++
			}
		}
	}
	return n
}

// NumMaxArgs returns the function's total parameter count.
func (f *FunctionDecl) NumMaxArgs() int {
	n := 0
	for _, p := range f.Parameters {
		n += len(p.Decls)
	}
	return n
}

// UniformBufferType distinguishes HLSL's two constant-buffer declaration forms.
type UniformBufferType int

const (
	UniformBufferUndefined UniformBufferType = iota
	UniformBufferConstant                      // cbuffer
	UniformBufferTexture                       // tbuffer
)

// UniformBufferDecl declares an HLSL cbuffer or tbuffer block.
type UniformBufferDecl struct {
	Node
	BufferType    UniformBufferType
	Ident         string
	SlotRegisters []Register
	LocalStmnts   []Stmt
	VarMembers    []*VarDeclStmt
}

// BufferDeclStmt declares one or more buffer/texture objects sharing a
// common BufferType and, for structured/typed buffers, a common element type.
type BufferDeclStmt struct {
	Node
	BufferType typedenoter.BufferType
	ElemType   *typedenoter.Denoter // nil for untyped byte-address buffers
	Decls      []*BufferDecl
}

// SamplerDeclStmt declares one or more sampler objects sharing a SamplerType.
type SamplerDeclStmt struct {
	Node
	SamplerType typedenoter.SamplerType
	Decls       []*SamplerDecl
}

// StructDeclStmt wraps a StructDecl as a top-level or local statement.
type StructDeclStmt struct {
	Node
	StructDecl *StructDecl
}

// AliasDeclStmt wraps one or more AliasDecls sharing an underlying type,
// e.g. "typedef float3 Vec3, Color;".
type AliasDeclStmt struct {
	Node
	Decls []*AliasDecl
}

// VarDeclStmt declares one or more VarDecls sharing a common TypeSpecifier,
// e.g. "float a, b;" or a single function parameter.
type VarDeclStmt struct {
	Node
	Type  *TypeSpecifier
	Decls []*VarDecl
}

// TypeModifier is an HLSL type qualifier attached to a TypeSpecifier.
type TypeModifier int

const (
	TypeModifierConst TypeModifier = iota
	TypeModifierRowMajor
	TypeModifierColumnMajor
	TypeModifierSNorm
	TypeModifierUNorm
)

// InterpModifier is an HLSL interpolation qualifier on a varying.
type InterpModifier int

const (
	InterpModifierNone InterpModifier = iota
	InterpModifierLinear
	InterpModifierCentroid
	InterpModifierNoInterpolation
	InterpModifierNoPerspective
	InterpModifierSample
)

// TypeSpecifier names a declared type: either a reference to a TypeDenoter
// built from a keyword (float, int3, ...), or an inline/aliased struct type.
type TypeSpecifier struct {
	Node
	IsInput  bool
	IsOutput bool
	IsUniform bool

	TypeModifiers   map[TypeModifier]struct{}
	InterpModifiers map[InterpModifier]struct{}

	StructDecl  *StructDecl // non-nil for an inline struct definition
	TypeDenoter *typedenoter.Denoter
}

// IsConst reports whether the 'const' modifier is present.
func (t *TypeSpecifier) IsConst() bool {
	_, ok := t.TypeModifiers[TypeModifierConst]
	return ok
}

// IsConstOrUniform reports whether the type is immutable from the callee's
// perspective: either 'const' or a uniform input parameter.
func (t *TypeSpecifier) IsConstOrUniform() bool {
	return t.IsConst() || t.IsUniform
}

// DeriveTypeDenoter returns this specifier's resolved Denoter.
func (t *TypeSpecifier) DeriveTypeDenoter() (*typedenoter.Denoter, error) {
	if t.TypeDenoter != nil {
		return t.TypeDenoter, nil
	}
	if t.StructDecl != nil {
		return t.StructDecl.DeriveTypeDenoter()
	}
	return typedenoter.Void(), nil
}
