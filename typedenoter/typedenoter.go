package typedenoter

import "strings"

// BufferType enumerates the HLSL buffer and texture resource kinds a
// Denoter's Buffer/Texture variant can hold.
type BufferType int

const (
	BufferUndefined BufferType = iota
	BufferConstantBuffer
	BufferTexture1D
	BufferTexture1DArray
	BufferTexture2D
	BufferTexture2DArray
	BufferTexture2DMS
	BufferTexture2DMSArray
	BufferTexture3D
	BufferTextureCube
	BufferTextureCubeArray
	BufferRWTexture1D
	BufferRWTexture1DArray
	BufferRWTexture2D
	BufferRWTexture2DArray
	BufferRWTexture3D
	BufferGenericBuffer
	BufferRWBuffer
	BufferStructuredBuffer
	BufferRWStructuredBuffer
	BufferAppendStructuredBuffer
	BufferConsumeStructuredBuffer
	BufferByteAddressBuffer
	BufferRWByteAddressBuffer
)

// SamplerType enumerates the HLSL sampler object kinds.
type SamplerType int

const (
	SamplerState SamplerType = iota
	SamplerComparisonState
)

// StructRef is a non-owning reference to a struct declaration. Implemented
// by *ast.StructDecl; kept as an interface here so this package never
// imports ast (which imports typedenoter for its cached type field).
type StructRef interface {
	StructIdent() string
}

// TextureRef is a non-owning reference to the declaration that introduced a
// named texture object (distinct from its BufferType, which only fixes its
// shape). Implemented by *ast.BufferDecl.
type TextureRef interface {
	TextureIdent() string
}

// AliasRef is a non-owning reference to a type-alias declaration.
// Implemented by *ast.AliasDecl.
type AliasRef interface {
	AliasIdent() string
	AliasedType() *Denoter
}

// Kind is the sum type of Denoter variants: Void, Base, Buffer, Sampler,
// Texture, Struct, Array, Alias.
type Kind interface {
	denoterKind()
}

// VoidKind denotes the absence of a value (function return type only).
type VoidKind struct{}

func (VoidKind) denoterKind() {}

// BaseKind denotes a scalar, vector, or matrix DataType.
type BaseKind struct {
	DataType DataType
}

func (BaseKind) denoterKind() {}

// BufferKind denotes a read/write buffer resource, optionally typed over an
// element Denoter (nil for untyped byte-address buffers).
type BufferKind struct {
	BufferType BufferType
	Elem       *Denoter
}

func (BufferKind) denoterKind() {}

// SamplerKind denotes a sampler object (SamplerState or SamplerComparisonState).
type SamplerKind struct {
	SamplerType SamplerType
}

func (SamplerKind) denoterKind() {}

// TextureKind denotes a texture object. BufferType fixes its dimensionality
// (Texture2D, Texture2DArray, ...); TextureDecl is the non-owning back-link
// to the declaration that introduced it.
type TextureKind struct {
	BufferType  BufferType
	TextureDecl TextureRef
}

func (TextureKind) denoterKind() {}

// StructKind denotes a named struct type via a non-owning back-link to its declaration.
type StructKind struct {
	StructDecl StructRef
}

func (StructKind) denoterKind() {}

// ArrayKind denotes an array of a base Denoter with one or more dimensions
// (multiple dimensions model multi-dimensional arrays, outermost first).
type ArrayKind struct {
	Base *Denoter
	Dims []int
}

func (ArrayKind) denoterKind() {}

// AliasKind denotes a named type alias via a non-owning back-link to its declaration.
type AliasKind struct {
	AliasDecl AliasRef
}

func (AliasKind) denoterKind() {}

// Denoter is the canonical, comparable representation of a shader type.
// A Denoter is never self-cyclic through its owned fields (Elem, Base);
// Struct and Alias hold only non-owning back-references to declarations.
type Denoter struct {
	Kind Kind
}

// Void, Base, Buffer, Sampler, Texture, Struct, Array, and Alias are
// constructor helpers for the corresponding Kind variant.

func Void() *Denoter { return &Denoter{Kind: VoidKind{}} }

func Base(t DataType) *Denoter { return &Denoter{Kind: BaseKind{DataType: t}} }

func Buffer(t BufferType, elem *Denoter) *Denoter {
	return &Denoter{Kind: BufferKind{BufferType: t, Elem: elem}}
}

func Sampler(t SamplerType) *Denoter { return &Denoter{Kind: SamplerKind{SamplerType: t}} }

func Texture(t BufferType, decl TextureRef) *Denoter {
	return &Denoter{Kind: TextureKind{BufferType: t, TextureDecl: decl}}
}

func Struct(decl StructRef) *Denoter { return &Denoter{Kind: StructKind{StructDecl: decl}} }

func Array(base *Denoter, dims []int) *Denoter {
	return &Denoter{Kind: ArrayKind{Base: base, Dims: dims}}
}

func Alias(decl AliasRef) *Denoter { return &Denoter{Kind: AliasKind{AliasDecl: decl}} }

// IsVoid, IsBase, IsBuffer, IsSampler, IsTexture, IsStruct, IsArray, and
// IsAlias classify the Denoter's variant without resolving aliases.

func (d *Denoter) IsVoid() bool    { _, ok := d.Kind.(VoidKind); return ok }
func (d *Denoter) IsBase() bool    { _, ok := d.Kind.(BaseKind); return ok }
func (d *Denoter) IsBuffer() bool  { _, ok := d.Kind.(BufferKind); return ok }
func (d *Denoter) IsSampler() bool { _, ok := d.Kind.(SamplerKind); return ok }
func (d *Denoter) IsTexture() bool { _, ok := d.Kind.(TextureKind); return ok }
func (d *Denoter) IsStruct() bool  { _, ok := d.Kind.(StructKind); return ok }
func (d *Denoter) IsArray() bool   { _, ok := d.Kind.(ArrayKind); return ok }
func (d *Denoter) IsAlias() bool   { _, ok := d.Kind.(AliasKind); return ok }

// Get resolves one layer of alias indirection. For any non-Alias Denoter it
// returns d unchanged.
func (d *Denoter) Get() *Denoter {
	if a, ok := d.Kind.(AliasKind); ok {
		return a.AliasDecl.AliasedType()
	}
	return d
}

// GetFully repeatedly resolves alias indirection until a non-Alias Denoter is reached.
func (d *Denoter) GetFully() *Denoter {
	cur := d
	for cur.IsAlias() {
		cur = cur.Get()
	}
	return cur
}

// Ident returns the declared name for a Struct or Alias Denoter, or "" otherwise.
func (d *Denoter) Ident() string {
	switch k := d.Kind.(type) {
	case StructKind:
		return k.StructDecl.StructIdent()
	case AliasKind:
		return k.AliasDecl.AliasIdent()
	default:
		return ""
	}
}

// Subscript resolves a swizzle (for a scalar or vector base type) or a
// matrix accessor (for a matrix base type) against this Denoter and returns
// the resulting DataType. It fails for any Denoter whose resolved Kind is
// not a BaseKind, or for a malformed accessor string.
func (d *Denoter) Subscript(accessor string) (DataType, error) {
	resolved := d.GetFully()
	base, ok := resolved.Kind.(BaseKind)
	if !ok {
		return Undefined, errNotSubscriptable(resolved)
	}

	dt := base.DataType
	switch {
	case IsVectorType(dt) || IsScalarType(dt):
		if strings.HasPrefix(accessor, "_") {
			return Undefined, errNotSubscriptable(resolved)
		}
		size := VectorTypeDim(dt)
		return ResolveVectorSubscript(BaseDataType(dt), size, accessor)
	case IsMatrixType(dt):
		rows, columns := MatrixTypeDim(dt)
		return ResolveMatrixSubscript(BaseDataType(dt), rows, columns, accessor)
	default:
		return Undefined, errNotSubscriptable(resolved)
	}
}

// Equal reports structural equivalence between two Denoters, resolving
// alias indirection on both sides first.
func Equal(a, b *Denoter) bool {
	if a == nil || b == nil {
		return a == b
	}
	ra, rb := a.GetFully(), b.GetFully()

	switch ka := ra.Kind.(type) {
	case VoidKind:
		_, ok := rb.Kind.(VoidKind)
		return ok
	case BaseKind:
		kb, ok := rb.Kind.(BaseKind)
		return ok && ka.DataType == kb.DataType
	case SamplerKind:
		kb, ok := rb.Kind.(SamplerKind)
		return ok && ka.SamplerType == kb.SamplerType
	case BufferKind:
		kb, ok := rb.Kind.(BufferKind)
		return ok && ka.BufferType == kb.BufferType && Equal(ka.Elem, kb.Elem)
	case TextureKind:
		kb, ok := rb.Kind.(TextureKind)
		return ok && ka.BufferType == kb.BufferType && ka.TextureDecl == kb.TextureDecl
	case StructKind:
		kb, ok := rb.Kind.(StructKind)
		return ok && ka.StructDecl == kb.StructDecl
	case ArrayKind:
		kb, ok := rb.Kind.(ArrayKind)
		if !ok || len(ka.Dims) != len(kb.Dims) {
			return false
		}
		for i := range ka.Dims {
			if ka.Dims[i] != kb.Dims[i] {
				return false
			}
		}
		return Equal(ka.Base, kb.Base)
	default:
		return false
	}
}

type subscriptError struct {
	msg string
}

func (e *subscriptError) Error() string { return e.msg }

func errNotSubscriptable(d *Denoter) error {
	return &subscriptError{msg: "type " + d.Ident() + " is not a vector or matrix and cannot be subscripted"}
}
