// Package typedenoter provides the canonical representation of HLSL/GLSL
// shader types used throughout the compiler: scalar, vector, and matrix
// base types (DataType), and the higher-level TypeDenoter that additionally
// covers void, struct, array, alias, buffer, texture, and sampler types.
package typedenoter

import (
	"fmt"
	"sync"
)

// DataType enumerates the scalar, vector, and matrix base types shared by
// HLSL and GLSL. The enumeration is contiguous and grouped by shape (all
// scalars, then all vectors, then all matrices) so that BaseDataType,
// VectorDataType, and MatrixDataType can be implemented as O(1) arithmetic
// on the enum value rather than table lookups.
type DataType int

const (
	// Scalars, in declaration order: Bool, Int, UInt, Half, Float, Double.
	Bool DataType = iota
	Int
	UInt
	Half
	Float
	Double

	// Vectors, grouped by base type with size varying fastest (base2, base3, base4).
	Bool2
	Bool3
	Bool4
	Int2
	Int3
	Int4
	UInt2
	UInt3
	UInt4
	Half2
	Half3
	Half4
	Float2
	Float3
	Float4
	Double2
	Double3
	Double4

	// Matrices, grouped by base type, rows 2..4 by columns 2..4 in row-major order.
	Bool2x2
	Bool2x3
	Bool2x4
	Bool3x2
	Bool3x3
	Bool3x4
	Bool4x2
	Bool4x3
	Bool4x4
	Int2x2
	Int2x3
	Int2x4
	Int3x2
	Int3x3
	Int3x4
	Int4x2
	Int4x3
	Int4x4
	UInt2x2
	UInt2x3
	UInt2x4
	UInt3x2
	UInt3x3
	UInt3x4
	UInt4x2
	UInt4x3
	UInt4x4
	Half2x2
	Half2x3
	Half2x4
	Half3x2
	Half3x3
	Half3x4
	Half4x2
	Half4x3
	Half4x4
	Float2x2
	Float2x3
	Float2x4
	Float3x2
	Float3x3
	Float3x4
	Float4x2
	Float4x3
	Float4x4
	Double2x2
	Double2x3
	Double2x4
	Double3x2
	Double3x3
	Double3x4
	Double4x2
	Double4x3
	Double4x4
)

// numBaseTypes is the count of scalar base types (Bool, Int, UInt, Half, Float, Double).
const numBaseTypes = 6

// numVectorSizes is the count of vector sizes (2, 3, 4).
const numVectorSizes = 3

// numMatrixShapes is the count of matrix row/column combinations (2x2 .. 4x4).
const numMatrixShapes = 9

// Undefined represents the absence of a resolvable data type.
const Undefined DataType = -1

var dataTypeNames = [...]string{
	"bool", "int", "uint", "half", "float", "double",
}

// String returns the HLSL spelling of the base type name (ignoring dimension).
func (t DataType) String() string {
	base := BaseDataType(t)
	if base < Bool || base > Double {
		return "<undefined>"
	}
	name := dataTypeNames[base]
	switch {
	case IsMatrixType(t):
		r, c := MatrixTypeDim(t)
		return fmt.Sprintf("%s%dx%d", name, r, c)
	case IsVectorType(t):
		return fmt.Sprintf("%s%d", name, VectorTypeDim(t))
	default:
		return name
	}
}

var (
	dataTypeByNameOnce sync.Once
	dataTypeByName     map[string]DataType
)

// ByHLSLName looks up a DataType by its HLSL constructor spelling ("float4",
// "int3x3", "bool", ...), the inverse of String. Used to recognize a call
// expression's identifier as a type constructor rather than an ordinary
// function call. Safe for concurrent use: the driver runs stages of the
// pipeline across goroutines, and the first lookup from any of them builds
// the cache.
func ByHLSLName(name string) (DataType, bool) {
	dataTypeByNameOnce.Do(func() {
		m := make(map[string]DataType, numBaseTypes*(1+numVectorSizes+numMatrixShapes))
		for t := Bool; t <= Double4x4; t++ {
			m[t.String()] = t
		}
		dataTypeByName = m
	})
	t, ok := dataTypeByName[name]
	return t, ok
}

// IsScalarType reports whether t is one of the six scalar base types.
func IsScalarType(t DataType) bool {
	return t >= Bool && t <= Double
}

// IsVectorType reports whether t is any vector shape (size 2..4).
func IsVectorType(t DataType) bool {
	return t >= Bool2 && t <= Double4
}

// IsMatrixType reports whether t is any matrix shape (2x2..4x4).
func IsMatrixType(t DataType) bool {
	return t >= Bool2x2 && t <= Double4x4
}

// IsBooleanType reports whether t has a Bool base type, in any shape.
func IsBooleanType(t DataType) bool {
	return t == Bool ||
		(t >= Bool2 && t <= Bool4) ||
		(t >= Bool2x2 && t <= Bool4x4)
}

// IsRealType reports whether t has a floating-point base type (Half, Float, or Double), in any shape.
func IsRealType(t DataType) bool {
	return (t >= Half && t <= Double) ||
		(t >= Half2 && t <= Double4) ||
		(t >= Half2x2 && t <= Double4x4)
}

// IsIntegralType reports whether t has an Int or UInt base type, in any shape.
func IsIntegralType(t DataType) bool {
	return (t >= Int && t <= UInt) ||
		(t >= Int2 && t <= UInt4) ||
		(t >= Int2x2 && t <= UInt4x4)
}

// VectorTypeDim returns the component count of a vector type, or 1 for a
// scalar, or 0 if t is not a scalar or vector.
func VectorTypeDim(t DataType) int {
	switch {
	case IsScalarType(t):
		return 1
	case IsVectorType(t):
		offset := int(t - Bool2)
		return offset%numVectorSizes + 2
	default:
		return 0
	}
}

// MatrixTypeDim returns the (rows, columns) of a matrix type, (1, 1) for a
// scalar, or (0, 0) if t is not a scalar or matrix.
func MatrixTypeDim(t DataType) (rows, columns int) {
	switch {
	case IsScalarType(t):
		return 1, 1
	case IsMatrixType(t):
		offset := int(t-Bool2x2) % numMatrixShapes
		return offset/3 + 2, offset%3 + 2
	default:
		return 0, 0
	}
}

// BaseDataType strips the vector/matrix shape from t, returning its scalar base type.
func BaseDataType(t DataType) DataType {
	switch {
	case IsScalarType(t):
		return t
	case IsVectorType(t):
		return Bool + (t-Bool2)/numVectorSizes
	case IsMatrixType(t):
		return Bool + (t-Bool2x2)/numMatrixShapes
	default:
		return Undefined
	}
}

// VectorDataType builds the vector DataType for the given scalar base type
// and component count n. Requires base to be scalar and n in 1..4; returns
// base unchanged when n == 1, and Undefined for any other invalid input.
func VectorDataType(base DataType, n int) DataType {
	if !IsScalarType(base) {
		return Undefined
	}
	if n == 1 {
		return base
	}
	if n < 2 || n > 4 {
		return Undefined
	}
	offset := int(base - Bool)
	return Bool2 + DataType(offset*numVectorSizes+(n-2))
}

// MatrixDataType builds the matrix DataType for the given scalar base type
// and dimensions. Degenerates to a scalar when rows == columns == 1, to a
// vector when exactly one dimension is 1, and requires both dimensions in
// 2..4 otherwise; returns Undefined for any other invalid input.
func MatrixDataType(base DataType, rows, columns int) DataType {
	if !IsScalarType(base) {
		return Undefined
	}
	switch {
	case rows == 1 && columns == 1:
		return base
	case rows == 1:
		return VectorDataType(base, columns)
	case columns == 1:
		return VectorDataType(base, rows)
	case rows >= 2 && rows <= 4 && columns >= 2 && columns <= 4:
		offset := int(base - Bool)
		return Bool2x2 + DataType(offset*numMatrixShapes+(rows-2)*3+(columns-2))
	default:
		return Undefined
	}
}
