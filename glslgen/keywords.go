// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslgen

import (
	"fmt"

	"github.com/gogpu/xsc/typedenoter"
)

// glslKeywords contains the GLSL reserved words a generated identifier must
// not collide with: current keywords, the gl_* built-in variable names, and
// the built-in function names most likely to appear as an HLSL identifier.
// Based on the GLSL 4.60 and GLSL ES 3.20 specifications.
var glslKeywords = map[string]struct{}{
	// Basic and vector/matrix types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},

	// Sampler and image types
	"sampler1D": {}, "sampler2D": {}, "sampler3D": {}, "samplerCube": {},
	"sampler1DArray": {}, "sampler2DArray": {}, "samplerCubeArray": {},
	"sampler2DShadow": {}, "samplerCubeShadow": {}, "sampler1DArrayShadow": {}, "sampler2DArrayShadow": {},
	"sampler2DMS": {}, "sampler2DMSArray": {}, "samplerBuffer": {},
	"isampler1D": {}, "isampler2D": {}, "isampler3D": {}, "usampler1D": {}, "usampler2D": {}, "usampler3D": {},
	"image1D": {}, "image2D": {}, "image3D": {}, "imageCube": {}, "imageBuffer": {},
	"atomic_uint": {},

	// Keywords
	"attribute": {}, "const": {}, "uniform": {}, "varying": {}, "buffer": {}, "shared": {},
	"coherent": {}, "volatile": {}, "restrict": {}, "readonly": {}, "writeonly": {},
	"layout": {}, "centroid": {}, "flat": {}, "smooth": {}, "noperspective": {}, "patch": {}, "sample": {},
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {}, "switch": {}, "case": {}, "default": {},
	"if": {}, "else": {}, "subroutine": {}, "in": {}, "out": {}, "inout": {},
	"true": {}, "false": {}, "invariant": {}, "precise": {}, "discard": {}, "return": {}, "struct": {},
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {},

	// Reserved for future use
	"common": {}, "partition": {}, "active": {}, "asm": {}, "class": {}, "union": {}, "enum": {},
	"typedef": {}, "template": {}, "this": {}, "resource": {}, "goto": {},
	"inline": {}, "noinline": {}, "public": {}, "static": {}, "extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {}, "superp": {},
	"input": {}, "output": {}, "filter": {}, "sizeof": {}, "cast": {}, "namespace": {}, "using": {},

	// Built-in variables
	"gl_VertexID": {}, "gl_InstanceID": {}, "gl_Position": {}, "gl_PointSize": {},
	"gl_ClipDistance": {}, "gl_CullDistance": {}, "gl_PerVertex": {},
	"gl_FragCoord": {}, "gl_FrontFacing": {}, "gl_PointCoord": {}, "gl_SampleID": {},
	"gl_SamplePosition": {}, "gl_SampleMaskIn": {}, "gl_FragDepth": {}, "gl_SampleMask": {},
	"gl_Layer": {}, "gl_ViewportIndex": {}, "gl_HelperInvocation": {},
	"gl_NumWorkGroups": {}, "gl_WorkGroupSize": {}, "gl_WorkGroupID": {},
	"gl_LocalInvocationID": {}, "gl_GlobalInvocationID": {}, "gl_LocalInvocationIndex": {},
	"gl_PatchVerticesIn": {}, "gl_PrimitiveID": {}, "gl_InvocationID": {},
	"gl_TessLevelOuter": {}, "gl_TessLevelInner": {}, "gl_TessCoord": {}, "gl_PrimitiveIDIn": {},

	// Commonly-colliding built-in functions
	"main": {}, "pow": {}, "exp": {}, "log": {}, "sqrt": {}, "inversesqrt": {},
	"abs": {}, "sign": {}, "floor": {}, "ceil": {}, "fract": {}, "mod": {},
	"min": {}, "max": {}, "clamp": {}, "mix": {}, "step": {}, "smoothstep": {},
	"length": {}, "distance": {}, "dot": {}, "cross": {}, "normalize": {}, "reflect": {}, "refract": {},
	"transpose": {}, "determinant": {}, "inverse": {},
	"lessThan": {}, "lessThanEqual": {}, "greaterThan": {}, "greaterThanEqual": {}, "equal": {}, "notEqual": {},
	"any": {}, "all": {}, "not": {},
	"textureSize": {}, "texture": {}, "textureLod": {}, "texelFetch": {}, "textureGrad": {},
	"dFdx": {}, "dFdy": {}, "fwidth": {},
	"barrier": {}, "memoryBarrier": {}, "memoryBarrierShared": {}, "groupMemoryBarrier": {},
	"atomicAdd": {}, "atomicMin": {}, "atomicMax": {}, "atomicAnd": {}, "atomicOr": {}, "atomicXor": {},
	"atomicExchange": {}, "atomicCompSwap": {},
}

// isKeyword reports whether name is a GLSL keyword or reserved word.
func isKeyword(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeKeyword returns name unchanged unless it collides with a GLSL
// keyword or carries the reserved "gl_" prefix, in which case it is
// prefixed with an underscore.
func escapeKeyword(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isKeyword(name) || (len(name) >= 3 && name[:3] == "gl_") {
		return "_" + name
	}
	return name
}

// dataTypeGLSLNames maps every scalar DataType to its GLSL spelling. Vector
// and matrix shapes are derived from the base name in dataTypeToGLSL.
var dataTypeGLSLNames = map[typedenoter.DataType]string{
	typedenoter.Bool:   "bool",
	typedenoter.Int:    "int",
	typedenoter.UInt:   "uint",
	typedenoter.Half:   "float", // GLSL has no distinct half; mediump float carries the precision hint instead.
	typedenoter.Float:  "float",
	typedenoter.Double: "double",
}

// vectorPrefixes maps a scalar base type to its GLSL vector prefix.
var vectorPrefixes = map[typedenoter.DataType]string{
	typedenoter.Bool:   "bvec",
	typedenoter.Int:    "ivec",
	typedenoter.UInt:   "uvec",
	typedenoter.Half:   "vec",
	typedenoter.Float:  "vec",
	typedenoter.Double: "dvec",
}

// matrixPrefixes maps a scalar base type to its GLSL matrix prefix. GLSL
// only has float and double matrices; any other base degrades to "mat".
var matrixPrefixes = map[typedenoter.DataType]string{
	typedenoter.Double: "dmat",
}

// dataTypeToGLSL returns the GLSL spelling of a scalar, vector, or matrix DataType.
func dataTypeToGLSL(t typedenoter.DataType) string {
	base := typedenoter.BaseDataType(t)
	switch {
	case typedenoter.IsMatrixType(t):
		rows, cols := typedenoter.MatrixTypeDim(t)
		prefix, ok := matrixPrefixes[base]
		if !ok {
			prefix = "mat"
		}
		if rows == cols {
			return fmt.Sprintf("%s%d", prefix, cols)
		}
		return fmt.Sprintf("%s%dx%d", prefix, cols, rows)
	case typedenoter.IsVectorType(t):
		prefix, ok := vectorPrefixes[base]
		if !ok {
			prefix = "vec"
		}
		return fmt.Sprintf("%s%d", prefix, typedenoter.VectorTypeDim(t))
	default:
		if name, ok := dataTypeGLSLNames[base]; ok {
			return name
		}
		return "float"
	}
}

// samplerTypeToGLSL returns the GLSL sampler keyword for a SamplerType.
// GLSL has no bare "sampler" object; a HLSL SamplerState/SamplerComparisonState
// with nothing bound to a texture yet renders as an opaque sampler value
// combined with a texture at the call site by rewriteTextureMethod, so
// this name only appears in comments and diagnostics, never emitted code.
func samplerTypeToGLSL(t typedenoter.SamplerType) string {
	if t == typedenoter.SamplerComparisonState {
		return "samplerShadow"
	}
	return "sampler"
}

// textureTypeToGLSL returns the GLSL sampler type name a BufferType texture
// resource binds to, given whether the texture carries a shadow comparison
// (bound via a SamplerComparisonState at a Sample/SampleCmp call site).
func textureTypeToGLSL(t typedenoter.BufferType, shadow bool) string {
	switch t {
	case typedenoter.BufferTexture1D:
		if shadow {
			return "sampler1DShadow"
		}
		return "sampler1D"
	case typedenoter.BufferTexture1DArray:
		if shadow {
			return "sampler1DArrayShadow"
		}
		return "sampler1DArray"
	case typedenoter.BufferTexture2D:
		if shadow {
			return "sampler2DShadow"
		}
		return "sampler2D"
	case typedenoter.BufferTexture2DArray:
		if shadow {
			return "sampler2DArrayShadow"
		}
		return "sampler2DArray"
	case typedenoter.BufferTexture2DMS:
		return "sampler2DMS"
	case typedenoter.BufferTexture2DMSArray:
		return "sampler2DMSArray"
	case typedenoter.BufferTexture3D:
		return "sampler3D"
	case typedenoter.BufferTextureCube:
		if shadow {
			return "samplerCubeShadow"
		}
		return "samplerCube"
	case typedenoter.BufferTextureCubeArray:
		if shadow {
			return "samplerCubeArrayShadow"
		}
		return "samplerCubeArray"
	case typedenoter.BufferRWTexture1D:
		return "image1D"
	case typedenoter.BufferRWTexture1DArray:
		return "image1DArray"
	case typedenoter.BufferRWTexture2D:
		return "image2D"
	case typedenoter.BufferRWTexture2DArray:
		return "image2DArray"
	case typedenoter.BufferRWTexture3D:
		return "image3D"
	case typedenoter.BufferGenericBuffer, typedenoter.BufferStructuredBuffer,
		typedenoter.BufferAppendStructuredBuffer, typedenoter.BufferConsumeStructuredBuffer:
		return "buffer"
	case typedenoter.BufferRWBuffer, typedenoter.BufferRWStructuredBuffer:
		return "buffer"
	case typedenoter.BufferByteAddressBuffer, typedenoter.BufferRWByteAddressBuffer:
		return "buffer"
	default:
		return "sampler2D"
	}
}
