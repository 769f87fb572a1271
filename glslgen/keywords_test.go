package glslgen

import (
	"testing"

	"github.com/gogpu/xsc/typedenoter"
)

func TestIsKeyword(t *testing.T) {
	if !isKeyword("float") || !isKeyword("gl_Position") || !isKeyword("discard") {
		t.Error("float, gl_Position, and discard should all be recognized GLSL keywords")
	}
	if isKeyword("coord") || isKeyword("VertexMain") {
		t.Error("coord and VertexMain should not be recognized as keywords")
	}
}

func TestEscapeKeyword(t *testing.T) {
	tests := []struct{ in, want string }{
		{"float", "_float"},
		{"gl_Custom", "_gl_Custom"},
		{"coord", "coord"},
		{"", "_unnamed"},
	}
	for _, tt := range tests {
		if got := escapeKeyword(tt.in); got != tt.want {
			t.Errorf("escapeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDataTypeToGLSLScalarsAndVectors(t *testing.T) {
	tests := []struct {
		dt   typedenoter.DataType
		want string
	}{
		{typedenoter.Float, "float"},
		{typedenoter.Half, "float"},
		{typedenoter.Double, "double"},
		{typedenoter.Int, "int"},
		{typedenoter.UInt, "uint"},
		{typedenoter.Bool, "bool"},
		{typedenoter.Float4, "vec4"},
		{typedenoter.Int3, "ivec3"},
		{typedenoter.UInt2, "uvec2"},
		{typedenoter.Bool2, "bvec2"},
		{typedenoter.Double4, "dvec4"},
	}
	for _, tt := range tests {
		if got := dataTypeToGLSL(tt.dt); got != tt.want {
			t.Errorf("dataTypeToGLSL(%v) = %q, want %q", tt.dt, got, tt.want)
		}
	}
}

func TestDataTypeToGLSLMatrices(t *testing.T) {
	tests := []struct {
		dt   typedenoter.DataType
		want string
	}{
		{typedenoter.Float4x4, "mat4"},
		{typedenoter.Float3x4, "mat4x3"},
		{typedenoter.Double4x4, "dmat4"},
	}
	for _, tt := range tests {
		if got := dataTypeToGLSL(tt.dt); got != tt.want {
			t.Errorf("dataTypeToGLSL(%v) = %q, want %q", tt.dt, got, tt.want)
		}
	}
}

func TestSamplerTypeToGLSL(t *testing.T) {
	if got := samplerTypeToGLSL(typedenoter.SamplerComparisonState); got != "samplerShadow" {
		t.Errorf("samplerTypeToGLSL(SamplerComparisonState) = %q, want samplerShadow", got)
	}
	if got := samplerTypeToGLSL(typedenoter.SamplerState); got != "sampler" {
		t.Errorf("samplerTypeToGLSL(SamplerState) = %q, want sampler", got)
	}
}

func TestTextureTypeToGLSL(t *testing.T) {
	tests := []struct {
		bt     typedenoter.BufferType
		shadow bool
		want   string
	}{
		{typedenoter.BufferTexture2D, false, "sampler2D"},
		{typedenoter.BufferTexture2D, true, "sampler2DShadow"},
		{typedenoter.BufferTextureCubeArray, true, "samplerCubeArrayShadow"},
		{typedenoter.BufferRWTexture3D, false, "image3D"},
		{typedenoter.BufferStructuredBuffer, false, "buffer"},
	}
	for _, tt := range tests {
		if got := textureTypeToGLSL(tt.bt, tt.shadow); got != tt.want {
			t.Errorf("textureTypeToGLSL(%v, %v) = %q, want %q", tt.bt, tt.shadow, got, tt.want)
		}
	}
}
