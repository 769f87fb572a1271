package ast

import "github.com/gogpu/xsc/typedenoter"

// Intrinsic enumerates the HLSL intrinsic functions and texture/buffer
// methods the reference analyzer records usage of and the converter and
// code generator must special-case. Grouped the way the converter's rewrite
// table groups them: arithmetic, texture sampling, atomics, and control.
type Intrinsic int

const (
	IntrinsicUndefined Intrinsic = iota

	// Arithmetic and common math. The converter rewrites mul and rcp to
	// operators and records a helper for clip; the others keep their HLSL names.
	IntrinsicMul
	IntrinsicRcp
	IntrinsicSaturate
	IntrinsicLerp
	IntrinsicClip
	IntrinsicDdx
	IntrinsicDdy
	IntrinsicDdxCoarse
	IntrinsicDdyCoarse
	IntrinsicDdxFine
	IntrinsicDdyFine
	IntrinsicFrac
	IntrinsicRsqrt
	IntrinsicTranspose
	IntrinsicDeterminant

	// Atomics, rewritten to GLSL atomic* free functions.
	IntrinsicInterlockedAdd
	IntrinsicInterlockedAnd
	IntrinsicInterlockedOr
	IntrinsicInterlockedXor
	IntrinsicInterlockedMin
	IntrinsicInterlockedMax
	IntrinsicInterlockedExchange
	IntrinsicInterlockedCompareExchange

	// Texture object methods, rewritten to GLSL texture* free functions
	// (all but GatherRed, which the converter leaves as it is).
	IntrinsicTextureSample
	IntrinsicTextureSampleLevel
	IntrinsicTextureSampleBias
	IntrinsicTextureSampleGrad
	IntrinsicTextureSampleCmp
	IntrinsicTextureSampleCmpLevelZero
	IntrinsicTextureLoad
	IntrinsicTextureGetDimensions
	IntrinsicTextureGatherRed

	// Barriers and control; the converter does not rewrite these.
	IntrinsicGroupMemoryBarrier
	IntrinsicGroupMemoryBarrierWithGroupSync
	IntrinsicDeviceMemoryBarrier
	IntrinsicDeviceMemoryBarrierWithGroupSync
	IntrinsicAllMemoryBarrier
	IntrinsicAllMemoryBarrierWithGroupSync
)

var intrinsicNames = map[Intrinsic]string{
	IntrinsicMul:                               "mul",
	IntrinsicRcp:                               "rcp",
	IntrinsicSaturate:                          "saturate",
	IntrinsicLerp:                              "lerp",
	IntrinsicClip:                              "clip",
	IntrinsicDdx:                               "ddx",
	IntrinsicDdy:                               "ddy",
	IntrinsicDdxCoarse:                         "ddx_coarse",
	IntrinsicDdyCoarse:                         "ddy_coarse",
	IntrinsicDdxFine:                           "ddx_fine",
	IntrinsicDdyFine:                           "ddy_fine",
	IntrinsicFrac:                              "frac",
	IntrinsicRsqrt:                             "rsqrt",
	IntrinsicTranspose:                         "transpose",
	IntrinsicDeterminant:                       "determinant",
	IntrinsicInterlockedAdd:                    "InterlockedAdd",
	IntrinsicInterlockedAnd:                    "InterlockedAnd",
	IntrinsicInterlockedOr:                     "InterlockedOr",
	IntrinsicInterlockedXor:                    "InterlockedXor",
	IntrinsicInterlockedMin:                    "InterlockedMin",
	IntrinsicInterlockedMax:                    "InterlockedMax",
	IntrinsicInterlockedExchange:               "InterlockedExchange",
	IntrinsicInterlockedCompareExchange:        "InterlockedCompareExchange",
	IntrinsicTextureSample:                     "Sample",
	IntrinsicTextureSampleLevel:                "SampleLevel",
	IntrinsicTextureSampleBias:                 "SampleBias",
	IntrinsicTextureSampleGrad:                 "SampleGrad",
	IntrinsicTextureSampleCmp:                  "SampleCmp",
	IntrinsicTextureSampleCmpLevelZero:         "SampleCmpLevelZero",
	IntrinsicTextureLoad:                       "Load",
	IntrinsicTextureGetDimensions:              "GetDimensions",
	IntrinsicTextureGatherRed:                  "GatherRed",
	IntrinsicGroupMemoryBarrier:                "GroupMemoryBarrier",
	IntrinsicGroupMemoryBarrierWithGroupSync:   "GroupMemoryBarrierWithGroupSync",
	IntrinsicDeviceMemoryBarrier:                "DeviceMemoryBarrier",
	IntrinsicDeviceMemoryBarrierWithGroupSync:   "DeviceMemoryBarrierWithGroupSync",
	IntrinsicAllMemoryBarrier:                   "AllMemoryBarrier",
	IntrinsicAllMemoryBarrierWithGroupSync:      "AllMemoryBarrierWithGroupSync",
}

// String returns the intrinsic's HLSL spelling.
func (i Intrinsic) String() string {
	if name, ok := intrinsicNames[i]; ok {
		return name
	}
	return "<unknown intrinsic>"
}

// IntrinsicByName looks up an Intrinsic by its HLSL spelling. Every name in
// the table matches, texture method names ("Sample", "Load", ...) included.
func IntrinsicByName(name string) (Intrinsic, bool) {
	for id, n := range intrinsicNames {
		if n == name {
			return id, true
		}
	}
	return IntrinsicUndefined, false
}

// IntrinsicUsage records one observed call site of an intrinsic: the
// argument base types actually passed (vector and matrix shapes are not
// kept), which the extension agent reads, e.g. to detect double-precision
// arguments.
type IntrinsicUsage struct {
	Intrinsic Intrinsic
	ArgTypes  []typedenoter.DataType
}

// Key returns a string uniquely identifying this usage's argument shape,
// suitable as a map key for deduplicating identical call-site signatures.
func (u IntrinsicUsage) Key() string {
	key := u.Intrinsic.String()
	for _, t := range u.ArgTypes {
		key += "|" + t.String()
	}
	return key
}
