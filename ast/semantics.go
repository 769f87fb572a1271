package ast

import "strconv"

// Semantic is the parsed form of an HLSL semantic attached to a function
// parameter, return value, or struct field: a name and, for indexed
// semantics such as SV_Target2 or TEXCOORD3, a trailing index.
type Semantic struct {
	// Name is the semantic identifier with any trailing digits stripped and
	// upper-cased (e.g. "SV_TARGET", "TEXCOORD").
	Name string
	// Index is the trailing digit group, or 0 if the semantic carries none.
	Index int
}

// ParseSemantic splits a raw semantic identifier into its name and trailing index.
func ParseSemantic(raw string) Semantic {
	i := len(raw)
	for i > 0 && raw[i-1] >= '0' && raw[i-1] <= '9' {
		i--
	}
	name := upperASCII(raw[:i])
	if i == len(raw) {
		return Semantic{Name: name}
	}
	idx, err := strconv.Atoi(raw[i:])
	if err != nil {
		return Semantic{Name: upperASCII(raw)}
	}
	return Semantic{Name: name, Index: idx}
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// IsSystemValue reports whether the semantic is an SV_* system-value
// semantic, as opposed to a user-defined interpolant semantic.
func (s Semantic) IsSystemValue() bool {
	return len(s.Name) >= 3 && s.Name[:3] == "SV_"
}

// String reconstructs the semantic's spelling from its upper-cased Name and
// Index, e.g. "SV_TARGET2".
func (s Semantic) String() string {
	if s.Index == 0 {
		return s.Name
	}
	return s.Name + strconv.Itoa(s.Index)
}

// Well-known system-value semantic names, normalized per ParseSemantic.
const (
	SVPosition              = "SV_POSITION"
	SVTarget                = "SV_TARGET"
	SVDepth                 = "SV_DEPTH"
	SVVertexID              = "SV_VERTEXID"
	SVInstanceID            = "SV_INSTANCEID"
	SVIsFrontFace           = "SV_ISFRONTFACE"
	SVDispatchThreadID      = "SV_DISPATCHTHREADID"
	SVGroupID               = "SV_GROUPID"
	SVGroupThreadID         = "SV_GROUPTHREADID"
	SVGroupIndex            = "SV_GROUPINDEX"
	SVClipDistance          = "SV_CLIPDISTANCE"
	SVCullDistance          = "SV_CULLDISTANCE"
	SVPrimitiveID           = "SV_PRIMITIVEID"
	SVRenderTargetArrayIdx  = "SV_RENDERTARGETARRAYINDEX"
	SVSampleIndex           = "SV_SAMPLEINDEX"
	SVOutputControlPointID  = "SV_OUTPUTCONTROLPOINTID"
	SVDomainLocation        = "SV_DOMAINLOCATION"
	SVTessFactor            = "SV_TESSFACTOR"
	SVInsideTessFactor      = "SV_INSIDETESSFACTOR"
)

// Stage identifies the shader pipeline stage a Program is compiled for.
type Stage int

const (
	StageVertex Stage = iota
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
	StageCompute
)

// String returns the stage's lower-case name, as used in diagnostics and
// in choosing which GLSL built-ins are in scope.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageTessControl:
		return "tessellation control"
	case StageTessEvaluation:
		return "tessellation evaluation"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}
