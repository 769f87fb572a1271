package ast

import "github.com/gogpu/xsc/typedenoter"

// LayoutTessControl holds the layout metadata a tessellation-control
// (hull) shader's entry point carries: its output patch size, the maximum
// tessellation factor, and a link to the patch-constant function that
// computes per-patch tessellation factors.
type LayoutTessControl struct {
	OutputControlPoints   int
	MaxTessFactor         float64
	PatchConstFunctionRef *FunctionDecl
}

// TessPartitioning enumerates GL_TESS_PARTITIONING values for a
// tessellation-evaluation (domain) shader.
type TessPartitioning int

const (
	TessPartitioningUndefined TessPartitioning = iota
	TessPartitioningInteger
	TessPartitioningFractionalEven
	TessPartitioningFractionalOdd
	TessPartitioningPow2
)

// TessDomain enumerates the tessellation patch domain.
type TessDomain int

const (
	TessDomainUndefined TessDomain = iota
	TessDomainTriangle
	TessDomainQuad
	TessDomainIsoline
)

// TessOutputTopology enumerates the winding/point-mode of generated primitives.
type TessOutputTopology int

const (
	TessOutputUndefined TessOutputTopology = iota
	TessOutputPoint
	TessOutputLine
	TessOutputTriangleCW
	TessOutputTriangleCCW
)

// LayoutTessEvaluation holds a tessellation-evaluation shader's domain attributes.
type LayoutTessEvaluation struct {
	Domain         TessDomain
	Partitioning   TessPartitioning
	OutputTopology TessOutputTopology
}

// GeometryPrimitive enumerates a geometry shader's input primitive type.
type GeometryPrimitive int

const (
	GeometryPrimitiveUndefined GeometryPrimitive = iota
	GeometryPrimitivePoint
	GeometryPrimitiveLine
	GeometryPrimitiveLineAdj
	GeometryPrimitiveTriangle
	GeometryPrimitiveTriangleAdj
)

// LayoutGeometry holds a geometry shader's input/output primitive metadata.
// OutputPrimitive must be one of the three GLSL stream buffer types
// (PointStream, LineStream, TriangleStream).
type LayoutGeometry struct {
	InputPrimitive  GeometryPrimitive
	OutputPrimitive typedenoter.BufferType
	MaxVertices     int
}

// LayoutFragment holds a fragment shader's built-in-input usage metadata,
// filled in by whoever builds the Program (the reference analyzer does not
// set it) and consulted by the extension agent and the generator.
type LayoutFragment struct {
	FragCoordUsed      bool
	PixelCenterInteger bool
	EarlyDepthStencil  bool
}

// LayoutCompute holds a compute shader's [numthreads(x, y, z)] attribute.
type LayoutCompute struct {
	NumThreads [3]int
}

// Program is the root of the AST: the full set of global statements parsed
// from one HLSL translation unit, plus the cross-cutting metadata the
// reference analyzer, converter, and generator attach as they run:
// the resolved entry point, the set of intrinsics the live code actually
// calls (with observed argument shapes), and per-stage layout attributes.
type Program struct {
	Node

	GlobalStmnts []Stmt

	// DisabledAST holds nodes set aside from code generation. The converter
	// does not add to it: statements it flags DisableCodeGen stay where they
	// are in their enclosing block.
	DisabledAST []Stmt

	EntryPointRef *FunctionDecl

	usedIntrinsics map[Intrinsic]*IntrinsicUsage

	LayoutTessControl    LayoutTessControl
	LayoutTessEvaluation LayoutTessEvaluation
	LayoutGeometry       LayoutGeometry
	LayoutFragment       LayoutFragment
	LayoutCompute        LayoutCompute
}

// NewProgram returns an empty Program ready for RegisterIntrinsicUsage calls.
func NewProgram() *Program {
	return &Program{usedIntrinsics: make(map[Intrinsic]*IntrinsicUsage)}
}

// RegisterIntrinsicUsage records that the live code calls intrinsic with the
// given argument base types, merging into any usage already recorded for
// that intrinsic (the extension agent only needs to know the union of
// observed shapes, not one entry per call site).
func (p *Program) RegisterIntrinsicUsage(usage IntrinsicUsage) {
	if p.usedIntrinsics == nil {
		p.usedIntrinsics = make(map[Intrinsic]*IntrinsicUsage)
	}
	if existing, ok := p.usedIntrinsics[usage.Intrinsic]; ok {
		existing.ArgTypes = mergeArgTypes(existing.ArgTypes, usage.ArgTypes)
		return
	}
	u := usage
	p.usedIntrinsics[usage.Intrinsic] = &u
}

func mergeArgTypes(existing, next []typedenoter.DataType) []typedenoter.DataType {
	for _, t := range next {
		found := false
		for _, e := range existing {
			if e == t {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, t)
		}
	}
	return existing
}

// FetchIntrinsicUsage returns the recorded usage for intrinsic, or nil if
// the reference analyzer never observed a live call to it.
func (p *Program) FetchIntrinsicUsage(intrinsic Intrinsic) *IntrinsicUsage {
	return p.usedIntrinsics[intrinsic]
}

// UsedIntrinsics returns every intrinsic the reference analyzer found at
// least one live call to.
func (p *Program) UsedIntrinsics() []Intrinsic {
	ids := make([]Intrinsic, 0, len(p.usedIntrinsics))
	for id := range p.usedIntrinsics {
		ids = append(ids, id)
	}
	return ids
}
