package ast

import (
	"testing"

	"github.com/gogpu/xsc/typedenoter"
)

func TestRegisterIntrinsicUsageMergesArgTypes(t *testing.T) {
	p := NewProgram()
	p.RegisterIntrinsicUsage(IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4x4}})
	p.RegisterIntrinsicUsage(IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4}})
	p.RegisterIntrinsicUsage(IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4x4}})

	usage := p.FetchIntrinsicUsage(IntrinsicMul)
	if usage == nil {
		t.Fatal("FetchIntrinsicUsage(IntrinsicMul) = nil, want a merged usage")
	}
	if len(usage.ArgTypes) != 2 {
		t.Errorf("merged ArgTypes = %v, want 2 distinct entries", usage.ArgTypes)
	}
}

func TestFetchIntrinsicUsageUnregistered(t *testing.T) {
	p := NewProgram()
	if p.FetchIntrinsicUsage(IntrinsicSaturate) != nil {
		t.Error("FetchIntrinsicUsage should return nil for an intrinsic never registered")
	}
}

func TestUsedIntrinsics(t *testing.T) {
	p := NewProgram()
	p.RegisterIntrinsicUsage(IntrinsicUsage{Intrinsic: IntrinsicMul})
	p.RegisterIntrinsicUsage(IntrinsicUsage{Intrinsic: IntrinsicSaturate})

	used := p.UsedIntrinsics()
	if len(used) != 2 {
		t.Fatalf("UsedIntrinsics() = %v, want 2 entries", used)
	}
}
