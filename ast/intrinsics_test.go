package ast

import (
	"testing"

	"github.com/gogpu/xsc/typedenoter"
)

func TestIntrinsicString(t *testing.T) {
	if got := IntrinsicMul.String(); got != "mul" {
		t.Errorf("IntrinsicMul.String() = %q, want mul", got)
	}
	if got := IntrinsicTextureSampleCmpLevelZero.String(); got != "SampleCmpLevelZero" {
		t.Errorf("IntrinsicTextureSampleCmpLevelZero.String() = %q, want SampleCmpLevelZero", got)
	}
	if got := Intrinsic(9999).String(); got != "<unknown intrinsic>" {
		t.Errorf("unknown intrinsic String() = %q, want <unknown intrinsic>", got)
	}
}

func TestIntrinsicByName(t *testing.T) {
	id, ok := IntrinsicByName("saturate")
	if !ok || id != IntrinsicSaturate {
		t.Errorf("IntrinsicByName(saturate) = %v, %v, want IntrinsicSaturate, true", id, ok)
	}
	if _, ok := IntrinsicByName("NotAnIntrinsic"); ok {
		t.Error("IntrinsicByName should fail for an unrecognized name")
	}
}

func TestIntrinsicUsageKey(t *testing.T) {
	u1 := IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4x4, typedenoter.Float4}}
	u2 := IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4x4, typedenoter.Float4}}
	if u1.Key() != u2.Key() {
		t.Error("identical usages should produce identical keys")
	}

	u3 := IntrinsicUsage{Intrinsic: IntrinsicMul, ArgTypes: []typedenoter.DataType{typedenoter.Float4, typedenoter.Float4x4}}
	if u3.Key() == u1.Key() {
		t.Error("usages with swapped argument shapes should produce distinct keys")
	}
}
