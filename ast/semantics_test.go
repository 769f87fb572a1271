package ast

import "testing"

func TestParseSemantic(t *testing.T) {
	tests := []struct {
		raw       string
		wantName  string
		wantIndex int
	}{
		{"SV_Target2", "SV_TARGET", 2},
		{"SV_Target", "SV_TARGET", 0},
		{"TEXCOORD3", "TEXCOORD", 3},
		{"POSITION", "POSITION", 0},
		{"sv_position", "SV_POSITION", 0},
	}
	for _, tt := range tests {
		got := ParseSemantic(tt.raw)
		if got.Name != tt.wantName || got.Index != tt.wantIndex {
			t.Errorf("ParseSemantic(%q) = {%q, %d}, want {%q, %d}", tt.raw, got.Name, got.Index, tt.wantName, tt.wantIndex)
		}
	}
}

func TestSemanticIsSystemValue(t *testing.T) {
	if !ParseSemantic("SV_Target0").IsSystemValue() {
		t.Error("SV_Target0 should be a system value")
	}
	if ParseSemantic("TEXCOORD0").IsSystemValue() {
		t.Error("TEXCOORD0 should not be a system value")
	}
}

func TestSemanticString(t *testing.T) {
	if got := ParseSemantic("SV_Target2").String(); got != "SV_TARGET2" {
		t.Errorf("String() = %q, want SV_TARGET2", got)
	}
	if got := ParseSemantic("POSITION").String(); got != "POSITION" {
		t.Errorf("String() = %q, want POSITION", got)
	}
}

func TestStageString(t *testing.T) {
	tests := map[Stage]string{
		StageVertex:          "vertex",
		StageFragment:        "fragment",
		StageCompute:         "compute",
		StageGeometry:        "geometry",
		StageTessControl:     "tessellation control",
		StageTessEvaluation:  "tessellation evaluation",
	}
	for stage, want := range tests {
		if got := stage.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(stage), got, want)
		}
	}
}
