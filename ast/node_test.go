package ast

import "testing"

func TestNodeFlags(t *testing.T) {
	var n Node

	if n.IsReachable() || n.IsDeadCode() || n.IsBuildIn() || n.DisableCodeGen() {
		t.Fatal("a fresh Node should have no flags set")
	}

	n.SetReachable()
	if !n.IsReachable() {
		t.Error("SetReachable should set IsReachable")
	}

	n.SetDeadCode()
	if !n.IsDeadCode() {
		t.Error("SetDeadCode should set IsDeadCode")
	}
	if !n.IsReachable() {
		t.Error("SetDeadCode should not clear IsReachable")
	}

	n.SetBuildIn()
	n.SetDisableCodeGen()
	if !n.IsBuildIn() || !n.DisableCodeGen() {
		t.Error("SetBuildIn/SetDisableCodeGen should both stick independently")
	}
}

func TestSourceAreaString(t *testing.T) {
	a := SourceArea{File: "shader.hlsl", Row: 4, Column: 2}
	if got := a.String(); got != "shader.hlsl:4:2" {
		t.Errorf("SourceArea.String() = %q, want shader.hlsl:4:2", got)
	}
	noFile := SourceArea{Row: 1, Column: 1}
	if got := noFile.String(); got != "1:1" {
		t.Errorf("SourceArea.String() with no file = %q, want 1:1", got)
	}
}
