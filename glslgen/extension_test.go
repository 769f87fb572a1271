package glslgen

import (
	"testing"

	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/report"
)

func TestResolveNoRequirementsLeavesVersionUnchanged(t *testing.T) {
	program := ast.NewProgram()
	agent := newExtensionAgent(DefaultOptions(), nil)
	res := agent.resolve(program)

	if res.version != GLSL330 {
		t.Errorf("version = %v, want GLSL330 unchanged", res.version)
	}
	if len(res.extensions) != 0 {
		t.Errorf("extensions = %v, want none", res.extensions)
	}
}

func TestResolveExplicitBindingAddsExtensionBelowMinVersion(t *testing.T) {
	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{
		&ast.UniformBufferDecl{SlotRegisters: []ast.Register{{Slot: 0}}},
	}
	opts := Options{Version: GLSL330, Formatting: DefaultFormatting(), Extensions: true}
	agent := newExtensionAgent(opts, nil)
	res := agent.resolve(program)

	if res.version != GLSL330 {
		t.Errorf("version = %v, want GLSL330 (extension should cover it)", res.version)
	}
	found := false
	for _, e := range res.extensions {
		if e == "GL_ARB_shading_language_420pack" {
			found = true
		}
	}
	if !found {
		t.Errorf("extensions = %v, want GL_ARB_shading_language_420pack", res.extensions)
	}
}

func TestResolveExplicitBindingReportsVersionMismatchWhenExtensionsDisallowed(t *testing.T) {
	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{
		&ast.UniformBufferDecl{SlotRegisters: []ast.Register{{Slot: 0}}},
	}
	sink := &report.Sink{}
	opts := Options{Version: GLSL330, Formatting: DefaultFormatting(), Extensions: false}
	agent := newExtensionAgent(opts, sink)
	agent.resolve(program)

	if !sink.HasErrors() {
		t.Fatal("expected a VersionMismatch diagnostic when extensions are disallowed and the version is too low")
	}
}

func TestResolveAlreadyAtMinVersionAddsNoExtension(t *testing.T) {
	program := ast.NewProgram()
	program.GlobalStmnts = []ast.Stmt{
		&ast.UniformBufferDecl{SlotRegisters: []ast.Register{{Slot: 0}}},
	}
	opts := Options{Version: GLSL450, Formatting: DefaultFormatting(), Extensions: true}
	agent := newExtensionAgent(opts, nil)
	res := agent.resolve(program)

	if len(res.extensions) != 0 {
		t.Errorf("extensions = %v, want none since GLSL450 already satisfies the requirement", res.extensions)
	}
	if res.version != GLSL450 {
		t.Errorf("version = %v, want unchanged GLSL450", res.version)
	}
}

func TestResolveAtomicsUsage(t *testing.T) {
	program := ast.NewProgram()
	program.RegisterIntrinsicUsage(ast.IntrinsicUsage{Intrinsic: ast.IntrinsicInterlockedAdd})
	opts := Options{Version: GLSL150, Formatting: DefaultFormatting(), Extensions: true}
	agent := newExtensionAgent(opts, nil)
	res := agent.resolve(program)

	found := false
	for _, e := range res.extensions {
		if e == "GL_ARB_shader_atomic_counters" {
			found = true
		}
	}
	if !found {
		t.Errorf("extensions = %v, want GL_ARB_shader_atomic_counters for atomic intrinsic usage", res.extensions)
	}
}
