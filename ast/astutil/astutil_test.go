package astutil

import (
	"testing"

	"github.com/gogpu/xsc/ast"
)

func TestLoadUnknownFixture(t *testing.T) {
	if _, err := Load("does_not_exist"); err == nil {
		t.Fatal("Load should fail for an unregistered fixture name")
	}
}

func TestNamesIncludesBuiltinFixtures(t *testing.T) {
	names := Names()
	want := []string{"compute_minimal", "fragment_minimal", "vertex_minimal"}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, w)
		}
	}
}

func TestLoadVertexMinimal(t *testing.T) {
	fx, err := Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if fx.Stage != ast.StageVertex {
		t.Errorf("Stage = %v, want StageVertex", fx.Stage)
	}
	if fx.Entry != "VertexMain" {
		t.Errorf("Entry = %q, want VertexMain", fx.Entry)
	}
	if fx.Program.EntryPointRef == nil || fx.Program.EntryPointRef.Ident != "VertexMain" {
		t.Error("EntryPointRef should resolve to the VertexMain function")
	}
}

func TestLoadFragmentMinimal(t *testing.T) {
	fx, err := Load("fragment_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if fx.Stage != ast.StageFragment {
		t.Errorf("Stage = %v, want StageFragment", fx.Stage)
	}
	if fx.Entry != "PS" {
		t.Errorf("Entry = %q, want PS", fx.Entry)
	}
}

func TestLoadComputeMinimal(t *testing.T) {
	fx, err := Load("compute_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if fx.Stage != ast.StageCompute {
		t.Errorf("Stage = %v, want StageCompute", fx.Stage)
	}
	if fx.Program.LayoutCompute.NumThreads != [3]int{8, 8, 1} {
		t.Errorf("LayoutCompute.NumThreads = %v, want [8 8 1]", fx.Program.LayoutCompute.NumThreads)
	}
}

func TestLoadReturnsAFreshProgramEachTime(t *testing.T) {
	fx1, err := Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	fx2, err := Load("vertex_minimal")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if fx1.Program == fx2.Program {
		t.Error("two Load calls for the same fixture should return distinct *ast.Program values")
	}

	fx1.Program.EntryPointRef.Ident = "Mutated"
	if fx2.Program.EntryPointRef.Ident == "Mutated" {
		t.Error("mutating one loaded fixture's Program should not affect another Load call's result")
	}
}

func TestRegisterCustomFixture(t *testing.T) {
	Register("astutil_test_custom", func() *Fixture {
		return &Fixture{Program: ast.NewProgram(), Stage: ast.StageFragment, Entry: "Custom"}
	})
	fx, err := Load("astutil_test_custom")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if fx.Entry != "Custom" {
		t.Errorf("Entry = %q, want Custom", fx.Entry)
	}
}
