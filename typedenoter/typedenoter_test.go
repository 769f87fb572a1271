package typedenoter

import "testing"

type fakeStruct struct{ name string }

func (f *fakeStruct) StructIdent() string { return f.name }

type fakeAlias struct {
	name   string
	target *Denoter
}

func (f *fakeAlias) AliasIdent() string    { return f.name }
func (f *fakeAlias) AliasedType() *Denoter { return f.target }

func TestDenoterClassifiers(t *testing.T) {
	if !Void().IsVoid() {
		t.Error("Void() should be IsVoid")
	}
	if !Base(Float4).IsBase() {
		t.Error("Base(Float4) should be IsBase")
	}
	if !Buffer(BufferRWBuffer, Base(Float)).IsBuffer() {
		t.Error("Buffer(...) should be IsBuffer")
	}
	if !Sampler(SamplerState).IsSampler() {
		t.Error("Sampler(...) should be IsSampler")
	}
	if !Texture(BufferTexture2D, nil).IsTexture() {
		t.Error("Texture(...) should be IsTexture")
	}
	s := &fakeStruct{name: "Vertex"}
	if !Struct(s).IsStruct() {
		t.Error("Struct(...) should be IsStruct")
	}
	if !Array(Base(Float), []int{4}).IsArray() {
		t.Error("Array(...) should be IsArray")
	}
	a := &fakeAlias{name: "MyFloat", target: Base(Float)}
	if !Alias(a).IsAlias() {
		t.Error("Alias(...) should be IsAlias")
	}
}

func TestDenoterGetAndGetFully(t *testing.T) {
	inner := Base(Float3)
	outer := Alias(&fakeAlias{name: "Vec3", target: inner})
	doubleOuter := Alias(&fakeAlias{name: "Position", target: outer})

	if got := outer.Get(); got != inner {
		t.Errorf("outer.Get() did not resolve to inner")
	}
	if got := doubleOuter.GetFully(); got != inner {
		t.Errorf("doubleOuter.GetFully() did not resolve through both alias layers to inner")
	}
	if got := inner.Get(); got != inner {
		t.Errorf("Get() on a non-alias Denoter should return itself")
	}
}

func TestDenoterIdent(t *testing.T) {
	s := Struct(&fakeStruct{name: "Vertex"})
	if s.Ident() != "Vertex" {
		t.Errorf("Struct Ident() = %q, want Vertex", s.Ident())
	}
	a := Alias(&fakeAlias{name: "MyFloat", target: Base(Float)})
	if a.Ident() != "MyFloat" {
		t.Errorf("Alias Ident() = %q, want MyFloat", a.Ident())
	}
	if Base(Float).Ident() != "" {
		t.Error("Base Ident() should be empty")
	}
}

func TestDenoterSubscript(t *testing.T) {
	v := Base(Float4)
	dt, err := v.Subscript("xyz")
	if err != nil {
		t.Fatalf("Subscript(xyz) error: %v", err)
	}
	if dt != Float3 {
		t.Errorf("Subscript(xyz) = %v, want Float3", dt)
	}

	m := Base(Float4x4)
	dt, err = m.Subscript("_m00_m11")
	if err != nil {
		t.Fatalf("Subscript(_m00_m11) error: %v", err)
	}
	if dt != Float2 {
		t.Errorf("Subscript(_m00_m11) = %v, want Float2", dt)
	}

	if _, err := Struct(&fakeStruct{name: "Vertex"}).Subscript("xyz"); err == nil {
		t.Error("Subscript on a struct Denoter should fail")
	}
}

func TestDenoterSubscriptThroughAlias(t *testing.T) {
	aliased := Alias(&fakeAlias{name: "Vec4", target: Base(Float4)})
	dt, err := aliased.Subscript("xy")
	if err != nil {
		t.Fatalf("Subscript through alias error: %v", err)
	}
	if dt != Float2 {
		t.Errorf("Subscript through alias = %v, want Float2", dt)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Base(Float4), Base(Float4)) {
		t.Error("two identical Base denoters should be Equal")
	}
	if Equal(Base(Float4), Base(Int4)) {
		t.Error("Float4 and Int4 should not be Equal")
	}
	if !Equal(Void(), Void()) {
		t.Error("Void() and Void() should be Equal")
	}

	s := &fakeStruct{name: "Vertex"}
	if !Equal(Struct(s), Struct(s)) {
		t.Error("Struct denoters over the same declaration should be Equal")
	}
	if Equal(Struct(s), Struct(&fakeStruct{name: "Vertex"})) {
		t.Error("Struct denoters over distinct declarations should not be Equal even with the same name")
	}

	if !Equal(Array(Base(Float), []int{4}), Array(Base(Float), []int{4})) {
		t.Error("identical array denoters should be Equal")
	}
	if Equal(Array(Base(Float), []int{4}), Array(Base(Float), []int{3})) {
		t.Error("arrays with differing dims should not be Equal")
	}

	aliased := Alias(&fakeAlias{name: "MyFloat", target: Base(Float)})
	if !Equal(aliased, Base(Float)) {
		t.Error("an alias should be Equal to its resolved target")
	}

	if Equal(nil, Base(Float)) || Equal(Base(Float), nil) {
		t.Error("a nil Denoter should never Equal a non-nil one")
	}
	if !Equal(nil, nil) {
		t.Error("nil should Equal nil")
	}
}
