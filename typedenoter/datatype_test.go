package typedenoter

import (
	"sync"
	"testing"
)

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{Bool, "bool"},
		{Float, "float"},
		{Float4, "float4"},
		{Int3, "int3"},
		{Double2x2, "double2x2"},
		{Float3x4, "float3x4"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", int(tt.dt), got, tt.want)
		}
	}
}

func TestByHLSLName(t *testing.T) {
	tests := []struct {
		name   string
		want   DataType
		wantOK bool
	}{
		{"float4", Float4, true},
		{"int3x3", Int3x3, true},
		{"bool", Bool, true},
		{"notAType", Undefined, false},
		{"VertexMain", Undefined, false},
	}
	for _, tt := range tests {
		got, ok := ByHLSLName(tt.name)
		if ok != tt.wantOK {
			t.Fatalf("ByHLSLName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if ok && got != tt.want {
			t.Errorf("ByHLSLName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestByHLSLNameRoundTripsEveryDataType(t *testing.T) {
	for dt := Bool; dt <= Double4x4; dt++ {
		name := dt.String()
		got, ok := ByHLSLName(name)
		if !ok {
			t.Fatalf("ByHLSLName(%q) not found for DataType %d", name, int(dt))
		}
		if got != dt {
			t.Errorf("ByHLSLName(%q) = %d, want %d", name, int(got), int(dt))
		}
	}
}

func TestVectorAndMatrixDataTypeRoundTrip(t *testing.T) {
	for n := 2; n <= 4; n++ {
		dt := VectorDataType(Float, n)
		if VectorTypeDim(dt) != n {
			t.Errorf("VectorDataType(Float, %d) dim = %d, want %d", n, VectorTypeDim(dt), n)
		}
		if BaseDataType(dt) != Float {
			t.Errorf("BaseDataType(VectorDataType(Float, %d)) = %v, want Float", n, BaseDataType(dt))
		}
	}

	m := MatrixDataType(Float, 3, 4)
	rows, cols := MatrixTypeDim(m)
	if rows != 3 || cols != 4 {
		t.Errorf("MatrixTypeDim(MatrixDataType(Float,3,4)) = (%d,%d), want (3,4)", rows, cols)
	}
	if m != Float3x4 {
		t.Errorf("MatrixDataType(Float, 3, 4) = %v, want Float3x4", m)
	}
}

func TestMatrixDataTypeDegeneratesToVectorAndScalar(t *testing.T) {
	if got := MatrixDataType(Float, 1, 1); got != Float {
		t.Errorf("MatrixDataType(Float,1,1) = %v, want Float", got)
	}
	if got := MatrixDataType(Float, 1, 3); got != Float3 {
		t.Errorf("MatrixDataType(Float,1,3) = %v, want Float3", got)
	}
}

func TestByHLSLNameConcurrentFirstUse(t *testing.T) {
	// Guards the lazy cache against the race two goroutines resolving a
	// constructor call simultaneously would otherwise hit.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, ok := ByHLSLName("float4"); !ok || got != Float4 {
				t.Errorf("ByHLSLName(%q) = %v, %v, want Float4, true", "float4", got, ok)
			}
		}()
	}
	wg.Wait()
}

func TestIsBooleanRealIntegralType(t *testing.T) {
	if !IsBooleanType(Bool3) {
		t.Error("Bool3 should be boolean")
	}
	if !IsRealType(Half) || !IsRealType(Double4) {
		t.Error("Half and Double4 should be real")
	}
	if !IsIntegralType(UInt2) || !IsIntegralType(Int) {
		t.Error("UInt2 and Int should be integral")
	}
	if IsIntegralType(Float) {
		t.Error("Float should not be integral")
	}
}
