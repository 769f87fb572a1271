package typedenoter

import "testing"

func TestResolveVectorSubscript(t *testing.T) {
	tests := []struct {
		subscript string
		size      int
		want      DataType
		wantErr   bool
	}{
		{"x", 4, Float, false},
		{"xy", 4, Float2, false},
		{"xyz", 4, Float3, false},
		{"rgba", 4, Float4, false},
		{"xx", 4, Float2, false},
		{"xr", 4, Undefined, true},  // mixed domain
		{"xyzw", 3, Undefined, true}, // w out of range for a 3-vector
		{"", 4, Undefined, true},
		{"xyzwx", 4, Undefined, true}, // too many components
	}
	for _, tt := range tests {
		got, err := ResolveVectorSubscript(Float, tt.size, tt.subscript)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ResolveVectorSubscript(%q, %d) err = %v, wantErr %v", tt.subscript, tt.size, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ResolveVectorSubscript(%q, %d) = %v, want %v", tt.subscript, tt.size, got, tt.want)
		}
	}
}

func TestResolveMatrixSubscript(t *testing.T) {
	tests := []struct {
		accessor string
		rows     int
		cols     int
		want     DataType
		wantErr  bool
	}{
		{"_m00", 4, 4, Float, false},
		{"_11", 4, 4, Float, false},
		{"_m00_m11", 4, 4, Float2, false},
		{"_m00_11", 4, 4, Undefined, true}, // mixed zero/one-based
		{"m00", 4, 4, Undefined, true},     // missing leading underscore
		{"_m44", 4, 4, Undefined, true},    // out of range
		{"_0", 4, 4, Undefined, true},      // incomplete token
	}
	for _, tt := range tests {
		got, err := ResolveMatrixSubscript(Float, tt.rows, tt.cols, tt.accessor)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ResolveMatrixSubscript(%q) err = %v, wantErr %v", tt.accessor, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ResolveMatrixSubscript(%q) = %v, want %v", tt.accessor, got, tt.want)
		}
	}
}
