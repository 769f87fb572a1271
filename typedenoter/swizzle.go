package typedenoter

import (
	"fmt"
	"strconv"
	"strings"
)

// swizzleXYZW and swizzleRGBA are the two component-naming domains a vector
// subscript may draw from; a single swizzle must not mix the two.
const (
	swizzleXYZW = "xyzw"
	swizzleRGBA = "rgba"
)

// ResolveVectorSubscript decodes a vector swizzle (".xyzw" or ".rgba" domain,
// 1..4 components, components may repeat) against a vector of the given
// dimension and returns the resulting DataType: the base scalar type when
// the swizzle names exactly one component, otherwise a vector of the
// swizzle's length.
//
// Errors (returned as InvalidArgument-flavored errors, see report.Kind):
// mixing the xyzw and rgba domains in one swizzle, a swizzle of length
// outside 1..4, or any component index >= vectorSize.
func ResolveVectorSubscript(base DataType, vectorSize int, subscript string) (DataType, error) {
	if len(subscript) < 1 || len(subscript) > 4 {
		return Undefined, fmt.Errorf("vector subscript %q cannot have %d components", subscript, len(subscript))
	}
	if vectorSize < 1 || vectorSize > 4 {
		return Undefined, fmt.Errorf("invalid vector dimension %d", vectorSize)
	}

	domain := swizzleDomain(subscript)
	if domain == "" {
		return Undefined, fmt.Errorf("vector subscript %q mixes the .xyzw and .rgba component domains", subscript)
	}

	for _, c := range subscript {
		idx := strings.IndexRune(domain, c)
		if idx < 0 || idx >= vectorSize {
			return Undefined, fmt.Errorf("vector subscript component %q is out of range for a %d-component vector", string(c), vectorSize)
		}
	}

	return VectorDataType(base, len(subscript)), nil
}

// swizzleDomain returns "xyzw" or "rgba" if subscript draws its components
// exclusively from one of those domains, or "" if it mixes both.
func swizzleDomain(subscript string) string {
	usesXYZW, usesRGBA := false, false
	for _, c := range subscript {
		switch {
		case strings.ContainsRune(swizzleXYZW, c):
			usesXYZW = true
		case strings.ContainsRune(swizzleRGBA, c):
			usesRGBA = true
		default:
			return ""
		}
	}
	switch {
	case usesXYZW && usesRGBA:
		return ""
	case usesRGBA:
		return swizzleRGBA
	default:
		return swizzleXYZW
	}
}

// ResolveMatrixSubscript decodes a matrix accessor (e.g. "_m00", "_11",
// "_m00_m11") against a matrix of the given dimensions and returns the
// resulting DataType. Tokens are either zero-based "_mRC" or one-based
// "_RC"; the two forms cannot mix inside one accessor. The resulting
// dimension equals the token count: one token yields the base scalar type,
// two or more yield a vector of that length.
func ResolveMatrixSubscript(base DataType, rows, columns int, accessor string) (DataType, error) {
	tokens, err := splitMatrixAccessor(accessor)
	if err != nil {
		return Undefined, err
	}
	if len(tokens) < 1 || len(tokens) > 4 {
		return Undefined, fmt.Errorf("matrix subscript %q cannot have %d components", accessor, len(tokens))
	}

	zeroBased := strings.HasPrefix(tokens[0], "m")
	for _, tok := range tokens {
		isZero := strings.HasPrefix(tok, "m")
		if isZero != zeroBased {
			return Undefined, fmt.Errorf("matrix subscript %q mixes zero-based (_mRC) and one-based (_RC) forms", accessor)
		}
		digits := tok
		if isZero {
			digits = tok[1:]
		}
		if len(digits) != 2 {
			return Undefined, fmt.Errorf("incomplete matrix subscript token %q", tok)
		}
		r, rErr := strconv.Atoi(string(digits[0]))
		c, cErr := strconv.Atoi(string(digits[1]))
		if rErr != nil || cErr != nil {
			return Undefined, fmt.Errorf("malformed matrix subscript token %q", tok)
		}
		if !zeroBased {
			r--
			c--
		}
		if r < 0 || r >= rows || c < 0 || c >= columns {
			return Undefined, fmt.Errorf("matrix subscript token %q is out of range for a %dx%d matrix", tok, rows, columns)
		}
	}

	return VectorDataType(base, len(tokens)), nil
}

// splitMatrixAccessor splits a matrix accessor string like "_m00_m11" or
// "_00_11" into its underscore-delimited tokens ("m00", "m11" or "00", "11").
func splitMatrixAccessor(accessor string) ([]string, error) {
	if !strings.HasPrefix(accessor, "_") {
		return nil, fmt.Errorf("matrix subscript %q must start with '_'", accessor)
	}
	parts := strings.Split(accessor[1:], "_")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("matrix subscript %q has an empty component token", accessor)
		}
	}
	return parts, nil
}
