// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package report defines the diagnostic taxonomy shared by the reference
// analyzer, converter, and code generator: a Kind categorizing what went
// wrong, a Severity, and a Report that pairs a message with a source area.
package report

import (
	"fmt"

	"github.com/gogpu/xsc/ast"
)

// Kind categorizes a compiler diagnostic.
type Kind uint8

const (
	// KindMappingError indicates an HLSL construct with no GLSL equivalent
	// under the selected target version/profile.
	KindMappingError Kind = iota

	// KindInvalidArgument indicates an intrinsic or texture method was
	// called with an argument of the wrong shape or type.
	KindInvalidArgument

	// KindVersionMismatch indicates the computed GLSL version/profile
	// cannot express a feature the shader uses (e.g. double precision on ES).
	KindVersionMismatch

	// KindMissingReference indicates an unresolved symbol reference
	// (a nil symbolRef, funcDeclRef, or structDeclRef) was reached.
	KindMissingReference

	// KindInvalidNumArgs indicates a call with the wrong argument count.
	KindInvalidNumArgs

	// KindInternalError indicates an invariant violation in the compiler itself.
	KindInternalError
)

// String returns a human-readable diagnostic kind name.
func (k Kind) String() string {
	switch k {
	case KindMappingError:
		return "MappingError"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindVersionMismatch:
		return "VersionMismatch"
	case KindMissingReference:
		return "MissingReference"
	case KindInvalidNumArgs:
		return "InvalidNumArgs"
	case KindInternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Severity distinguishes a hard failure from an advisory note.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Report is one compiler diagnostic.
type Report struct {
	Kind     Kind
	Severity Severity
	Message  string
	Area     ast.SourceArea
}

// Error implements the error interface so a Report can be returned directly
// from any function that fails for a reportable reason.
func (r *Report) Error() string {
	return fmt.Sprintf("%s %s at %s: %s", r.Severity, r.Kind, r.Area, r.Message)
}

// New builds an error-severity Report.
func New(kind Kind, area ast.SourceArea, format string, args ...interface{}) *Report {
	return &Report{Kind: kind, Severity: SeverityError, Message: fmt.Sprintf(format, args...), Area: area}
}

// Warn builds a warning-severity Report.
func Warn(kind Kind, area ast.SourceArea, format string, args ...interface{}) *Report {
	return &Report{Kind: kind, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Area: area}
}

// MappingError reports an HLSL construct with no GLSL equivalent.
func MappingError(area ast.SourceArea, format string, args ...interface{}) *Report {
	return New(KindMappingError, area, format, args...)
}

// InvalidArgument reports a malformed intrinsic/method call argument.
func InvalidArgument(area ast.SourceArea, format string, args ...interface{}) *Report {
	return New(KindInvalidArgument, area, format, args...)
}

// VersionMismatch reports a feature unsupported by the computed GLSL version/profile.
func VersionMismatch(area ast.SourceArea, format string, args ...interface{}) *Report {
	return New(KindVersionMismatch, area, format, args...)
}

// MissingReference reports an unresolved symbol reference.
func MissingReference(area ast.SourceArea, format string, args ...interface{}) *Report {
	return New(KindMissingReference, area, format, args...)
}

// InvalidNumArgs reports a call with the wrong argument count.
func InvalidNumArgs(area ast.SourceArea, format string, args ...interface{}) *Report {
	return New(KindInvalidNumArgs, area, format, args...)
}

// IsMappingError reports whether err is a *Report of kind KindMappingError.
func IsMappingError(err error) bool { return hasKind(err, KindMappingError) }

// IsVersionMismatch reports whether err is a *Report of kind KindVersionMismatch.
func IsVersionMismatch(err error) bool { return hasKind(err, KindVersionMismatch) }

func hasKind(err error, kind Kind) bool {
	r, ok := err.(*Report)
	return ok && r.Kind == kind
}

// Sink accumulates Reports across a compilation, the way a single Program
// can surface many independent mapping errors instead of aborting on the
// first one.
type Sink struct {
	reports []*Report
}

// Add appends r to the sink.
func (s *Sink) Add(r *Report) {
	s.reports = append(s.reports, r)
}

// Reports returns every diagnostic added so far, in order.
func (s *Sink) Reports() []*Report {
	return s.reports
}

// HasErrors reports whether any added Report has SeverityError.
func (s *Sink) HasErrors() bool {
	for _, r := range s.reports {
		if r.Severity == SeverityError {
			return true
		}
	}
	return false
}
