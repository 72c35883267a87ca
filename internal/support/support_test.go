package support

import (
	"errors"
	"testing"
)

func TestSourceLocation_ValidAndString(t *testing.T) {
	zero := SourceLocation{}
	if zero.Valid() {
		t.Fatalf("zero-value location should be invalid")
	}
	if zero.String() != "" {
		t.Fatalf("expected empty string for invalid location, got %q", zero.String())
	}

	loc := SourceLocation{File: "a.c", Line: 3, Column: 7}
	if !loc.Valid() {
		t.Fatalf("expected a location with a file to be valid")
	}
	if got := loc.String(); got != "a.c:3:7" {
		t.Fatalf("expected a.c:3:7, got %q", got)
	}
}

func TestRemark_ArgFirstMatchWins(t *testing.T) {
	r := Remark{Args: []RemarkArgument{
		{Key: "Cost", Value: "first"},
		{Key: "Cost", Value: "second"},
	}}
	v, ok := r.Arg("Cost")
	if !ok || v != "first" {
		t.Fatalf("expected (first, true), got (%q, %v)", v, ok)
	}
	if _, ok := r.Arg("Missing"); ok {
		t.Fatalf("expected Missing to be absent")
	}
}

func TestError_WrapsCauseAndUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIoError("failed to read record file", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
	if err.Kind != IoErrorKind {
		t.Fatalf("expected IoErrorKind, got %v", err.Kind)
	}
}

func TestError_WithoutCause(t *testing.T) {
	err := NewVerifyError("duplicate function name")
	if err.Unwrap() != nil {
		t.Fatalf("expected no wrapped cause")
	}
	if err.Error() == "" {
		t.Fatalf("expected a non-empty error message")
	}
}
