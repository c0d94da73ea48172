package topocore

import (
	"errors"
	"testing"
)

func TestError_MessageFormat(t *testing.T) {
	e := &Error{Code: InvalidArgument, Msg: "k must be >= 1"}
	want := "topocore: invalid argument: k must be >= 1"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_MessageFormat_NoMsg(t *testing.T) {
	e := &Error{Code: Cancelled}
	want := "topocore: cancelled"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_Is_IgnoresMessage(t *testing.T) {
	err := codeErrorf(InvalidArgument, "n must be >= 2, got %d", 1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("expected errors.Is to match on Code regardless of Msg")
	}
}

func TestError_Is_DifferentCodeDoesNotMatch(t *testing.T) {
	err := codeErrorf(InvalidArgument, "bad")
	if errors.Is(err, ErrCancelled) {
		t.Error("expected errors.Is to reject a different Code")
	}
}

func TestError_Is_NonErrorTargetDoesNotMatch(t *testing.T) {
	e := &Error{Code: Internal}
	if e.Is(errors.New("plain")) {
		t.Error("expected Is to reject a non-*Error target")
	}
}

func TestCode_String_Known(t *testing.T) {
	cases := map[Code]string{
		Success:                "success",
		InvalidArgument:        "invalid argument",
		AcceleratorUnavailable: "accelerator unavailable",
		Cancelled:              "cancelled",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Errorf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}

func TestCode_String_Unknown(t *testing.T) {
	if got := Code(999).String(); got != "unknown error" {
		t.Errorf("Code(999).String() = %q, want %q", got, "unknown error")
	}
}
