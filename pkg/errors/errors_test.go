package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPoints, "point count %d exceeds limit", 9)
	if err.Code != ErrCodeInvalidPoints {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidPoints)
	}
	if want := "INVALID_POINTS: point count 9 exceeds limit"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeInvalidPath, cause, "failed to read %s", "points.txt")

	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("Error() = %q, should include the cause", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should satisfy errors.Is against its cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidPolicy, "bad policy")
	if !Is(err, ErrCodeInvalidPolicy) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "fixture missing")
	outer := Wrap(ErrCodeInternal, inner, "load failed")

	// errors.As stops at the outermost *Error.
	if got := GetCode(outer); got != ErrCodeInternal {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInternal)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "nope")); got != ErrCodeUnsupported {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeUnsupported)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown output format")
	if got := UserMessage(err); got != "unknown output format" {
		t.Errorf("UserMessage = %q, want message without code prefix", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage for plain error = %q, want %q", got, "plain")
	}
}
