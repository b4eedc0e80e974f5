package ifd

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(IO, cause, "reading header")
	var e *Error
	if !As(err, &e) {
		t.Fatal("Wrap should produce an *Error")
	}
	if e.Kind != IO {
		t.Errorf("Kind = %v, want IO", e.Kind)
	}
	if !Is(err, cause) {
		t.Errorf("Wrap should preserve the error chain for errors.Is")
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if err := Wrap(IO, nil, "nothing happened"); err != nil {
		t.Errorf("Wrap(kind, nil, ...) = %v, want nil", err)
	}
}

func TestNewFormatsMessage(t *testing.T) {
	err := NewError(Format, "bad value %d", 42)
	if !strings.Contains(err.Error(), "bad value 42") {
		t.Fatalf("NewError should format its arguments into the message, got %q", err.Error())
	}
}

func TestFatalIsDistinctFromKindedErrors(t *testing.T) {
	err := Fatal("wrote %d bytes, expected %d", 3, 4)
	var e *Error
	if As(err, &e) {
		t.Errorf("Fatal errors must not satisfy errors.As(*Error), got %v", e)
	}
}
