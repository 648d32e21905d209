package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCode_New(t *testing.T) {
	code := Code("TEST_001")
	err := code.New("something went wrong")

	if err.Code != code {
		t.Errorf("expected code %s, got %s", code, err.Code)
	}
	if err.Message != "something went wrong" {
		t.Errorf("expected message 'something went wrong', got %s", err.Message)
	}
	if err.Details == nil {
		t.Error("expected Details to be initialized")
	}
	if err.Stack == "" {
		t.Error("expected Stack to be filled")
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWithPrefix(t *testing.T) {
	gen := WithPrefix("SIGNATURE")
	c1 := gen()
	c2 := gen()

	if c1 != "SIGNATURE_0001" {
		t.Errorf("expected SIGNATURE_0001, got %s", c1)
	}
	if c2 != "SIGNATURE_0002" {
		t.Errorf("expected SIGNATURE_0002, got %s", c2)
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("cause error")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "simple",
			err:      Code("TEST_001").New("simple error"),
			expected: "TEST_001: simple error",
		},
		{
			name:     "template",
			err:      Code("TEST_001").New("unknown option {{.option}}").WithDetail("option", "--foo"),
			expected: "TEST_001: unknown option --foo",
		},
		{
			name:     "invalid template",
			err:      Code("TEST_001").New("hello {{.name"),
			expected: "TEST_001: hello {{.name",
		},
		{
			name:     "cause",
			err:      Code("TEST_001").New("wrapped error").WithCause(cause),
			expected: "TEST_001: wrapped error (caused by: cause error)",
		},
		{
			name:     "empty",
			err:      Code("TEST_001").New(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestError_Text(t *testing.T) {
	err := Code("TEST_001").New("too few arguments for {{.name}}").
		WithDetail("name", "users").
		WithCause(errors.New("ignored"))

	if err.Text() != "too few arguments for users" {
		t.Errorf("expected rendered text without code, got %q", err.Text())
	}
}

func TestError_WithDetail_DoesNotMutateSentinel(t *testing.T) {
	sentinel := Code("TEST_001").New("base {{.key}}")

	derived := sentinel.WithDetail("key", "value")

	if _, ok := sentinel.Details["key"]; ok {
		t.Error("expected sentinel details to stay untouched")
	}
	if v, ok := derived.Detail("key"); !ok || v != "value" {
		t.Errorf("expected derived detail value, got %v", v)
	}
}

func TestError_WithCause_DoesNotMutateSentinel(t *testing.T) {
	sentinel := Code("TEST_001").New("base")

	_ = sentinel.WithCause(errors.New("cause"))

	if sentinel.Cause != nil {
		t.Error("expected sentinel cause to stay nil")
	}
}

func TestError_Is_MatchesByCode(t *testing.T) {
	sentinel := Code("TEST_001").New("base")
	other := Code("TEST_002").New("other")

	derived := sentinel.WithDetail("key", "value").WithCause(errors.New("cause"))

	if !errors.Is(derived, sentinel) {
		t.Error("expected derived error to match its sentinel")
	}
	if errors.Is(derived, other) {
		t.Error("expected derived error not to match a different code")
	}

	wrapped := other.WithCause(derived)
	if !errors.Is(wrapped, sentinel) {
		t.Error("expected errors.Is to walk the cause chain")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause error")
	err := Code("TEST_001").New("wrapped").WithCause(cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Errorf("expected cause error, got %v", err.Unwrap())
	}
	if Code("TEST_001").New("no cause").Unwrap() != nil {
		t.Error("expected nil unwrapped error")
	}
}

func TestError_Stack(t *testing.T) {
	err := Code("TEST_001").New("stack test")

	if !strings.Contains(err.Stack, "TestError_Stack") {
		t.Error("expected stack to contain TestError_Stack")
	}
}

func TestError_Timestamp(t *testing.T) {
	before := time.Now()
	err := Code("TEST_001").New("test").WithDetail("k", "v")
	after := time.Now()

	if err.Timestamp.Before(before) || err.Timestamp.After(after) {
		t.Error("Timestamp should be set during error creation")
	}
}
