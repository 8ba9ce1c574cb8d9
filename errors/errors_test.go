package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInternal, "boom")
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Message != "boom" {
		t.Errorf("expected message 'boom', got %q", err.Message)
	}
	if err.Param != "" {
		t.Errorf("expected no param, got %q", err.Param)
	}
}

func TestAppError_MissingArgument_Success(t *testing.T) {
	err := MissingArgument("seq")
	if err.Code != ErrCodeMissingArgument {
		t.Errorf("expected MISSING_ARGUMENT, got %s", err.Code)
	}
	if err.Param != "seq" {
		t.Errorf("expected param=seq, got %q", err.Param)
	}
	if !strings.Contains(err.Error(), "seq") {
		t.Errorf("Error() should name the param, got %q", err.Error())
	}
}

func TestAppError_InvalidArgument_Success(t *testing.T) {
	err := InvalidArgument("sequences", "contains a nil sequence")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Param != "sequences" {
		t.Errorf("expected param=sequences, got %q", err.Param)
	}
	if !strings.Contains(err.Message, "contains a nil sequence") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Validation("bad").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := InvalidArgument("sequences", "nil").WithDetails(map[string]any{
		"index": 1,
	})
	if err.Details["index"] != 1 {
		t.Errorf("expected index=1 in details")
	}

	err.WithDetails(map[string]any{"another": "detail"})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["index"] != 1 {
		t.Error("expected index=1 to be preserved after second merge")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}

	err.WithDetail("key", "other")
	if err.Details["key"] != "other" {
		t.Errorf("expected key=other after overwrite, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	if Internal(cause).Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if MissingArgument("x").Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name  string
		err   *AppError
		code  ErrorCode
		param string
	}{
		{"MissingArgument", MissingArgument("action"), ErrCodeMissingArgument, "action"},
		{"InvalidArgument", InvalidArgument("sequences", "nil element"), ErrCodeInvalidArgument, "sequences"},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, ""},
		{"Internal", Internal(nil), ErrCodeInternal, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.Param != tc.param {
				t.Errorf("expected param %q, got %q", tc.param, tc.err.Param)
			}
			if tc.err.Message == "" {
				t.Error("expected non-empty message")
			}
		})
	}
}

func TestErrorCode_IsArgumentCode_Table(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeMissingArgument, true},
		{ErrCodeInvalidArgument, true},
		{ErrCodeInvalidInput, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := IsArgumentCode(tc.code); got != tc.want {
				t.Errorf("IsArgumentCode(%s) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestIsCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", MissingArgument("seq"))
	if !IsCode(wrapped, ErrCodeMissingArgument) {
		t.Error("expected IsCode to see through wrapping")
	}
	if IsCode(wrapped, ErrCodeInvalidArgument) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(fmt.Errorf("plain"), ErrCodeMissingArgument) {
		t.Error("expected IsCode to return false for plain error")
	}
}

func TestParamOf(t *testing.T) {
	if got := ParamOf(fmt.Errorf("wrap: %w", InvalidArgument("sequences", "nil"))); got != "sequences" {
		t.Errorf("expected sequences, got %q", got)
	}
	if got := ParamOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("expected empty param, got %q", got)
	}
	if got := ParamOf(nil); got != "" {
		t.Errorf("expected empty param for nil, got %q", got)
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	orig := MissingArgument("seq")
	if Wrap(orig) != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
	if Wrap(fmt.Errorf("outer: %w", orig)) != orig {
		t.Error("Wrap should unwrap to the inner AppError")
	}

	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = MissingArgument("seq")
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
