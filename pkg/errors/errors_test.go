// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and detail accessors

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/toolup-cli/toolup/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "component_not_found",
			code:    errors.ErrComponentNotFound,
			message: "component \"gh\" not found",
			wantStr: "[COMPONENT_NOT_FOUND] component \"gh\" not found",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Error() != tt.wantStr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantStr)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := errors.Wrap(inner, errors.ErrFileWrite, "writing setup script")

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should satisfy errors.Is against the inner error")
	}

	if errors.GetErrorCode(err) != errors.ErrFileWrite {
		t.Errorf("GetErrorCode() = %v, want %v", errors.GetErrorCode(err), errors.ErrFileWrite)
	}

	if errors.Wrap(nil, errors.ErrFileWrite, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrCircularDependency, "cycle detected")
	wrapped := fmt.Errorf("resolving: %w", err)

	if !errors.IsErrorCode(wrapped, errors.ErrCircularDependency) {
		t.Error("IsErrorCode should see through fmt.Errorf wrapping")
	}

	if errors.IsErrorCode(wrapped, errors.ErrComponentNotFound) {
		t.Error("IsErrorCode should not match a different code")
	}
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrCircularDependency, "cycle detected").
		WithDetail("cycle", []string{"a", "b", "a"})

	got := errors.GetDetail(err, "cycle")
	cycle, ok := got.([]string)
	if !ok {
		t.Fatalf("GetDetail() = %T, want []string", got)
	}

	if len(cycle) != 3 || cycle[0] != "a" || cycle[2] != "a" {
		t.Errorf("cycle detail = %v, want [a b a]", cycle)
	}

	if errors.GetDetail(stderrors.New("plain"), "cycle") != nil {
		t.Error("GetDetail on a plain error should return nil")
	}
}
