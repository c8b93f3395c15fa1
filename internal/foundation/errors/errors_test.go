package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "papersite.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		file, exists := err.Context().GetString("file")
		if !exists || file != "papersite.yaml" {
			t.Errorf("expected context file=papersite.yaml, got %v", file)
		}
	})

	t.Run("Sentinel reachable through cause", func(t *testing.T) {
		sentinel := errors.New("invalid filename format")
		err := WrapError(sentinel, CategoryValidation, "cannot parse").Build()
		if !errors.Is(err, sentinel) {
			t.Error("expected errors.Is to reach the wrapped sentinel")
		}
	})

	t.Run("Classification through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", ConvertError("write failed").Build())
		if !HasCategory(err, CategoryConvert) {
			t.Error("expected convert category through wrapping")
		}
		if GetSeverity(err) != SeverityError {
			t.Errorf("expected default severity, got %s", GetSeverity(err))
		}
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("plain errors should report internal category")
		}
	})

	t.Run("WithContext copies", func(t *testing.T) {
		base := FileSystemError("copy failed").Build()
		withPath := base.WithContext("path", "fig/a.svg")
		if _, ok := base.Context().Get("path"); ok {
			t.Error("WithContext must not mutate the original error")
		}
		if p, _ := withPath.Context().GetString("path"); p != "fig/a.svg" {
			t.Errorf("expected path context, got %q", p)
		}
		if !errors.Is(withPath, base) {
			t.Error("errors with same category and message should match")
		}
	})
}
