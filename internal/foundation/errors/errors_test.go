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
			WithContext("file", "patterns.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "patterns.yaml" {
			t.Errorf("expected context file=patterns.yaml, got %v", file)
		}
		if err.Error() != "[config:fatal] invalid configuration" {
			t.Errorf("unexpected Error(): %s", err.Error())
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		if !ValidationError("bad").Build().IsFatal() {
			t.Error("expected validation error to be fatal")
		}
		if FileSystemError("write").Build().IsFatal() {
			t.Error("expected filesystem error to be non-fatal")
		}
		if RenderError("html").Build().Category() != CategoryRender {
			t.Error("expected render category")
		}
	})
}

func TestErrorBuilder_WrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(cause, CategoryFileSystem, "write output").
		WithSeverity(SeverityWarning).
		WithContext("path", "/tmp/post.md").
		Build()

	if !errors.Is(err, cause) {
		t.Error("expected error to wrap cause")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("expected warning severity, got %s", err.Severity())
	}
	if err.Error() != "[filesystem:warning] write output: disk full" {
		t.Errorf("unexpected Error(): %s", err.Error())
	}
}

func TestAsClassified_FindsWrappedError(t *testing.T) {
	inner := ValidationError("unknown block kind").WithContext("index", 2).Build()
	outer := fmt.Errorf("compose: %w", inner)

	got, ok := AsClassified(outer)
	if !ok {
		t.Fatal("expected classified error in chain")
	}
	if got.Category() != CategoryValidation {
		t.Errorf("expected validation, got %s", got.Category())
	}
	if !HasCategory(outer, CategoryValidation) {
		t.Error("expected HasCategory to see through wrapping")
	}
	if GetCategory(errors.New("plain")) != CategoryInternal {
		t.Error("expected unclassified errors to report internal")
	}
	if !errors.Is(outer, NewError(CategoryValidation, "unknown block kind").Build()) {
		t.Error("expected errors.Is to match on category and message")
	}
}
