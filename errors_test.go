package hanscan

import (
	"errors"
	"fmt"
	"testing"
)

func TestTranslationError(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := &TranslationError{Message: "translation failed", Cause: cause}

	if err.Error() == "" {
		t.Error("Expected non-empty error message")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestProviderError_Retryable(t *testing.T) {
	err := &ProviderError{Message: "rate limited", Retryable: true}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("Expected errors.As to match ProviderError")
	}
	if !pe.Retryable {
		t.Error("Expected retryable flag to survive")
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &StoreError{Message: "save failed", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the cause")
	}
}

func TestExtractError_IncludesPath(t *testing.T) {
	err := &ExtractError{Path: "main.py", Message: "parse failed"}

	if got := err.Error(); got == "" {
		t.Fatal("Expected non-empty error message")
	}
}
