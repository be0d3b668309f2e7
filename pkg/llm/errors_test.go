package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError_Auth(t *testing.T) {
	err := ClassifyError(errors.New("status code 401: invalid api key"))
	if err.Type != ErrorTypeAuth {
		t.Errorf("expected auth, got %s", err.Type)
	}
	if err.Retryable {
		t.Error("auth errors must not be retryable")
	}
	if err.StatusCode != 401 {
		t.Errorf("expected status 401, got %d", err.StatusCode)
	}
}

func TestClassifyError_RateLimit(t *testing.T) {
	err := ClassifyError(errors.New("429 Too Many Requests: rate limit exceeded"))
	if err.Type != ErrorTypeRateLimit {
		t.Errorf("expected rate_limit, got %s", err.Type)
	}
	if !err.Retryable {
		t.Error("rate limit errors must be retryable")
	}
}

func TestClassifyError_ModelNotFound(t *testing.T) {
	err := ClassifyError(errors.New("the model `gpt-5o` does not exist"))
	if err.Type != ErrorTypeModel {
		t.Errorf("expected model, got %s", err.Type)
	}
	if err.Retryable {
		t.Error("model errors must not be retryable")
	}
}

func TestClassifyError_Timeout(t *testing.T) {
	err := ClassifyError(errors.New("context deadline exceeded"))
	if err.Type != ErrorTypeEndpoint {
		t.Errorf("expected endpoint, got %s", err.Type)
	}
	if !err.Retryable {
		t.Error("timeouts must be retryable")
	}
}

func TestClassifyError_ServerError(t *testing.T) {
	err := ClassifyError(errors.New("unexpected status code: 503"))
	if !err.Retryable {
		t.Error("5xx errors must be retryable")
	}
}

func TestClassifyError_PassthroughStructured(t *testing.T) {
	orig := NewError(ErrorTypeAuth, "authentication failed", false, nil)
	wrapped := fmt.Errorf("interpret: %w", orig)

	got := ClassifyError(wrapped)
	if got != orig {
		t.Error("expected already-classified error to pass through")
	}
}

func TestIsRetryable_NonLLMError(t *testing.T) {
	if IsRetryable(errors.New("plain error")) {
		t.Error("plain errors are not retryable by default")
	}
}

func TestGetErrorType_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(ErrorTypeRateLimit, "rate limited", true, nil))
	if GetErrorType(err) != ErrorTypeRateLimit {
		t.Errorf("expected rate_limit, got %s", GetErrorType(err))
	}
}
