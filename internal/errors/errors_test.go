package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != ErrInternalServer.Code || err.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected wrapped error: %+v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to its cause")
	}
	if err.Error() != ErrInternalServer.Message {
		t.Errorf("expected public message, got %q", err.Error())
	}
	if ErrInternalServer.Internal != nil {
		t.Error("sentinel must not be mutated")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrAgentNotFound, "Agent 'nope' not found.")

	if err.Message != "Agent 'nope' not found." {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Code != "AGENT_NOT_FOUND" || err.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected error: %+v", err)
	}
	if ErrAgentNotFound.Message != "Agent not found" {
		t.Error("sentinel must not be mutated")
	}

	var appErr *AppError
	if !errors.As(fmt.Errorf("outer: %w", err), &appErr) {
		t.Fatal("expected errors.As to find AppError")
	}
}

func TestResolve(t *testing.T) {
	known := fmt.Errorf("loading asset: %w", WithMessage(ErrAssetNotFound, "Asset 'X' not found"))
	appErr := Resolve(known)
	if appErr.Code != "ASSET_NOT_FOUND" || appErr.Message != "Asset 'X' not found" {
		t.Errorf("expected wrapped AppError to be found, got %+v", appErr)
	}

	cause := errors.New("pq: connection reset")
	appErr = Resolve(cause)
	if appErr.Code != ErrInternalServer.Code || appErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected internal error, got %+v", appErr)
	}
	if !errors.Is(appErr, cause) {
		t.Error("expected cause to be kept for logging")
	}

	body := appErr.Envelope()
	if body.Error.Message != ErrInternalServer.Message {
		t.Errorf("cause leaked into envelope: %+v", body)
	}
}
