package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
)

type sampleForm struct {
	Model    string `form:"model" validate:"omitempty,max=8"`
	Language string `form:"language" validate:"omitempty,max=4"`
}

func TestValidate_Passes(t *testing.T) {
	if err := Validate(&sampleForm{Model: "whisper", Language: "en"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(&sampleForm{}); err != nil {
		t.Fatalf("empty optional fields must pass: %v", err)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	err := Validate(&sampleForm{Model: "much-too-long-name", Language: "too-long"})
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	if appErr.HTTPStatus != 422 {
		t.Errorf("expected 422, got %d", appErr.HTTPStatus)
	}
	if !strings.HasPrefix(appErr.Message, "model ") {
		t.Errorf("expected the first failing field in the message, got %q", appErr.Message)
	}
}

func TestValidate_UsesFormTagNames(t *testing.T) {
	err := Validate(&sampleForm{Language: "too-long"})
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr, _ := apperrors.AsAppError(err)
	if !strings.Contains(appErr.Message, "language") {
		t.Errorf("expected form tag name in message, got %q", appErr.Message)
	}
}
