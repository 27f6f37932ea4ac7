package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
	"github.com/kbukum/transcribe-proxy/internal/transcription"
)

func newClient(url string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: url, Timeout: 2 * time.Second})
}

func audioRequest() transcription.Request {
	return transcription.Request{
		File:        strings.NewReader("RIFF-audio"),
		Filename:    "clip.wav",
		ContentType: "audio/wav",
		Model:       "whisper-1",
	}
}

func assertAppError(t *testing.T, err error, code apperrors.ErrorCode, status int, retryable bool) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Errorf("expected code %s, got %s", code, appErr.Code)
	}
	if appErr.HTTPStatus != status {
		t.Errorf("expected status %d, got %d", status, appErr.HTTPStatus)
	}
	if appErr.Retryable != retryable {
		t.Errorf("expected retryable=%v, got %v", retryable, appErr.Retryable)
	}
	return appErr
}

// ---------------------------------------------------------------------------
// Request shape
// ---------------------------------------------------------------------------

func TestTranscribe_MultipartShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("expected model=whisper-1, got %q", got)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Errorf("expected response_format=verbose_json, got %q", got)
		}
		if got := r.FormValue("language"); got != "" {
			t.Errorf("language must be omitted when empty, got %q", got)
		}
		if got := r.FormValue("prompt"); got != "" {
			t.Errorf("prompt must be omitted when empty, got %q", got)
		}
		fh := r.MultipartForm.File["file"]
		if len(fh) != 1 {
			t.Fatalf("expected one file part, got %d", len(fh))
		}
		if fh[0].Filename != "clip.wav" {
			t.Errorf("expected filename clip.wav, got %q", fh[0].Filename)
		}
		if got := fh[0].Header.Get("Content-Type"); got != "audio/wav" {
			t.Errorf("expected audio/wav, got %q", got)
		}
		_, _ = w.Write([]byte(`{"text":"hi","duration":1.0}`))
	}))
	defer srv.Close()

	payload, err := newClient(srv.URL).Transcribe(context.Background(), audioRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := payload.Text(); text != "hi" {
		t.Errorf("expected text hi, got %q", text)
	}
}

func TestTranscribe_OptionalFieldsIncluded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart form: %v", err)
		}
		if got := r.FormValue("language"); got != "uk" {
			t.Errorf("expected language=uk, got %q", got)
		}
		if got := r.FormValue("prompt"); got != "names: Olena" {
			t.Errorf("expected prompt, got %q", got)
		}
		_, _ = w.Write([]byte(`{"text":"hi"}`))
	}))
	defer srv.Close()

	req := audioRequest()
	req.Language = "uk"
	req.Prompt = "names: Olena"
	if _, err := newClient(srv.URL).Transcribe(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTranscribe_FilenameAndContentTypeDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart form: %v", err)
		}
		fh := r.MultipartForm.File["file"]
		if len(fh) != 1 {
			t.Fatalf("expected one file part, got %d", len(fh))
		}
		if fh[0].Filename != "audio" {
			t.Errorf("expected default filename audio, got %q", fh[0].Filename)
		}
		if got := fh[0].Header.Get("Content-Type"); got != "application/octet-stream" {
			t.Errorf("expected default content type, got %q", got)
		}
		_, _ = w.Write([]byte(`{"text":"hi"}`))
	}))
	defer srv.Close()

	req := transcription.Request{File: strings.NewReader("x"), Model: "whisper-1"}
	if _, err := newClient(srv.URL).Transcribe(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Failure mapping
// ---------------------------------------------------------------------------

func TestTranscribe_UpstreamRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit exceeded.","code":"rate_limit_exceeded"}}`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Transcribe(context.Background(), audioRequest())
	appErr := assertAppError(t, err, "OPENAI_RATE_LIMIT_EXCEEDED", 429, true)
	if appErr.Message != "Rate limit exceeded." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestTranscribe_UpstreamStatusRetryability(t *testing.T) {
	for _, tt := range []struct {
		status    int
		retryable bool
	}{
		{429, true}, {500, true}, {502, true}, {503, true}, {504, true},
		{400, false}, {401, false}, {404, false}, {413, false},
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{}`))
		}))

		_, err := newClient(srv.URL).Transcribe(context.Background(), audioRequest())
		assertAppError(t, err, apperrors.ErrCodeUpstreamError, tt.status, tt.retryable)
		srv.Close()
	}
}

func TestTranscribe_InvalidJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Transcribe(context.Background(), audioRequest())
	appErr := assertAppError(t, err, apperrors.ErrCodeUpstreamInvalid, 502, true)
	if appErr.Message != "OpenAI returned invalid JSON." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestTranscribe_NonObjectBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["a","b"]`))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).Transcribe(context.Background(), audioRequest())
	appErr := assertAppError(t, err, apperrors.ErrCodeUpstreamInvalid, 502, true)
	if appErr.Message != "OpenAI returned unexpected payload format." {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestTranscribe_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(400 * time.Millisecond)
		_, _ = w.Write([]byte(`{"text":"late"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Transcribe(context.Background(), audioRequest())
	assertAppError(t, err, apperrors.ErrCodeUpstreamTimeout, 504, true)
}

func TestTranscribe_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newClient(url).Transcribe(context.Background(), audioRequest())
	assertAppError(t, err, apperrors.ErrCodeUpstreamUnavailable, 503, true)
}
