// Package openai implements transcription.Provider against the OpenAI audio
// transcription API. It performs exactly one outbound multipart call per
// request and maps every failure mode onto the service error taxonomy; the
// retryable flag is advisory for the proxy's own callers, nothing here
// retries.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
	"github.com/kbukum/transcribe-proxy/internal/httpclient"
	"github.com/kbukum/transcribe-proxy/internal/transcription"
)

const (
	transcriptionPath = "/v1/audio/transcriptions"

	// verbose_json includes the audio duration alongside the transcript.
	responseFormat = "verbose_json"

	defaultBaseURL = "https://api.openai.com"
	defaultTimeout = 60 * time.Second

	defaultFilename    = "audio"
	defaultContentType = "application/octet-stream"
)

// Config holds configuration for the OpenAI transcription client.
type Config struct {
	// APIKey authenticates the outbound call.
	APIKey string
	// BaseURL is the API base, overridable for tests and self-hosted gateways.
	BaseURL string
	// Timeout bounds the total duration of one upstream call.
	Timeout time.Duration
}

// Client calls the OpenAI transcription endpoint.
type Client struct {
	cfg  Config
	http *httpclient.Client
}

// NewClient creates a new OpenAI transcription client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg: cfg,
		http: httpclient.New(httpclient.Config{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}),
	}
}

// Transcribe sends the audio upstream and returns the parsed payload object.
func (c *Client) Transcribe(ctx context.Context, req transcription.Request) (transcription.Payload, error) {
	fields := map[string]string{
		"model":           req.Model,
		"response_format": responseFormat,
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	if req.Prompt != "" {
		fields["prompt"] = req.Prompt
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultFilename
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   transcriptionPath,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.APIKey,
		},
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName:   "file",
				FileName:    filename,
				ContentType: contentType,
				Reader:      req.File,
			}},
		},
	})
	if err != nil {
		var terr *httpclient.Error
		if errors.As(err, &terr) && terr.IsTimeout() {
			return nil, apperrors.UpstreamTimeout().WithCause(err)
		}
		return nil, apperrors.UpstreamUnavailable().WithCause(err)
	}

	if resp.IsError() {
		code, message := normalizeError(resp.Body, resp.StatusCode)
		return nil, apperrors.UpstreamStatus(resp.StatusCode, code, message)
	}

	var payload any
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, apperrors.UpstreamInvalidResponse("OpenAI returned invalid JSON.").WithCause(err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, apperrors.UpstreamInvalidResponse("OpenAI returned unexpected payload format.")
	}

	return transcription.Payload(obj), nil
}
