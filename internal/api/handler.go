package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
	"github.com/kbukum/transcribe-proxy/internal/auth"
	"github.com/kbukum/transcribe-proxy/internal/config"
	"github.com/kbukum/transcribe-proxy/internal/server"
	"github.com/kbukum/transcribe-proxy/internal/server/middleware"
	"github.com/kbukum/transcribe-proxy/internal/transcription"
	"github.com/kbukum/transcribe-proxy/internal/validation"
)

const defaultModel = "whisper-1"

// Handler holds the collaborators for the proxy's HTTP surface.
type Handler struct {
	cfg       *config.Config
	auth      *auth.Authenticator
	provider  transcription.Provider
	startedAt time.Time
}

// NewHandler creates a Handler.
func NewHandler(cfg *config.Config, authn *auth.Authenticator, provider transcription.Provider) *Handler {
	return &Handler{
		cfg:       cfg,
		auth:      authn,
		provider:  provider,
		startedAt: time.Now(),
	}
}

// Register mounts the proxy routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.POST("/v1/transcribe", h.Transcribe)
}

// transcribeForm holds the optional multipart form fields. The file part is
// checked separately.
type transcribeForm struct {
	Model    string `form:"model" validate:"omitempty,max=256"`
	Language string `form:"language" validate:"omitempty,max=64"`
	Prompt   string `form:"prompt" validate:"omitempty,max=4096"`
}

// TranscribeResponse is the success payload of POST /v1/transcribe.
type TranscribeResponse struct {
	Text        string   `json:"text"`
	DurationSec *float64 `json:"durationSec"`
	RequestID   string   `json:"requestId"`
}

// Transcribe forwards one audio upload to the transcription provider.
// Each step short-circuits the rest; every failure is rendered exactly once
// by the response boundary.
func (h *Handler) Transcribe(c *gin.Context) {
	if err := h.auth.Authenticate(c.Request.Header); err != nil {
		server.RespondError(c, err)
		return
	}

	if !h.cfg.HasOpenAIKey() {
		server.RespondError(c, apperrors.MissingConfig("OPENAI_API_KEY"))
		return
	}

	var form transcribeForm
	if err := c.ShouldBind(&form); err != nil {
		server.RespondError(c, apperrors.Validation("").WithCause(err))
		return
	}
	if err := validation.Validate(&form); err != nil {
		server.RespondError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		server.RespondError(c, apperrors.MissingField("file").WithCause(err))
		return
	}
	src, err := fh.Open()
	if err != nil {
		server.RespondError(c, apperrors.Validation("Could not read uploaded file.").WithCause(err))
		return
	}
	defer src.Close()

	model := strings.TrimSpace(form.Model)
	if model == "" {
		model = defaultModel
	}

	payload, err := h.provider.Transcribe(c.Request.Context(), transcription.Request{
		File:        src,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Model:       model,
		Language:    form.Language,
		Prompt:      form.Prompt,
	})
	if err != nil {
		server.RespondError(c, err)
		return
	}

	if !payload.HasText() {
		server.RespondError(c, apperrors.UpstreamInvalidResponse(
			"OpenAI response did not include transcription text."))
		return
	}
	text, _ := payload.Text()

	c.JSON(http.StatusOK, TranscribeResponse{
		Text:        text,
		DurationSec: payload.DurationSec(),
		RequestID:   middleware.RequestIDFrom(c),
	})
}
