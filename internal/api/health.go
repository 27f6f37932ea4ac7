package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness plus configuration presence flags so a
// client can tell a missing key apart from a down service.
type HealthResponse struct {
	Status              string  `json:"status"`
	UptimeSec           float64 `json:"uptimeSec"`
	HasOpenAIKey        bool    `json:"hasOpenAIKey"`
	ClientTokenRequired bool    `json:"clientTokenRequired"`
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	uptime := time.Since(h.startedAt).Seconds()
	c.JSON(http.StatusOK, HealthResponse{
		Status:              "ok",
		UptimeSec:           math.Round(uptime*100) / 100,
		HasOpenAIKey:        h.cfg.HasOpenAIKey(),
		ClientTokenRequired: h.cfg.ClientTokenRequired(),
	})
}
