package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/expertrohr/web/internal/models"
	"github.com/expertrohr/web/internal/relay"
	"github.com/expertrohr/web/internal/reviews"
)

type Submitter interface {
	Submit(ctx context.Context, requestID string, s models.Submission) (relay.Result, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Relay     Submitter
	Reviews   reviews.Provider
	Journal   Pinger
	Validator *validator.Validate
	Logger    zerolog.Logger
	StaticDir string
}

// Healthz pings the outcome journal when one is configured.
func (h *Handler) Healthz(c *gin.Context) {
	if h.Journal != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.Journal.Ping(ctx); err != nil {
			h.Logger.Warn().Err(err).Msg("journal ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "journal unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
