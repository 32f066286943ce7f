package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expertrohr/web/internal/http/middleware"
	"github.com/expertrohr/web/internal/reviews"
)

// @Summary Google reviews
// @Description Aggregate rating and latest reviews of the configured place
// @Tags reviews
// @Produce json
// @Success 200 {object} models.ReviewSummary
// @Failure 500 {object} map[string]any
// @Router /api/reviews [get]
func (h *Handler) ReviewsList(c *gin.Context) {
	summary, err := h.Reviews.Summary(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, summary)
		return
	}

	log := h.Logger.With().Str("request_id", c.GetString(middleware.RequestIDHeader)).Logger()
	var upstream *reviews.UpstreamError
	switch {
	case errors.Is(err, reviews.ErrMisconfigured):
		log.Error().Err(err).Msg("reviews provider misconfigured")
		writeError(c, http.StatusInternalServerError, "GOOGLE_API_KEY oder GOOGLE_PLACE_ID fehlt", nil)
	case errors.As(err, &upstream):
		log.Error().Str("status", upstream.Status).RawJSON("payload", upstream.Payload).Msg("places api error")
		writeError(c, http.StatusInternalServerError, "Fehler bei Google Places API", upstream.Payload)
	default:
		log.Error().Err(err).Msg("reviews request failed")
		writeError(c, http.StatusInternalServerError, "Interner Serverfehler", nil)
	}
}

func writeError(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
