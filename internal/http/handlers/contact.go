package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/expertrohr/web/internal/http/middleware"
	"github.com/expertrohr/web/internal/models"
)

const (
	msgSent       = "E-Mails erfolgreich gesendet."
	msgSendFailed = "Fehler beim Senden der E-Mails."
	msgBadRequest = "Ungültige Anfrage."
)

type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// @Summary Submit contact form
// @Description Sends the operator notification, the chat alert and, if an email is given, the customer acknowledgment
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body models.Submission true "contact form"
// @Success 200 {object} SendEmailResponse
// @Failure 400 {object} SendEmailResponse
// @Failure 500 {object} SendEmailResponse
// @Router /send-email [post]
func (h *Handler) SendEmail(c *gin.Context) {
	raw, err := c.GetRawData()
	// null would decode into a zero Submission
	if err != nil || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		c.JSON(http.StatusBadRequest, SendEmailResponse{Success: false, Message: msgBadRequest})
		return
	}
	var s models.Submission
	if err := binding.JSON.BindBody(raw, &s); err != nil {
		c.JSON(http.StatusBadRequest, SendEmailResponse{Success: false, Message: msgBadRequest})
		return
	}
	if err := h.Validator.Struct(s); err != nil {
		c.JSON(http.StatusBadRequest, SendEmailResponse{Success: false, Message: msgBadRequest})
		return
	}

	// a client hanging up must not abort a half-sent fan-out
	ctx := context.WithoutCancel(c.Request.Context())
	if _, err := h.Relay.Submit(ctx, c.GetString(middleware.RequestIDHeader), s); err != nil {
		c.JSON(http.StatusInternalServerError, SendEmailResponse{Success: false, Message: msgSendFailed})
		return
	}
	c.JSON(http.StatusOK, SendEmailResponse{Success: true, Message: msgSent})
}
