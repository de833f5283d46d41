package handler

import (
	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

type WebhookHandler struct {
	Docs *service.DocumentService
}

func (h *WebhookHandler) Register(r *gin.Engine) {
	r.POST("/webhook", h.receive)
}

// @Summary Receive broker or alerting webhook
// @Description The payload is stored as-is.
// @Tags webhooks
// @Accept json
// @Param Idempotency-Key header string false "replay-safe retry key"
// @Param body body models.WebhookEvent true "event"
// @Success 200 {object} createdResponse
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /webhook [post]
func (h *WebhookHandler) receive(c *gin.Context) {
	var evt models.WebhookEvent
	if err := models.Decode(c.Request.Body, &evt); err != nil {
		Fail(c, err)
		return
	}
	opts := createOptions(c)
	opts.Publish = true
	res, err := h.Docs.Create(c.Request.Context(), models.CollectionWebhookEvent, &evt, opts)
	if err != nil {
		Fail(c, err)
		return
	}
	created(c, res)
}
