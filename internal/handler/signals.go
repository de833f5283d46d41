package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

var signalFilters = map[string]queryKind{
	"strategy_id": queryString,
	"symbol":      queryString,
	"side":        queryString,
}

type SignalHandler struct {
	Signals *service.SignalService
}

func (h *SignalHandler) Register(r *gin.Engine) {
	r.POST("/signals", h.ingestSignal)
	r.GET("/signals", h.listSignals)
}

// @Summary Ingest signal
// @Description generated_at defaults to the server time (UTC) when omitted.
// @Tags signals
// @Accept json
// @Param Idempotency-Key header string false "replay-safe retry key"
// @Param body body models.Signal true "signal"
// @Success 200 {object} createdResponse
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /signals [post]
func (h *SignalHandler) ingestSignal(c *gin.Context) {
	var sig models.Signal
	if err := models.Decode(c.Request.Body, &sig); err != nil {
		Fail(c, err)
		return
	}
	res, err := h.Signals.Ingest(c.Request.Context(), &sig, createOptions(c))
	if err != nil {
		Fail(c, err)
		return
	}
	created(c, res)
}

// @Summary List signals
// @Tags signals
// @Param strategy_id query string false "strategy id"
// @Param symbol query string false "symbol"
// @Param side query string false "buy|sell"
// @Success 200 {array} models.Signal
// @Router /signals [get]
func (h *SignalHandler) listSignals(c *gin.Context) {
	items, err := service.ListRecords[models.Signal](c.Request.Context(), h.Signals.Docs, models.CollectionSignal, filterFromQuery(c, signalFilters), defaultListLimit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
