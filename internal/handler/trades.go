package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

var tradeFilters = map[string]queryKind{
	"broker":      queryString,
	"strategy_id": queryString,
	"symbol":      queryString,
	"side":        queryString,
	"status":      queryString,
	"order_id":    queryString,
}

type TradeHandler struct {
	Trades *service.TradeService
}

func (h *TradeHandler) Register(r *gin.Engine) {
	r.POST("/trades", h.logTrade)
	r.GET("/trades", h.listTrades)
}

// @Summary Log trade
// @Tags trades
// @Accept json
// @Param Idempotency-Key header string false "replay-safe retry key"
// @Param body body models.Trade true "trade"
// @Success 200 {object} createdResponse
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /trades [post]
func (h *TradeHandler) logTrade(c *gin.Context) {
	var trade models.Trade
	if err := models.Decode(c.Request.Body, &trade); err != nil {
		Fail(c, err)
		return
	}
	res, err := h.Trades.Record(c.Request.Context(), &trade, createOptions(c))
	if err != nil {
		Fail(c, err)
		return
	}
	created(c, res)
}

// @Summary List trades
// @Tags trades
// @Param broker query string false "broker"
// @Param strategy_id query string false "strategy id"
// @Param symbol query string false "symbol"
// @Param side query string false "buy|sell"
// @Param status query string false "submitted|filled|rejected|canceled|error"
// @Param order_id query string false "broker order id"
// @Success 200 {array} models.Trade
// @Router /trades [get]
func (h *TradeHandler) listTrades(c *gin.Context) {
	items, err := service.ListRecords[models.Trade](c.Request.Context(), h.Trades.Docs, models.CollectionTrade, filterFromQuery(c, tradeFilters), defaultListLimit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
