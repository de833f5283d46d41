package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

const defaultListLimit = 100

var strategyFilters = map[string]queryKind{
	"asset_class": queryString,
	"timeframe":   queryString,
	"mode":        queryString,
	"status":      queryString,
	"owner_email": queryString,
}

type StrategyHandler struct {
	Docs *service.DocumentService
}

func (h *StrategyHandler) Register(r *gin.Engine) {
	r.POST("/strategies", h.createStrategy)
	r.GET("/strategies", h.listStrategies)
}

// @Summary Create strategy
// @Tags strategies
// @Accept json
// @Param Idempotency-Key header string false "replay-safe retry key"
// @Param body body models.Strategy true "strategy"
// @Success 200 {object} createdResponse
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /strategies [post]
func (h *StrategyHandler) createStrategy(c *gin.Context) {
	var strategy models.Strategy
	if err := models.Decode(c.Request.Body, &strategy); err != nil {
		Fail(c, err)
		return
	}
	res, err := h.Docs.Create(c.Request.Context(), models.CollectionStrategy, &strategy, createOptions(c))
	if err != nil {
		Fail(c, err)
		return
	}
	created(c, res)
}

// @Summary List strategies
// @Tags strategies
// @Param status query string false "draft|active|paused"
// @Param mode query string false "paper|live"
// @Param asset_class query string false "asset class"
// @Param timeframe query string false "bar timeframe"
// @Param owner_email query string false "owner email"
// @Success 200 {array} models.Strategy
// @Router /strategies [get]
func (h *StrategyHandler) listStrategies(c *gin.Context) {
	items, err := service.ListRecords[models.Strategy](c.Request.Context(), h.Docs, models.CollectionStrategy, filterFromQuery(c, strategyFilters), defaultListLimit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
