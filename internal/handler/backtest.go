package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

type BacktestHandler struct {
	Backtests *service.BacktestService
}

func (h *BacktestHandler) Register(r *gin.Engine) {
	r.POST("/backtest", h.run)
}

// @Summary Run backtest
// @Description Records the request and returns placeholder metrics that do not depend on the input.
// @Tags backtest
// @Accept json
// @Param body body models.BacktestRequest true "backtest request"
// @Success 200 {object} models.BacktestResult
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /backtest [post]
func (h *BacktestHandler) run(c *gin.Context) {
	var req models.BacktestRequest
	if err := models.Decode(c.Request.Body, &req); err != nil {
		Fail(c, err)
		return
	}
	result, err := h.Backtests.Run(c.Request.Context(), &req)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
