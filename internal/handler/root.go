package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

const rootMessage = "AI Hedge SaaS Backend Running"

type RootHandler struct {
	Diagnostics *service.DiagnosticsService
}

func (h *RootHandler) Register(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/test", h.diagnostics)
	r.GET("/plans", h.plans)
}

// @Summary Service banner
// @Tags system
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *RootHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// @Summary Store diagnostics
// @Description Always 200. The status field is one of not_configured, unreachable, connected, connected_with_error.
// @Tags system
// @Success 200 {object} service.DiagnosticsReport
// @Router /test [get]
func (h *RootHandler) diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Diagnostics.Report(c.Request.Context()))
}

// @Summary Pricing plans
// @Tags system
// @Success 200 {array} models.Plan
// @Router /plans [get]
func (h *RootHandler) plans(c *gin.Context) {
	c.JSON(http.StatusOK, models.PlanCatalog())
}
