package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hedgeapi/internal/models"
	"hedgeapi/internal/service"
)

const userListLimit = 50

var userFilters = map[string]queryKind{
	"email":        queryString,
	"plan":         queryString,
	"organization": queryString,
	"is_active":    queryBool,
}

type UserHandler struct {
	Docs *service.DocumentService
}

func (h *UserHandler) Register(r *gin.Engine) {
	r.POST("/users", h.createUser)
	r.GET("/users", h.listUsers)
}

// @Summary Create user
// @Tags users
// @Accept json
// @Param Idempotency-Key header string false "replay-safe retry key"
// @Param body body models.User true "user"
// @Success 200 {object} createdResponse
// @Failure 422 {object} apiResponse
// @Failure 503 {object} apiResponse
// @Router /users [post]
func (h *UserHandler) createUser(c *gin.Context) {
	var user models.User
	if err := models.Decode(c.Request.Body, &user); err != nil {
		Fail(c, err)
		return
	}
	res, err := h.Docs.Create(c.Request.Context(), models.CollectionUser, &user, createOptions(c))
	if err != nil {
		Fail(c, err)
		return
	}
	created(c, res)
}

// @Summary List users
// @Tags users
// @Param plan query string false "free|pro|enterprise"
// @Param email query string false "exact email"
// @Param organization query string false "organization"
// @Param is_active query bool false "active flag"
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) listUsers(c *gin.Context) {
	items, err := service.ListRecords[models.User](c.Request.Context(), h.Docs, models.CollectionUser, filterFromQuery(c, userFilters), userListLimit)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
