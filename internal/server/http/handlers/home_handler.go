package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/server/http/dto"
)

// HomeHandler serves the root greeting and the health check.
type HomeHandler struct {
	facade HealthFacade
}

func NewHomeHandler(facade HealthFacade) *HomeHandler {
	return &HomeHandler{facade: facade}
}

// Hello handles GET /.
func (h *HomeHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GreetingResponse{Msg: "Hello"})
}

// Health handles GET /healthz.
func (h *HomeHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		fail(c, domainErrors.Wrap(domainErrors.KindStoreUnavailable, "Service temporarily unavailable", err))
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
