package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/server/http/dto"
)

// UsersHandler serves the user directory.
type UsersHandler struct {
	facade DirectoryFacade
}

func NewUsersHandler(facade DirectoryFacade) *UsersHandler {
	return &UsersHandler{facade: facade}
}

// List handles GET /users?page&limit.
func (h *UsersHandler) List(c *gin.Context) {
	req := model.PageRequest{Page: queryInt(c, "page"), Limit: queryInt(c, "limit")}

	page, err := h.facade.Users(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUsersResponse(page))
}
