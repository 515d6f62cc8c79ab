package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/dto"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/httpresp"
)

type MeHandler struct {
	users  user.Repository
	logger *zap.Logger
}

func NewMeHandler(users user.Repository, logger *zap.Logger) *MeHandler {
	return &MeHandler{users: users, logger: logger}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetByID(c.Request.Context(), ownerID(c))
	if errors.Is(err, user.ErrNotFound) {
		// live session for a user that no longer exists
		httperr.Unauthorized(c)
		return
	}
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewMeDTO(u))
}
