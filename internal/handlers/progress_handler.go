package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/dto"
	"github.com/BruksfildServices01/ojt-tracker/internal/httpresp"
	ucEntry "github.com/BruksfildServices01/ojt-tracker/internal/usecase/entry"
)

type ProgressHandler struct {
	progressUC       *ucEntry.GetProgress
	getSettingsUC    *ucEntry.GetSettings
	updateSettingsUC *ucEntry.UpdateSettings

	logger *zap.Logger
}

func NewProgressHandler(
	progressUC *ucEntry.GetProgress,
	getSettingsUC *ucEntry.GetSettings,
	updateSettingsUC *ucEntry.UpdateSettings,
	logger *zap.Logger,
) *ProgressHandler {
	return &ProgressHandler{
		progressUC:       progressUC,
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		logger:           logger,
	}
}

func (h *ProgressHandler) Progress(c *gin.Context) {
	p, err := h.progressUC.Execute(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *ProgressHandler) GetSettings(c *gin.Context) {
	hours, err := h.getSettingsUC.Execute(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.SettingsDTO{RequiredHours: hours})
}

func (h *ProgressHandler) UpdateSettings(c *gin.Context) {
	var in domain.SettingsInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.updateSettingsUC.Execute(c.Request.Context(), ownerID(c), in); err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.NoContent(c)
}
