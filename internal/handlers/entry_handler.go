package handlers

import (
	"encoding/csv"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	"github.com/BruksfildServices01/ojt-tracker/internal/dto"
	"github.com/BruksfildServices01/ojt-tracker/internal/httpresp"
	ucEntry "github.com/BruksfildServices01/ojt-tracker/internal/usecase/entry"
)

// ======================================================
// HANDLER
// ======================================================

type EntryHandler struct {
	listUC   *ucEntry.ListEntries
	getUC    *ucEntry.GetEntry
	createUC *ucEntry.CreateEntry
	updateUC *ucEntry.UpdateEntry
	deleteUC *ucEntry.DeleteEntry

	logger *zap.Logger
}

func NewEntryHandler(
	listUC *ucEntry.ListEntries,
	getUC *ucEntry.GetEntry,
	createUC *ucEntry.CreateEntry,
	updateUC *ucEntry.UpdateEntry,
	deleteUC *ucEntry.DeleteEntry,
	logger *zap.Logger,
) *EntryHandler {
	return &EntryHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.listUC.Execute(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewEntryListDTO(entries))
}

func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.getUC.Execute(c.Request.Context(), ownerID(c), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewEntryDTO(e))
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *EntryHandler) Create(c *gin.Context) {
	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ownerID(c), in)
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.Created(c, dto.NewEntryDTO(created))
}

func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in domain.Input
	if !bindJSON(c, &in) {
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), ownerID(c), id, in); err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID(c), id); err != nil {
		fail(c, h.logger, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// EXPORT
// ======================================================

var csvHeader = []string{
	"id", "date",
	"morning_time_in", "morning_time_out",
	"afternoon_time_in", "afternoon_time_out",
	"evening_time_in", "evening_time_out",
	"morning_hours", "afternoon_hours", "evening_hours", "total_hours",
}

func (h *EntryHandler) ExportCSV(c *gin.Context) {
	entries, err := h.listUC.Execute(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="entries.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(csvHeader)

	for _, e := range dto.NewEntryListDTO(entries) {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Date,
			e.MorningTimeIn, e.MorningTimeOut,
			e.AfternoonTimeIn, e.AfternoonTimeOut,
			orEmpty(e.EveningTimeIn), orEmpty(e.EveningTimeOut),
			formatHours(e.Hours.Morning),
			formatHours(e.Hours.Afternoon),
			formatHours(e.Hours.Evening),
			formatHours(e.Hours.Total),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Warn("csv export interrupted", zap.Error(err))
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
