package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nayrana/internal/service"
)

// ReportHandler handles commission reporting.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Commissions godoc
// @Summary Commission report grouped by hotel code
// @Tags reports
// @Produce json
// @Success 200 {array} service.CommissionRow
// @Security BearerAuth
// @Router /reports/commissions [get]
func (h *ReportHandler) Commissions(c echo.Context) error {
	report, err := h.reportService.Commissions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
