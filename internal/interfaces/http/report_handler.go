package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-tracker/internal/application/analytics"
)

// ReportHandler maneja los reportes de stock.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockReport godoc
// @Summary      Stock por producto y ubicación
// @Description  Solo saldos positivos, ordenados por nombre de producto según REPORT_LOCALE.
// @Tags         reports
// @Produce      json,application/pdf,application/xml
// @Param        format  query  string  false  "json | pdf | xml"  default(json)
// @Success      200  {object}  dto.StockReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", appanalytics.FormatJSON))
	if format == appanalytics.FormatJSON {
		return c.JSON(h.uc.StockReport())
	}
	out, contentType, err := h.uc.Export(c.UserContext(), format)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.`+format+`"`)
	return c.Send(out)
}

// ProductTotals godoc
// @Summary      Stock total por producto
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ProductTotalsResponse
// @Router       /api/reports/products [get]
func (h *ReportHandler) ProductTotals(c *fiber.Ctx) error {
	return c.JSON(h.uc.ProductTotals())
}
