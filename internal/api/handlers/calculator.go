package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"solar-calculator/internal/api/models"
	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler handles sizing and report requests
type CalculatorHandler struct {
	calc  *calculator.Calculator
	cache *report.Cache
}

// NewCalculatorHandler creates a new calculator handler. cache may be nil.
func NewCalculatorHandler(calc *calculator.Calculator, cache *report.Cache) *CalculatorHandler {
	return &CalculatorHandler{calc: calc, cache: cache}
}

// ListCategories handles GET /api/v1/categories
func (h *CalculatorHandler) ListCategories(c *gin.Context) {
	catalog := h.calc.Catalog()
	params := h.calc.Params()

	categories := make([]models.CategoryInfo, 0, len(catalog))
	for _, cat := range model.AllCategories() {
		categories = append(categories, models.CategoryInfo{
			ID:      string(cat),
			Label:   cat.Label(),
			Kind:    cat.Kind(),
			SizesKW: catalog.Sizes(cat),
		})
	}

	c.JSON(http.StatusOK, models.CatalogResponse{
		Categories: categories,
		UnitsPerKW: params.UnitsPerKW,
		ExportRate: params.ExportRate,
		Currency:   params.Currency,
	})
}

// Recommend handles POST /api/v1/recommendations
func (h *CalculatorHandler) Recommend(c *gin.Context) {
	cat, consumption, ok := h.bindRequest(c)
	if !ok {
		return
	}
	rec := h.calc.Recommend(cat, consumption)
	c.JSON(http.StatusOK, buildResponse(rec))
}

// ExportReport handles POST /api/v1/report
func (h *CalculatorHandler) ExportReport(c *gin.Context) {
	var q models.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	format, err := report.ParseFormat(q.Format)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return
	}

	cat, consumption, ok := h.bindRequest(c)
	if !ok {
		return
	}
	h.writeReport(c, format, cat, consumption)
}

func (h *CalculatorHandler) bindRequest(c *gin.Context) (model.Category, float64, bool) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return "", 0, false
	}
	if err := calculator.ValidateConsumption(*req.Consumption); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_CONSUMPTION", err.Error())
		return "", 0, false
	}
	cat, err := model.ParseCategory(req.Category)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		return "", 0, false
	}
	return cat, *req.Consumption, true
}

// writeReport renders (or reuses) the document and sends it as an attachment.
func (h *CalculatorHandler) writeReport(c *gin.Context, format report.Format, cat model.Category, consumption float64) {
	rec := h.calc.Recommend(cat, consumption)
	if len(rec.Systems) == 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_SYSTEMS",
				Message: model.NoSystemsMessage,
				Details: map[string]interface{}{
					"category":    string(cat),
					"consumption": consumption,
				},
			},
		})
		return
	}

	key := report.CacheKey(format, cat, consumption)
	body, hit := h.cache.Get(key)
	if !hit {
		var buf bytes.Buffer
		if err := format.Write(&buf, rec); err != nil {
			log.Printf("CalculatorHandler: report render failed (format=%s category=%s): %v", format, cat, err)
			writeError(c, http.StatusInternalServerError, "REPORT_ERROR", err.Error())
			return
		}
		body = buf.Bytes()
		h.cache.Set(key, body)
	}

	log.Printf("CalculatorHandler: report format=%s category=%s consumption=%s systems=%d bytes=%d cached=%v",
		format, cat, report.FormatConsumption(consumption), len(rec.Systems), len(body), hit)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.Filename()))
	c.Data(http.StatusOK, format.ContentType(), body)
}

func buildResponse(rec model.Recommendation) models.RecommendationResponse {
	resp := models.RecommendationResponse{
		Category:        string(rec.Category),
		CategoryLabel:   rec.Category.Label(),
		Consumption:     rec.Consumption,
		MinSystemSizeKW: rec.MinSystemSizeKW,
		Currency:        rec.Currency,
		Systems:         make([]models.SystemResponse, 0, len(rec.Systems)),
	}
	for _, s := range rec.Systems {
		resp.Systems = append(resp.Systems, models.SystemResponse{
			SizeKW:          s.SizeKW,
			MonthlyBenefit:  s.Monthly,
			SixMonthBenefit: s.SixMonth,
			YearlyBenefit:   s.Yearly,
			ElectricityBill: model.ElectricityBill,
		})
	}
	if rec.Empty() {
		resp.Message = model.NoSystemsMessage
	}
	return resp
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
