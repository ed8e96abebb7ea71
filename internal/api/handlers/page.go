package handlers

import (
	"log"
	"net/http"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"
	"solar-calculator/internal/web"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered calculator page
type PageHandler struct {
	calc    *calculator.Calculator
	reports *CalculatorHandler
}

// NewPageHandler creates a page handler sharing the report path of reports.
func NewPageHandler(calc *calculator.Calculator, reports *CalculatorHandler) *PageHandler {
	return &PageHandler{calc: calc, reports: reports}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	raw, present := c.GetQuery("consumption")
	prev := c.Query("prev")

	var in calculator.Input
	if prev != "" {
		// prev was produced by us; an edited one is simply ignored.
		if err := in.SetConsumption(prev); err != nil {
			in = calculator.Input{}
		}
	}

	errMsg := ""
	if present {
		if err := in.SetConsumption(raw); err != nil {
			errMsg = err.Error()
		}
	}

	cat, err := model.ParseCategory(c.Query("category"))
	if err != nil {
		log.Printf("PageHandler: %v, using %s", err, model.DefaultCategory)
		cat = model.DefaultCategory
	}

	rec := h.calc.Recommend(cat, in.Value())
	c.HTML(http.StatusOK, web.IndexTemplate, web.NewPageView(rec, in, raw, errMsg))
}

// ExportPDF handles GET /export.pdf
func (h *PageHandler) ExportPDF(c *gin.Context) {
	consumption, err := calculator.ParseConsumption(c.Query("consumption"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_CONSUMPTION", err.Error())
		return
	}
	cat, err := model.ParseCategory(c.Query("category"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_CATEGORY", err.Error())
		return
	}
	h.reports.writeReport(c, report.FormatPDF, cat, consumption)
}
