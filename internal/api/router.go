// Package api wires the HTTP routes of the calculator service.
package api

import (
	"net/http"
	"strings"

	"solar-calculator/internal/api/handlers"
	"solar-calculator/internal/api/middleware"
	"solar-calculator/internal/api/models"
	"solar-calculator/internal/calculator"
	"solar-calculator/internal/report"
	"solar-calculator/internal/web"

	"github.com/gin-gonic/gin"
)

// Options controls router construction.
type Options struct {
	AllowedOrigins []string
	// Cache may be nil to render every report.
	Cache *report.Cache
}

// NewRouter builds the gin engine with middleware, API routes and the page.
func NewRouter(calc *calculator.Calculator, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	router.SetHTMLTemplate(web.Templates())

	calcHandler := handlers.NewCalculatorHandler(calc, opts.Cache)
	pageHandler := handlers.NewPageHandler(calc, calcHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/categories", calcHandler.ListCategories)
		api.POST("/recommendations", calcHandler.Recommend)
		api.POST("/report", calcHandler.ExportReport)
	}

	router.GET("/", pageHandler.Index)
	router.GET("/export.pdf", pageHandler.ExportPDF)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
			})
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	return router
}
