package models

// RecommendationRequest is the body of POST /api/v1/recommendations and POST /api/v1/report.
type RecommendationRequest struct {
	// Monthly consumption in units; must be >= 0.
	Consumption *float64 `json:"consumption" binding:"required"`
	// Category slug or label; defaults to house-single-phase.
	Category string `json:"category,omitempty"`
}

// ReportQuery carries the export options of POST /api/v1/report.
type ReportQuery struct {
	Format string `form:"format,omitempty"` // "pdf" (default) or "csv"
}
