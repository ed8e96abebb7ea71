package models

import "github.com/shopspring/decimal"

// RecommendationResponse represents the result of a sizing request
type RecommendationResponse struct {
	Category        string           `json:"category"`
	CategoryLabel   string           `json:"category_label"`
	Consumption     float64          `json:"consumption"`
	MinSystemSizeKW float64          `json:"min_system_size_kw"`
	Currency        string           `json:"currency"`
	Systems         []SystemResponse `json:"systems"`
	Message         string           `json:"message,omitempty"`
}

// SystemResponse is one eligible system and its projected benefits
type SystemResponse struct {
	SizeKW          int             `json:"size_kw"`
	MonthlyBenefit  decimal.Decimal `json:"monthly_benefit"`
	SixMonthBenefit decimal.Decimal `json:"six_month_benefit"`
	YearlyBenefit   decimal.Decimal `json:"yearly_benefit"`
	ElectricityBill string          `json:"electricity_bill"`
}

// CatalogResponse lists categories and the constants of the benefit model
type CatalogResponse struct {
	Categories []CategoryInfo `json:"categories"`
	UnitsPerKW float64        `json:"units_per_kw"`
	ExportRate float64        `json:"export_rate"`
	Currency   string         `json:"currency"`
}

// CategoryInfo describes one property category
type CategoryInfo struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Kind    string `json:"kind"` // "house" or "business"
	SizesKW []int  `json:"sizes_kw"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
