package dto

import (
	"time"

	"github.com/aguskov/oilpulse/internal/domain/models"
)

// TradingResultResponse is the JSON shape of one persisted trading result.
// Date keeps the source bulletin rendering (day.month.year).
//
// swagger:model TradingResultResponse
type TradingResultResponse struct {
	ID                  int64  `json:"id" example:"1"`
	ExchangeProductID   string `json:"exchange_product_id" example:"A592ECO000F"`
	ExchangeProductName string `json:"exchange_product_name" example:"Бензин (АИ-92-К5)"`
	OilID               string `json:"oil_id" example:"A592"`
	DeliveryBasisID     string `json:"delivery_basis_id" example:"ECO"`
	DeliveryBasisName   string `json:"delivery_basis_name" example:"ст. Экибастуз"`
	DeliveryTypeID      string `json:"delivery_type_id" example:"F"`
	Volume              int64  `json:"volume" example:"1000"`
	Total               int64  `json:"total" example:"50000"`
	Count               int64  `json:"count" example:"10"`
	Date                string `json:"date" example:"10.01.2023"`
}

// NewTradingResultResponse maps a domain record to its API shape.
func NewTradingResultResponse(r models.TradingResult) TradingResultResponse {
	return TradingResultResponse{
		ID:                  r.ID,
		ExchangeProductID:   r.ExchangeProductID,
		ExchangeProductName: r.ExchangeProductName,
		OilID:               r.OilID,
		DeliveryBasisID:     r.DeliveryBasisID,
		DeliveryBasisName:   r.DeliveryBasisName,
		DeliveryTypeID:      r.DeliveryTypeID,
		Volume:              r.Volume,
		Total:               r.Total,
		Count:               r.Count,
		Date:                r.Date.Format(models.ReportDateLayout),
	}
}

// NewTradingResultResponses maps a slice of domain records, preserving order.
func NewTradingResultResponses(recs []models.TradingResult) []TradingResultResponse {
	out := make([]TradingResultResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, NewTradingResultResponse(r))
	}
	return out
}

// DatesResponse lists the most recent report dates, newest first.
//
// swagger:model DatesResponse
type DatesResponse struct {
	Dates []string `json:"dates" example:"10.01.2023"`
}

// NewDatesResponse renders dates in the source bulletin format.
func NewDatesResponse(dates []time.Time) DatesResponse {
	out := DatesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.Format(models.ReportDateLayout))
	}
	return out
}
