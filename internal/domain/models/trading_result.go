package models

import "time"

// ReportDateLayout is how the source bulletin renders a report date
// (day.month.year, e.g. "10.01.2023"). Used at API and log boundaries;
// internally dates are plain time.Time values.
const ReportDateLayout = "02.01.2006"

// TradingResult is one normalized row of a daily SPIMEX oil trading bulletin.
//
// ExchangeProductID is a fixed-layout composite code: the first 4 characters
// name the oil grade, characters 5-7 the delivery basis, and the last
// character the delivery type. OilID, DeliveryBasisID and DeliveryTypeID are
// always positional slices of it, never sourced independently.
type TradingResult struct {
	ID                  int64
	ExchangeProductID   string
	ExchangeProductName string
	OilID               string
	DeliveryBasisID     string
	DeliveryBasisName   string
	DeliveryTypeID      string
	Volume              int64
	Total               int64
	Count               int64
	Date                time.Time
	CreatedOn           time.Time
	UpdatedOn           time.Time
}

// NewTradingResult builds a TradingResult from the raw row fields, deriving
// the three code fields from the composite product id. The id must be at
// least 8 characters long; callers validate that before constructing.
func NewTradingResult(productID, productName, basisName string, volume, total, count int64, date time.Time) TradingResult {
	return TradingResult{
		ExchangeProductID:   productID,
		ExchangeProductName: productName,
		OilID:               productID[:4],
		DeliveryBasisID:     productID[4:7],
		DeliveryBasisName:   basisName,
		DeliveryTypeID:      productID[len(productID)-1:],
		Volume:              volume,
		Total:               total,
		Count:               count,
		Date:                date,
	}
}
