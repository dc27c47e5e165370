package dto

import (
	"testing"
	"time"

	"github.com/aguskov/oilpulse/internal/domain/models"
)

func TestNewTradingResultResponse_DateRendering(t *testing.T) {
	day := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	r := models.NewTradingResult("A592ECO000F", "Товар", "Базис", 1000, 50000, 10, day)
	r.ID = 7

	resp := NewTradingResultResponse(r)
	if resp.Date != "10.01.2023" {
		t.Fatalf("date=%q, want 10.01.2023", resp.Date)
	}
	if resp.ID != 7 || resp.OilID != "A592" || resp.DeliveryBasisID != "ECO" || resp.DeliveryTypeID != "F" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNewTradingResultResponses_PreservesOrder(t *testing.T) {
	day := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	recs := []models.TradingResult{
		models.NewTradingResult("A592ECO000F", "first", "b", 1, 1, 1, day),
		models.NewTradingResult("DT50NVY005A", "second", "b", 2, 2, 2, day),
	}

	out := NewTradingResultResponses(recs)
	if len(out) != 2 || out[0].ExchangeProductName != "first" || out[1].ExchangeProductName != "second" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestNewDatesResponse(t *testing.T) {
	dates := []time.Time{
		time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	resp := NewDatesResponse(dates)
	if len(resp.Dates) != 2 || resp.Dates[0] != "11.01.2023" || resp.Dates[1] != "10.01.2023" {
		t.Fatalf("unexpected dates: %+v", resp.Dates)
	}
}
