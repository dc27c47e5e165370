package ingestion

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"

	"github.com/aguskov/oilpulse/internal/domain/models"
)

// Layout contract with the upstream bulletin format. Positions are fixed;
// there is no header inference.
const (
	unitMarkerRow = 4
	unitMarkerCol = 1
	// "Unit of measurement: Metric ton" exactly as printed in the bulletin.
	unitMarkerText = "Единица измерения: Метрическая тонна"

	dataFirstRow    = 7 // rows 0-6 are a fixed header block
	footerRows      = 2 // last 2 rows never contain trade data
	noTradeMarker   = "-"
	minProductIDLen = 8

	colProductID   = 1
	colProductName = 2
	colBasisName   = 3
	colVolume      = 4
	colTotal       = 5
	colCount       = 14
)

// ReportStatus distinguishes the two zero-record outcomes a published file
// can produce: a normal extraction and a bulletin denominated in a unit other
// than metric tons. Callers must not conflate either with "file absent".
type ReportStatus string

const (
	StatusOK           ReportStatus = "ok"
	StatusUnitMismatch ReportStatus = "unit_mismatch"
)

// Report is the outcome of extracting one bulletin.
// Results is empty when Status is StatusUnitMismatch.
type Report struct {
	Date    time.Time
	Status  ReportStatus
	Results []models.TradingResult
}

// MalformedReportError marks a bulletin whose grid does not match the layout
// contract (missing header block, short rows, unparsable numbers). The driver
// treats it as a per-date failure so one bad file cannot abort a backfill.
type MalformedReportError struct {
	Reason string
}

func (e *MalformedReportError) Error() string {
	return "malformed report: " + e.Reason
}

// Extract reads a legacy .xls bulletin and produces the normalized trading
// results for the given report date.
//
// The date is supplied by the caller (it names the file being processed) and
// is never parsed out of the sheet. Extraction is deterministic and preserves
// the top-to-bottom order of qualifying rows; each call re-reads the resource.
func Extract(r io.ReadSeeker, date time.Time) (*Report, error) {
	grid, err := decodeGrid(r)
	if err != nil {
		return nil, &MalformedReportError{Reason: err.Error()}
	}
	return extractGrid(grid, date)
}

// decodeGrid loads the first sheet of the workbook as a row-major string
// grid, preserving original row and column order.
func decodeGrid(r io.ReadSeeker) ([][]string, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	grid := make([][]string, int(sheet.MaxRow)+1)
	for i := range grid {
		row := sheet.Row(i)
		if row == nil {
			grid[i] = nil
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		grid[i] = cells
	}
	return grid, nil
}

// extractGrid runs the layout validation, unit-of-measurement guard, row
// filter and projection over an in-memory grid.
func extractGrid(grid [][]string, date time.Time) (*Report, error) {
	minRows := dataFirstRow + footerRows
	if len(grid) < minRows {
		return nil, &MalformedReportError{
			Reason: fmt.Sprintf("grid has %d rows, need at least %d", len(grid), minRows),
		}
	}

	report := &Report{Date: date, Status: StatusOK}

	// A bulletin in any unit other than metric tons yields zero records.
	// This is a distinct success variant, not an error, and it is decided
	// before any data row is looked at.
	if cell(grid, unitMarkerRow, unitMarkerCol) != unitMarkerText {
		report.Status = StatusUnitMismatch
		return report, nil
	}

	region, err := validateRegion(grid)
	if err != nil {
		return nil, err
	}

	for _, row := range region {
		// A dash in the trade-count column marks an instrument/basis pairing
		// with no trades that day; the row is structurally present but void.
		if strings.TrimSpace(row[colCount]) == noTradeMarker {
			continue
		}

		productID := strings.TrimSpace(row[colProductID])
		if len(productID) < minProductIDLen {
			return nil, &MalformedReportError{
				Reason: fmt.Sprintf("product id %q shorter than %d characters", productID, minProductIDLen),
			}
		}

		volume, err := parseAmount(row[colVolume])
		if err != nil {
			return nil, &MalformedReportError{Reason: fmt.Sprintf("volume for %s: %v", productID, err)}
		}
		total, err := parseAmount(row[colTotal])
		if err != nil {
			return nil, &MalformedReportError{Reason: fmt.Sprintf("total for %s: %v", productID, err)}
		}
		count, err := parseAmount(row[colCount])
		if err != nil {
			return nil, &MalformedReportError{Reason: fmt.Sprintf("count for %s: %v", productID, err)}
		}

		report.Results = append(report.Results, models.NewTradingResult(
			productID,
			strings.TrimSpace(row[colProductName]),
			strings.TrimSpace(row[colBasisName]),
			volume,
			total,
			count,
			date,
		))
	}

	return report, nil
}

// validateRegion checks every data row against the layout contract and
// returns the data-region view (rows 7 .. len-2) before any row is
// processed. No partial projection happens on a malformed grid.
func validateRegion(grid [][]string) ([][]string, error) {
	region := grid[dataFirstRow : len(grid)-footerRows]
	for i, row := range region {
		if len(row) <= colCount {
			return nil, &MalformedReportError{
				Reason: fmt.Sprintf("data row %d has %d columns, need at least %d", dataFirstRow+i, len(row), colCount+1),
			}
		}
	}
	return region, nil
}

// cell returns the grid cell at (row, col), or "" when the position does not
// exist. Header cells outside the data region may legitimately be absent.
func cell(grid [][]string, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return strings.TrimSpace(grid[row][col])
}

// parseAmount converts a numeric cell to int64. Spreadsheet numbers surface
// as strings and integers frequently render with a trailing ".0", so the
// value goes through a float parse first.
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return int64(math.Round(f)), nil
}
