package ingestion

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aguskov/oilpulse/internal/logger"
	"github.com/aguskov/oilpulse/internal/storage"
)

// repoCtor is an indirection for creating the repository; tests override it.
var repoCtor = func(db *sql.DB) storage.TradingResultsRepository {
	return storage.NewTradingResultsRepository(db)
}

// extractReport is an indirection over Extract so driver tests can stub the
// workbook decoding.
var extractReport = Extract

// RunSummary accounts for every date in the ingestion window. The three
// zero-record outcomes (not published, wrong unit, malformed file) stay
// separately observable.
type RunSummary struct {
	DatesProcessed   int
	DatesUnavailable int
	UnitMismatches   int
	MalformedReports int
	RecordsInserted  int
}

// Run ingests bulletins for every calendar day from start to end inclusive,
// ascending, with no gaps: weekends and holidays are discovered per date via
// the probe, never predicted.
//
// Per date: probe; if published, fetch and extract, then persist each record
// in source row order, one insert at a time. A malformed bulletin is logged
// and skipped so a single bad file cannot abort a multi-year backfill.
// Transport and persistence failures propagate and stop the run.
func Run(ctx context.Context, loc *Locator, db *sql.DB, start, end time.Time) (*RunSummary, error) {
	repo := repoCtor(db)
	summary := &RunSummary{}

	start = truncateToDate(start)
	end = truncateToDate(end)

	logger.L().Info().
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Msg("ingestion start")

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if err := ingestDate(ctx, loc, repo, d, summary); err != nil {
			return summary, err
		}
	}

	logger.L().Info().
		Int("dates_processed", summary.DatesProcessed).
		Int("dates_unavailable", summary.DatesUnavailable).
		Int("unit_mismatches", summary.UnitMismatches).
		Int("malformed_reports", summary.MalformedReports).
		Int("records_inserted", summary.RecordsInserted).
		Msg("ingestion done")

	return summary, nil
}

func ingestDate(ctx context.Context, loc *Locator, repo storage.TradingResultsRepository, d time.Time, summary *RunSummary) error {
	day := d.Format("2006-01-02")

	available, err := loc.Probe(ctx, d)
	if err != nil {
		return fmt.Errorf("probe %s: %w", day, err)
	}
	if !available {
		summary.DatesUnavailable++
		logger.L().Debug().Str("date", day).Msg("no bulletin published")
		return nil
	}

	// The probe discarded its payload; extraction reads its own copy.
	payload, err := loc.Fetch(ctx, d)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", day, err)
	}

	report, err := extractReport(bytes.NewReader(payload), d)
	if err != nil {
		var malformed *MalformedReportError
		if errors.As(err, &malformed) {
			summary.MalformedReports++
			logger.L().Error().Str("date", day).Str("reason", malformed.Reason).Msg("bulletin skipped")
			return nil
		}
		return fmt.Errorf("extract %s: %w", day, err)
	}

	if report.Status == StatusUnitMismatch {
		summary.UnitMismatches++
		logger.L().Warn().Str("date", day).Msg("bulletin not denominated in metric tons")
		return nil
	}

	now := time.Now().UTC()
	for _, rec := range report.Results {
		rec.CreatedOn = now
		rec.UpdatedOn = now
		if _, err := repo.CreateTradingResult(rec); err != nil {
			return fmt.Errorf("persist %s %s: %w", day, rec.ExchangeProductID, err)
		}
		summary.RecordsInserted++
	}

	summary.DatesProcessed++
	logger.L().Info().Str("date", day).Int("records", len(report.Results)).Msg("bulletin ingested")
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
