package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/aguskov/oilpulse/internal/domain/models"
)

// ResultsFilter narrows read queries by the derived code fields. Empty
// fields are not applied.
type ResultsFilter struct {
	OilID           string
	DeliveryTypeID  string
	DeliveryBasisID string
}

// TradingResultsRepository defines the contract for DB operations.
type TradingResultsRepository interface {
	// CreateTradingResult performs an unconditional insert of one record and
	// returns the stored form with its assigned identity. No dedup across
	// dates or runs.
	CreateTradingResult(r models.TradingResult) (models.TradingResult, error)
	GetLastTradingDates(limit int) ([]time.Time, error)
	GetDynamics(f ResultsFilter, start, end time.Time) ([]models.TradingResult, error)
	GetTradingResults(f ResultsFilter, limit int) ([]models.TradingResult, error)
}

type tradingResultsRepository struct {
	db *sql.DB
}

func NewTradingResultsRepository(db *sql.DB) TradingResultsRepository {
	return &tradingResultsRepository{db: db}
}

const resultColumns = `id, exchange_product_id, exchange_product_name, oil_id,
		delivery_basis_id, delivery_basis_name, delivery_type_id,
		volume, total, count, date, created_on, updated_on`

func (r *tradingResultsRepository) CreateTradingResult(rec models.TradingResult) (models.TradingResult, error) {
	err := r.db.QueryRow(`
		INSERT INTO trading_results (
			exchange_product_id, exchange_product_name, oil_id,
			delivery_basis_id, delivery_basis_name, delivery_type_id,
			volume, total, count, date, created_on, updated_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`,
		rec.ExchangeProductID,
		rec.ExchangeProductName,
		rec.OilID,
		rec.DeliveryBasisID,
		rec.DeliveryBasisName,
		rec.DeliveryTypeID,
		rec.Volume,
		rec.Total,
		rec.Count,
		rec.Date,
		rec.CreatedOn,
		rec.UpdatedOn,
	).Scan(&rec.ID)
	if err != nil {
		return models.TradingResult{}, fmt.Errorf("insert trading result: %w", err)
	}
	return rec, nil
}

// GetLastTradingDates returns the most recent distinct report dates,
// newest first.
func (r *tradingResultsRepository) GetLastTradingDates(limit int) ([]time.Time, error) {
	rows, err := r.db.Query(`SELECT DISTINCT date FROM trading_results ORDER BY date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// GetDynamics returns all results inside [start, end], oldest first, with
// optional code filters applied.
func (r *tradingResultsRepository) GetDynamics(f ResultsFilter, start, end time.Time) ([]models.TradingResult, error) {
	conditions := "date >= $1 AND date <= $2"
	args := []interface{}{start, end}
	conditions, args = f.apply(conditions, args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM trading_results
		WHERE %s
		ORDER BY date, id
	`, resultColumns, conditions)

	return r.queryResults(query, args...)
}

// GetTradingResults returns the latest persisted results, newest first,
// with optional code filters applied.
func (r *tradingResultsRepository) GetTradingResults(f ResultsFilter, limit int) ([]models.TradingResult, error) {
	conditions := "TRUE"
	args := []interface{}{}
	conditions, args = f.apply(conditions, args)
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM trading_results
		WHERE %s
		ORDER BY date DESC, id DESC
		LIMIT $%d
	`, resultColumns, conditions, len(args))

	return r.queryResults(query, args...)
}

// apply appends one positional condition per non-empty filter field.
// Placeholders continue from the arguments already collected.
func (f ResultsFilter) apply(conditions string, args []interface{}) (string, []interface{}) {
	if f.OilID != "" {
		args = append(args, f.OilID)
		conditions += fmt.Sprintf(" AND oil_id = $%d", len(args))
	}
	if f.DeliveryTypeID != "" {
		args = append(args, f.DeliveryTypeID)
		conditions += fmt.Sprintf(" AND delivery_type_id = $%d", len(args))
	}
	if f.DeliveryBasisID != "" {
		args = append(args, f.DeliveryBasisID)
		conditions += fmt.Sprintf(" AND delivery_basis_id = $%d", len(args))
	}
	return conditions, args
}

func (r *tradingResultsRepository) queryResults(query string, args ...interface{}) ([]models.TradingResult, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TradingResult
	for rows.Next() {
		var rec models.TradingResult
		if err := rows.Scan(
			&rec.ID,
			&rec.ExchangeProductID,
			&rec.ExchangeProductName,
			&rec.OilID,
			&rec.DeliveryBasisID,
			&rec.DeliveryBasisName,
			&rec.DeliveryTypeID,
			&rec.Volume,
			&rec.Total,
			&rec.Count,
			&rec.Date,
			&rec.CreatedOn,
			&rec.UpdatedOn,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
