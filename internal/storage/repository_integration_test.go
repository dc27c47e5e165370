//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aguskov/oilpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "oilpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=oilpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/oilpulse?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestRepository_EndToEnd(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()

	db := openDB(t, dsn)
	defer func() { _ = db.Close() }()
	runMigrations(t, db)

	repo := NewTradingResultsRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	days := []time.Time{
		time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range days {
		for _, id := range []string{"A592ECO000F", "DT50NVY005A"} {
			rec := models.NewTradingResult(id, "name "+id, "basis", 1000, 50000, 10, d)
			rec.CreatedOn = now
			rec.UpdatedOn = now

			stored, err := repo.CreateTradingResult(rec)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if stored.ID == 0 {
				t.Fatalf("expected assigned id, got %+v", stored)
			}
		}
	}

	// Inserts are unconditional: the same record twice yields two rows.
	dup := models.NewTradingResult("A592ECO000F", "dup", "basis", 1, 1, 1, days[0])
	dup.CreatedOn, dup.UpdatedOn = now, now
	if _, err := repo.CreateTradingResult(dup); err != nil {
		t.Fatalf("duplicate create: %v", err)
	}

	dates, err := repo.GetLastTradingDates(2)
	if err != nil {
		t.Fatalf("last dates: %v", err)
	}
	if len(dates) != 2 || !dates[0].Equal(days[2]) || !dates[1].Equal(days[1]) {
		t.Fatalf("unexpected dates: %v", dates)
	}

	dyn, err := repo.GetDynamics(ResultsFilter{OilID: "A592"}, days[0], days[2])
	if err != nil {
		t.Fatalf("dynamics: %v", err)
	}
	if len(dyn) != 4 { // 3 days + 1 duplicate
		t.Fatalf("expected 4 A592 rows, got %d", len(dyn))
	}
	for i := 1; i < len(dyn); i++ {
		if dyn[i].Date.Before(dyn[i-1].Date) {
			t.Fatalf("dynamics not ordered by date: %v", dyn)
		}
	}

	latest, err := repo.GetTradingResults(ResultsFilter{DeliveryTypeID: "A"}, 10)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(latest) != 3 {
		t.Fatalf("expected 3 type-A rows, got %d", len(latest))
	}
	if !latest[0].Date.Equal(days[2]) {
		t.Fatalf("results not newest-first: %+v", latest[0])
	}
}
