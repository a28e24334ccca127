// Package testhelpers provides shared fixtures for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// postgresImage is the stock image used for integration tests.
const postgresImage = "postgres:16-alpine"

// TestDB holds a shared test database container and connection pool.
type TestDB struct {
	Container testcontainers.Container
	Pool      *pgxpool.Pool
	ConnStr   string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a shared PostgreSQL container with the campaign_data and
// query_log tables created and three campaign_data rows seeded. The container
// is created once and reused across all tests in the run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "test_data",
			"POSTGRES_USER":     "campaign",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://campaign:test_password@%s:%s/test_data?sslmode=disable",
		host, port.Port())

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := seedSchema(ctx, pool); err != nil {
		return nil, fmt.Errorf("failed to seed schema: %w", err)
	}

	return &TestDB{
		Container: container,
		Pool:      pool,
		ConnStr:   connStr,
	}, nil
}

func seedSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS campaign_data (
			query TEXT,
			person_first_name TEXT,
			person_last_name TEXT,
			person_headline TEXT,
			person_business_email TEXT,
			person_personal_email TEXT,
			person_linkedin_url TEXT,
			company_name TEXT,
			company_size TEXT,
			company_type TEXT,
			company_country TEXT,
			company_industry TEXT,
			company_linkedin_url TEXT,
			company_meta_title TEXT,
			company_meta_description TEXT,
			company_meta_keywords TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS query_log (
			id UUID PRIMARY KEY,
			question TEXT NOT NULL,
			sql_query TEXT,
			row_count INTEGER NOT NULL DEFAULT 0,
			error TEXT,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`TRUNCATE campaign_data`,
		`INSERT INTO campaign_data (person_first_name, person_last_name, person_headline, company_name, company_industry, company_country)
		 VALUES
			('Ada', 'Lovelace', 'CEO at Analytical Engines', 'Analytical Engines', 'Technology', 'United Kingdom'),
			('Grace', 'Hopper', 'Compiler Engineer', 'Navy Systems', 'Software', 'United States'),
			('Alan', 'Turing', 'Research Lead', 'Bletchley Labs', 'Technology', 'United Kingdom')`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed statement failed: %w", err)
		}
	}
	return nil
}
