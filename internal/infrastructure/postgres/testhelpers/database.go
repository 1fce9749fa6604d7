// Package testhelpers spins up a throwaway Postgres for repository tests.
package testhelpers

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/commercekit/amazon-pay-gateway/internal/config"
	"github.com/commercekit/amazon-pay-gateway/internal/infrastructure/postgres"
)

// schema mirrors the host shop tables the gateway reads plus the one table it
// owns. The shop manages the real schema; this is only enough to test against.
const schema = `
CREATE TABLE addresses (
	id          BIGSERIAL PRIMARY KEY,
	first_name  VARCHAR(255),
	last_name   VARCHAR(255)
);

CREATE TABLE orders (
	number           VARCHAR(32) PRIMARY KEY,
	currency         VARCHAR(3) NOT NULL,
	total_cents      BIGINT NOT NULL,
	ship_address_id  BIGINT REFERENCES addresses(id)
);

CREATE TABLE payments (
	number    VARCHAR(32) PRIMARY KEY,
	currency  VARCHAR(3) NOT NULL
);

CREATE TABLE amazon_transactions (
	id                  UUID PRIMARY KEY,
	order_number        VARCHAR(32) NOT NULL,
	payment_number      VARCHAR(32) NOT NULL,
	order_reference_id  VARCHAR(64) NOT NULL,
	authorization_id    VARCHAR(64),
	capture_id          VARCHAR(64),
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL
);

CREATE INDEX idx_amazon_transactions_order ON amazon_transactions (order_number, created_at);
CREATE INDEX idx_amazon_transactions_payment ON amazon_transactions (payment_number, created_at);
`

type TestDatabase struct {
	Container testcontainers.Container
	DB        *postgres.DB
	Config    *config.DatabaseConfig
}

func SetupTestDatabase(t *testing.T) *TestDatabase {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dbConfig := &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Name:            "testdb",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := postgres.Connect(ctx, dbConfig, logger)
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, schema)
	require.NoError(t, err)

	return &TestDatabase{
		Container: container,
		DB:        db,
		Config:    dbConfig,
	}
}

func (td *TestDatabase) Cleanup(t *testing.T) {
	ctx := context.Background()
	td.DB.Close()
	require.NoError(t, td.Container.Terminate(ctx))
}

func (td *TestDatabase) CleanTables(t *testing.T) {
	ctx := context.Background()

	_, err := td.DB.Pool.Exec(ctx, "TRUNCATE TABLE amazon_transactions, payments, orders, addresses RESTART IDENTITY CASCADE;")
	require.NoError(t, err)
}
