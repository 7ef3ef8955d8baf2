//go:build integration

// Package dbtest starts a throwaway PostgreSQL container for store integration tests.
package dbtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MrJamesThe3rd/ascend/internal/database"
)

var (
	once    sync.Once
	dsn     string
	initErr error
)

// Pool returns a migrated pool on a container shared by the whole test binary.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		dsn, initErr = start()
	})

	if initErr != nil {
		t.Fatalf("dbtest: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.New(ctx, dsn, database.PoolOptions{MaxConns: 5})
	if err != nil {
		t.Fatalf("dbtest: connecting: %v", err)
	}

	t.Cleanup(pool.Close)

	return pool
}

// SeedUser inserts a user row so owned records satisfy their foreign keys.
func SeedUser(t *testing.T, pool *pgxpool.Pool, id string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		id, id+"@example.com")
	if err != nil {
		t.Fatalf("dbtest: seeding user %s: %v", id, err)
	}
}

func start() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "ascend",
				"POSTGRES_PASSWORD": "ascend",
				"POSTGRES_DB":       "ascend",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("starting container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://ascend:ascend@%s:%s/ascend?sslmode=disable", host, port.Port())

	pool, err := database.New(ctx, connStr, database.PoolOptions{MaxConns: 2})
	if err != nil {
		return "", err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return "", err
	}

	return connStr, nil
}
