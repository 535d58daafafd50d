package testdb

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	migration "HomeStash-Backend/cmd/database/migrate"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	once     sync.Once
	sharedDB *gorm.DB
	initErr  error
)

// SetupTestDB starts a shared PostgreSQL container (once per test binary),
// runs the schema migration, and returns a gorm handle connected to it.
// The container lives until the process exits.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	once.Do(func() {
		sharedDB, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testdb: failed to set up test database: %v", initErr)
	}

	return sharedDB
}

// Reset truncates both tables so a test starts from an empty database.
func Reset(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Exec("TRUNCATE items, storage_locations CASCADE").Error; err != nil {
		t.Fatalf("testdb: failed to truncate tables: %v", err)
	}
}

func startContainerAndMigrate() (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
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
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf(
		"host=%s user=testuser password=testpass dbname=testdb port=%s sslmode=disable TimeZone=UTC",
		host, port.Port(),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	if err := migration.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
