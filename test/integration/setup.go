package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"printshop/internal/migrations"
	"printshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema
// migrations, and opens a connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Apply schema migrations
	if err := migrations.Up(connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCustomer inserts a test customer and returns it.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) *model.Customer {
	t.Helper()

	ctx := context.Background()

	customer := &model.Customer{
		ID:        uuid.New(),
		Name:      "Maria Santos",
		Phone:     fmt.Sprintf("+55119%08d", time.Now().UnixNano()%100000000),
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(ctx,
		"INSERT INTO customers (id, name, phone, created_at) VALUES ($1, $2, $3, $4)",
		customer.ID, customer.Name, customer.Phone, customer.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	return customer
}

// SeedProducts inserts test catalogue data into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	grams := func(v float64) *float64 { return &v }

	products := []model.Product{
		{ID: uuid.New(), Name: "Phone Stand", Material: "PLA", TimePerPlateHours: 2, QuantityPerPlate: 2, FilamentGramsPerUnit: grams(15)},
		{ID: uuid.New(), Name: "Cable Clip", Material: "PETG", TimePerPlateHours: 1.5, QuantityPerPlate: 10, FilamentGramsPerUnit: grams(3)},
		{ID: uuid.New(), Name: "Vase", Material: "PLA", TimePerPlateHours: 4, QuantityPerPlate: 1, FilamentGramsPerUnit: grams(80)},
	}

	for i := range products {
		p := &products[i]
		now := time.Now()
		p.CreatedAt = now
		p.UpdatedAt = now
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, material, time_per_plate_hours, quantity_per_plate,
				filament_grams_per_unit, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.Material, p.TimePerPlateHours, p.QuantityPerPlate,
			p.FilamentGramsPerUnit, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.Name, err)
		}
	}

	return products
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"whatsapp_messages", "prints", "orders", "filament_rolls", "products", "customers"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
