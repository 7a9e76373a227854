package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB holds the shared connection pool the loaders read from.
var DB *pgxpool.Pool

// Connect opens the pool and verifies it with a ping. Startup cannot
// proceed without the sales tables, so failures are fatal.
func Connect(databaseURL string) {
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("[DB] Pool init failed: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("[DB] Ping failed: %v", err)
	}

	DB = pool
	log.Println("[DB] Connected")
}

// Close releases the connection pool.
func Close() {
	if DB != nil {
		DB.Close()
		log.Println("[DB] Pool closed")
	}
}

// GetDB returns the connection pool.
func GetDB() *pgxpool.Pool {
	return DB
}
