// Command reset drops and recreates the configured database. Development
// helper only; run setup afterwards to re-apply migrations and seeds.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/CardBinder_Go/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := os.Getenv("DB_NAME")

	// Connect to the default database to manage the target one
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
	)

	ctx := context.Background()

	serverPool, err := database.NewPool(ctx, serverConnString, 4, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("Database reset complete. Run the setup command to apply migrations and seeds.")
}
