package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clipnote/clipnote/internal/cache"
	"github.com/clipnote/clipnote/internal/database"
	"github.com/clipnote/clipnote/internal/server"
)

func main() {
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(databaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migrations applied")

	cfg := server.Config{
		DB:             db.Pool,
		Pinger:         db,
		JWTSecret:      jwtSecret,
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		DefaultVideoID: getEnv("VIDEO_ID", "76979871"),
	}

	// The comment list cache is optional. A missing or unreachable Redis
	// just means every list hits Postgres.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		listCache, err := cache.Connect(ctx, redisURL)
		if err != nil {
			log.Printf("redis unavailable, continuing without list cache: %v", err)
		} else {
			defer listCache.Close()
			cfg.Cache = listCache
			log.Println("comment list cache enabled")
		}
	}

	srv := server.New(cfg)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("clipnote listening on :%s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-shutdownCh
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Println("shutdown complete")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
