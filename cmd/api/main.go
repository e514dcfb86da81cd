package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/martagillo/habitline/internal/adapters/cache"
	adapterHTTP "github.com/martagillo/habitline/internal/adapters/handler/http"
	"github.com/martagillo/habitline/internal/adapters/repository"
	"github.com/martagillo/habitline/internal/core/domain"
	"github.com/martagillo/habitline/internal/core/services"
	"github.com/martagillo/habitline/internal/seed"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables.")
	}

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	serverPort := envOr("PORT", "8080")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	checkOffRepo := repository.NewPostgresCheckOffRepository(db)

	redisClient, err := cache.NewClient(cache.Config{
		Host:     envOr("REDIS_HOST", "localhost"),
		Port:     envOr("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envIntOr("REDIS_DB", 0),
	})
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		redisClient = nil
	} else {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, redisClient)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET must be set")
	}

	tokenService := services.NewTokenService(jwtSecret, "habitline", 24*time.Hour)

	passwordHash := os.Getenv("AUTH_PASSWORD_HASH")
	if passwordHash == "" {
		password := envOr("AUTH_PASSWORD", "changeme")
		passwordHash, err = services.HashPassword(password)
		if err != nil {
			log.Fatalf("Critical: Failed to hash password: %v", err)
		}
		log.Println("AUTH_PASSWORD_HASH not set, hashed AUTH_PASSWORD at startup.")
	}

	habitService := services.NewHabitService(habitRepo, checkOffRepo)
	checkOffService := services.NewCheckOffService(checkOffRepo, habitRepo)
	analyticsService := services.NewAnalyticsService(habitRepo, checkOffRepo)
	authService := services.NewAuthService(passwordHash, tokenService)

	if envOr("SEED_ON_START", "true") == "true" {
		if err := seed.Run(context.Background(), habitRepo, checkOffRepo); err != nil {
			log.Printf("Seeding failed: %v", err)
		}
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService),
		HabitHandler:     adapterHTTP.NewHabitHandler(habitService),
		CheckOffHandler:  adapterHTTP.NewCheckOffHandler(checkOffService),
		AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(analyticsService),
		TokenService:     tokenService,
		DB:               db,
		Redis:            redisClient,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Habitline running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
