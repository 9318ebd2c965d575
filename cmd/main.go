package main

import (
	"CareSync/cache"
	"CareSync/config"
	"CareSync/database"
	"CareSync/routes"
	"CareSync/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Load configuration from the environment (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Build the token maker from the configured secret
	tokenMaker, err := utils.NewTokenMaker(config.GetTokenSecret())
	if err != nil {
		log.Fatalf("failed to initialize token maker: %v", err)
	}

	// Initialize the database
	db, err := database.InitDB(context.Background(), config.DBURL, utils.HashPassword)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Initialize Redis
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the cache utility
	cache, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	handler := routes.SetupRoutes(cache, config, db, tokenMaker)

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ServerAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		return nil, errors.New("missing TOKEN_SECRET environment variable")
	}

	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		corsOrigins = strings.Split(raw, ",")
	}

	return &config.AppConfig{
		DBURL:        dbURL,
		RedisAddress: redisAddress,
		TokenSecret:  tokenSecret,
		ServerAddr:   serverAddr,
		CORSOrigins:  corsOrigins,
	}, nil
}
