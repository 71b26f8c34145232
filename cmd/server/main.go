package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"corpassist-backend/internal/config"
	"corpassist-backend/internal/database"
	"corpassist-backend/internal/handlers"
	"corpassist-backend/internal/middleware"
	"corpassist-backend/internal/router"
	"corpassist-backend/internal/services"
	"corpassist-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Corporate Assistant Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (env: %s)", cfg.Env)

	// ──── Step 2: Initialize Redis Client (optional) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer client.Close()
		redisClient = client
		log.Println("✓ Redis connected")
	}

	// ──── Step 3: Initialize Rate Limiter ────
	var limitStore middleware.Store
	switch {
	case cfg.RateLimitPerMinute == 0:
		log.Println("✓ Rate limiting disabled")
	case redisClient != nil:
		limitStore = middleware.NewRedisStore(redisClient, cfg.RateLimitPerMinute, time.Minute)
		log.Printf("✓ Rate limiter ready (Redis, %d req/min)", cfg.RateLimitPerMinute)
	default:
		store := middleware.NewMemoryStore(cfg.RateLimitPerMinute, time.Minute)
		defer store.Stop()
		limitStore = store
		log.Printf("✓ Rate limiter ready (in-memory, %d req/min)", cfg.RateLimitPerMinute)
	}

	var rateLimiter *middleware.RateLimiter
	if limitStore != nil {
		rateLimiter = middleware.NewRateLimiter(limitStore)
	}

	// ──── Initialize Services & Handlers ────
	chatService := services.NewChatService(services.NewKeywordResponder())
	chatHandler := handlers.NewChatHandler(chatService, cfg.MaxBodyBytes)

	var healthCheck func(ctx context.Context) error
	if redisClient != nil {
		healthCheck = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthHandler := handlers.NewHealthHandler(healthCheck)

	// ──── Step 4: Start WebSocket Hub ────
	wsHub := websocket.NewHub(chatService, limitStore, cfg.FrontendURL, cfg.MaxBodyBytes)
	log.Println("✓ WebSocket hub started")

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, healthHandler, wsHub, rateLimiter, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		wsHub.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("✗ HTTP shutdown: %v", err)
		}
	}()

	log.Printf("✓ Corporate Assistant Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/chat", cfg.Port)
	log.Printf("  WS:   ws://localhost:%s/chat/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}
