package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"villa-backend/config"
	"villa-backend/controllers"
	"villa-backend/logger"
	"villa-backend/middleware"
	"villa-backend/routes"
	"villa-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatalf("❌ Logger init failed: %v", err)
	}
	defer zlog.Sync()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	zlog.Info("database connected, migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The rate limiter runs on the in-process store unless a shared Redis is
	// configured; with multiple replicas only the Redis store enforces a
	// global limit.
	var store middleware.RateStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("❌ Invalid REDIS_URL: %v", err)
		}
		store = middleware.NewRedisStore(redis.NewClient(opts))
		zlog.Info("rate limiter using redis store")
	} else {
		mem := middleware.NewMemoryStore()
		mem.StartSweeper(ctx, 5*time.Minute)
		store = mem
	}

	notifier := services.NewEmailNotifierFromEnv(zlog)

	bookingController := controllers.NewBookingController(services.NewBookingService(db), notifier)
	messageController := controllers.NewMessageController(services.NewMessageService(db), notifier)

	router := routes.SetupRouter(bookingController, messageController, store, zlog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	<-ctx.Done()
	zlog.Info("shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	zlog.Info("server stopped gracefully")
}
