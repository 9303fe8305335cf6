package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-go/internal/config"
	"github.com/taskboard/taskboard-go/internal/handler"
	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/repository"
	"github.com/taskboard/taskboard-go/internal/service"
	"github.com/taskboard/taskboard-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureSchema(ctx, db); err != nil {
		cancel()
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	cancel()

	store, err := newSessionStore(cfg, db)
	if err != nil {
		slog.Error("session store setup failed", "backend", cfg.SessionBackend, "error", err)
		os.Exit(1)
	}
	gate := session.NewGate(store, cfg.SessionSecret, cfg.SessionTTL)

	authService := service.NewAuthService(repository.NewUserRepository(db))
	authHandler := handler.NewAuthHandler(authService, gate, cfg.SessionTTL, cfg.Env == "production")

	taskService := service.NewTaskService(repository.NewTaskRepository(db))
	taskHandler := handler.NewTaskHandler(taskService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"API is working!"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Post("/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(gate))
		r.Get("/user", authHandler.HandleMe)
		r.Get("/tasks", taskHandler.HandleList)
		r.Post("/tasks", taskHandler.HandleCreate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "session_backend", cfg.SessionBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newSessionStore picks the session backend from config: an in-process map,
// the sessions table of the main database, or Redis.
func newSessionStore(cfg config.Config, db *sql.DB) (session.Store, error) {
	switch cfg.SessionBackend {
	case "db":
		return session.NewSQLStore(db), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return session.NewRedisStore(client), nil
	default:
		return session.NewMemoryStore(), nil
	}
}
