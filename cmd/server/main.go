// cmd/server/main.go
package main

import (
	"context"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/royalehaus/royalehaus/internal/auth"
	"github.com/royalehaus/royalehaus/internal/cache"
	"github.com/royalehaus/royalehaus/internal/config"
	"github.com/royalehaus/royalehaus/internal/daily"
	"github.com/royalehaus/royalehaus/internal/database"
	"github.com/royalehaus/royalehaus/internal/handlers"
	"github.com/royalehaus/royalehaus/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	if err := auth.Init(cfg.TokenExpireTime); err != nil {
		logger.Fatalf("auth init error: %v", err)
	}

	if err := database.Connect(context.Background(), cfg.DatabaseURL); err != nil {
		logger.Fatalf("database error: %v", err)
	}
	defer database.DB.Close()

	// the redis cache is optional; without it every daily-card request
	// goes to Postgres, which is still correct
	var selectionCache daily.Cache
	if err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		logger.Warnf("redis unavailable, running without selection cache: %v", err)
	} else {
		selectionCache = cache.SelectionCache{}
	}

	dailySvc := daily.NewService(database.DailyStore{}, selectionCache)

	mux := http.NewServeMux()
	logged := middleware.LogMiddleware(logger)

	mux.HandleFunc("/", handlers.PingHandler)

	// user endpoints
	mux.HandleFunc("/user/create", handlers.CreateUserHandler)
	mux.HandleFunc("/user/login", handlers.LoginHandler)
	mux.HandleFunc("/user/claim", handlers.ClaimEphemeralHandler)

	// game endpoints
	mux.Handle("/daily/card", logged(handlers.DailyCardHandler(dailySvc)))
	mux.Handle("/progress", logged(handlers.ProgressGetHandler()))
	mux.Handle("/progress/sync", logged(handlers.ProgressSyncHandler(handlers.DBProgressStore{})))

	// wiki + leaderboard
	mux.Handle("/cards", logged(http.HandlerFunc(handlers.ListCardsHandler)))
	mux.Handle("/leaderboard", logged(http.HandlerFunc(handlers.LeaderboardHandler)))

	mux.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
