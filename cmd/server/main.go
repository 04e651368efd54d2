package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"meeting-eval-service/internal/adapters/cache"
	"meeting-eval-service/internal/adapters/repositories"
	"meeting-eval-service/internal/api"
	"meeting-eval-service/internal/config"
	"meeting-eval-service/internal/platform/db"
	"meeting-eval-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP
// evaluation server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/results.db")
	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")

	workers, err := strconv.Atoi(config.Get("EVAL_WORKERS", "4"))
	if err != nil || workers < 1 {
		log.Fatal("EVAL_WORKERS must be a positive integer")
	}

	sqlite, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlite.Close()

	if err := repositories.InitSqliteSchema(sqlite); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteResultRepository(sqlite)

	// The score cache is optional; replays are cheap enough to run without one.
	var scoreCache ports.ScoreCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		scoreCache = cache.NewRedisScoreCache(client, 24*time.Hour)
		log.Printf("score cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(repo, scoreCache, workers)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
