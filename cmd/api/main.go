package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/agendaregua/agenda-api/internal/config"
	dbpkg "github.com/agendaregua/agenda-api/internal/db"
	"github.com/agendaregua/agenda-api/internal/infra/lock"
	"github.com/agendaregua/agenda-api/internal/middleware"
	"github.com/agendaregua/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Sem Redis configurado o lock de agendamento vira mutex local —
	// suficiente para uma réplica só.
	var locker lock.Locker = lock.NewMemoryLocker()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		locker = lock.NewRedisLocker(redis.NewClient(opts))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, locker, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
