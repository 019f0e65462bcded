package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Nagrajupatel/Chat-App/internal/api/handler"
	"github.com/Nagrajupatel/Chat-App/internal/chathub"
	"github.com/Nagrajupatel/Chat-App/internal/config"
	"github.com/Nagrajupatel/Chat-App/internal/models"
	"github.com/Nagrajupatel/Chat-App/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Chat-App backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 1. Dependencies
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb, cfg.EventsChannel)

	// 2. Hub: delivery listener plus the main loop
	hub := chathub.NewHubService(s)
	hub.StartPubSubListener()
	go hub.Run()

	// 3. Gin routing
	r := gin.Default()
	h := handler.NewHandler(hub, s)

	r.GET("/ws", h.ServeWebSocket)
	r.GET("/history/:user1/:user2", h.GetHistory)
	r.GET("/roster", h.GetRoster)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
