package main

import (
	"context"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"roomfinder/internal/config"
	"roomfinder/internal/database"
	"roomfinder/internal/roomdb"
	"roomfinder/internal/server"
	"roomfinder/internal/store"
	"roomfinder/internal/ws"
)

func main() {
	cfg := config.Load()

	// Connect to DB (if DB not available, Connect will return an error)
	if err := database.Connect(cfg.DSN); err != nil {
		log.Fatalf("DB connect error: %v", err)
	}

	// Run migrations if files exist (RunMigrations is tolerant if dir missing)
	if err := database.RunMigrations("migrations"); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	// Room database is loaded once and read-only from here on
	db, err := roomdb.Load(context.Background(), database.GetDB())
	if err != nil {
		log.Fatalf("room database load error: %v", err)
	}
	log.Infof("room database loaded: %d rooms", db.Len())

	var kv store.KVStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		kv = store.NewRedisKVStore(client)
		log.Info("Redis connected")
	} else {
		kv = store.NewMemoryKVStore()
		log.Warn("REDIS_ADDR not set, reviews will not survive a restart")
	}
	reviews := store.NewReviewStore(kv)

	hub := ws.NewStatusHub(db)
	go hub.Run()

	// Start server
	srv := server.NewServer(":"+cfg.Port, db, reviews, hub)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
