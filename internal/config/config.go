package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port      string
	DSN       string
	RedisAddr string
	Env       string
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:      getEnv("PORT", "8080"),
		DSN:       mustEnv("DB_DSN"),
		RedisAddr: getEnv("REDIS_ADDR", ""), // empty = in-memory review store
		Env:       getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
