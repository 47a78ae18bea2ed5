package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment (optionally
// seeded from a .env file). Mongo connection details and the token-signing
// secret are mandatory; the server refuses to start without them.
type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	AccessTokenSecret string
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:              os.Getenv("PORT"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           os.Getenv("MONGO_DB"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "8090"
	}
	if cfg.MongoURI == "" || cfg.MongoDB == "" {
		log.Fatal("Missing MONGO_URI or MONGO_DB")
	}
	if cfg.AccessTokenSecret == "" {
		log.Fatal("Missing ACCESS_TOKEN_SECRET")
	}
	return cfg
}
