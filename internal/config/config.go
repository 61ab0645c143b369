package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	DatasetSource  string
	DatasetTimeout time.Duration
	TemplatesDir   string
	StaticDir      string
	MediaDir       string
	LogFile        string
	LogLevel       string
	MinifyHTML     bool
	Fluent         FluentConfig
}

type FluentConfig struct {
	Enabled bool
	Host    string
	Port    int
}

// Load reads configuration from the environment. A .env file in the
// working directory (or the given path) is applied first when present.
func Load(envPath ...string) Config {
	if err := godotenv.Load(envPath...); err != nil {
		log.Printf("[config] no .env file loaded, using environment: %v", err)
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "prod"),
		DatasetSource:  getEnv("DATASET_SOURCE", "./web/static/uwuseon_campsites.json"),
		DatasetTimeout: getEnvAsDuration("DATASET_TIMEOUT", 5*time.Second),
		TemplatesDir:   getEnv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:      getEnv("STATIC_DIR", "./web/static"),
		MediaDir:       getEnv("MEDIA_DIR", "./web/media"),
		LogFile:        getEnv("LOG_FILE", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MinifyHTML:     getEnvAsBool("MINIFY_HTML", true),
	}

	cfg.Fluent.Enabled = getEnvAsBool("FLUENT_ENABLED", false)
	if cfg.Fluent.Enabled {
		cfg.Fluent.Host = os.Getenv("FLUENT_HOST")
		if cfg.Fluent.Host == "" {
			log.Println("[config] FLUENT_ENABLED is true but FLUENT_HOST is not set; disabling fluent")
			cfg.Fluent.Enabled = false
		}
		cfg.Fluent.Port = getEnvAsInt("FLUENT_PORT", 24224)
	}

	log.Printf("[config] PORT=%s APP_ENV=%s DATASET_SOURCE=%s TEMPLATES_DIR=%s STATIC_DIR=%s MEDIA_DIR=%s",
		cfg.Port, cfg.Env, cfg.DatasetSource, cfg.TemplatesDir, cfg.StaticDir, cfg.MediaDir)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[config] %s=%q is not an int, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[config] %s=%q is not a bool, using %t", key, raw, fallback)
		return fallback
	}
	return b
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] %s=%q is not a positive duration, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
