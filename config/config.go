package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port             string
	Timezone         string
	DBPath           string
	JWTSecret        string
	AnalyzerEndpoint string
	AnalyzerAPIKey   string
	AnalyzerModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Africa/Nairobi"),
		DBPath:           get("DB_PATH", "agrimarket.db"),
		JWTSecret:        get("JWT_SECRET", "change_me"),
		AnalyzerEndpoint: get("ANALYZER_ENDPOINT", ""),
		AnalyzerAPIKey:   get("ANALYZER_API_KEY", ""),
		AnalyzerModel:    get("ANALYZER_MODEL", "gpt-4o-mini"),
	}
	log.Printf("[cfg] port=%s db=%s analyzer=%t", cfg.Port, cfg.DBPath, cfg.AnalyzerEndpoint != "")
	return cfg
}
