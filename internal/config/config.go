package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDSN       string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	LogFile     string
	SeedDemo    bool
}

func Load() Config {
	// Optional .env in the working directory; real env wins.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "doacoes.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret-change-me"
		log.Println("[config] JWT_SECRET not set, using insecure dev default")
	}
	ttl := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	// Allow-list is fixed at process start; there is no runtime mutation path.
	origins := []string{"http://localhost:8080", "http://localhost:5500"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	logFile := os.Getenv("LOG_FILE")
	seedDemo := false
	switch strings.ToLower(os.Getenv("SEED_DEMO")) {
	case "1", "true", "yes":
		seedDemo = true
	}

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, TokenTTL: ttl, CORSOrigins: origins, LogFile: logFile, SeedDemo: seedDemo}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s CORS_ORIGINS=%s LOG_FILE=%s SEED_DEMO=%t",
		cfg.Port, cfg.DBDSN, cfg.TokenTTL, strings.Join(cfg.CORSOrigins, ","), cfg.LogFile, cfg.SeedDemo)
	return cfg
}
