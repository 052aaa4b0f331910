package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env            string
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	WhatsAppNumber string
	AssetsDir      string
	UploadDir      string
}

// Load builds Config from environment. A .env file is honored when present.
// JWT_SECRET has no fallback: production refuses to start without one, and a
// development run gets an ephemeral secret that dies with the process.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       os.Getenv("MYSQL_DSN"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "917417994386"),
		AssetsDir:      getEnv("ASSETS_DIR", "assets"),
		UploadDir:      getEnv("UPLOAD_DIR", "assets/products"),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			log.Fatal("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = ephemeralSecret()
		log.Println("JWT_SECRET not set; generated an ephemeral development secret, tokens will not survive a restart")
	}

	return cfg
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UseMemoryStore reports whether the in-memory development database should be
// used instead of MySQL.
func (c *Config) UseMemoryStore() bool {
	return c.MySQLDSN == ""
}

func ephemeralSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("generate development secret: %v", err)
	}
	return hex.EncodeToString(buf)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
