package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string
	// DBFile is the SQLite store, used unless DatabaseURL is set.
	DBFile      string
	DatabaseURL string
	BcryptCost  int
	SeedUsers   int
	LogLevel    string
}

// Load reads the environment, after loading a .env file when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:         get("APP_ENV", "dev"),
		Port:        get("PORT", "3080"),
		DBFile:      get("DB_FILE", "./database.sqlite"),
		DatabaseURL: get("DATABASE_URL", ""),
		BcryptCost:  getInt("BCRYPT_COST", 10),
		SeedUsers:   getInt("SEED_USERS", 20),
		LogLevel:    get("LOG_LEVEL", ""),
	}
}

// Backend names the store in use, for logs.
func (c Config) Backend() string {
	if c.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite"
}

func get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(get(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
