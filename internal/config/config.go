package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	Port           string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:       mongoURI(),
		DBName:         getEnvOrDefault("DB_NAME", "secondLit"),
		JWTSecret:      getEnvOrDefault("JWT_KEY", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		Port:           getEnvOrDefault("PORT", "5000"),
	}
}

// mongoURI prefers a full MONGO_URI and otherwise assembles the Atlas
// connection string from its user/key/host parts.
func mongoURI() string {
	if uri := strings.TrimSpace(os.Getenv("MONGO_URI")); uri != "" {
		return uri
	}
	user := strings.TrimSpace(os.Getenv("DB_USER"))
	if user == "" {
		return "mongodb://localhost:27017"
	}
	key := os.Getenv("DB_USER_KEY")
	host := getEnvOrDefault("DB_HOST", "cluster0.tbtpug1.mongodb.net")
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, key, host)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
