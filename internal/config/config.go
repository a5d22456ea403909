package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every runtime setting of the API server.
type Config struct {
	Port            string
	MongoURI        string
	DatabaseName    string
	JWTSecret       string
	TokenExpiry     time.Duration
	BcryptCost      int
	UploadDir       string
	MaxUploadSize   int64
	StorageDriver   string
	MinIO           MinIOConfig
	AllowedOrigins  []string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// MinIOConfig is only read when StorageDriver is "minio".
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	StorageDisk  = "disk"
	StorageMinIO = "minio"
)

// LoadConfig reads the .env file if present and falls back to the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:    getEnv("MONGODB_DATABASE", "weddingSnapStory"),
		JWTSecret:       getEnv("JWT_SECRET", "your_jwt_secret"),
		TokenExpiry:     getEnvDuration("TOKEN_EXPIRY", 7*24*time.Hour),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:   int64(getEnvInt("MAX_UPLOAD_SIZE", 5*1024*1024)),
		StorageDriver:   strings.ToLower(getEnv("STORAGE_DRIVER", StorageDisk)),
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "wedding-uploads"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		logrus.WithField("key", key).Warn("Invalid integer in environment, using default")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		logrus.WithField("key", key).Warn("Invalid duration in environment, using default")
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
