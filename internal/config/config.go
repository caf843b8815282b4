package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the API service and the seeder.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	MongoURI            string
	MongoDB             string
	MongoConnectTimeout time.Duration

	JWTSecretKey string
	JWTExp       time.Duration

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisUserTTL  time.Duration

	KafkaBrokers   []string
	KafkaUserTopic string
}

var (
	ErrMongoURIRequired  = errors.New("MONGO_URI is required")
	ErrJWTSecretRequired = errors.New("JWT_SECRET_KEY is required")
)

// Load reads the env file at path (a missing file is not an error) and then
// the process environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:        getEnv("APP_HOST", "localhost"),
		AppPort:        getEnv("APP_PORT", "8080"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "carRental"),
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", ""),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		KafkaUserTopic: getEnv("KAFKA_USER_TOPIC", "users.registered"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	var err error
	if cfg.MongoConnectTimeout, err = getSeconds("MONGO_CONNECT_TIMEOUT_SECOND", "10"); err != nil {
		return nil, err
	}
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.RedisUserTTL, err = getSeconds("REDIS_USER_TTL_SECOND", "300"); err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		return nil, ErrMongoURIRequired
	}

	return cfg, nil
}

// ValidateAPI checks the settings only the API service needs.
func (c *Config) ValidateAPI() error {
	if c.JWTSecretKey == "" {
		return ErrJWTSecretRequired
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getSeconds(key, defaultValue string) (time.Duration, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
