package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Starwars StarwarsConfig
}

type ServerConfig struct {
	Port        string
	Environment string
	ServiceName string
	Version     string
}

type AuthConfig struct {
	JWTSecret    string
	JWTExpiresIn string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type StarwarsConfig struct {
	BaseURL       string
	FetchInterval string
}

func Load() Config {
	// .env 파일이 있으면 읽고, 없으면 무시
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:        getenv("APP_PORT", "8080"),
			Environment: getenv("APP_ENV", "development"),
			ServiceName: getenv("SERVICE_NAME", "starwars-api"),
			Version:     getenv("SERVICE_VERSION", "0.0.1"),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			JWTExpiresIn: getenv("JWT_EXPIRES_IN", "1h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Starwars: StarwarsConfig{
			BaseURL:       os.Getenv("STARWARS_API"),
			FetchInterval: getenv("STARWARS_FETCH_INTERVAL", "1h"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
