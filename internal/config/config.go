package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port       int
	DBHost     string
	DBPort     int
	DBDatabase string
	DBUser     string
	DBPassword string
}

// Load reads configuration from the environment with defaults suitable for
// local development.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_DATABASE", "vehicles")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "docker")

	return &Config{
		Port:       v.GetInt("PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetInt("DB_PORT"),
		DBDatabase: v.GetString("DB_DATABASE"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASS"),
	}
}

// DatabaseURL renders the pgx connection string. Credentials are escaped so
// passwords with URL metacharacters survive.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   c.DBDatabase,
	}
	return u.String()
}

// ListenAddr is the HTTP bind address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
