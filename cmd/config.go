package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	TrackingCacheTTL time.Duration

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// DatabaseDSN renders the PostgreSQL connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
