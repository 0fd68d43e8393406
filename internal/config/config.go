package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Admin      AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	StoreType   string // memory | postgres
	FrontendURL string
}

// AttendanceConfig holds attendance and reporting configuration
type AttendanceConfig struct {
	// WeekendDays lists weekday names excluded from expected working days.
	// Empty means every calendar day counts as expected.
	WeekendDays []time.Weekday

	// DefaultOvertimeThreshold is the hours/day threshold used until an
	// admin stores another value.
	DefaultOvertimeThreshold int
}

// AdminConfig seeds the initial admin account for the in-memory store.
type AdminConfig struct {
	Email    string
	Password string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreType:   getEnv("STORE_TYPE", "memory"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance configuration
	threshold, err := strconv.Atoi(getEnv("OVERTIME_THRESHOLD_DEFAULT", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_THRESHOLD_DEFAULT: %w", err)
	}
	weekend, err := timeutil.ParseWeekdays(getEnv("WEEKEND_DAYS", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		WeekendDays:              weekend,
		DefaultOvertimeThreshold: threshold,
	}

	config.Admin = AdminConfig{
		Email:    getEnv("ADMIN_EMAIL", ""),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.App.StoreType != "memory" && c.App.StoreType != "postgres" {
		return fmt.Errorf("STORE_TYPE must be memory or postgres")
	}
	if c.App.StoreType == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORE_TYPE is postgres")
	}
	if c.Attendance.DefaultOvertimeThreshold < 0 || c.Attendance.DefaultOvertimeThreshold > 24 {
		return fmt.Errorf("OVERTIME_THRESHOLD_DEFAULT must be between 0 and 24")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
