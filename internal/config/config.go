package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Credential recovery
	OTPExpiry        time.Duration
	ResetTokenExpiry time.Duration

	// Retention
	AuditRetention       time.Duration
	DeletedUserRetention time.Duration
	DeletedApptRetention time.Duration
	SystemLogRetention   time.Duration

	// Server
	ServiceName string
	Environment string
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "telehealth_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		OTPExpiry:        parseDuration(getEnv("OTP_EXPIRY", "10m"), 10*time.Minute),
		ResetTokenExpiry: parseDuration(getEnv("RESET_TOKEN_EXPIRY", "15m"), 15*time.Minute),

		// Audit logs and soft-deleted appointments are kept 2 years,
		// soft-deleted users and system logs 30 days.
		AuditRetention:       parseDuration(getEnv("AUDIT_RETENTION", "17520h"), 17520*time.Hour),
		DeletedUserRetention: parseDuration(getEnv("DELETED_USER_RETENTION", "720h"), 720*time.Hour),
		DeletedApptRetention: parseDuration(getEnv("DELETED_APPT_RETENTION", "17520h"), 17520*time.Hour),
		SystemLogRetention:   parseDuration(getEnv("LOG_RETENTION", "720h"), 720*time.Hour),

		ServiceName: getEnv("SERVICE_NAME", "telehealth-backend"),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// IsDevelopment controls whether server error detail reaches the client.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
