// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTSecret() string
}

// AuthConfig provides settings needed by the auth service.
type AuthConfig interface {
	JWTConfig
	GetSessionTTL() time.Duration
	GetAuthCookieName() string
	GetAuthCookieSecure() bool
	GetAuthCookieSameSite() http.SameSite
	GetAdminSeedName() string
	GetAdminSeedEmail() string
	GetAdminSeedPassword() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// BusinessConfig provides storefront business settings.
type BusinessConfig interface {
	GetWhatsAppNumber() string
	GetContactEmail() string
	GetBricksPerTrolley() int64
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinIOPublicBaseURL() string
	GetMinioBucketGalleryMedia() string
	GetMinioBucketProductImages() string
	IsMinIOEnabled() bool
}

// SMTPConfig provides settings for notification email sending.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetNotifyEmail() string
	IsEmailEnabled() bool
}

// SchedulerConfig provides settings for the background task queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	IsSchedulerEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	HTTPAddr                string
	DatabaseURL             string
	JWTSecret               string
	SessionTTL              time.Duration
	AuthCookieName          string
	AuthCookieSecure        bool
	AuthCookieSameSite      http.SameSite
	AdminSeedName           string
	AdminSeedEmail          string
	AdminSeedPassword       string
	CORSAllowAll            bool
	CORSOrigins             []string
	CORSAllowCreds          bool
	WhatsAppNumber          string
	ContactEmail            string
	BricksPerTrolley        int64
	MinIOEndpoint           string
	MinIOAccessKey          string
	MinIOSecretKey          string
	MinIOUseSSL             bool
	MinIOMaxFileSize        int64
	MinIOPublicBaseURL      string
	BucketGalleryMedia      string
	BucketProductImages     string
	SMTPHost                string
	SMTPPort                int
	SMTPUsername            string
	SMTPPassword            string
	EmailFromName           string
	EmailFromAddress        string
	NotifyEmail             string
	EmailEnabled            bool
	RedisURL                string
	AsynqQueueName          string
	AsynqConcurrency        int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTSecret() string { return c.JWTSecret }

// AuthConfig implementation
func (c *Config) GetSessionTTL() time.Duration          { return c.SessionTTL }
func (c *Config) GetAuthCookieName() string             { return c.AuthCookieName }
func (c *Config) GetAuthCookieSecure() bool             { return c.AuthCookieSecure }
func (c *Config) GetAuthCookieSameSite() http.SameSite  { return c.AuthCookieSameSite }
func (c *Config) GetAdminSeedName() string              { return c.AdminSeedName }
func (c *Config) GetAdminSeedEmail() string             { return c.AdminSeedEmail }
func (c *Config) GetAdminSeedPassword() string          { return c.AdminSeedPassword }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// BusinessConfig implementation
func (c *Config) GetWhatsAppNumber() string  { return c.WhatsAppNumber }
func (c *Config) GetContactEmail() string    { return c.ContactEmail }
func (c *Config) GetBricksPerTrolley() int64 { return c.BricksPerTrolley }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64    { return c.MinIOMaxFileSize }
func (c *Config) GetMinIOPublicBaseURL() string { return c.MinIOPublicBaseURL }
func (c *Config) GetMinioBucketGalleryMedia() string {
	return c.BucketGalleryMedia
}
func (c *Config) GetMinioBucketProductImages() string {
	return c.BucketProductImages
}
func (c *Config) IsMinIOEnabled() bool { return c.MinIOEndpoint != "" }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetNotifyEmail() string      { return c.NotifyEmail }
func (c *Config) IsEmailEnabled() bool        { return c.EmailEnabled }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }
func (c *Config) IsSchedulerEnabled() bool  { return c.RedisURL != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	authCookieSecure := strings.EqualFold(getEnv("AUTH_COOKIE_SECURE", ""), "true")
	if getEnv("AUTH_COOKIE_SECURE", "") == "" {
		authCookieSecure = strings.EqualFold(getEnv("APP_ENV", "development"), "production")
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		SessionTTL:              mustDuration(getEnv("JWT_TTL", "12h")),
		AuthCookieName:          getEnv("AUTH_COOKIE_NAME", "bw_admin_token"),
		AuthCookieSecure:        authCookieSecure,
		AuthCookieSameSite:      parseSameSite(getEnv("AUTH_COOKIE_SAMESITE", "Lax")),
		AdminSeedName:           getEnv("ADMIN_NAME", "Admin"),
		AdminSeedEmail:          strings.ToLower(getEnv("ADMIN_EMAIL", "")),
		AdminSeedPassword:       getEnv("ADMIN_PASSWORD", ""),
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		CORSAllowCreds:          strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		WhatsAppNumber:          getEnv("WHATSAPP_NUMBER", ""),
		ContactEmail:            getEnv("CONTACT_EMAIL", ""),
		BricksPerTrolley:        mustInt64(getEnv("BRICKS_PER_TROLLEY", "3000")),
		MinIOEndpoint:           getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:          getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:          getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:             strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:        mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "52428800")),
		MinIOPublicBaseURL:      getEnv("MINIO_PUBLIC_BASE_URL", ""),
		BucketGalleryMedia:      getEnv("MINIO_BUCKET_GALLERY_MEDIA", "gallery-media"),
		BucketProductImages:     getEnv("MINIO_BUCKET_PRODUCT_IMAGES", "product-images"),
		SMTPHost:                smtpHost,
		SMTPPort:                int(mustInt64(getEnv("SMTP_PORT", "587"))),
		SMTPUsername:            getEnv("SMTP_USERNAME", ""),
		SMTPPassword:            getEnv("SMTP_PASSWORD", ""),
		EmailFromName:           getEnv("EMAIL_FROM_NAME", "Brickworks"),
		EmailFromAddress:        getEnv("EMAIL_FROM_ADDRESS", ""),
		NotifyEmail:             getEnv("NOTIFY_EMAIL", ""),
		EmailEnabled:            emailEnabled && smtpHost != "",
		RedisURL:                getEnv("REDIS_URL", ""),
		AsynqQueueName:          getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:        int(mustInt64(getEnv("ASYNQ_CONCURRENCY", "10"))),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.BricksPerTrolley <= 0 {
		return nil, fmt.Errorf("BRICKS_PER_TROLLEY must be a positive integer")
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
