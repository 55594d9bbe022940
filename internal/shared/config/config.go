package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"portfolio-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOUseSSL     bool
	MinIOBucket     string

	DatabaseURL string

	GitHubToken  string
	GitHubAPIURL string

	FrontendBaseURLs []string
	PDFRenderURL     string
	PDFRenderAPIKey  string
	PDFRenderTimeout time.Duration

	ContactQueueURL string
	NotifyEmailFrom string
	NotifyEmailTo   string

	CVRefreshSchedule string
	RateLimitCVRPS    float64
	RateLimitCVBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.missing", map[string]any{"key": "DATABASE_URL", "env": env})
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               env,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		ObjectStoreType:   normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:     getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:         getEnv("AWS_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:       getEnv("SSE_KMS_KEY_ID", ""),
		MinIOEndpoint:     getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:    getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:    getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:       getEnvBool("MINIO_USE_SSL", true),
		MinIOBucket:       getEnv("MINIO_BUCKET", "cv-files"),
		DatabaseURL:       dbURL,
		GitHubToken:       getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL:      getEnv("GITHUB_API_URL", "https://api.github.com"),
		FrontendBaseURLs:  splitAndTrim(getEnv("FRONTEND_BASE_URLS", "http://localhost:5173")),
		PDFRenderURL:      getEnv("PDF_RENDER_URL", ""),
		PDFRenderAPIKey:   getEnv("PDF_RENDER_API_KEY", ""),
		PDFRenderTimeout:  getEnvDuration("PDF_RENDER_TIMEOUT", 30*time.Second),
		ContactQueueURL:   getEnv("CONTACT_QUEUE_URL", ""),
		NotifyEmailFrom:   getEnv("NOTIFY_EMAIL_FROM", ""),
		NotifyEmailTo:     getEnv("NOTIFY_EMAIL_TO", ""),
		CVRefreshSchedule: getEnv("CV_REFRESH_SCHEDULE", ""),
		RateLimitCVRPS:    getEnvFloat("RATE_LIMIT_CV_RPS", 1),
		RateLimitCVBurst:  getEnvInt("RATE_LIMIT_CV_BURST", 10),
	}
}

// IsDevLike reports whether missing infrastructure may be replaced by in-memory fakes.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "error": err.Error()})
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		telemetry.Warn("config.invalid", map[string]any{"key": key, "value": raw})
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	case "minio", "supabase":
		return "minio"
	default:
		return "local"
	}
}
