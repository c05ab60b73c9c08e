package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Limits   LimitsConfig
	Otel     OtelConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string // empty = in-process rate limiting
	UploadDir          string
	LeadTopic          string
	OperatorEmail      string // receives contact form messages
	TrustedProxies     string // comma separated IPs or CIDRs allowed to set X-Forwarded-For
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	Anthropic      string
	AdminJWTSecret string
}

type AIConfig struct {
	Provider      string // "anthropic" or "ollama"
	VisionModel   string
	ReportModel   string
	MaxTokens     int
	OllamaBaseURL string
}

// LimitsConfig holds per-IP request budgets over a one hour window.
type LimitsConfig struct {
	AnalyzePerHour int
	UploadPerHour  int
	ContactPerHour int
}

type OtelConfig struct {
	Enabled     bool
	Endpoint    string // OTLP/HTTP host:port
	ServiceName string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// TrustedProxyList splits App.TrustedProxies, dropping blanks.
func (c *Config) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(c.App.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
			LeadTopic:          getEnv("LEAD_CAPTURED_TOPIC_NAME", "LEAD_CAPTURED"),
			OperatorEmail:      getEnv("OPERATOR_EMAIL", ""),
			TrustedProxies:     getEnv("TRUSTED_PROXIES", "127.0.0.1,::1"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Paie Detect"),
		},
		Keys: APIKeys{
			Anthropic:      getEnv("ANTHROPIC_API_KEY", ""),
			AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "anthropic"),
			VisionModel:   getEnv("LLM_VISION_MODEL", "claude-sonnet-4-5-20250929"),
			ReportModel:   getEnv("LLM_REPORT_MODEL", "claude-sonnet-4-5-20250929"),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 8192),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Limits: LimitsConfig{
			AnalyzePerHour: getEnvAsInt("RATE_LIMIT_ANALYZE_PER_HOUR", 3),
			UploadPerHour:  getEnvAsInt("RATE_LIMIT_UPLOAD_PER_HOUR", 5),
			ContactPerHour: getEnvAsInt("RATE_LIMIT_CONTACT_PER_HOUR", 3),
		},
		Otel: OtelConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "paie-detect-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
