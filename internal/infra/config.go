package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServiceAccountEnv holds the GOOGLE_SERVICE_ACCOUNT_* variables.
type ServiceAccountEnv struct {
	Type                    string
	ProjectID               string
	PrivateKeyID            string
	PrivateKey              string
	ClientEmail             string
	ClientID                string
	AuthURI                 string
	TokenURI                string
	AuthProviderX509CertURL string
	ClientX509CertURL       string
	UniverseDomain          string
}

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	RedisURL           string
	GeoIPDBPath        string
	NASATapURL         string
	PredictorURL       string
	GoogleAPIKey       string
	ServiceAccount     ServiceAccountEnv
	GoogleProject      string
	GoogleLocation     string
	ImagenModel        string
	GenAIImagenModel   string
	TextureStoragePath string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadDotEnv reads .env files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// Every setting is optional; features whose settings are missing are disabled.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		GeoIPDBPath:  os.Getenv("GEOIP_DB_PATH"),
		NASATapURL:   getEnv("NASA_TAP_URL", "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"),
		PredictorURL: getEnv("PYTHON_API_URL", "http://127.0.0.1:8000/predict"),
		GoogleAPIKey: strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		ServiceAccount: ServiceAccountEnv{
			Type:                    os.Getenv("GOOGLE_SERVICE_ACCOUNT_TYPE"),
			ProjectID:               os.Getenv("GOOGLE_SERVICE_ACCOUNT_PROJECT_ID"),
			PrivateKeyID:            os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY_ID"),
			PrivateKey:              os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"),
			ClientEmail:             os.Getenv("GOOGLE_SERVICE_ACCOUNT_CLIENT_EMAIL"),
			ClientID:                os.Getenv("GOOGLE_SERVICE_ACCOUNT_CLIENT_ID"),
			AuthURI:                 os.Getenv("GOOGLE_SERVICE_ACCOUNT_AUTH_URI"),
			TokenURI:                os.Getenv("GOOGLE_SERVICE_ACCOUNT_TOKEN_URI"),
			AuthProviderX509CertURL: os.Getenv("GOOGLE_SERVICE_ACCOUNT_AUTH_PROVIDER_X509_CERT_URL"),
			ClientX509CertURL:       os.Getenv("GOOGLE_SERVICE_ACCOUNT_CLIENT_X509_CERT_URL"),
			UniverseDomain:          os.Getenv("GOOGLE_SERVICE_ACCOUNT_UNIVERSE_DOMAIN"),
		},
		GoogleProject:      getEnv("GOOGLE_CLOUD_PROJECT", "exolens"),
		GoogleLocation:     getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
		ImagenModel:        getEnv("IMAGEN_MODEL", "imagen-3.0-generate-002"),
		GenAIImagenModel:   getEnv("GENAI_IMAGEN_MODEL", "imagen-3.0-generate-002"),
		TextureStoragePath: getEnv("TEXTURE_STORAGE_PATH", "./data"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	if cfg.RateLimitPerMin < 0 {
		cfg.RateLimitPerMin = 0
	}

	return cfg, nil
}

// HasServiceAccount reports whether a Vertex AI service account is configured.
func (c *Config) HasServiceAccount() bool {
	return strings.TrimSpace(c.ServiceAccount.PrivateKey) != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
