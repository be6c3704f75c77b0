package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config agrupa la configuración leída del entorno (.env opcional vía godotenv en main).
type Config struct {
	Port      string
	Env       string
	AppName   string
	LogLevel  string
	LogFormat string

	// Fuentes de catálogo, en orden de prioridad: DB_DSN, CATALOG_URL, CATALOG_PATH, embebido.
	DatabaseDSN    string
	CatalogURL     string
	CatalogPath    string
	CatalogTimeout time.Duration

	// StrictCatalog: si la validación reporta issues, el arranque falla en vez de loguear warnings.
	StrictCatalog bool

	// MaxSymptoms limita el tamaño de las listas por request.
	MaxSymptoms int

	CORSAllowedOrigins []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		AppName:   getEnv("APP_NAME", "health-companion"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DatabaseDSN:    getEnv("DB_DSN", ""),
		CatalogURL:     getEnv("CATALOG_URL", ""),
		CatalogPath:    getEnv("CATALOG_PATH", ""),
		CatalogTimeout: getEnvAsDuration("CATALOG_TIMEOUT", 5*time.Second),
		StrictCatalog:  getEnvAsBool("CATALOG_STRICT", false),

		MaxSymptoms: getEnvAsInt("MAX_SYMPTOMS", 50),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// getEnvAsList separa por comas y descarta vacíos.
func getEnvAsList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
