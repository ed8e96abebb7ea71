package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server holds process settings read from the environment.
type Server struct {
	Port           string        `env:"API_PORT"             envDefault:"8080"`
	Env            string        `env:"API_ENV"              envDefault:"development"`
	ConfigPath     string        `env:"CALCULATOR_CONFIG"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ReportCache    bool          `env:"ENABLE_REPORT_CACHE"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL"     envDefault:"1h"`
}

func (s Server) Production() bool { return s.Env == "production" }

// CacheEnabled is false in production regardless of ENABLE_REPORT_CACHE.
func (s Server) CacheEnabled() bool {
	return s.ReportCache && !s.Production() && s.ReportCacheTTL > 0
}

// LoadServer reads an optional .env file (existing variables win) and parses the environment.
func LoadServer(dotenvFiles ...string) (Server, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		// Missing files are fine; the environment alone is a complete configuration.
		_ = godotenv.Load(f)
	}
	var s Server
	if err := env.Parse(&s); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
