package config

import (
	"os"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Output  OutputConfig
}

// ServerConfig holds the MCP implementation identity.
type ServerConfig struct {
	Name    string
	Version string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// OutputConfig holds CLI rendering settings.
type OutputConfig struct {
	Format string
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Name:    getEnvString("SIMRESULT_SERVER_NAME", "simresult-mcp"),
			Version: getEnvString("SIMRESULT_SERVER_VERSION", "1.0.0"),
		},
		Logging: LoggingConfig{
			Level:  getEnvChoice("SIMRESULT_LOG_LEVEL", "info", "trace", "debug", "info", "warn", "warning", "error"),
			Format: getEnvChoice("SIMRESULT_LOG_FORMAT", "text", "text", "json"),
		},
		Output: OutputConfig{
			Format: getEnvChoice("SIMRESULT_OUTPUT_FORMAT", "yaml", "yaml", "json"),
		},
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// getEnvChoice returns the lower-cased value of key if it is one of allowed.
func getEnvChoice(key, defaultVal string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return defaultVal
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return defaultVal
}
