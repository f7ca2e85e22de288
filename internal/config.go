package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
	Auth   AuthConfig        `yaml:"auth"`
	MCP    MCPConfig         `yaml:"mcp"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds session configuration. Secret signs the session
// tokens; SessionTTL is a Go duration string such as "720h".
type AuthConfig struct {
	Secret     string `yaml:"secret"`
	SessionTTL string `yaml:"session_ttl"`
	CookieName string `yaml:"cookie_name"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Secret, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.SessionTTL, validation.Required, validation.By(durationRule)),
		validation.Field(&c.CookieName, validation.Required),
	)
}

// TTL returns the parsed session lifetime. Validate must have accepted
// the config first.
func (c *AuthConfig) TTL() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func durationRule(value interface{}) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration like 24h")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// MCPConfig configures the MCP stdio server. UserEmail names the
// account the server acts as; required only for the mcp command.
type MCPConfig struct {
	UserEmail string `yaml:"user_email"`
}

// NewDefaultConfig returns a new Config with sensible default values.
// The auth secret has no default on purpose; it must come from the
// config file or environment.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./checkpad.db",
		},
		Auth: AuthConfig{
			SessionTTL: "720h",
			CookieName: "checkpad_session",
		},
	}
}
