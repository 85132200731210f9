// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Security     SecurityConfig     `mapstructure:"security"`
	Registration RegistrationConfig `mapstructure:"registration"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host" validate:"required"`
	Port        int    `mapstructure:"port" validate:"required,gt=0"`
	User        string `mapstructure:"user" validate:"required"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname" validate:"required"`
	SSLMode     string `mapstructure:"sslmode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// DSN renders the connection string in URL form.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// JWTConfig holds the token issuance settings. Secret, issuer, audience and
// expiry are required at startup; a process without them must not come up.
type JWTConfig struct {
	Secret          string `mapstructure:"secret" validate:"required"`
	Issuer          string `mapstructure:"issuer" validate:"required"`
	Audience        string `mapstructure:"audience" validate:"required"`
	ExpiryMinutes   int    `mapstructure:"expiry_minutes" validate:"required,gt=0"`
	SigningStrategy string `mapstructure:"signing_strategy" validate:"required,oneof=static derived"`
}

type LockoutConfig struct {
	MaxFailedAttempts int           `mapstructure:"max_failed_attempts" validate:"required,gt=0"`
	LockoutWindow     time.Duration `mapstructure:"lockout_window" validate:"required"`
}

type PasswordHashConfig struct {
	Memory      uint32 `mapstructure:"memory"`
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
	SaltLength  uint32 `mapstructure:"salt_length"`
	KeyLength   uint32 `mapstructure:"key_length"`
}

type SecurityConfig struct {
	Lockout      LockoutConfig      `mapstructure:"lockout"`
	PasswordHash PasswordHashConfig `mapstructure:"password_hash"`
}

// RegistrationConfig names the tenant new accounts are assigned to. The
// tenant is resolved by code at call time, never by a hardcoded id.
type RegistrationConfig struct {
	DefaultTenantCode string `mapstructure:"default_tenant_code" validate:"required"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Validate checks the required keys. A failure here is fatal at startup and
// never recoverable at request time.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("missing or invalid configuration: %w", err)
	}
	return nil
}
