package config

import "time"

// Service names accepted by Load. Each service gets its own defaults
// and its own optional config file (<service>.yaml).
const (
	ServiceAccounts = "accounts"
	ServiceCards    = "cards"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Service  string         `mapstructure:"service"  validate:"required,oneof=accounts cards"`
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Audit    AuditConfig    `mapstructure:"audit"    validate:"required"`
	Numbers  NumbersConfig  `mapstructure:"numbers"  validate:"required"`
	Contact  ContactConfig  `mapstructure:"contact"`
	Build    BuildConfig    `mapstructure:"build"`
	Docs     DocsConfig     `mapstructure:"docs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	IdleTimeoutSeconds     int    `mapstructure:"idle_timeout_seconds"     validate:"gt=0"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	RequestTimeoutSeconds  int    `mapstructure:"request_timeout_seconds"  validate:"gt=0"`
}

// ReadTimeout returns the configured read timeout as a duration.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the configured idle timeout as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long graceful shutdown may take.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request deadline applied by the router.
func (c ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// AuditConfig controls how the author of a write is determined.
// SystemActor is recorded when the caller presents no bearer token.
// JWTSecret is optional; when set, bearer tokens signed with it name the actor.
type AuditConfig struct {
	SystemActor string `mapstructure:"system_actor" validate:"required,max=20"`
	JWTSecret   string `mapstructure:"jwt_secret"   validate:"omitempty,min=32"`
}

// NumbersConfig defines the ranges used to generate account and card numbers.
// A generated number n satisfies Min <= n < Min+Span.
type NumbersConfig struct {
	AccountMin  int64 `mapstructure:"account_min"  validate:"gt=0"`
	AccountSpan int64 `mapstructure:"account_span" validate:"gt=0"`
	CardMin     int64 `mapstructure:"card_min"     validate:"gt=0"`
	CardSpan    int64 `mapstructure:"card_span"    validate:"gt=0"`
	MaxAttempts int   `mapstructure:"max_attempts" validate:"gt=0,lte=100"`
}

// ContactConfig is the static support information served by /api/contact-info.
type ContactConfig struct {
	Message        string            `mapstructure:"message"         json:"message"`
	ContactDetails map[string]string `mapstructure:"contact_details" json:"contactDetails"`
	OnCallSupport  []string          `mapstructure:"on_call_support" json:"onCallSupport"`
}

// BuildConfig describes the running build.
type BuildConfig struct {
	Version string `mapstructure:"version" validate:"required"`
}

// DocsConfig carries the metadata published in the OpenAPI document.
type DocsConfig struct {
	Title            string `mapstructure:"title"`
	Description      string `mapstructure:"description"`
	Version          string `mapstructure:"version"`
	ContactName      string `mapstructure:"contact_name"`
	ContactEmail     string `mapstructure:"contact_email"`
	ContactURL       string `mapstructure:"contact_url"`
	LicenseName      string `mapstructure:"license_name"`
	LicenseURL       string `mapstructure:"license_url"`
	ExternalDocsURL  string `mapstructure:"external_docs_url"`
	ExternalDocsDesc string `mapstructure:"external_docs_description"`
}
