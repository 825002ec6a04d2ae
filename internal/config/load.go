package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. EASYBANK_SERVER_PORT or EASYBANK_DATABASE_URL.
const EnvPrefix = "EASYBANK"

// Load configuration for the named service from defaults, an optional
// <service>.yaml file in "." or "./config", and environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(service string) (*Config, error) {
	if service != ServiceAccounts && service != ServiceCards {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	v := viper.New()
	setDefaults(v, service)

	v.SetConfigName(service)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to AutomaticEnv during Unmarshal.
	for _, key := range []string{"database.url", "audit.jwt_secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Service = service

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout_seconds", 10)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.request_timeout_seconds", 30)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("numbers.account_min", int64(1_000_000_000))
	v.SetDefault("numbers.account_span", int64(900_000_000))
	v.SetDefault("numbers.card_min", int64(100_000_000_000))
	v.SetDefault("numbers.card_span", int64(900_000_000))
	v.SetDefault("numbers.max_attempts", 10)

	v.SetDefault("build.version", "1.0")

	v.SetDefault("docs.version", "v1")
	v.SetDefault("docs.license_name", "Apache 2.0")
	v.SetDefault("docs.license_url", "https://www.apache.org/licenses/LICENSE-2.0")

	switch service {
	case ServiceAccounts:
		v.SetDefault("server.port", 8080)
		v.SetDefault("audit.system_actor", "ACCOUNTS_MS")
		v.SetDefault("contact.message", "Welcome to EazyBank accounts related APIs")
		v.SetDefault("contact.contact_details", map[string]string{
			"name":  "Accounts Support Team",
			"email": "accounts-support@eazybank.com",
		})
		v.SetDefault("contact.on_call_support", []string{"(555) 555-1234", "(555) 523-1345"})
		v.SetDefault("docs.title", "Accounts microservice REST API Documentation")
		v.SetDefault("docs.description", "EazyBank Accounts microservice REST API Documentation")
		v.SetDefault("docs.contact_name", "songminkyu")
		v.SetDefault("docs.contact_email", "rabbircarrot@naver.com")
		v.SetDefault("docs.contact_url", "https://github.com/songminkyu")
		v.SetDefault("docs.external_docs_description", "EazyBank Accounts microservice REST API Documentation")
		v.SetDefault("docs.external_docs_url", "https://www.eazybank.com/swagger-ui.html")
	case ServiceCards:
		v.SetDefault("server.port", 9000)
		v.SetDefault("audit.system_actor", "CARDS_MS")
		v.SetDefault("contact.message", "Welcome to EazyBank cards related APIs")
		v.SetDefault("contact.contact_details", map[string]string{
			"name":  "Cards Product Owner",
			"email": "cards@eazybank.com",
		})
		v.SetDefault("contact.on_call_support", []string{"(453) 392-4829", "(236) 203-0384"})
		v.SetDefault("docs.title", "Cards microservice REST API Documentation")
		v.SetDefault("docs.description", "EazyBank Cards microservice REST API Documentation")
		v.SetDefault("docs.contact_name", "Madan Reddy")
		v.SetDefault("docs.contact_email", "tutor@easybank.com")
		v.SetDefault("docs.contact_url", "https://www.easybank.com")
		v.SetDefault("docs.external_docs_description", "EazyBank Cards microservice REST API Documentation")
		v.SetDefault("docs.external_docs_url", "https://www.easybank.com/swagger-ui.html")
	}
}
