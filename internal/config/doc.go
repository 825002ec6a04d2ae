// Package config loads, parses, and validates the settings of the accounts
// and cards services. Values come from per-service defaults, an optional
// YAML file named after the service, and EASYBANK_-prefixed environment
// variables, in increasing order of precedence.
package config
