// Package config handles configuration management for gendry.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML or YAML project files, environment variables,
// and command-line flags.
package config
