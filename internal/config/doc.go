// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via
// go-simpler/env struct tags, then validates required fields and ranges.
package config
