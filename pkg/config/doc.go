// Package config loads tool configuration from environment variables into
// tagged structs, with an optional `.env` file fallback for local runs.
//
// It wraps github.com/caarlos0/env and github.com/joho/godotenv behind a
// generic, cached Load: each configuration type is parsed once per process
// and shared by later callers. Reset exists for tests that mutate the
// environment between loads.
package config
