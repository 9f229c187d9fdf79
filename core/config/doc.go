// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Each core concern contributes its own partial config (server, fetch, log,
// database); defaults come from 'default' struct tags and environment
// variables override via the SERVER_PORT -> server.port convention.
package config
