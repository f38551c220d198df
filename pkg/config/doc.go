// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with `env` and `envDefault` tags
// (github.com/caarlos0/env). Load reads a local .env file once through
// github.com/joho/godotenv, parses the struct and caches the result per type.
//
//	var app config.App
//	config.MustLoad(&app)
//
//	var engine notification.Config
//	config.MustLoad(&engine)
//	e, err := notification.NewEngine(renderer, engine.Options()...)
package config
