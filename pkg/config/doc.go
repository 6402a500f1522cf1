// Package config loads typed configuration from environment variables.
//
// Every component that needs settings declares a struct with env tags
// (wikiurl.Config, cookie.Config, httpserver.Config, ...) and the command
// loads it with Load:
//
//	var site wikiurl.Config
//	if err := config.Load(&site); err != nil {
//		return err
//	}
//
// Parsing is done by github.com/caarlos0/env/v11. A .env file in the working
// directory is read through github.com/joho/godotenv on first use, and LoadEnv
// reads extra files explicitly. Parsed structs are cached per type, so
// repeated loads are cheap and consistent; ResetCache clears the cache in tests.
package config
