// Package config provides configuration loading and validation for seqkit
// tools.
//
// It uses Viper to load a YAML config file and godotenv to load an optional
// .env file. Environment variables carrying the service prefix override file
// values using underscore-separated paths (e.g. SEQKIT_LOGGING_LEVEL sets
// logging.level).
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("seqkit", &cfg, config.WithConfigFile(path))
package config
