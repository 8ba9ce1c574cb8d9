// Package logger provides structured logging for seqkit tools using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("product")
//	log.Info("product enumerated", logger.Fields("tuples", 8))
package logger
