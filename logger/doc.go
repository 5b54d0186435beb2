// Package logger provides structured logging capabilities.
//
// The logger package sets up the application's zap logger from
// configuration. Logs go to stderr by default; stdout belongs to the MCP
// stdio transport.
//
// Usage:
//
//	log, err := logger.New("production", "info", "stderr")
//	if err != nil {
//	    panic(err)
//	}
//	log.Info("Application started")
package logger
