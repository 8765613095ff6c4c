// Package logger builds configured log/slog loggers for the binaries in
// this repository.
//
// New applies functional options over production-safe defaults (JSON
// format, info level, stdout). WithDevelopment switches to human-readable
// text output at debug level for local work.
//
//	log := logger.New(logger.WithDevelopment("userkit"))
//	log.Info("session restored", "user_id", rec.ID)
package logger
