// Package logger builds configured slog.Logger instances for the service.
//
// It provides a small factory over log/slog with functional options for
// level, output format (JSON for aggregation, text for development), output
// destination and static attributes, plus environment presets used by the
// entrypoint:
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "placegen"))
//	log.Info("dataset loaded", logger.Component("api"))
//
// Attribute helpers (Error, Component, Dataset, ...) keep log keys
// consistent across the codebase.
package logger
