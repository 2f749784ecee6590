// Package logger provides slog attribute helpers and a configurable
// constructor for structured logging across the storefront SDK.
//
// Attribute helpers use the empty Attr pattern for nil safety, so call sites
// can write log.Info("msg", logger.Error(err)) without explicit nil checks.
//
// Usage:
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"})
//	log.Info("cart updated",
//		logger.Component("cart"),
//		logger.ID("item_id", itemID),
//		logger.Elapsed(start),
//	)
package logger
