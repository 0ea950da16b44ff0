// Package logging provides a minimal logging facade for the libeep
// binding.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can provide
// custom implementations for testing, redaction, or integration with
// existing logging systems.
//
// # Redaction
//
// CNT recordings embed patient-identifying metadata. The Redacted helper
// produces an attribute that stands in for such values:
//
//	logger.Info(ctx, "recording opened",
//	    "channels", n,
//	    logging.Redacted("patient_name"),
//	)
package logging
