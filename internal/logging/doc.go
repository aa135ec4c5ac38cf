// Package logging builds the zap loggers used across embedkit.
//
// Loggers write to stderr so command output on stdout stays
// machine-readable. Two encoders are supported: "console" for
// interactive use and "json" for structured collection.
//
// Create a logger from config:
//
//	logger, err := logging.New(logging.NewDefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync(logger)
package logging
