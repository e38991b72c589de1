package main

import "go.uber.org/zap"

// newLogger returns a zap logger in development format when -v is set, and
// a no-op logger otherwise: parse-failure logs and the playground's request
// correlation ids are diagnostic noise unless a caller asked for them.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
