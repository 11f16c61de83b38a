// Package logging builds the shared zap logger used by every adapter and
// by the engine's optional debug tracing.
package logging

import "go.uber.org/zap"

// New builds a production-style JSON logger, or a human-readable
// development logger when dev is true.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// MustNew is New but panics on construction failure, for use in main()
// where there is no better recovery than failing fast.
func MustNew(dev bool) *zap.Logger {
	logger, err := New(dev)
	if err != nil {
		panic(err)
	}
	return logger
}
