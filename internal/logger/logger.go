// Package logger holds the process-wide Zap logger shared by the API
// server, the migrate CLI and the HTTP middleware.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger once for the given environment. Repeated
// calls are no-ops, so the first caller (normally main) wins.
func Init(env string) {
	once.Do(func() {
		base, err := build(env)
		if err != nil {
			// Never fail startup over logging.
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// build returns a JSON logger tagged with the service name in production
// and a console logger everywhere else.
func build(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction(zap.Fields(zap.String("service", "dealflow-api")))
	}
	return zap.NewDevelopment()
}

// Get returns the global sugared logger, initializing a development one
// if Init was never called (tests mostly).
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries. Deferred from main before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
