package logger

import (
	"os"

	"go.uber.org/zap"
)

// Init configures the global zap logger. Everything in this codebase logs
// through zap.S() so that storage failures and scheduled jobs share one sink.
func Init() {
	var cfg zap.Config
	if os.Getenv("GIN_MODE") == "release" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true

	log, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(log)
}
