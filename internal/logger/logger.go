package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the application-wide logger. InitLogger must run before anything
// else touches it; packages that may be used without initialization (tests)
// get a no-op logger by default.
var Log = zap.NewNop()

func InitLogger() {
	var err error

	if os.Getenv("ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}

	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}
}

func Sync() {
	_ = Log.Sync()
}
