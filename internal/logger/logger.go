package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init builds the global zap logger. Outside development it logs JSON.
func Init(env string) error {
	var conf zap.Config
	if env == "development" {
		conf = zap.NewDevelopmentConfig()
		level.SetLevel(zap.DebugLevel)
	} else {
		conf = zap.NewProductionConfig()
		level.SetLevel(zap.InfoLevel)
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(lvl string) error {
	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}

	level.SetLevel(parsed)

	return nil
}
