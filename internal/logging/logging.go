package logging

import (
	"go.uber.org/zap"
)

// Logger is a no-op until InitLogger runs.
var Logger = zap.NewNop().Sugar()

func InitLogger(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()
	return nil
}

func Sync() {
	_ = Logger.Sync()
}
