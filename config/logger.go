package config

import (
	"log"

	"go.uber.org/zap"
)

var Logger = zap.NewNop()

func InitLogger(production bool) {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	Logger = logger
	zap.ReplaceGlobals(logger)
}

func SyncLogger() {
	_ = Logger.Sync()
}
