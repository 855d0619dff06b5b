package main

import (
	"pepe-order/config"
	_ "pepe-order/docs"
	"pepe-order/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Pepe Table Ordering API
// @version 1.0
// @description Table self-ordering backend: QR table sessions, cart, checkout and receipts on top of the Pepe ordering API.
// @host localhost:8082
// @BasePath /
func main() {

	config.LoadConfig()
	config.InitLogger(config.AppConfig.IsProduction())
	defer config.SyncLogger()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router, cleanup, err := routes.Bootstrap()
	if err != nil {
		config.Logger.Fatal("Failed to start", zap.Error(err))
	}
	defer cleanup()

	logger := config.Logger
	port := ":" + config.AppConfig.Port
	logger.Info("Server starting",
		zap.String("port", port),
		zap.String("env", config.AppConfig.AppEnv),
		zap.String("api", config.AppConfig.APIBaseURL),
		zap.String("session_driver", config.AppConfig.SessionDrv),
	)
	logger.Info("Swagger UI: http://localhost:" + config.AppConfig.Port + "/swagger/index.html")

	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
