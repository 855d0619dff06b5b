package api

import (
	"net/http"
	"sync"

	"pepe-order/config"
	_ "pepe-order/docs"
	"pepe-order/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.InitLogger(true)

		router, _, initErr = routes.Bootstrap()
		if initErr != nil {
			config.Logger.Error("failed to initialise app", zap.Error(initErr))
		}
	})
}

// Handler is the serverless entry point. Connections live as long as the
// function instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"message":"Service unavailable"}`))
		return
	}
	router.ServeHTTP(w, r)
}
