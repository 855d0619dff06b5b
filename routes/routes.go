package routes

import (
	"pepe-order/controllers"
	"pepe-order/middleware"
	"pepe-order/repositories"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Services is everything the HTTP layer needs.
type Services struct {
	Store    repositories.SessionStore
	Auth     *services.AuthService
	Sessions *services.SessionService
	Carts    *services.CartService
	Checkout *services.CheckoutService
}

// NewRouter builds the engine with the global middleware and all routes.
func NewRouter(svc *Services, logger *zap.Logger, originURL string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(originURL))
	router.Use(middleware.DeviceMiddleware())
	router.Use(middleware.RequestLogger(logger))

	SetupRoutes(router, svc)
	return router
}

func SetupRoutes(router *gin.Engine, svc *Services) {
	authCtrl := controllers.NewAuthController(svc.Auth)
	sessionCtrl := controllers.NewSessionController(svc.Sessions)
	menuCtrl := controllers.NewMenuController(svc.Carts)
	cartCtrl := controllers.NewCartController(svc.Carts)
	orderCtrl := controllers.NewOrderController(svc.Checkout, svc.Sessions)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/session/resume", sessionCtrl.Resume)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(svc.Store))
	{
		auth.POST("/tables/scan", sessionCtrl.ScanTable)
		auth.GET("/menu", menuCtrl.GetMenu)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:index", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/orders/checkout", orderCtrl.Checkout)
		auth.GET("/orders/receipt", orderCtrl.GetReceipt)
		auth.POST("/orders/complete", orderCtrl.CompleteOrder)
	}
}
