package routes

import (
	"fmt"
	"time"

	"pepe-order/config"
	"pepe-order/models"
	"pepe-order/repositories"
	"pepe-order/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bootstrap connects the configured backends and builds the router. The
// returned func releases the connections. config.LoadConfig and
// config.InitLogger must have run.
func Bootstrap() (*gin.Engine, func(), error) {
	cfg := config.AppConfig
	logger := config.Logger

	config.InitRedis()

	store, err := newSessionStore(cfg, logger)
	if err != nil {
		config.CloseRedis()
		return nil, nil, err
	}

	client := repositories.NewAPIClient(cfg.APIBaseURL, cfg.APITimeout, cfg.APIResolve, logger)
	svc := NewServices(client, store, config.RedisClient, cfg.MenuCacheTTL, newMailer(cfg, logger), logger)

	router := NewRouter(svc, logger, cfg.OriginURL)
	cleanup := func() {
		config.CloseDB()
		config.CloseRedis()
	}
	return router, cleanup, nil
}

// NewServices wires the services on top of the ordering API client. cache
// and mailer may be nil.
func NewServices(client *repositories.APIClient, store repositories.SessionStore, cache *redis.Client, cacheTTL time.Duration, mailer services.Mailer, logger *zap.Logger) *Services {
	tables := services.NewTableRegistry()

	authRepo := repositories.NewAuthRepository(client)
	menuRepo := repositories.NewMenuRepository(client, cache, cacheTTL, logger)
	orderRepo := repositories.NewOrderRepository(client)

	orders := services.NewOrderService(orderRepo, logger)

	return &Services{
		Store:    store,
		Auth:     services.NewAuthService(authRepo, store, tables, logger),
		Sessions: services.NewSessionService(store, orderRepo, tables, logger),
		Carts:    services.NewCartService(store, menuRepo, tables, logger),
		Checkout: services.NewCheckoutService(store, orders, tables, mailer, logger),
	}
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) (repositories.SessionStore, error) {
	switch cfg.SessionDrv {
	case "postgres":
		if err := config.ConnectDB(); err != nil {
			return nil, fmt.Errorf("failed to connect session database: %w", err)
		}
		return repositories.NewPostgresSessionStore(config.DB), nil
	case "redis":
		if config.RedisClient == nil {
			return nil, fmt.Errorf("redis session driver selected but redis is unavailable")
		}
		return repositories.NewRedisSessionStore(config.RedisClient), nil
	case "memory", "":
		logger.Warn("using in-memory sessions, they are lost on restart")
		return repositories.NewMemorySessionStore(), nil
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.SessionDrv)
	}
}

func newMailer(cfg *config.Config, logger *zap.Logger) services.Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	mailer, err := models.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if err != nil {
		logger.Warn("order confirmation emails disabled", zap.Error(err))
		return nil
	}
	return mailer
}
