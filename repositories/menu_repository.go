package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"pepe-order/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type MenuRepository struct {
	client *APIClient
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewMenuRepository returns a repository that caches outlet menus in Redis for
// ttl. A nil cache disables caching.
func NewMenuRepository(client *APIClient, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *MenuRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuRepository{client: client, cache: cache, ttl: ttl, logger: logger}
}

func (r *MenuRepository) GetOutletMenus(ctx context.Context, token, outletID string) ([]models.MenuCategory, error) {
	key := "menu:outlet:" + outletID

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var categories []models.MenuCategory
			if json.Unmarshal(cached, &categories) == nil {
				return categories, nil
			}
		case !errors.Is(err, redis.Nil):
			r.logger.Warn("menu cache read failed", zap.String("outlet_id", outletID), zap.Error(err))
		}
	}

	var resp models.OutletMenusResponse
	path := "/outlet-menus/outlet/" + url.PathEscape(outletID)
	if err := r.client.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Failed to fetch menus"
		}
		return nil, models.NewApplicationError(message, nil)
	}

	if r.cache != nil {
		if payload, err := json.Marshal(resp.Data); err == nil {
			if err := r.cache.Set(ctx, key, payload, r.ttl).Err(); err != nil {
				r.logger.Warn("menu cache write failed", zap.String("outlet_id", outletID), zap.Error(err))
			}
		}
	}

	return resp.Data, nil
}
