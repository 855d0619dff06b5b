package services

import (
	"context"

	"pepe-order/models"
	"pepe-order/repositories"

	"go.uber.org/zap"
)

type MenuSource interface {
	GetOutletMenus(ctx context.Context, token, outletID string) ([]models.MenuCategory, error)
}

type CartService struct {
	store  repositories.SessionStore
	menus  MenuSource
	tables *TableRegistry
	logger *zap.Logger
}

func NewCartService(store repositories.SessionStore, menus MenuSource, tables *TableRegistry, logger *zap.Logger) *CartService {
	return &CartService{store: store, menus: menus, tables: tables, logger: logger}
}

// seated returns the session credentials and a snapshot of the table the
// device is seated at, with the generation it was taken at.
func (s *CartService) seated(ctx context.Context, deviceID string) (models.PersistedSession, models.TableContext, uint64, error) {
	session, err := loadSession(ctx, s.store, deviceID)
	if err != nil {
		return session, models.TableContext{}, 0, err
	}
	if !session.IsLoggedIn() {
		return session, models.TableContext{}, 0, models.ErrLoginRequired
	}

	var (
		table      *models.TableContext
		generation uint64
	)
	s.tables.Get(deviceID).View(func(t *models.TableContext, _ *models.CartStore, g uint64) {
		if t != nil {
			copied := *t
			table = &copied
		}
		generation = g
	})
	if table == nil {
		return session, models.TableContext{}, 0, models.ErrNoTable
	}
	return session, *table, generation, nil
}

// Menu returns the outlet menu of the device's table, optionally filtered by
// keyword.
func (s *CartService) Menu(ctx context.Context, deviceID, keyword string) (*models.MenuView, error) {
	session, table, _, err := s.seated(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	categories, err := s.menus.GetOutletMenus(ctx, session.AuthToken, table.OutletID)
	if err != nil {
		return nil, err
	}

	view := models.NewMenuView(table, models.FilterMenu(categories, keyword))
	return &view, nil
}

// AddItem validates the customer's customization against the current menu
// and merges the resulting line item into the cart. The result is dropped if
// the table session changed while the menu was being fetched.
func (s *CartService) AddItem(ctx context.Context, deviceID string, req models.AddCartItemRequest) (*models.CartView, error) {
	session, table, generation, err := s.seated(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	categories, err := s.menus.GetOutletMenus(ctx, session.AuthToken, table.OutletID)
	if err != nil {
		return nil, err
	}

	product, ok := models.FindProduct(categories, req.MenuID)
	if !ok {
		return nil, models.NewValidationError("Menu item %d is not on this outlet's menu", req.MenuID)
	}

	item, err := models.BuildLineItem(*product, req.Selections, req.Quantity)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, models.ErrSessionChanged
	}

	var view models.CartView
	err = s.tables.Get(deviceID).Apply(generation, func(t *models.TableContext, cart *models.CartStore) {
		cart.AddOrMerge(*item)
		view = models.NewCartView(t, cart.Items())
	})
	if err != nil {
		s.logger.Info("dropped add to cart after table change",
			zap.String("device_id", deviceID),
			zap.String("product", item.ProductName),
		)
		return nil, err
	}
	return &view, nil
}

// UpdateQuantity sets the quantity of the item at index. Zero or less removes
// the item; an index outside the cart leaves it unchanged.
func (s *CartService) UpdateQuantity(deviceID string, index, quantity int) *models.CartView {
	return s.mutate(deviceID, func(cart *models.CartStore) {
		if !cart.SetQuantity(index, quantity) {
			s.logger.Debug("ignored quantity change", zap.String("device_id", deviceID), zap.Int("index", index))
		}
	})
}

func (s *CartService) RemoveItem(deviceID string, index int) *models.CartView {
	return s.mutate(deviceID, func(cart *models.CartStore) {
		if !cart.RemoveAt(index) {
			s.logger.Debug("ignored item removal", zap.String("device_id", deviceID), zap.Int("index", index))
		}
	})
}

func (s *CartService) Clear(deviceID string) *models.CartView {
	return s.mutate(deviceID, func(cart *models.CartStore) { cart.Clear() })
}

func (s *CartService) View(deviceID string) *models.CartView {
	return s.mutate(deviceID, func(*models.CartStore) {})
}

func (s *CartService) mutate(deviceID string, fn func(cart *models.CartStore)) *models.CartView {
	var view models.CartView
	s.tables.Get(deviceID).View(func(t *models.TableContext, cart *models.CartStore, _ uint64) {
		fn(cart)
		view = models.NewCartView(t, cart.Items())
	})
	return &view
}
