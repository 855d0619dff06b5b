package services

import (
	"context"

	"pepe-order/models"
	"pepe-order/repositories"

	"go.uber.org/zap"
)

type Mailer interface {
	SendOrderConfirmationEmail(toEmail string, order models.OrderEmail) error
}

// CheckoutService places the cart of a device as an order and records it as
// the active order of the session.
type CheckoutService struct {
	store  repositories.SessionStore
	orders *OrderService
	tables *TableRegistry
	mailer Mailer
	logger *zap.Logger
}

// NewCheckoutService builds the service. mailer may be nil, in which case no
// confirmation email is sent.
func NewCheckoutService(store repositories.SessionStore, orders *OrderService, tables *TableRegistry, mailer Mailer, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{store: store, orders: orders, tables: tables, mailer: mailer, logger: logger}
}

func (s *CheckoutService) Checkout(ctx context.Context, deviceID string) (*models.CheckoutResponse, error) {
	session, err := loadSession(ctx, s.store, deviceID)
	if err != nil {
		return nil, err
	}
	if !session.IsLoggedIn() {
		return nil, models.ErrLoginRequired
	}

	var (
		req        models.OrderRequest
		table      models.TableContext
		items      []models.CartLineItem
		generation uint64
	)
	ts := s.tables.Get(deviceID)
	done, err := ts.BeginCheckout(func(t *models.TableContext, cart *models.CartStore, g uint64) error {
		switch {
		case t == nil:
			return models.ErrNoTable
		case cart.IsEmpty():
			return models.ErrCartEmpty
		}
		table = *t
		items = cart.Items()
		req = BuildOrderRequest(session, table, cart)
		generation = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer done()

	confirmation, err := s.orders.Submit(ctx, session.AuthToken, req)
	if err != nil {
		return nil, err
	}

	// The order exists now; record it even if the client went away.
	resumable := true
	persistCtx := context.WithoutCancel(ctx)
	if err := s.store.Set(persistCtx, deviceID, models.SessionKeyActiveOrder, confirmation.OrderUID); err != nil {
		resumable = false
		s.logger.Error("failed to persist active order",
			zap.String("device_id", deviceID),
			zap.String("order_uid", confirmation.OrderUID),
			zap.Error(err),
		)
	}

	// Only what was ordered leaves the cart.
	err = ts.Apply(generation, func(_ *models.TableContext, cart *models.CartStore) {
		cart.Deduct(items)
	})
	if err != nil {
		s.logger.Info("table changed during checkout, cart kept", zap.String("device_id", deviceID))
	}

	s.logger.Info("order placed",
		zap.String("device_id", deviceID),
		zap.String("order_uid", confirmation.OrderUID),
		zap.Int64("grand_total", confirmation.Totals.GrandTotal),
	)

	if s.mailer != nil && session.UserEmail != "" {
		totals := confirmation.Totals
		if totals.GrandTotal == 0 {
			totals = models.ComputeTotals(subtotalOf(items))
		}
		email := models.OrderEmail{
			OrderUID:   confirmation.OrderUID,
			OutletName: table.OutletName,
			TableLabel: table.TableLabel,
			Items:      items,
			Totals:     totals,
		}
		go s.sendConfirmation(session.UserEmail, email)
	}

	return &models.CheckoutResponse{
		OrderUID:  confirmation.OrderUID,
		OrderID:   confirmation.OrderID,
		Next:      models.ResumeReceipt,
		Resumable: resumable,
	}, nil
}

func (s *CheckoutService) sendConfirmation(to string, email models.OrderEmail) {
	if err := s.mailer.SendOrderConfirmationEmail(to, email); err != nil {
		s.logger.Warn("failed to send order confirmation", zap.String("order_uid", email.OrderUID), zap.Error(err))
	}
}

func subtotalOf(items []models.CartLineItem) int64 {
	var subtotal int64
	for i := range items {
		subtotal += items[i].LineTotal()
	}
	return subtotal
}
