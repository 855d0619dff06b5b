package services

import (
	"context"
	"strconv"

	"pepe-order/models"
	"pepe-order/repositories"
	"pepe-order/utils"

	"go.uber.org/zap"
)

type OrderTracker interface {
	TrackOrder(ctx context.Context, token, orderUID string) (*models.TrackOrderResponse, error)
}

// SessionService owns the persisted session of a device: where the app
// resumes, which table it is seated at and the receipt of its active order.
type SessionService struct {
	store   repositories.SessionStore
	tracker OrderTracker
	tables  *TableRegistry
	logger  *zap.Logger
}

func NewSessionService(store repositories.SessionStore, tracker OrderTracker, tables *TableRegistry, logger *zap.Logger) *SessionService {
	return &SessionService{store: store, tracker: tracker, tables: tables, logger: logger}
}

func (s *SessionService) Load(ctx context.Context, deviceID string) (models.PersistedSession, error) {
	return loadSession(ctx, s.store, deviceID)
}

func (s *SessionService) ResumeTarget(ctx context.Context, deviceID string) (models.ResumeTarget, error) {
	session, err := s.Load(ctx, deviceID)
	if err != nil {
		return models.ResumeTarget{}, err
	}
	return models.ResolveResumeTarget(session), nil
}

// StartTableSession binds the device to the table encoded in a scanned QR
// payload. Any cart of a previous table is discarded.
func (s *SessionService) StartTableSession(ctx context.Context, deviceID, payload string) (*models.TableContext, error) {
	session, err := s.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !session.IsLoggedIn() {
		return nil, models.ErrLoginRequired
	}

	decoded, err := utils.DecodeTablePayload(payload)
	if err != nil {
		return nil, models.NewValidationError("Invalid table QR code")
	}
	if _, err := strconv.Atoi(decoded.OutletID); err != nil {
		return nil, models.NewValidationError("Invalid table QR code")
	}

	table := models.TableContext{
		OutletID:   decoded.OutletID,
		OutletName: decoded.OutletName,
		TableLabel: decoded.TableLabel,
	}
	s.tables.Get(deviceID).Start(table)

	s.logger.Info("table session started",
		zap.String("device_id", deviceID),
		zap.String("outlet_id", table.OutletID),
		zap.String("table", table.TableLabel),
	)
	return &table, nil
}

// ReconcileReceipt fetches the order from the server and builds the receipt
// from the server's values only.
func (s *SessionService) ReconcileReceipt(ctx context.Context, token, orderID string) (*models.ReceiptView, error) {
	resp, err := s.tracker.TrackOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, models.NewApplicationError(messageOr(resp.Message, "Failed to load order"), nil)
	}

	receipt := models.NewReceiptView(resp.Data)
	if receipt.OrderUID == "" {
		receipt.OrderUID = orderID
	}
	return &receipt, nil
}

// Receipt reconciles the receipt of orderID, or of the device's active order
// when orderID is empty.
func (s *SessionService) Receipt(ctx context.Context, deviceID, orderID string) (*models.ReceiptView, error) {
	session, err := s.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !session.IsLoggedIn() {
		return nil, models.ErrLoginRequired
	}
	if orderID == "" {
		orderID = session.ActiveOrderID
	}
	if orderID == "" {
		return nil, models.ErrNoActiveOrder
	}
	return s.ReconcileReceipt(ctx, session.AuthToken, orderID)
}

// CompleteOrderCycle ends the active order so the next start goes to the
// scanner. The table stays bound; only its cart is emptied.
func (s *SessionService) CompleteOrderCycle(ctx context.Context, deviceID string) error {
	if err := s.store.Remove(ctx, deviceID, models.SessionKeyActiveOrder); err != nil {
		return storeError(err)
	}
	s.tables.Get(deviceID).View(func(_ *models.TableContext, cart *models.CartStore, _ uint64) {
		cart.Clear()
	})
	s.logger.Info("order cycle completed", zap.String("device_id", deviceID))
	return nil
}

func loadSession(ctx context.Context, store repositories.SessionStore, deviceID string) (models.PersistedSession, error) {
	values, err := store.All(ctx, deviceID)
	if err != nil {
		return models.PersistedSession{}, storeError(err)
	}
	return models.SessionFromValues(values), nil
}
