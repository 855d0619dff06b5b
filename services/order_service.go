package services

import (
	"context"
	"strconv"

	"pepe-order/models"

	"go.uber.org/zap"
)

type OrderGateway interface {
	CreateOrder(ctx context.Context, token string, req models.OrderRequest) (*models.CreateOrderResponse, error)
}

// OrderService talks to the order creation API. It keeps no state: the
// caller persists the active order and clears the cart.
type OrderService struct {
	orders OrderGateway
	logger *zap.Logger
}

func NewOrderService(orders OrderGateway, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// BuildOrderRequest maps the cart to the order creation body. Every chosen
// option is sent once with quantity 1, whatever the line item quantity.
func BuildOrderRequest(session models.PersistedSession, table models.TableContext, cart *models.CartStore) models.OrderRequest {
	outletID, _ := strconv.Atoi(table.OutletID)

	items := cart.Items()
	req := models.OrderRequest{
		OutletID: outletID,
		TableNo:  table.TableLabel,
		UserID:   session.UserID,
		Items:    make([]models.OrderItemRequest, 0, len(items)),
	}
	for _, item := range items {
		subitems := make([]models.SubitemRequest, 0, len(item.SubitemIDs))
		for _, id := range item.SubitemIDs {
			subitems = append(subitems, models.SubitemRequest{SubitemID: id, Quantity: 1})
		}
		req.Items = append(req.Items, models.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subitems:  subitems,
		})
	}
	return req
}

// Submit creates the order once. Failures are returned, never retried.
func (s *OrderService) Submit(ctx context.Context, token string, req models.OrderRequest) (*models.OrderConfirmation, error) {
	resp, err := s.orders.CreateOrder(ctx, token, req)
	if err != nil {
		s.logger.Warn("order creation failed", zap.Int("outlet_id", req.OutletID), zap.Error(err))
		return nil, err
	}
	if !resp.Success {
		return nil, models.NewApplicationError(messageOr(resp.Message, "Failed to create order"), nil)
	}
	if resp.Data == nil || resp.Data.UID == "" {
		return nil, models.NewApplicationError("Unexpected response from server", nil)
	}

	data := resp.Data
	return &models.OrderConfirmation{
		OrderUID: data.UID,
		OrderID:  data.ID,
		Totals: models.OrderTotals{
			Subtotal:      int64(data.Subtotal),
			ServiceCharge: int64(data.SC),
			Tax:           int64(data.Tax),
			GrandTotal:    int64(data.GrandTotal),
		},
	}, nil
}
