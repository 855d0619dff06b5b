package repositories

import (
	"context"
	"net/http"
	"net/url"

	"pepe-order/models"
)

type OrderRepository struct {
	client *APIClient
}

func NewOrderRepository(client *APIClient) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, token string, req models.OrderRequest) (*models.CreateOrderResponse, error) {
	var resp models.CreateOrderResponse
	if err := r.client.do(ctx, http.MethodPost, "/orders", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *OrderRepository) TrackOrder(ctx context.Context, token, orderUID string) (*models.TrackOrderResponse, error) {
	var resp models.TrackOrderResponse
	if err := r.client.do(ctx, http.MethodGet, "/orders/track/"+url.PathEscape(orderUID), token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
