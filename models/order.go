package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ServiceChargeRate = decimal.New(10, -2)
	TaxRate           = decimal.New(10, -2)
)

// OrderTotals is derived from a subtotal and never stored.
type OrderTotals struct {
	Subtotal      int64 `json:"subtotal"`
	ServiceCharge int64 `json:"service_charge"`
	Tax           int64 `json:"tax"`
	GrandTotal    int64 `json:"grand_total"`
}

// ComputeTotals applies a 10% service charge and a 10% tax on subtotal plus
// service charge, truncating toward zero at each step.
func ComputeTotals(subtotal int64) OrderTotals {
	base := decimal.NewFromInt(subtotal)
	serviceCharge := base.Mul(ServiceChargeRate).IntPart()
	tax := base.Add(decimal.NewFromInt(serviceCharge)).Mul(TaxRate).IntPart()

	return OrderTotals{
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		Tax:           tax,
		GrandTotal:    subtotal + serviceCharge + tax,
	}
}

// Amount is a money value received from the ordering API. The API is not
// consistent about number formats, so integers, decimals and display strings
// such as "Rp. 12.000" are all accepted.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(parseDisplayAmount(strings.TrimSpace(s)))
		return nil
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*a = Amount(n)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}
	*a = Amount(d.IntPart())
	return nil
}

// OrderRequest is the body of the order creation call.
type OrderRequest struct {
	OutletID int                `json:"outlet_id"`
	TableNo  string             `json:"table_no"`
	UserID   int                `json:"user_id"`
	Items    []OrderItemRequest `json:"order_item"`
}

type OrderItemRequest struct {
	ProductID int              `json:"menu_id"`
	Quantity  int              `json:"quantity"`
	Subitems  []SubitemRequest `json:"subitems"`
}

type SubitemRequest struct {
	SubitemID int `json:"menu_id"`
	Quantity  int `json:"quantity"`
}

type CreateOrderResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *OrderData `json:"data"`
}

type OrderData struct {
	ID         int    `json:"id"`
	UID        string `json:"uid"`
	OutletID   int    `json:"o_id"`
	TableNo    string `json:"table_no"`
	UserID     int    `json:"u_id"`
	Tax        Amount `json:"tax"`
	SC         Amount `json:"sc"`
	Subtotal   Amount `json:"subtotal"`
	GrandTotal Amount `json:"grand_total"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// OrderConfirmation is what the checkout flow keeps from a created order.
type OrderConfirmation struct {
	OrderUID string      `json:"order_uid"`
	OrderID  int         `json:"order_id"`
	Totals   OrderTotals `json:"totals"`
}

type TrackOrderResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *TrackOrderData `json:"data"`
}

type TrackOrderData struct {
	ID         int              `json:"id"`
	UID        string           `json:"uid"`
	OutletID   int              `json:"o_id"`
	TableNo    string           `json:"table_no"`
	UserID     int              `json:"u_id"`
	Tax        Amount           `json:"tax"`
	SC         Amount           `json:"sc"`
	Subtotal   Amount           `json:"subtotal"`
	GrandTotal Amount           `json:"grand_total"`
	OrderItem  OrderItemDetails `json:"or_order_item"`
	CreatedAt  string           `json:"created_at"`
	Outlet     OutletInfo       `json:"outlet"`
	User       UserInfo         `json:"user"`
}

type OrderItemDetails struct {
	Items   []OrderItemDetail `json:"items"`
	Summary OrderSummary      `json:"summary"`
}

type OrderItemDetail struct {
	ProductID int             `json:"menu_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     Amount          `json:"price"`
	Total     Amount          `json:"total"`
	Subitems  []SubitemDetail `json:"subitems"`
}

type SubitemDetail struct {
	SubitemID int    `json:"menu_id"`
	Name      string `json:"name"`
}

type OrderSummary struct {
	Subtotal      string `json:"subtotal"`
	ServiceCharge string `json:"service_charge"`
	Tax           string `json:"tax"`
	GrandTotal    string `json:"grand_total"`
}

type OutletInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type UserInfo struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
