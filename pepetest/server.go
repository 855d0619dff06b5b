// Package pepetest runs an in-process stand-in for the Pepe ordering API.
package pepetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pepe-order/models"
	"pepe-order/utils"

	"github.com/golang-jwt/jwt/v5"
)

const (
	UserID   = 42
	Password = "secret123"
)

// Server answers the endpoints the ordering backend calls. Orders are priced
// from its own menu, so receipts carry server values.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	menu       []models.MenuCategory
	orders     map[string]*models.TrackOrderData
	created    []models.OrderRequest
	nextID     int
	rejectWith string
	token      string
}

func NewServer(t testing.TB) *Server {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": UserID}).
		SignedString([]byte("pepe-api-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	s := &Server{
		menu:   DefaultMenu(),
		orders: map[string]*models.TrackOrderData{},
		nextID: 100,
		token:  token,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/register/customer", s.register)
	mux.HandleFunc("POST /users/login", s.login)
	mux.HandleFunc("GET /outlet-menus/outlet/{id}", s.authed(s.outletMenus))
	mux.HandleFunc("POST /orders", s.authed(s.createOrder))
	mux.HandleFunc("GET /orders/track/{uid}", s.authed(s.trackOrder))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// DefaultMenu is one outlet menu with a customizable drink and a plain dish.
func DefaultMenu() []models.MenuCategory {
	large := models.Amount(5000)
	return []models.MenuCategory{
		{Category: "Coffee", Menus: []models.Product{{
			ID: 1, MenuID: 7, OutletID: 3, Price: 30000, IsSelling: true,
			Name: "Caffe Latte", Desc: "Espresso and steamed milk", Category: "Coffee",
			Subitems: []models.Subitem{
				{ID: 1, Name: "Regular", Category: "Size", IsSelling: true},
				{ID: 2, Name: "Large", Category: "Size", Price: &large, IsSelling: true},
				{ID: 3, Name: "Normal", Category: "Sugar", IsSelling: true},
				{ID: 4, Name: "Less", Category: "Sugar", IsSelling: true},
			},
		}}},
		{Category: "Food", Menus: []models.Product{{
			ID: 2, MenuID: 9, OutletID: 3, Price: 50000, IsSelling: true,
			Name: "Nasi Goreng", Desc: "Fried rice", Category: "Food",
		}}},
	}
}

// Token is the token the server hands out on login.
func (s *Server) Token() string {
	return s.token
}

// RejectOrders makes order creation answer success=false with message.
func (s *Server) RejectOrders(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectWith = message
}

// CreatedOrders returns the order bodies received so far.
func (s *Server) CreatedOrders() []models.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OrderRequest(nil), s.created...)
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Unauthorized"})
			return
		}
		next(w, r)
	}
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, http.StatusOK, models.APIRegisterResponse{
		Success: true,
		Message: "Registered",
		Result:  &models.User{ID: UserID, Email: req.Email},
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Password != Password {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusOK, models.APILoginResponse{
		Success: true,
		Message: "Login success",
		Token:   s.token,
		User:    &models.User{ID: UserID, Email: req.Email},
	})
}

func (s *Server) outletMenus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	menu := s.menu
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.OutletMenusResponse{Success: true, Data: menu})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)

	if s.rejectWith != "" {
		writeJSON(w, http.StatusOK, models.CreateOrderResponse{Success: false, Message: s.rejectWith})
		return
	}

	order, err := s.price(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": err.Error()})
		return
	}
	s.nextID++
	order.ID = s.nextID
	order.UID = fmt.Sprintf("ORD-%d", s.nextID)
	s.orders[order.UID] = order

	writeJSON(w, http.StatusCreated, models.CreateOrderResponse{
		Success: true,
		Message: "Order created",
		Data: &models.OrderData{
			ID: order.ID, UID: order.UID, OutletID: order.OutletID, TableNo: order.TableNo, UserID: order.UserID,
			Tax: order.Tax, SC: order.SC, Subtotal: order.Subtotal, GrandTotal: order.GrandTotal,
		},
	})
}

func (s *Server) trackOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	order, ok := s.orders[r.PathValue("uid")]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "Order not found"})
		return
	}
	writeJSON(w, http.StatusOK, models.TrackOrderResponse{Success: true, Data: order})
}

func (s *Server) price(req models.OrderRequest) (*models.TrackOrderData, error) {
	order := &models.TrackOrderData{
		OutletID: req.OutletID,
		TableNo:  req.TableNo,
		UserID:   req.UserID,
		Outlet:   models.OutletInfo{ID: req.OutletID, Name: "Pepe Senopati"},
		User:     models.UserInfo{ID: req.UserID},
	}

	var subtotal int64
	for _, item := range req.Items {
		product, ok := models.FindProduct(s.menu, item.ProductID)
		if !ok {
			return nil, fmt.Errorf("menu %d not found", item.ProductID)
		}
		unit := int64(product.Price)
		detail := models.OrderItemDetail{ProductID: product.MenuID, Name: product.Name, Quantity: item.Quantity}
		for _, sub := range item.Subitems {
			for _, option := range product.Subitems {
				if option.ID == sub.SubitemID {
					unit += option.PriceDelta()
					detail.Subitems = append(detail.Subitems, models.SubitemDetail{SubitemID: option.ID, Name: option.Name})
					break
				}
			}
		}
		detail.Price = models.Amount(unit)
		detail.Total = models.Amount(unit * int64(item.Quantity))
		subtotal += unit * int64(item.Quantity)
		order.OrderItem.Items = append(order.OrderItem.Items, detail)
	}

	totals := models.ComputeTotals(subtotal)
	order.Subtotal = models.Amount(totals.Subtotal)
	order.SC = models.Amount(totals.ServiceCharge)
	order.Tax = models.Amount(totals.Tax)
	order.GrandTotal = models.Amount(totals.GrandTotal)
	order.OrderItem.Summary = models.OrderSummary{
		Subtotal:      utils.FormatRupiah(totals.Subtotal),
		ServiceCharge: utils.FormatRupiah(totals.ServiceCharge),
		Tax:           utils.FormatRupiah(totals.Tax),
		GrandTotal:    strings.TrimPrefix(utils.FormatRupiah(totals.GrandTotal), utils.CurrencyPrefix),
	}
	return order, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
