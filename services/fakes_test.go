package services

import (
	"context"
	"sync"

	"pepe-order/models"
)

type fakeAuth struct {
	register *models.APIRegisterResponse
	login    *models.APILoginResponse
	err      error
}

func (f *fakeAuth) Register(context.Context, string, string) (*models.APIRegisterResponse, error) {
	return f.register, f.err
}

func (f *fakeAuth) Login(context.Context, string, string) (*models.APILoginResponse, error) {
	return f.login, f.err
}

// fakeMenus serves a fixed menu. When hook is set it runs before returning,
// standing in for the time a real request takes.
type fakeMenus struct {
	categories []models.MenuCategory
	err        error
	hook       func()
	calls      int
}

func (f *fakeMenus) GetOutletMenus(ctx context.Context, token, outletID string) ([]models.MenuCategory, error) {
	f.calls++
	if f.hook != nil {
		f.hook()
	}
	return f.categories, f.err
}

type fakeOrders struct {
	mu       sync.Mutex
	requests []models.OrderRequest
	create   *models.CreateOrderResponse
	track    *models.TrackOrderResponse
	err      error
	hook     func()
}

func (f *fakeOrders) CreateOrder(_ context.Context, _ string, req models.OrderRequest) (*models.CreateOrderResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.hook != nil {
		f.hook()
	}
	return f.create, f.err
}

func (f *fakeOrders) TrackOrder(context.Context, string, string) (*models.TrackOrderResponse, error) {
	return f.track, f.err
}

type sentEmail struct {
	to    string
	order models.OrderEmail
}

type fakeMailer struct {
	sent chan sentEmail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentEmail, 1)}
}

func (f *fakeMailer) SendOrderConfirmationEmail(to string, order models.OrderEmail) error {
	f.sent <- sentEmail{to: to, order: order}
	return nil
}

func amountPtr(v int64) *models.Amount {
	a := models.Amount(v)
	return &a
}

func testMenu() []models.MenuCategory {
	return []models.MenuCategory{
		{Category: "Coffee", Menus: []models.Product{
			{
				MenuID:    7,
				Name:      "Caffe Latte",
				Price:     30000,
				IsSelling: true,
				Subitems: []models.Subitem{
					{ID: 1, Name: "Regular", Category: "Size", IsSelling: true},
					{ID: 2, Name: "Large", Category: "Size", Price: amountPtr(5000), IsSelling: true},
				},
			},
		}},
		{Category: "Food", Menus: []models.Product{
			{MenuID: 9, Name: "Nasi Goreng", Desc: "Fried rice", Price: 50000, IsSelling: true},
		}},
	}
}
