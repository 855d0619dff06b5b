package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"pepe-order/models"
	"pepe-order/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	store  *repositories.MemorySessionStore
	tables *TableRegistry
	orders *fakeOrders
	mailer *fakeMailer
	carts  *CartService
	svc    *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctx := context.Background()
	f := &checkoutFixture{
		store:  repositories.NewMemorySessionStore(),
		tables: NewTableRegistry(),
		orders: &fakeOrders{create: &models.CreateOrderResponse{
			Success: true,
			Data:    &models.OrderData{ID: 88, UID: "ORD-1", Subtotal: 100000, SC: 10000, Tax: 11000, GrandTotal: 121000},
		}},
		mailer: newFakeMailer(),
	}
	logger := zap.NewNop()
	f.carts = NewCartService(f.store, &fakeMenus{categories: testMenu()}, f.tables, logger)
	f.svc = NewCheckoutService(f.store, NewOrderService(f.orders, logger), f.tables, f.mailer, logger)

	require.NoError(t, f.store.Set(ctx, "dev-1", models.SessionKeyToken, "jwt"))
	require.NoError(t, f.store.Set(ctx, "dev-1", models.SessionKeyUserID, "42"))
	require.NoError(t, f.store.Set(ctx, "dev-1", models.SessionKeyUserEmail, "budi@example.com"))
	f.tables.Get("dev-1").Start(models.TableContext{OutletID: "3", OutletName: "Pepe", TableLabel: "Table 12"})
	return f
}

func (f *checkoutFixture) add(t *testing.T, req models.AddCartItemRequest) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), "dev-1", req)
	require.NoError(t, err)
}

func TestBuildOrderRequest(t *testing.T) {
	cart := models.NewCartStore()
	latte, err := models.NewCartLineItem(7, "Caffe Latte", "", 30000, []models.SubitemChoice{
		{CategoryTitle: "Size", OptionID: 2},
		{CategoryTitle: "Sugar", OptionID: 31},
	}, 3)
	require.NoError(t, err)
	rice, err := models.NewCartLineItem(9, "Nasi Goreng", "", 50000, nil, 1)
	require.NoError(t, err)
	cart.AddOrMerge(*latte)
	cart.AddOrMerge(*rice)

	req := BuildOrderRequest(
		models.PersistedSession{AuthToken: "jwt", UserID: 42},
		models.TableContext{OutletID: "3", TableLabel: "Table 12"},
		cart,
	)

	assert.Equal(t, models.OrderRequest{
		OutletID: 3,
		TableNo:  "Table 12",
		UserID:   42,
		Items: []models.OrderItemRequest{
			{ProductID: 7, Quantity: 3, Subitems: []models.SubitemRequest{
				{SubitemID: 2, Quantity: 1},
				{SubitemID: 31, Quantity: 1},
			}},
			{ProductID: 9, Quantity: 1, Subitems: []models.SubitemRequest{}},
		},
	}, req)
}

func TestCheckout_PlacesOrderAndRecordsIt(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	f.add(t, models.AddCartItemRequest{MenuID: 9, Quantity: 2})

	resp, err := f.svc.Checkout(ctx, "dev-1")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", resp.OrderUID)
	assert.Equal(t, 88, resp.OrderID)
	assert.Equal(t, models.ResumeReceipt, resp.Next)
	assert.True(t, resp.Resumable)

	require.Len(t, f.orders.requests, 1)
	assert.Equal(t, 3, f.orders.requests[0].OutletID)
	assert.Equal(t, 42, f.orders.requests[0].UserID)

	active, ok, err := f.store.Get(ctx, "dev-1", models.SessionKeyActiveOrder)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ORD-1", active)
	assert.Empty(t, f.carts.View("dev-1").Items)

	select {
	case sent := <-f.mailer.sent:
		assert.Equal(t, "budi@example.com", sent.to)
		assert.Equal(t, "ORD-1", sent.order.OrderUID)
		assert.Equal(t, int64(121000), sent.order.Totals.GrandTotal)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not sent")
	}
}

func TestCheckout_Preconditions(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Checkout(context.Background(), "dev-1")
	assert.True(t, errors.Is(err, models.ErrCartEmpty))

	f.tables.Drop("dev-1")
	_, err = f.svc.Checkout(context.Background(), "dev-1")
	assert.True(t, errors.Is(err, models.ErrNoTable))

	_, err = f.svc.Checkout(context.Background(), "dev-2")
	assert.True(t, errors.Is(err, models.ErrLoginRequired))

	assert.Empty(t, f.orders.requests)
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	cases := map[string]struct {
		create *models.CreateOrderResponse
		err    error
		kind   models.ErrorKind
	}{
		"rejected":       {create: &models.CreateOrderResponse{Success: false, Message: "Outlet closed"}, kind: models.KindApplication},
		"no order data":  {create: &models.CreateOrderResponse{Success: true}, kind: models.KindApplication},
		"network failed": {err: models.NewNetworkError("Network error", errors.New("timeout")), kind: models.KindNetwork},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.orders.create = tc.create
			f.orders.err = tc.err
			f.add(t, models.AddCartItemRequest{MenuID: 9})

			_, err := f.svc.Checkout(context.Background(), "dev-1")

			assert.Equal(t, tc.kind, models.AsAppError(err).Kind)
			assert.Len(t, f.carts.View("dev-1").Items, 1)
			_, ok, _ := f.store.Get(context.Background(), "dev-1", models.SessionKeyActiveOrder)
			assert.False(t, ok)
			// Submission happens once; nothing is retried.
			assert.Len(t, f.orders.requests, 1)
		})
	}
}

func TestCheckout_RejectedOrderMessage(t *testing.T) {
	f := newCheckoutFixture(t)
	f.orders.create = &models.CreateOrderResponse{Success: false, Message: "Outlet closed"}
	f.add(t, models.AddCartItemRequest{MenuID: 9})

	_, err := f.svc.Checkout(context.Background(), "dev-1")

	assert.Equal(t, "Outlet closed", models.AsAppError(err).Message)
}

func TestCheckout_RecordsOrderWhenCallerLeaves(t *testing.T) {
	f := newCheckoutFixture(t)
	f.add(t, models.AddCartItemRequest{MenuID: 9})
	ctx, cancel := context.WithCancel(context.Background())
	f.orders.hook = cancel

	resp, err := f.svc.Checkout(ctx, "dev-1")
	require.NoError(t, err)

	active, ok, _ := f.store.Get(context.Background(), "dev-1", models.SessionKeyActiveOrder)
	assert.True(t, ok)
	assert.Equal(t, resp.OrderUID, active)
}

func TestCheckout_KeepsNewTableCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.add(t, models.AddCartItemRequest{MenuID: 9})
	f.orders.hook = func() {
		ts := f.tables.Get("dev-1")
		ts.Start(models.TableContext{OutletID: "3", TableLabel: "Table 2"})
		ts.View(func(_ *models.TableContext, cart *models.CartStore, _ uint64) {
			item, _ := models.NewCartLineItem(7, "Caffe Latte", "", 30000, nil, 1)
			cart.AddOrMerge(*item)
		})
	}

	_, err := f.svc.Checkout(context.Background(), "dev-1")
	require.NoError(t, err)

	view := f.carts.View("dev-1")
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Caffe Latte", view.Items[0].ProductName)
}

func TestCheckout_OneAtATime(t *testing.T) {
	f := newCheckoutFixture(t)
	f.add(t, models.AddCartItemRequest{MenuID: 9})

	submitting := make(chan struct{})
	release := make(chan struct{})
	f.orders.hook = func() {
		close(submitting)
		<-release
	}

	first := make(chan error, 1)
	go func() {
		_, err := f.svc.Checkout(context.Background(), "dev-1")
		first <- err
	}()
	<-submitting

	_, err := f.svc.Checkout(context.Background(), "dev-1")
	assert.True(t, errors.Is(err, models.ErrCheckoutInProgress))

	close(release)
	require.NoError(t, <-first)

	f.orders.mu.Lock()
	assert.Len(t, f.orders.requests, 1)
	f.orders.mu.Unlock()

	// The guard is released once the first checkout is over.
	_, err = f.svc.Checkout(context.Background(), "dev-1")
	assert.True(t, errors.Is(err, models.ErrCartEmpty))
}

func TestCheckout_FailedSubmitAllowsRetry(t *testing.T) {
	f := newCheckoutFixture(t)
	f.orders.create = &models.CreateOrderResponse{Success: false, Message: "Outlet closed"}
	f.add(t, models.AddCartItemRequest{MenuID: 9})

	_, err := f.svc.Checkout(context.Background(), "dev-1")
	require.Error(t, err)

	f.orders.create = &models.CreateOrderResponse{Success: true, Data: &models.OrderData{ID: 89, UID: "ORD-2"}}
	resp, err := f.svc.Checkout(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "ORD-2", resp.OrderUID)
	assert.Len(t, f.orders.requests, 2)
}

func TestCheckout_KeepsItemsAddedWhileSubmitting(t *testing.T) {
	f := newCheckoutFixture(t)
	f.add(t, models.AddCartItemRequest{MenuID: 9, Quantity: 2})
	f.orders.hook = func() {
		f.add(t, models.AddCartItemRequest{
			MenuID:     7,
			Selections: []models.SelectionRequest{{Category: "Size", OptionID: 2}},
		})
		f.add(t, models.AddCartItemRequest{MenuID: 9})
	}

	_, err := f.svc.Checkout(context.Background(), "dev-1")
	require.NoError(t, err)

	require.Len(t, f.orders.requests, 1)
	require.Len(t, f.orders.requests[0].Items, 1)
	assert.Equal(t, 2, f.orders.requests[0].Items[0].Quantity)

	view := f.carts.View("dev-1")
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Nasi Goreng", view.Items[0].ProductName)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, "Caffe Latte", view.Items[1].ProductName)
	assert.Equal(t, 1, view.Items[1].Quantity)
}

// activeOrderFailingStore refuses to record the active order.
type activeOrderFailingStore struct {
	*repositories.MemorySessionStore
}

func (s activeOrderFailingStore) Set(ctx context.Context, deviceID, key, value string) error {
	if key == models.SessionKeyActiveOrder {
		return errors.New("disk full")
	}
	return s.MemorySessionStore.Set(ctx, deviceID, key, value)
}

func TestCheckout_ReportsOrderThatCannotResume(t *testing.T) {
	f := newCheckoutFixture(t)
	f.add(t, models.AddCartItemRequest{MenuID: 9})
	svc := NewCheckoutService(activeOrderFailingStore{f.store}, NewOrderService(f.orders, zap.NewNop()), f.tables, nil, zap.NewNop())

	resp, err := svc.Checkout(context.Background(), "dev-1")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", resp.OrderUID)
	assert.False(t, resp.Resumable)
	assert.Empty(t, f.carts.View("dev-1").Items)
}
