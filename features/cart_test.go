package features

import (
	"context"
	"fmt"
	"testing"

	"pepe-order/models"
	"pepe-order/utils"

	"github.com/cucumber/godog"
)

type cartTestContext struct {
	cart    *models.CartStore
	nextID  int
	totals  models.OrderTotals
	display string
	session models.PersistedSession
}

func (c *cartTestContext) reset() {
	c.cart = models.NewCartStore()
	c.nextID = 1
	c.totals = models.OrderTotals{}
	c.display = ""
	c.session = models.PersistedSession{}
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart.Clear()
	return nil
}

func (c *cartTestContext) add(quantity int, name string, price int64, selections []models.SubitemChoice) error {
	item, err := models.NewCartLineItem(c.nextID, name, "", price, selections, quantity)
	if err != nil {
		return err
	}
	c.cart.AddOrMerge(*item)
	return nil
}

func (c *cartTestContext) iAddPlain(quantity int, name string, price int) error {
	return c.add(quantity, name, int64(price), nil)
}

func (c *cartTestContext) iAddWithOption(quantity int, name string, price int, category, option string, delta int) error {
	id := 1
	if delta > 0 {
		id = 2
	}
	return c.add(quantity, name, int64(price), []models.SubitemChoice{
		{CategoryTitle: category, OptionName: option, OptionID: id, PriceDelta: int64(delta)},
	})
}

func (c *cartTestContext) iSetTheQuantityOfItemTo(index, quantity int) error {
	c.cart.SetQuantity(index, quantity)
	return nil
}

func (c *cartTestContext) iRemoveItem(index int) error {
	c.cart.RemoveAt(index)
	return nil
}

func (c *cartTestContext) theCartHasItems(n int) error {
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d items, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) itemHasQuantity(index, quantity int) error {
	items := c.cart.Items()
	if index >= len(items) {
		return fmt.Errorf("no item at %d", index)
	}
	if items[index].Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, items[index].Quantity)
	}
	return nil
}

func (c *cartTestContext) theCartSubtotalIs(subtotal int) error {
	if got := c.cart.Subtotal(); got != int64(subtotal) {
		return fmt.Errorf("expected subtotal %d, got %d", subtotal, got)
	}
	return nil
}

func (c *cartTestContext) iComputeTotalsFor(subtotal int) error {
	c.totals = models.ComputeTotals(int64(subtotal))
	return nil
}

func expectAmount(field string, got int64, want int) error {
	if got != int64(want) {
		return fmt.Errorf("expected %s %d, got %d", field, want, got)
	}
	return nil
}

func (c *cartTestContext) theServiceChargeIs(want int) error {
	return expectAmount("service charge", c.totals.ServiceCharge, want)
}

func (c *cartTestContext) theTaxIs(want int) error {
	return expectAmount("tax", c.totals.Tax, want)
}

func (c *cartTestContext) theGrandTotalIs(want int) error {
	return expectAmount("grand total", c.totals.GrandTotal, want)
}

func (c *cartTestContext) iFormatForDisplay(amount int) error {
	c.display = utils.FormatRupiah(int64(amount))
	return nil
}

func (c *cartTestContext) theDisplayReads(want string) error {
	if c.display != want {
		return fmt.Errorf("expected %q, got %q", want, c.display)
	}
	return nil
}

func (c *cartTestContext) parsingItBackGives(amount int) error {
	return expectAmount("parsed amount", utils.ParseAmount(c.display), amount)
}

func (c *cartTestContext) aPersistedSessionWithoutAToken() error {
	c.session = models.PersistedSession{}
	return nil
}

func (c *cartTestContext) theSessionStoresToken(token string) error {
	c.session.AuthToken = token
	return nil
}

func (c *cartTestContext) theSessionStoresActiveOrder(uid string) error {
	c.session.ActiveOrderID = uid
	return nil
}

func (c *cartTestContext) theActiveOrderIsCleared() error {
	c.session.ActiveOrderID = ""
	return nil
}

func (c *cartTestContext) theDeviceResumesAt(kind string) error {
	return c.theDeviceResumesAtForOrder(kind, "")
}

func (c *cartTestContext) theDeviceResumesAtForOrder(kind, orderID string) error {
	target := models.ResolveResumeTarget(c.session)
	if string(target.Kind) != kind {
		return fmt.Errorf("expected resume target %s, got %s", kind, target.Kind)
	}
	if target.OrderID != orderID {
		return fmt.Errorf("expected order %q, got %q", orderID, target.OrderID)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a persisted session without a token$`, tc.aPersistedSessionWithoutAToken)

	// When steps
	ctx.Step(`^I add (\d+) "([^"]*)" at (\d+)$`, tc.iAddPlain)
	ctx.Step(`^I add (\d+) "([^"]*)" at (\d+) with "([^"]*)" "([^"]*)" priced (-?\d+)$`, tc.iAddWithOption)
	ctx.Step(`^I set the quantity of item (-?\d+) to (-?\d+)$`, tc.iSetTheQuantityOfItemTo)
	ctx.Step(`^I remove item (-?\d+)$`, tc.iRemoveItem)
	ctx.Step(`^I compute totals for a subtotal of (\d+)$`, tc.iComputeTotalsFor)
	ctx.Step(`^I format (\d+) for display$`, tc.iFormatForDisplay)
	ctx.Step(`^the session stores token "([^"]*)"$`, tc.theSessionStoresToken)
	ctx.Step(`^the session stores active order "([^"]*)"$`, tc.theSessionStoresActiveOrder)
	ctx.Step(`^the active order is cleared$`, tc.theActiveOrderIsCleared)

	// Then steps
	ctx.Step(`^the cart has (\d+) items?$`, tc.theCartHasItems)
	ctx.Step(`^item (\d+) has quantity (\d+)$`, tc.itemHasQuantity)
	ctx.Step(`^the cart subtotal is (\d+)$`, tc.theCartSubtotalIs)
	ctx.Step(`^the service charge is (\d+)$`, tc.theServiceChargeIs)
	ctx.Step(`^the tax is (\d+)$`, tc.theTaxIs)
	ctx.Step(`^the grand total is (\d+)$`, tc.theGrandTotalIs)
	ctx.Step(`^the display reads "([^"]*)"$`, tc.theDisplayReads)
	ctx.Step(`^parsing it back gives (\d+)$`, tc.parsingItBackGives)
	ctx.Step(`^the device resumes at "([^"]*)"$`, tc.theDeviceResumesAt)
	ctx.Step(`^the device resumes at "([^"]*)" for order "([^"]*)"$`, tc.theDeviceResumesAtForOrder)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
