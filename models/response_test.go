package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartView(t *testing.T) {
	item, err := NewCartLineItem(7, "Caffe Latte", "", 30000, []SubitemChoice{
		{CategoryTitle: "Size", OptionName: "Large", OptionID: 2, PriceDelta: 5000},
	}, 2)
	require.NoError(t, err)

	view := NewCartView(&TableContext{OutletName: "Pepe Senopati", TableLabel: "Table 4"}, []CartLineItem{*item})

	assert.Equal(t, "Pepe Senopati", view.OutletName)
	assert.Equal(t, "Table 4", view.TableLabel)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 0, view.Items[0].Index)
	assert.Equal(t, int64(35000), view.Items[0].UnitPrice)
	assert.Equal(t, "Rp. 70.000", view.Items[0].LineTotalDisplay)
	assert.Equal(t, ComputeTotals(70000), view.Totals)
	assert.Equal(t, "Rp. 84.700", view.Display.GrandTotal)
}

func TestNewCartView_EmptyWithoutTable(t *testing.T) {
	view := NewCartView(nil, nil)

	assert.Empty(t, view.Items)
	assert.NotNil(t, view.Items)
	assert.Equal(t, OrderTotals{}, view.Totals)
	assert.Equal(t, "Rp. 0", view.Display.Subtotal)
}

func TestNewMenuView(t *testing.T) {
	view := NewMenuView(TableContext{OutletName: "Pepe", TableLabel: "Table 1"}, []MenuCategory{
		{Category: "Coffee", Menus: []Product{latteProduct()}},
	})

	require.Len(t, view.Categories, 1)
	p := view.Categories[0].Products[0]
	assert.Equal(t, "Rp. 30.000", p.PriceDisplay)
	assert.True(t, p.Available)
	assert.Len(t, p.Customizations, 2)
}
