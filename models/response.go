package models

import "pepe-order/utils"

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CartView is the cart screen: items in display order plus running totals.
// The totals are an estimate; the receipt carries the amounts the outlet
// charges.
type CartView struct {
	OutletName string         `json:"outlet_name"`
	TableLabel string         `json:"table_label"`
	Items      []CartItemView `json:"items"`
	Totals     OrderTotals    `json:"totals"`
	Display    TotalsDisplay  `json:"display"`
}

type CartItemView struct {
	Index             int             `json:"index"`
	ProductID         int             `json:"product_id"`
	ProductName       string          `json:"product_name"`
	Description       string          `json:"description"`
	Selections        []SubitemChoice `json:"selections"`
	SelectionsDisplay string          `json:"selections_display"`
	Quantity          int             `json:"quantity"`
	UnitPrice         int64           `json:"unit_price"`
	LineTotal         int64           `json:"line_total"`
	LineTotalDisplay  string          `json:"line_total_display"`
}

type TotalsDisplay struct {
	Subtotal      string `json:"subtotal"`
	ServiceCharge string `json:"service_charge"`
	Tax           string `json:"tax"`
	GrandTotal    string `json:"grand_total"`
}

// CheckoutResponse reports the placed order. Resumable is false when the
// order could not be recorded on the device session, so a restart would not
// bring the receipt back.
type CheckoutResponse struct {
	OrderUID  string     `json:"order_uid"`
	OrderID   int        `json:"order_id"`
	Next      ResumeKind `json:"next"`
	Resumable bool       `json:"resumable"`
}

// NewCartView renders the cart of a table. table may be nil before a scan.
func NewCartView(table *TableContext, items []CartLineItem) CartView {
	view := CartView{Items: make([]CartItemView, 0, len(items))}
	if table != nil {
		view.OutletName = table.OutletName
		view.TableLabel = table.TableLabel
	}

	var subtotal int64
	for i, item := range items {
		subtotal += item.LineTotal()
		view.Items = append(view.Items, CartItemView{
			Index:             i,
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			Description:       item.Description,
			Selections:        item.Selections,
			SelectionsDisplay: item.DisplaySelections(),
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice(),
			LineTotal:         item.LineTotal(),
			LineTotalDisplay:  utils.FormatRupiah(item.LineTotal()),
		})
	}

	view.Totals = ComputeTotals(subtotal)
	view.Display = TotalsDisplay{
		Subtotal:      utils.FormatRupiah(view.Totals.Subtotal),
		ServiceCharge: utils.FormatRupiah(view.Totals.ServiceCharge),
		Tax:           utils.FormatRupiah(view.Totals.Tax),
		GrandTotal:    utils.FormatRupiah(view.Totals.GrandTotal),
	}
	return view
}

type MenuView struct {
	OutletName string             `json:"outlet_name"`
	TableLabel string             `json:"table_label"`
	Categories []MenuCategoryView `json:"categories"`
}

type MenuCategoryView struct {
	Category string            `json:"category"`
	Products []MenuProductView `json:"products"`
}

type MenuProductView struct {
	MenuID         int                     `json:"menu_id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Price          int64                   `json:"price"`
	PriceDisplay   string                  `json:"price_display"`
	Available      bool                    `json:"available"`
	PictureURL     *string                 `json:"picture_url,omitempty"`
	Customizations []CustomizationCategory `json:"customizations"`
}

func NewMenuView(table TableContext, categories []MenuCategory) MenuView {
	view := MenuView{
		OutletName: table.OutletName,
		TableLabel: table.TableLabel,
		Categories: make([]MenuCategoryView, 0, len(categories)),
	}
	for _, cat := range categories {
		cv := MenuCategoryView{Category: cat.Category, Products: make([]MenuProductView, 0, len(cat.Menus))}
		for _, p := range cat.Menus {
			cv.Products = append(cv.Products, MenuProductView{
				MenuID:         p.MenuID,
				Name:           p.Name,
				Description:    p.Desc,
				Price:          int64(p.Price),
				PriceDisplay:   utils.FormatRupiah(int64(p.Price)),
				Available:      p.Available(1),
				PictureURL:     p.PictureURL,
				Customizations: GroupSubitems(p.Subitems),
			})
		}
		view.Categories = append(view.Categories, cv)
	}
	return view
}
