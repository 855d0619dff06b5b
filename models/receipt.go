package models

import (
	"regexp"
	"strings"

	"pepe-order/utils"

	"github.com/shopspring/decimal"
)

var plainDecimal = regexp.MustCompile(`^-?\d+\.\d{1,2}$`)

type ReceiptLineItem struct {
	ProductName       string `json:"product_name"`
	SelectionsDisplay string `json:"selections_display"`
	LineTotal         int64  `json:"line_total"`
	LineTotalDisplay  string `json:"line_total_display"`
	Quantity          int    `json:"quantity"`
}

type ReceiptSummary struct {
	Subtotal             int64  `json:"subtotal"`
	ServiceCharge        int64  `json:"service_charge"`
	Tax                  int64  `json:"tax"`
	GrandTotal           int64  `json:"grand_total"`
	SubtotalDisplay      string `json:"subtotal_display"`
	ServiceChargeDisplay string `json:"service_charge_display"`
	TaxDisplay           string `json:"tax_display"`
	GrandTotalDisplay    string `json:"grand_total_display"`
}

type ReceiptView struct {
	OrderUID   string            `json:"order_uid"`
	OutletName string            `json:"outlet_name"`
	TableLabel string            `json:"table_label"`
	CreatedAt  string            `json:"created_at"`
	Items      []ReceiptLineItem `json:"items"`
	Summary    ReceiptSummary    `json:"summary"`
}

// NewReceiptView maps an order tracking response to the receipt. Every value
// comes from the server; nothing is recomputed locally.
func NewReceiptView(data *TrackOrderData) ReceiptView {
	items := make([]ReceiptLineItem, 0, len(data.OrderItem.Items))
	for _, item := range data.OrderItem.Items {
		names := make([]string, 0, len(item.Subitems))
		for _, sub := range item.Subitems {
			names = append(names, sub.Name)
		}

		items = append(items, ReceiptLineItem{
			ProductName:       item.Name,
			SelectionsDisplay: strings.Join(names, ", "),
			LineTotal:         int64(item.Total),
			LineTotalDisplay:  utils.FormatRupiah(int64(item.Total)),
			Quantity:          item.Quantity,
		})
	}

	summary := data.OrderItem.Summary
	return ReceiptView{
		OrderUID:   data.UID,
		OutletName: data.Outlet.Name,
		TableLabel: data.TableNo,
		CreatedAt:  data.CreatedAt,
		Items:      items,
		Summary: ReceiptSummary{
			Subtotal:             summaryAmount(summary.Subtotal, data.Subtotal),
			ServiceCharge:        summaryAmount(summary.ServiceCharge, data.SC),
			Tax:                  summaryAmount(summary.Tax, data.Tax),
			GrandTotal:           summaryAmount(summary.GrandTotal, data.GrandTotal),
			SubtotalDisplay:      summaryDisplay(summary.Subtotal, data.Subtotal),
			ServiceChargeDisplay: summaryDisplay(summary.ServiceCharge, data.SC),
			TaxDisplay:           summaryDisplay(summary.Tax, data.Tax),
			GrandTotalDisplay:    summaryDisplay(summary.GrandTotal, data.GrandTotal),
		},
	}
}

// The summary block is preferred; the top-level order fields fill in when the
// server leaves a summary entry blank.
func summaryAmount(display string, fallback Amount) int64 {
	display = strings.TrimSpace(display)
	if display == "" {
		return int64(fallback)
	}
	return parseDisplayAmount(display)
}

// parseDisplayAmount reads an amount sent as text. "12000.00" is a plain
// decimal, "12.000" and "Rp. 12.000" are grouped thousands.
func parseDisplayAmount(s string) int64 {
	if plainDecimal.MatchString(s) {
		if d, err := decimal.NewFromString(s); err == nil {
			return d.IntPart()
		}
	}
	return utils.ParseAmount(s)
}

func summaryDisplay(display string, fallback Amount) string {
	display = strings.TrimSpace(display)
	if strings.HasPrefix(display, "Rp") {
		return display
	}
	return utils.FormatRupiah(summaryAmount(display, fallback))
}
