package models

import (
	"sort"
	"strconv"
	"strings"
)

// SubitemChoice is the option picked within one customization category,
// e.g. "Size: Small (-5.000)".
type SubitemChoice struct {
	CategoryTitle string `json:"category_title"`
	OptionName    string `json:"option_name"`
	OptionID      int    `json:"option_id"`
	PriceDelta    int64  `json:"price_delta"`
}

// CartLineItem is one product configuration in the cart. Selections hold at
// most one choice per category, in the order the categories were presented.
type CartLineItem struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	BasePrice   int64           `json:"base_price"`
	Selections  []SubitemChoice `json:"selections"`
	Quantity    int             `json:"quantity"`
	ProductID   int             `json:"product_id"`
	SubitemIDs  []int           `json:"subitem_ids"`
}

// SlotKey identifies the cart slot a line item belongs to. Items with equal
// keys are merged by the cart store.
type SlotKey string

func NewCartLineItem(productID int, name, description string, basePrice int64, selections []SubitemChoice, quantity int) (*CartLineItem, error) {
	seen := make(map[string]bool, len(selections))
	subitemIDs := make([]int, 0, len(selections))
	for _, s := range selections {
		if seen[s.CategoryTitle] {
			return nil, NewValidationError("Only one option can be chosen for %s", s.CategoryTitle)
		}
		seen[s.CategoryTitle] = true
		subitemIDs = append(subitemIDs, s.OptionID)
	}

	if quantity < 1 {
		return nil, NewValidationError("Quantity must be at least 1")
	}

	return &CartLineItem{
		ProductName: name,
		Description: description,
		BasePrice:   basePrice,
		Selections:  append([]SubitemChoice(nil), selections...),
		Quantity:    quantity,
		ProductID:   productID,
		SubitemIDs:  subitemIDs,
	}, nil
}

// Selection returns the choice made for a category.
func (i *CartLineItem) Selection(categoryTitle string) (SubitemChoice, bool) {
	for _, s := range i.Selections {
		if s.CategoryTitle == categoryTitle {
			return s, true
		}
	}
	return SubitemChoice{}, false
}

// UnitPrice is the base price plus every selected option's delta. It is not
// clamped at zero.
func (i *CartLineItem) UnitPrice() int64 {
	price := i.BasePrice
	for _, s := range i.Selections {
		price += s.PriceDelta
	}
	return price
}

func (i *CartLineItem) LineTotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
}

func (i *CartLineItem) DisplaySelections() string {
	names := make([]string, 0, len(i.Selections))
	for _, s := range i.Selections {
		names = append(names, s.OptionName)
	}
	return strings.Join(names, ", ")
}

// SlotKey combines product name, base price and the unordered set of
// (category, option id) pairs. Quantity is not part of the key.
func (i *CartLineItem) SlotKey() SlotKey {
	pairs := make([]string, 0, len(i.Selections))
	for _, s := range i.Selections {
		pairs = append(pairs, strconv.Quote(s.CategoryTitle)+"="+strconv.Itoa(s.OptionID))
	}
	sort.Strings(pairs)

	var b strings.Builder
	b.WriteString(strconv.Quote(i.ProductName))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(i.BasePrice, 10))
	b.WriteByte('|')
	b.WriteString(strings.Join(pairs, ","))
	return SlotKey(b.String())
}

func (i CartLineItem) clone() CartLineItem {
	i.Selections = append([]SubitemChoice(nil), i.Selections...)
	i.SubitemIDs = append([]int(nil), i.SubitemIDs...)
	return i
}
