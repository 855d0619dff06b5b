package models

// Product is a sellable menu entry of an outlet as returned by the outlet
// menu endpoint.
type Product struct {
	ID         int       `json:"id"`
	MenuID     int       `json:"m_id"`
	OutletID   int       `json:"o_id"`
	Price      Amount    `json:"price"`
	Stock      *int      `json:"stock"`
	IsSelling  bool      `json:"is_selling"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	Desc       string    `json:"desc"`
	Category   string    `json:"category"`
	PictureURL *string   `json:"picture_url"`
	Subitems   []Subitem `json:"subitems"`
}

// Subitem is one customization option; Category names the group it belongs to.
type Subitem struct {
	ID        int     `json:"id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Desc      string  `json:"desc"`
	Category  string  `json:"category"`
	URL       *string `json:"url"`
	Price     *Amount `json:"price"`
	Stock     *int    `json:"stock"`
	IsSelling bool    `json:"is_selling"`
}

func (s Subitem) PriceDelta() int64 {
	if s.Price == nil {
		return 0
	}
	return int64(*s.Price)
}

// Available reports whether quantity units can be ordered. A missing stock
// means the outlet does not track it.
func (p Product) Available(quantity int) bool {
	if !p.IsSelling {
		return false
	}
	return p.Stock == nil || *p.Stock >= quantity
}
