package models

// CartStore is the ordered list of line items of one table session. Items
// keep their insertion order and no two items share a slot key.
//
// CartStore is not safe for concurrent use; its owner serializes access.
type CartStore struct {
	items []CartLineItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddOrMerge adds item to the cart, or adds its quantity to the existing item
// with the same slot key. The merged item keeps its position. Items with a
// quantity below 1 are ignored. It returns the index of the affected slot,
// or -1 when nothing was stored.
func (s *CartStore) AddOrMerge(item CartLineItem) int {
	if item.Quantity < 1 {
		return -1
	}

	key := item.SlotKey()
	for idx := range s.items {
		if s.items[idx].SlotKey() == key {
			s.items[idx].Quantity += item.Quantity
			return idx
		}
	}

	s.items = append(s.items, item.clone())
	return len(s.items) - 1
}

// SetQuantity updates the quantity of the item at index, removing it when
// quantity is zero or less. Out of range indexes are ignored.
func (s *CartStore) SetQuantity(index, quantity int) bool {
	if !s.inBounds(index) {
		return false
	}
	if quantity <= 0 {
		return s.RemoveAt(index)
	}
	s.items[index].Quantity = quantity
	return true
}

func (s *CartStore) RemoveAt(index int) bool {
	if !s.inBounds(index) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

// Deduct takes the quantities of ordered out of the matching slots. Slots
// that drop to zero are removed; anything added after ordered was taken
// stays in the cart.
func (s *CartStore) Deduct(ordered []CartLineItem) {
	for _, item := range ordered {
		key := item.SlotKey()
		for idx := range s.items {
			if s.items[idx].SlotKey() != key {
				continue
			}
			remaining := s.items[idx].Quantity - item.Quantity
			if remaining > 0 {
				s.items[idx].Quantity = remaining
			} else {
				s.RemoveAt(idx)
			}
			break
		}
	}
}

func (s *CartStore) Clear() {
	s.items = nil
}

func (s *CartStore) Subtotal() int64 {
	var subtotal int64
	for idx := range s.items {
		subtotal += s.items[idx].LineTotal()
	}
	return subtotal
}

func (s *CartStore) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *CartStore) Len() int {
	return len(s.items)
}

// Items returns a copy of the cart contents in display order.
func (s *CartStore) Items() []CartLineItem {
	items := make([]CartLineItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.clone())
	}
	return items
}

func (s *CartStore) inBounds(index int) bool {
	return index >= 0 && index < len(s.items)
}
