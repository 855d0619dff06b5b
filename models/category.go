package models

import "strings"

type OutletMenusResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []MenuCategory `json:"data"`
}

type MenuCategory struct {
	Category string    `json:"category"`
	Menus    []Product `json:"menus"`
}

// CustomizationCategory groups the options a customer picks exactly one of.
type CustomizationCategory struct {
	Title   string    `json:"title"`
	Options []Subitem `json:"options"`
}

// GroupSubitems groups a product's subitems by category, keeping the order
// in which each category first appears.
func GroupSubitems(subitems []Subitem) []CustomizationCategory {
	groups := []CustomizationCategory{}
	index := map[string]int{}
	for _, sub := range subitems {
		idx, ok := index[sub.Category]
		if !ok {
			idx = len(groups)
			index[sub.Category] = idx
			groups = append(groups, CustomizationCategory{Title: sub.Category})
		}
		groups[idx].Options = append(groups[idx].Options, sub)
	}
	return groups
}

// FindProduct looks a product up by its menu id.
func FindProduct(categories []MenuCategory, menuID int) (*Product, bool) {
	for _, cat := range categories {
		for i := range cat.Menus {
			if cat.Menus[i].MenuID == menuID {
				p := cat.Menus[i]
				return &p, true
			}
		}
	}
	return nil, false
}

// FilterMenu keeps the products whose name, description or category contains
// keyword, case-insensitively. Categories left empty are dropped.
func FilterMenu(categories []MenuCategory, keyword string) []MenuCategory {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return categories
	}

	filtered := []MenuCategory{}
	for _, cat := range categories {
		matched := []Product{}
		for _, p := range cat.Menus {
			if strings.Contains(strings.ToLower(p.Name), keyword) ||
				strings.Contains(strings.ToLower(p.Desc), keyword) ||
				strings.Contains(strings.ToLower(cat.Category), keyword) {
				matched = append(matched, p)
			}
		}
		if len(matched) > 0 {
			filtered = append(filtered, MenuCategory{Category: cat.Category, Menus: matched})
		}
	}
	return filtered
}
