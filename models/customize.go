package models

// BuildLineItem turns a product and the customer's picks into a cart line
// item. Every customization category of the product needs exactly one pick.
func BuildLineItem(p Product, picks []SelectionRequest, quantity int) (*CartLineItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if !p.IsSelling {
		return nil, NewValidationError("%s is not available right now", p.Name)
	}
	if !p.Available(quantity) {
		return nil, NewValidationError("Insufficient stock for %s", p.Name)
	}

	groups := GroupSubitems(p.Subitems)
	picked := make(map[string]SelectionRequest, len(picks))
	for _, pick := range picks {
		if _, dup := picked[pick.Category]; dup {
			return nil, NewValidationError("Only one option can be chosen for %s", pick.Category)
		}
		picked[pick.Category] = pick
	}

	selections := make([]SubitemChoice, 0, len(groups))
	for _, group := range groups {
		pick, ok := picked[group.Title]
		if !ok {
			return nil, NewValidationError("Please choose an option for %s", group.Title)
		}
		delete(picked, group.Title)

		option, ok := findOption(group, pick.OptionID)
		if !ok {
			return nil, NewValidationError("Unknown option for %s", group.Title)
		}
		if !option.IsSelling {
			return nil, NewValidationError("%s is not available right now", option.Name)
		}
		selections = append(selections, SubitemChoice{
			CategoryTitle: group.Title,
			OptionName:    option.Name,
			OptionID:      option.ID,
			PriceDelta:    option.PriceDelta(),
		})
	}
	for _, pick := range picks {
		if _, extra := picked[pick.Category]; extra {
			return nil, NewValidationError("%s has no option category %s", p.Name, pick.Category)
		}
	}

	return NewCartLineItem(p.MenuID, p.Name, p.Desc, int64(p.Price), selections, quantity)
}

func findOption(group CustomizationCategory, optionID int) (Subitem, bool) {
	for _, opt := range group.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return Subitem{}, false
}
