package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ScanTableRequest struct {
	Payload string `json:"payload" form:"payload" binding:"required"`
}

// SelectionRequest picks one option of a customization category. The
// category is part of the pick because option ids are only unique within a
// category.
type SelectionRequest struct {
	Category string `json:"category" binding:"required"`
	OptionID int    `json:"option_id" binding:"required"`
}

type AddCartItemRequest struct {
	MenuID     int                `json:"menu_id" binding:"required"`
	Selections []SelectionRequest `json:"selections" binding:"dive"`
	Quantity   int                `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}
