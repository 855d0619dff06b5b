package models

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Wire shapes of the ordering API's user endpoints.

type APIRegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  *User  `json:"result"`
}

type APILoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}
