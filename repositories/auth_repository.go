package repositories

import (
	"context"
	"net/http"

	"pepe-order/models"
)

type AuthRepository struct {
	client *APIClient
}

func NewAuthRepository(client *APIClient) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Register(ctx context.Context, email, password string) (*models.APIRegisterResponse, error) {
	var resp models.APIRegisterResponse
	err := r.client.do(ctx, http.MethodPost, "/users/register/customer", "", models.RegisterRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*models.APILoginResponse, error) {
	var resp models.APILoginResponse
	err := r.client.do(ctx, http.MethodPost, "/users/login", "", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
