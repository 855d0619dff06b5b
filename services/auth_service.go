package services

import (
	"context"
	"strconv"

	"pepe-order/models"
	"pepe-order/repositories"
	"pepe-order/utils"

	"go.uber.org/zap"
)

type AuthGateway interface {
	Register(ctx context.Context, email, password string) (*models.APIRegisterResponse, error)
	Login(ctx context.Context, email, password string) (*models.APILoginResponse, error)
}

type AuthService struct {
	auth   AuthGateway
	store  repositories.SessionStore
	tables *TableRegistry
	logger *zap.Logger
}

func NewAuthService(auth AuthGateway, store repositories.SessionStore, tables *TableRegistry, logger *zap.Logger) *AuthService {
	return &AuthService{auth: auth, store: store, tables: tables, logger: logger}
}

// Register creates the customer account and logs the device in with it.
func (s *AuthService) Register(ctx context.Context, deviceID string, req models.RegisterRequest) (*models.LoginResponse, error) {
	resp, err := s.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, models.NewApplicationError(messageOr(resp.Message, "Registration failed"), nil)
	}

	return s.Login(ctx, deviceID, models.LoginRequest{Email: req.Email, Password: req.Password})
}

func (s *AuthService) Login(ctx context.Context, deviceID string, req models.LoginRequest) (*models.LoginResponse, error) {
	resp, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		return nil, models.NewApplicationError(messageOr(resp.Message, "Login failed"), nil)
	}

	user := models.User{Email: req.Email}
	if resp.User != nil {
		user = *resp.User
		if user.Email == "" {
			user.Email = req.Email
		}
	}

	userID, err := utils.UserIDFromToken(resp.Token)
	if err != nil {
		s.logger.Warn("user id missing from token", zap.String("device_id", deviceID), zap.Error(err))
		userID = user.ID
	}
	user.ID = userID

	values := map[string]string{
		models.SessionKeyToken:     resp.Token,
		models.SessionKeyUserID:    strconv.Itoa(userID),
		models.SessionKeyUserEmail: user.Email,
	}
	for key, value := range values {
		if err := s.store.Set(ctx, deviceID, key, value); err != nil {
			return nil, storeError(err)
		}
	}

	s.logger.Info("device logged in", zap.String("device_id", deviceID), zap.Int("user_id", userID))
	return &models.LoginResponse{Token: resp.Token, User: user}, nil
}

// Logout forgets the persisted session and the table session of the device.
func (s *AuthService) Logout(ctx context.Context, deviceID string) error {
	s.tables.Drop(deviceID)
	if err := s.store.Clear(ctx, deviceID); err != nil {
		return storeError(err)
	}
	return nil
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

func storeError(err error) error {
	return models.NewNetworkError("Session storage unavailable, please try again", err)
}
