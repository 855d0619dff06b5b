package services

import (
	"context"
	"errors"
	"testing"

	"pepe-order/models"
	"pepe-order/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func apiToken(t *testing.T, userID int) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": userID}).
		SignedString([]byte("api-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemorySessionStore()
	token := apiToken(t, 42)
	auth := &fakeAuth{login: &models.APILoginResponse{
		Success: true,
		Token:   token,
		User:    &models.User{ID: 1, Email: "budi@example.com"},
	}}
	svc := NewAuthService(auth, store, NewTableRegistry(), zap.NewNop())

	resp, err := svc.Login(ctx, "dev-1", models.LoginRequest{Email: "budi@example.com", Password: "secret"})
	require.NoError(t, err)

	// The token's claim wins over the user body.
	assert.Equal(t, 42, resp.User.ID)

	values, err := store.All(ctx, "dev-1")
	require.NoError(t, err)
	session := models.SessionFromValues(values)
	assert.Equal(t, token, session.AuthToken)
	assert.Equal(t, 42, session.UserID)
	assert.Equal(t, "budi@example.com", session.UserEmail)
	assert.Empty(t, session.ActiveOrderID)
}

func TestAuthService_LoginFallsBackToUserID(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemorySessionStore()
	auth := &fakeAuth{login: &models.APILoginResponse{
		Success: true,
		Token:   "not-a-jwt",
		User:    &models.User{ID: 7},
	}}
	svc := NewAuthService(auth, store, NewTableRegistry(), zap.NewNop())

	resp, err := svc.Login(ctx, "dev-1", models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.User.ID)
	assert.Equal(t, "a@b.c", resp.User.Email)
}

func TestAuthService_LoginRejected(t *testing.T) {
	store := repositories.NewMemorySessionStore()
	auth := &fakeAuth{login: &models.APILoginResponse{Success: false, Message: "Invalid credentials"}}
	svc := NewAuthService(auth, store, NewTableRegistry(), zap.NewNop())

	_, err := svc.Login(context.Background(), "dev-1", models.LoginRequest{})

	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.KindApplication, appErr.Kind)
	assert.Equal(t, "Invalid credentials", appErr.Message)

	values, _ := store.All(context.Background(), "dev-1")
	assert.Empty(t, values)
}

func TestAuthService_RegisterLogsIn(t *testing.T) {
	store := repositories.NewMemorySessionStore()
	auth := &fakeAuth{
		register: &models.APIRegisterResponse{Success: true},
		login:    &models.APILoginResponse{Success: true, Token: apiToken(t, 5)},
	}
	svc := NewAuthService(auth, store, NewTableRegistry(), zap.NewNop())

	resp, err := svc.Register(context.Background(), "dev-1", models.RegisterRequest{Email: "new@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.User.ID)

	_, ok, _ := store.Get(context.Background(), "dev-1", models.SessionKeyToken)
	assert.True(t, ok)
}

func TestAuthService_RegisterFailureUsesFallbackMessage(t *testing.T) {
	svc := NewAuthService(&fakeAuth{register: &models.APIRegisterResponse{}}, repositories.NewMemorySessionStore(), NewTableRegistry(), zap.NewNop())

	_, err := svc.Register(context.Background(), "dev-1", models.RegisterRequest{})

	assert.Equal(t, "Registration failed", models.AsAppError(err).Message)
}

func TestAuthService_NetworkErrorPassesThrough(t *testing.T) {
	netErr := models.NewNetworkError("Network error", errors.New("dial tcp: timeout"))
	svc := NewAuthService(&fakeAuth{err: netErr}, repositories.NewMemorySessionStore(), NewTableRegistry(), zap.NewNop())

	_, err := svc.Login(context.Background(), "dev-1", models.LoginRequest{})

	assert.True(t, models.AsAppError(err).Retryable())
}

func TestAuthService_LogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemorySessionStore()
	tables := NewTableRegistry()
	require.NoError(t, store.Set(ctx, "dev-1", models.SessionKeyToken, "jwt"))
	require.NoError(t, store.Set(ctx, "dev-1", models.SessionKeyActiveOrder, "ORD-1"))
	tables.Get("dev-1").Start(models.TableContext{OutletID: "3"})

	svc := NewAuthService(&fakeAuth{}, store, tables, zap.NewNop())
	require.NoError(t, svc.Logout(ctx, "dev-1"))

	values, _ := store.All(ctx, "dev-1")
	assert.Empty(t, values)
	tables.Get("dev-1").View(func(table *models.TableContext, _ *models.CartStore, _ uint64) {
		assert.Nil(t, table)
	})
}
