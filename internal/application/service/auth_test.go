package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
	"github.com/pharmaplus/pos-api/pkg/utils"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	users := memory.NewUserRepository()

	hashed, err := bcrypt.GenerateFromPassword([]byte("cashier123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		FirstName: "Ana",
		LastName:  "Dela Cruz",
		Email:     "cashier@pharmaplus.local",
		Password:  string(hashed),
		Role:      "cashier",
	}))

	jwt := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return service.NewAuthService(users, jwt)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	pair, err := svc.Login(context.Background(), "Cashier@PharmaPlus.local ", "cashier123")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "cashier", pair.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "cashier@pharmaplus.local", "wrong")
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@pharmaplus.local", "cashier123")
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	pair, err := svc.Login(ctx, "cashier@pharmaplus.local", "cashier123")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, pair.User.ID, refreshed.User.ID)
}

func TestRefreshInvalidToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.Error(t, err)
}
