package service_test

import (
	"testing"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/microservices/http-api/middleware/auth"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRefreshTokenRepo struct {
	mock.Mock
}

func (m *MockRefreshTokenRepo) Create(refreshToken *models.RefreshToken) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepo) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepo) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepo) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "unit-test-secret-key-of-sufficient-length",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "alice").Return(&models.User{Username: "alice"}, nil)

	_, err := svc.Register("alice", "password123", "alice@example.com")

	assert.ErrorIs(t, err, service.ErrNameInUse)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)

	_, err := svc.Register("alice", "password123", "alice@example.com")

	assert.ErrorIs(t, err, service.ErrEmailInUse)
}

func TestRegisterHashesPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("alice", "password123", "alice@example.com")

	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	hashed, _ := auth.HashPassword("correct-password")
	userRepo.On("FindByUsername", "alice").Return(&models.User{ID: testUserID, Username: "alice", Password: hashed}, nil)

	_, _, _, err := svc.Login("alice", "wrong-password")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginIssuesValidatableToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	hashed, _ := auth.HashPassword("correct-password")
	userRepo.On("FindByUsername", "alice").
		Return(&models.User{ID: testUserID, Username: "alice", Role: "user", Password: hashed}, nil)
	tokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, user, err := svc.Login("alice", "correct-password")

	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, testUserID, user.ID)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateTokenGarbage(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	tokenRepo.On("FindByToken", "revoked-token").Return(&models.RefreshToken{
		ID: "tok-0", UserID: testUserID, Token: "revoked-token", Revoked: true,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	_, err := svc.RefreshAccessToken("revoked-token")

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokenRepo := new(MockRefreshTokenRepo)
	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	tokenRepo.On("FindByToken", "stale-token").Return(&models.RefreshToken{
		ID: "tok-1", UserID: testUserID, Token: "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	tokenRepo.On("Delete", "tok-1").Return(nil)

	_, err := svc.RefreshAccessToken("stale-token")

	assert.ErrorIs(t, err, service.ErrExpiredToken)
	tokenRepo.AssertCalled(t, "Delete", "tok-1")
}
