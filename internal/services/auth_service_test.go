package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	setupTestConfig(s.T())
	s.db = setupTestDB(s.T())
	s.service = NewAuthService(repositories.NewUserRepository())
}

func (s *AuthServiceSuite) register(email string, role models.UserRole) *dto.LoginResponse {
	resp, err := s.service.Register(s.db, &dto.RegisterRequest{
		Name:     "Alice",
		Email:    email,
		Password: "password123",
		Role:     role,
	})
	s.Require().NoError(err)
	return resp
}

func (s *AuthServiceSuite) TestRegisterIssuesTokens() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal("alice@example.com", resp.User.Email)
	s.Equal(models.UserRoleJobseeker, resp.User.Role)
	s.True(resp.User.IsActive)
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	s.register("alice@example.com", models.UserRoleJobseeker)

	_, err := s.service.Register(s.db, &dto.RegisterRequest{
		Name:     "Alice Again",
		Email:    "Alice@Example.com", // emails are case-insensitive
		Password: "password123",
		Role:     models.UserRoleJobseeker,
	})
	s.ErrorIs(err, apperrors.ErrEmailAlreadyExists)
}

func (s *AuthServiceSuite) TestRegisterRejectsAdminRole() {
	_, err := s.service.Register(s.db, &dto.RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "password123",
		Role:     models.UserRoleAdmin,
	})
	s.ErrorIs(err, apperrors.ErrInvalidUserRole)
}

func (s *AuthServiceSuite) TestRegisterRejectsShortPassword() {
	_, err := s.service.Register(s.db, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "short",
		Role:     models.UserRoleJobseeker,
	})
	s.ErrorIs(err, apperrors.ErrWeakPassword)
}

func (s *AuthServiceSuite) TestLogin() {
	s.register("alice@example.com", models.UserRoleJobseeker)

	resp, err := s.service.Login(s.db, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.NotNil(resp.User.LastLogin)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	s.register("alice@example.com", models.UserRoleJobseeker)

	_, err := s.service.Login(s.db, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.db, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	// Unknown email and wrong password are indistinguishable to the caller.
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLoginDeactivatedAccount() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	s.Require().NoError(s.db.Model(&models.User{}).
		Where("id = ?", resp.User.ID).
		Update("is_active", false).Error)

	_, err := s.service.Login(s.db, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	s.ErrorIs(err, apperrors.ErrAccountDeactivated)
}

func (s *AuthServiceSuite) TestRefreshTokenRotates() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	refreshed, err := s.service.RefreshToken(s.db, resp.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(refreshed.AccessToken)
	s.NotEqual(resp.RefreshToken, refreshed.RefreshToken)

	// The consumed token is gone.
	_, err = s.service.RefreshToken(s.db, resp.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *AuthServiceSuite) TestRefreshTokenExpired() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	s.Require().NoError(s.db.Model(&models.RefreshToken{}).
		Where("token = ?", resp.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err := s.service.RefreshToken(s.db, resp.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *AuthServiceSuite) TestLogoutRevokesToken() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	s.Require().NoError(s.service.Logout(s.db, resp.RefreshToken))

	_, err := s.service.RefreshToken(s.db, resp.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (s *AuthServiceSuite) TestChangePassword() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	err := s.service.ChangePassword(s.db, resp.User.ID, "password123", "newpassword456")
	s.Require().NoError(err)

	// Old refresh tokens are revoked.
	_, err = s.service.RefreshToken(s.db, resp.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidToken)

	// New password works, old one does not.
	_, err = s.service.Login(s.db, &dto.LoginRequest{Email: "alice@example.com", Password: "password123"})
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = s.service.Login(s.db, &dto.LoginRequest{Email: "alice@example.com", Password: "newpassword456"})
	s.NoError(err)
}

func (s *AuthServiceSuite) TestChangePasswordWrongCurrent() {
	resp := s.register("alice@example.com", models.UserRoleJobseeker)

	err := s.service.ChangePassword(s.db, resp.User.ID, "wrong", "newpassword456")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}
