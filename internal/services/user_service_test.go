package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service UserService
	user    *models.User
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	setupTestConfig(s.T())
	s.db = setupTestDB(s.T())
	s.service = NewUserService(repositories.NewUserRepository())
	s.user = createTestUser(s.T(), s.db, models.UserRoleJobseeker, "user@example.com")
}

func (s *UserServiceSuite) TestUpdateProfilePartial() {
	bio := "Ten years of backend work."
	skills := []string{"go", "postgres"}
	updated, err := s.service.UpdateProfile(s.db, s.user.ID, &dto.UpdateProfileRequest{
		Bio:    &bio,
		Skills: &skills,
	})
	s.Require().NoError(err)

	s.Equal(bio, updated.Profile.Bio)
	s.JSONEq(`["go","postgres"]`, string(updated.Profile.Skills))
	s.Equal(s.user.Name, updated.Name)
}

func (s *UserServiceSuite) TestSetResume() {
	updated, err := s.service.SetResume(s.db, s.user.ID, "/files/resumes/x.pdf")
	s.Require().NoError(err)
	s.Equal("/files/resumes/x.pdf", updated.Profile.Resume)
}

func (s *UserServiceSuite) TestListUsersFilter() {
	createTestUser(s.T(), s.db, models.UserRoleEmployer, "boss@example.com")

	users, total, err := s.service.ListUsers(s.db, dto.ListUsersRequest{
		Role:     "employer",
		Page:     1,
		PageSize: 10,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("boss@example.com", users[0].Email)
}

func (s *UserServiceSuite) TestSetActiveAdminOnly() {
	err := s.service.SetActive(s.db, auth.Caller{UserID: s.user.ID, Role: s.user.Role}, s.user.ID, false)
	s.ErrorIs(err, apperrors.ErrInsufficientPermissions)

	admin := createTestUser(s.T(), s.db, models.UserRoleAdmin, "admin@example.com")
	err = s.service.SetActive(s.db, auth.Caller{UserID: admin.ID, Role: admin.Role}, s.user.ID, false)
	s.Require().NoError(err)

	var stored models.User
	s.Require().NoError(s.db.First(&stored, "id = ?", s.user.ID).Error)
	s.False(stored.IsActive)
}

func (s *UserServiceSuite) TestAdminCannotDeactivateSelf() {
	admin := createTestUser(s.T(), s.db, models.UserRoleAdmin, "admin@example.com")

	err := s.service.SetActive(s.db, auth.Caller{UserID: admin.ID, Role: admin.Role}, admin.ID, false)
	s.Error(err)
}

func (s *UserServiceSuite) TestDeleteUserSelfOrAdmin() {
	other := createTestUser(s.T(), s.db, models.UserRoleJobseeker, "other@example.com")

	// A user cannot delete someone else's account.
	err := s.service.DeleteUser(s.db, auth.Caller{UserID: s.user.ID, Role: s.user.Role}, other.ID)
	s.ErrorIs(err, apperrors.ErrInsufficientPermissions)

	// Deleting yourself works.
	err = s.service.DeleteUser(s.db, auth.Caller{UserID: other.ID, Role: other.Role}, other.ID)
	s.Require().NoError(err)

	var count int64
	s.db.Model(&models.User{}).Where("id = ?", other.ID).Count(&count)
	s.Zero(count)
}
