package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	SetResume(db *gorm.DB, userID, url string) (*models.User, error)
	SetProfilePicture(db *gorm.DB, userID, url string) (*models.User, error)

	ListUsers(db *gorm.DB, req dto.ListUsersRequest) ([]models.User, int64, error)
	SetActive(db *gorm.DB, caller auth.Caller, userID string, active bool) error
	DeleteUser(db *gorm.DB, caller auth.Caller, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(db, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Profile.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Profile.Location = *req.Location
	}
	if req.Bio != nil {
		user.Profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Profile.Skills = toJSONList(*req.Skills)
	}
	if req.Experience != nil {
		user.Profile.Experience = models.ExperienceLevel(*req.Experience)
	}
	if req.Education != nil {
		user.Profile.Education = *req.Education
	}
	if req.Website != nil {
		user.Profile.Website = *req.Website
	}
	if req.Company != nil {
		user.Profile.Company = *req.Company
	}
	if req.CompanySize != nil {
		user.Profile.CompanySize = *req.CompanySize
	}
	if req.Industry != nil {
		user.Profile.Industry = *req.Industry
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) SetResume(db *gorm.DB, userID, url string) (*models.User, error) {
	user, err := s.GetByID(db, userID)
	if err != nil {
		return nil, err
	}
	user.Profile.Resume = url
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) SetProfilePicture(db *gorm.DB, userID, url string) (*models.User, error) {
	user, err := s.GetByID(db, userID)
	if err != nil {
		return nil, err
	}
	user.Profile.ProfilePicture = url
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, req dto.ListUsersRequest) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:     models.UserRole(req.Role),
		IsActive: req.IsActive,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}

func (s *UserServiceImpl) SetActive(db *gorm.DB, caller auth.Caller, userID string, active bool) error {
	if !caller.IsAdmin() {
		return apperrors.ErrInsufficientPermissions
	}
	// An admin cannot deactivate their own account.
	if caller.UserID == userID && !active {
		return apperrors.ErrInvalidOperation("user", "You cannot deactivate your own account")
	}
	if err := s.userRepo.SetActive(db, userID, active); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, caller auth.Caller, userID string) error {
	if !auth.CanManageUser(caller, userID) {
		return apperrors.ErrInsufficientPermissions
	}
	if caller.IsAdmin() && caller.UserID == userID {
		return apperrors.ErrInvalidOperation("user", "You cannot delete your own admin account")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.DeleteUserRefreshTokens(tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
