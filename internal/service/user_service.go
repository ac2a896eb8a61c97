package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/pkg/bcrypt"
	"github.com/webway/campus-events-backend/pkg/email"
	"github.com/webway/campus-events-backend/pkg/utils"
)

const tempPasswordLength = 8

type UserService struct {
	users  UserStore
	mailer *email.Service
	logger *zap.Logger
}

func NewUserService(users UserStore, mailer *email.Service, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		mailer: mailer,
		logger: logger,
	}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(userID uint, req models.ChangePasswordRequest) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		return ErrIncorrectPassword
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(user.ID, hashedPassword)
}

func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Bio = req.Bio

	// Year and branch stay empty for non-student roles.
	if user.IsStudent() {
		user.Year = req.Year
		user.Branch = req.Branch
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.GetAll()
}

// ResetPassword replaces the target user's password with a random temporary
// one. The plaintext is returned (and logged) exactly once; it is not
// recoverable afterwards.
func (s *UserService) ResetPassword(targetID uint) (string, error) {
	user, err := s.GetByID(targetID)
	if err != nil {
		return "", err
	}

	tempPassword := utils.GenerateRandomString(tempPasswordLength)

	hashedPassword, err := bcrypt.HashPassword(tempPassword)
	if err != nil {
		return "", err
	}

	if err := s.users.UpdatePassword(user.ID, hashedPassword); err != nil {
		return "", err
	}

	s.logger.Info("temporary password issued",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
	)

	if s.mailer.Enabled() {
		go s.mailer.SendTemporaryPasswordEmail(user.Email, user.FullName, tempPassword)
	}

	return tempPassword, nil
}

func (s *UserService) DeleteUser(adminID, targetID uint) error {
	if adminID == targetID {
		return ErrSelfDeletion
	}

	if err := s.users.Delete(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info("user deleted",
		zap.Uint("user_id", targetID),
		zap.Uint("deleted_by", adminID),
	)
	return nil
}
