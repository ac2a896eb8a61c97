package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webway/campus-events-backend/internal/models"
	"github.com/webway/campus-events-backend/pkg/bcrypt"
	"github.com/webway/campus-events-backend/pkg/email"
	"github.com/webway/campus-events-backend/pkg/token"
)

type AuthService struct {
	users         UserStore
	tokens        *token.Service
	mailer        *email.Service
	allowedDomain string
	logger        *zap.Logger
}

func NewAuthService(users UserStore, tokens *token.Service, mailer *email.Service, allowedDomain string, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		mailer:        mailer,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	emailAddr := NormalizeEmail(req.Email)

	if s.allowedDomain != "" && !strings.HasSuffix(emailAddr, "@"+s.allowedDomain) {
		return nil, ErrEmailDomainNotAllowed
	}

	if req.Role == models.RoleStudent && (req.Year == "" || req.Branch == "") {
		return nil, ErrStudentDetailsRequired
	}

	exists, err := s.users.EmailExists(emailAddr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    emailAddr,
		Password: hashedPassword,
		Role:     req.Role,
	}
	// Year and branch only mean something for students.
	if req.Role == models.RoleStudent {
		user.Year = req.Year
		user.Branch = req.Branch
	}

	if err := s.users.Create(user); err != nil {
		// The unique index on email closes the check-then-create race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	tokenString, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	if s.mailer.Enabled() {
		go s.mailer.SendWelcomeEmail(user.Email, user.FullName)
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return &models.AuthResponse{
		Token: tokenString,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(NormalizeEmail(req.Email))
	if err != nil {
		// Unknown email and wrong password are deliberately indistinguishable.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: tokenString,
		User:  *user,
	}, nil
}

// NormalizeEmail lowercases and trims an address so the unique-email check
// is case-insensitive.
func NormalizeEmail(emailAddr string) string {
	return strings.ToLower(strings.TrimSpace(emailAddr))
}
