package services

import (
	"context"
	"errors"
	"log"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/config"
	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/pkg/jwt"
	"nprp-recruiteasy/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo      repositories.UserRepository
	applicantRepo repositories.ApplicantRepository
	cfg           *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	applicantRepo repositories.ApplicantRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		cfg:           cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// MeResponse represents the authenticated user with application state
type MeResponse struct {
	User              *models.UserResponse      `json:"user"`
	ApplicationStatus string                    `json:"application_status"`
	Applicant         *models.ApplicantResponse `json:"applicant,omitempty"`
}

// Register registers a new applicant account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidInput
	}

	// 1. Check if email already exists
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyUsed
	}

	// 2. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &models.User{
		Email:    input.Email,
		Password: hashedPassword,
		Role:     string(domain.RoleApplicant),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Generate access token
	token, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// Login authenticates a user
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidInput
	}

	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate access token
	token, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// Me returns the authenticated user with their application state.
// Users without an applicant row have not started their application.
func (s *AuthService) Me(ctx context.Context, userID uint) (*MeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	resp := &MeResponse{
		User:              user.ToResponse(),
		ApplicationStatus: domain.StatusNotStarted,
	}

	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, err
	}

	resp.ApplicationStatus = applicant.ApplicationStatus
	resp.Applicant = applicant.ToResponse()
	return resp, nil
}
