package services

import (
	"context"
	"testing"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/config"
	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeApplicantRepo) {
	userRepo := newFakeUserRepo()
	applicantRepo := newFakeApplicantRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 15},
	}
	return NewAuthService(userRepo, applicantRepo, cfg), userRepo, applicantRepo
}

func TestRegister(t *testing.T) {
	svc, _, _ := newAuthFixture()

	result, err := svc.Register(context.Background(), &RegisterInput{
		Email:           "ada.obi@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada.obi@example.com", result.User.Email)
	assert.Equal(t, "applicant", result.User.Role)

	claims, err := jwt.ValidateAccessToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "applicant", claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	input := &RegisterInput{
		Email:           "ada.obi@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:           "ada.obi@example.com",
		Password:        "password123",
		ConfirmPassword: "different456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:           "ada.obi@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ada.obi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "ada.obi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe_StatusDerivation(t *testing.T) {
	svc, userRepo, applicantRepo := newAuthFixture()

	user := &models.User{Email: "ada.obi@example.com", Password: "x", Role: "applicant"}
	require.NoError(t, userRepo.Create(context.Background(), user))

	// No applicant row yet
	me, err := svc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, me.ApplicationStatus)
	assert.Nil(t, me.Applicant)

	// After first profile save
	applicantRepo.add(&models.Applicant{
		UserID:            user.ID,
		FirstName:         "Ada",
		LastName:          "Obi",
		ApplicationStatus: domain.StatusPending,
	})

	me, err = svc.Me(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, me.ApplicationStatus)
	require.NotNil(t, me.Applicant)
	assert.Equal(t, "Ada", me.Applicant.FirstName)
}

func TestMe_UnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Me(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
