package repositories

import (
	"context"

	"nprp-recruiteasy/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

// ApplicantRepository defines applicant repository interface
type ApplicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) error
	GetByID(ctx context.Context, id uint) (*models.Applicant, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Applicant, error)
	Update(ctx context.Context, applicant *models.Applicant) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	List(ctx context.Context, offset, limit int) ([]*models.Applicant, int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.Applicant, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// EducationRepository defines education repository interface
type EducationRepository interface {
	Create(ctx context.Context, entry *models.EducationalBackground) error
	GetByID(ctx context.Context, id uint) (*models.EducationalBackground, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]*models.EducationalBackground, error)
	Delete(ctx context.Context, id uint, applicantID uint) error
}

// DocumentRepository defines document repository interface
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]*models.Document, error)
	Delete(ctx context.Context, id uint, applicantID uint) error
}

// TemplateRepository defines email template repository interface
type TemplateRepository interface {
	Create(ctx context.Context, tpl *models.EmailTemplate) error
	GetByID(ctx context.Context, id uint) (*models.EmailTemplate, error)
	GetByName(ctx context.Context, name string) (*models.EmailTemplate, error)
	List(ctx context.Context) ([]*models.EmailTemplate, error)
	Update(ctx context.Context, tpl *models.EmailTemplate) error
	Delete(ctx context.Context, id uint) error
}
