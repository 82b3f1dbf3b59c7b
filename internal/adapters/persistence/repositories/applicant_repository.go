package repositories

import (
	"context"

	"nprp-recruiteasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicantRepository implements ApplicantRepository interface
type applicantRepository struct {
	db *gorm.DB
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

// Create creates a new applicant profile
func (r *applicantRepository) Create(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithContext(ctx).Create(applicant).Error
}

// GetByID gets an applicant by ID with the owning user preloaded
func (r *applicantRepository) GetByID(ctx context.Context, id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&applicant).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// GetByUserID gets an applicant by the owning user ID
func (r *applicantRepository) GetByUserID(ctx context.Context, userID uint) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&applicant).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// Update updates an applicant profile
func (r *applicantRepository) Update(ctx context.Context, applicant *models.Applicant) error {
	return r.db.WithContext(ctx).Save(applicant).Error
}

// UpdateStatus updates only the application_status column
func (r *applicantRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Applicant{}).
		Where("id = ?", id).
		Update("application_status", status).Error
}

// List lists applicants with pagination
func (r *applicantRepository) List(ctx context.Context, offset, limit int) ([]*models.Applicant, int64, error) {
	var applicants []*models.Applicant
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Applicant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&applicants).Error
	if err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}

// ListByStatus lists applicants filtered by status with pagination
func (r *applicantRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.Applicant, int64, error) {
	var applicants []*models.Applicant
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Applicant{}).Where("application_status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("application_status = ?", status).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&applicants).Error
	if err != nil {
		return nil, 0, err
	}

	return applicants, total, nil
}

// CountByStatus counts applicants with the given status
func (r *applicantRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Applicant{}).
		Where("application_status = ?", status).
		Count(&count).Error
	return count, err
}

// Count counts all applicants
func (r *applicantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Applicant{}).Count(&count).Error
	return count, err
}
