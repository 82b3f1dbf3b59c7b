package repositories

import (
	"context"

	"nprp-recruiteasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// educationRepository implements EducationRepository interface
type educationRepository struct {
	db *gorm.DB
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{db: db}
}

// Create creates a new education entry
func (r *educationRepository) Create(ctx context.Context, entry *models.EducationalBackground) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets an education entry by ID
func (r *educationRepository) GetByID(ctx context.Context, id uint) (*models.EducationalBackground, error) {
	var entry models.EducationalBackground
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByApplicant lists education entries for an applicant, newest end year first
func (r *educationRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]*models.EducationalBackground, error) {
	var entries []*models.EducationalBackground
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("end_year DESC").
		Find(&entries).Error
	return entries, err
}

// Delete deletes an education entry owned by the given applicant
func (r *educationRepository) Delete(ctx context.Context, id uint, applicantID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&models.EducationalBackground{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
