package repositories

import (
	"context"

	"nprp-recruiteasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create creates a new document row
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// GetByID gets a document by ID
func (r *documentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByApplicant lists documents for an applicant
func (r *documentRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]*models.Document, error) {
	var docs []*models.Document
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	return docs, err
}

// Delete deletes a document owned by the given applicant
func (r *documentRepository) Delete(ctx context.Context, id uint, applicantID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
