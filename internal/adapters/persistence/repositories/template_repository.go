package repositories

import (
	"context"
	"errors"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/core/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// templateRepository implements TemplateRepository interface
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new email template repository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// Create creates a new email template.
// A unique-constraint violation on template_name is surfaced as
// domain.ErrDuplicateTemplateName so callers can distinguish it from other
// persistence failures.
func (r *templateRepository) Create(ctx context.Context, tpl *models.EmailTemplate) error {
	if err := r.db.WithContext(ctx).Create(tpl).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// GetByID gets a template by ID
func (r *templateRepository) GetByID(ctx context.Context, id uint) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetByName gets a template by its unique name
func (r *templateRepository) GetByName(ctx context.Context, name string) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	err := r.db.WithContext(ctx).Where("template_name = ?", name).First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// List lists all templates ordered by name
func (r *templateRepository) List(ctx context.Context) ([]*models.EmailTemplate, error) {
	var templates []*models.EmailTemplate
	err := r.db.WithContext(ctx).Order("template_name ASC").Find(&templates).Error
	return templates, err
}

// Update updates a template
func (r *templateRepository) Update(ctx context.Context, tpl *models.EmailTemplate) error {
	if err := r.db.WithContext(ctx).Save(tpl).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// Delete deletes a template. Deleting an id that does not exist is a no-op.
func (r *templateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EmailTemplate{}, id).Error
}

// translateDuplicate maps MySQL error 1062 (duplicate entry) to the domain error.
func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return domain.ErrDuplicateTemplateName
	}
	return err
}
