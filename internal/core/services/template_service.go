package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/core/domain"

	"gorm.io/gorm"
)

// Template errors
var (
	ErrTemplateNotFound      = errors.New("email template not found")
	ErrDuplicateTemplateName = errors.New("template name already exists")
)

// TemplateService handles email template management
type TemplateService struct {
	templateRepo repositories.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repositories.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// TemplateInput represents template create/update input
type TemplateInput struct {
	TemplateName string `json:"template_name" validate:"required,max=100"`
	Subject      string `json:"subject" validate:"required,max=255"`
	Body         string `json:"body" validate:"required"`
}

// Create creates a new email template
func (s *TemplateService) Create(ctx context.Context, input *TemplateInput) (*models.EmailTemplate, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	tpl := &models.EmailTemplate{
		TemplateName: input.TemplateName,
		Subject:      input.Subject,
		Body:         input.Body,
	}

	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		if errors.Is(err, domain.ErrDuplicateTemplateName) {
			return nil, ErrDuplicateTemplateName
		}
		return nil, err
	}

	log.Printf("✅ Email template created: %s", tpl.TemplateName)
	return tpl, nil
}

// Update updates an existing email template
func (s *TemplateService) Update(ctx context.Context, id uint, input *TemplateInput) (*models.EmailTemplate, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	tpl.TemplateName = input.TemplateName
	tpl.Subject = input.Subject
	tpl.Body = input.Body

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		if errors.Is(err, domain.ErrDuplicateTemplateName) {
			return nil, ErrDuplicateTemplateName
		}
		return nil, err
	}
	return tpl, nil
}

// Get returns a template by id
func (s *TemplateService) Get(ctx context.Context, id uint) (*models.EmailTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

// List returns all templates ordered by name
func (s *TemplateService) List(ctx context.Context) ([]*models.EmailTemplate, error) {
	return s.templateRepo.List(ctx)
}

// Delete removes a template. Deleting a missing id is a no-op.
func (s *TemplateService) Delete(ctx context.Context, id uint) error {
	return s.templateRepo.Delete(ctx, id)
}
