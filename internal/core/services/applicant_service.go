package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/pkg/pagination"
	"nprp-recruiteasy/internal/pkg/storage"

	"gorm.io/gorm"
)

// Applicant errors
var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrEducationNotFound = errors.New("education entry not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidYearRange  = errors.New("end year cannot be before start year")
	ErrInvalidFileType   = errors.New("invalid file type: only JPG, PNG and PDF are allowed")
	ErrFileTooLarge      = errors.New("file is too large: maximum size is 5MB")
)

// MaxDocumentSize is the upload size limit in bytes
const MaxDocumentSize = 5 * 1024 * 1024

// allowedContentTypes are the accepted upload MIME types
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// ApplicantService handles applicant profile, education and document logic
type ApplicantService struct {
	applicantRepo repositories.ApplicantRepository
	educationRepo repositories.EducationRepository
	documentRepo  repositories.DocumentRepository
	files         storage.FileStore
}

// NewApplicantService creates a new applicant service
func NewApplicantService(
	applicantRepo repositories.ApplicantRepository,
	educationRepo repositories.EducationRepository,
	documentRepo repositories.DocumentRepository,
	files storage.FileStore,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		educationRepo: educationRepo,
		documentRepo:  documentRepo,
		files:         files,
	}
}

// ProfileInput represents profile create/update input
type ProfileInput struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	OtherNames  string `json:"other_names" validate:"max=100"`
	DOB         string `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,numeric,min=10,max=15"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	LGA         string `json:"lga" validate:"required,max=100"`
	NIN         string `json:"nin" validate:"required,len=11,numeric"`
}

// EducationInput represents an education entry input
type EducationInput struct {
	InstitutionName string `json:"institution_name" validate:"required,max=255"`
	Degree          string `json:"degree" validate:"required,max=255"`
	FieldOfStudy    string `json:"field_of_study" validate:"required,max=255"`
	StartYear       int    `json:"start_year" validate:"required,min=1900"`
	EndYear         *int   `json:"end_year" validate:"omitempty,min=1900"`
	Grade           string `json:"grade" validate:"max=50"`
}

// DocumentInput represents a document upload
type DocumentInput struct {
	DocumentType string `json:"document_type" validate:"required"`
	Description  string `json:"description" validate:"max=255"`
	FileName     string `json:"-"`
	ContentType  string `json:"-"`
	Size         int64  `json:"-"`
	Content      io.Reader
}

// SaveProfile creates or updates the applicant profile for a user.
// The first save creates the applicant row with status "pending".
func (s *ApplicantService) SaveProfile(ctx context.Context, userID uint, input *ProfileInput) (*models.ApplicantResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// First save: create the row with initial status
		applicant = &models.Applicant{
			UserID:            userID,
			ApplicationStatus: domain.StatusPending,
		}
		applyProfile(applicant, input)

		if err := s.applicantRepo.Create(ctx, applicant); err != nil {
			return nil, err
		}
		log.Printf("✅ Applicant profile created for user %d", userID)

		created, err := s.applicantRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return created.ToResponse(), nil
	}

	applyProfile(applicant, input)
	if err := s.applicantRepo.Update(ctx, applicant); err != nil {
		return nil, err
	}

	return applicant.ToResponse(), nil
}

func applyProfile(a *models.Applicant, in *ProfileInput) {
	a.FirstName = in.FirstName
	a.LastName = in.LastName
	a.OtherNames = in.OtherNames
	a.DOB = in.DOB
	a.Gender = in.Gender
	a.PhoneNumber = in.PhoneNumber
	a.Address = in.Address
	a.City = in.City
	a.State = in.State
	a.LGA = in.LGA
	a.NIN = in.NIN
}

// GetProfile returns the applicant profile for a user
func (s *ApplicantService) GetProfile(ctx context.Context, userID uint) (*models.ApplicantResponse, error) {
	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return applicant.ToResponse(), nil
}

// GetApplicant returns an applicant by id (admin access)
func (s *ApplicantService) GetApplicant(ctx context.Context, id uint) (*models.ApplicantResponse, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return applicant.ToResponse(), nil
}

// ListApplicants returns a paginated applicant list, optionally filtered by status
func (s *ApplicantService) ListApplicants(ctx context.Context, status string, params *pagination.Params) (*pagination.Response, error) {
	var (
		applicants []*models.Applicant
		total      int64
		err        error
	)

	if status != "" {
		// The filter accepts "submitted" too, unlike SetStatus
		if !domain.IsKnownStatus(status) {
			return nil, ErrInvalidStatus
		}
		applicants, total, err = s.applicantRepo.ListByStatus(ctx, status, params.Offset, params.Limit)
	} else {
		applicants, total, err = s.applicantRepo.List(ctx, params.Offset, params.Limit)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		responses = append(responses, a.ToResponse())
	}

	return pagination.NewResponse(responses, params, total), nil
}

// AddEducation adds an education entry to the applicant's history
func (s *ApplicantService) AddEducation(ctx context.Context, userID uint, input *EducationInput) (*models.EducationalBackground, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	currentYear := time.Now().Year()
	if input.StartYear > currentYear {
		return nil, fmt.Errorf("%w: start year is in the future", domain.ErrInvalidInput)
	}
	if input.EndYear != nil {
		if *input.EndYear > currentYear+10 {
			return nil, fmt.Errorf("%w: end year is too far in the future", domain.ErrInvalidInput)
		}
		if *input.EndYear < input.StartYear {
			return nil, ErrInvalidYearRange
		}
	}

	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.EducationalBackground{
		ApplicantID:     applicant.ID,
		InstitutionName: input.InstitutionName,
		Degree:          input.Degree,
		FieldOfStudy:    input.FieldOfStudy,
		StartYear:       input.StartYear,
		EndYear:         input.EndYear,
		Grade:           input.Grade,
	}

	if err := s.educationRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEducation returns the applicant's education history
func (s *ApplicantService) ListEducation(ctx context.Context, userID uint) ([]*models.EducationalBackground, error) {
	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.educationRepo.ListByApplicant(ctx, applicant.ID)
}

// DeleteEducation removes one of the applicant's own education entries
func (s *ApplicantService) DeleteEducation(ctx context.Context, userID, entryID uint) error {
	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.educationRepo.Delete(ctx, entryID, applicant.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEducationNotFound
		}
		return err
	}
	return nil
}

// UploadDocument stores an uploaded file and records it against the applicant
func (s *ApplicantService) UploadDocument(ctx context.Context, userID uint, input *DocumentInput) (*models.Document, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !domain.IsDocumentType(input.DocumentType) {
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, input.DocumentType)
	}
	if !allowedContentTypes[input.ContentType] {
		return nil, ErrInvalidFileType
	}
	if input.Size > MaxDocumentSize {
		return nil, ErrFileTooLarge
	}

	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.files.Save(input.FileName, input.Content)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ApplicantID:  applicant.ID,
		DocumentType: input.DocumentType,
		FilePath:     path,
		Description:  input.Description,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// Do not leave an orphan file behind
		if rmErr := s.files.Remove(path); rmErr != nil {
			log.Printf("⚠️ Failed to remove orphan upload %s: %v", path, rmErr)
		}
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns the applicant's uploaded documents
func (s *ApplicantService) ListDocuments(ctx context.Context, userID uint) ([]*models.Document, error) {
	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.documentRepo.ListByApplicant(ctx, applicant.ID)
}

// DeleteDocument removes a document row and its stored file
func (s *ApplicantService) DeleteDocument(ctx context.Context, userID, docID uint) error {
	applicant, err := s.requireApplicant(ctx, userID)
	if err != nil {
		return err
	}

	doc, err := s.documentRepo.GetByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	if doc.ApplicantID != applicant.ID {
		return ErrDocumentNotFound
	}

	if err := s.documentRepo.Delete(ctx, docID, applicant.ID); err != nil {
		return err
	}

	if err := s.files.Remove(doc.FilePath); err != nil {
		log.Printf("⚠️ Failed to remove document file %s: %v", doc.FilePath, err)
	}
	return nil
}

func (s *ApplicantService) requireApplicant(ctx context.Context, userID uint) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return applicant, nil
}
