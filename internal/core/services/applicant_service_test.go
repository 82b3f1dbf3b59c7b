package services

import (
	"context"
	"strings"
	"testing"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicantFixture() (*ApplicantService, *fakeApplicantRepo, *fakeDocumentRepo, *fakeFileStore) {
	applicantRepo := newFakeApplicantRepo()
	documentRepo := newFakeDocumentRepo()
	files := &fakeFileStore{}
	svc := NewApplicantService(applicantRepo, newFakeEducationRepo(), documentRepo, files)
	return svc, applicantRepo, documentRepo, files
}

func validProfile() *ProfileInput {
	return &ProfileInput{
		FirstName:   "Ada",
		LastName:    "Obi",
		DOB:         "1998-04-12",
		Gender:      "Female",
		PhoneNumber: "08012345678",
		Address:     "12 Marina Road",
		City:        "Ikeja",
		State:       "Lagos",
		LGA:         "Ikeja",
		NIN:         "12345678901",
	}
}

func TestSaveProfile_FirstSaveCreatesPendingApplication(t *testing.T) {
	svc, repo, _, _ := newApplicantFixture()

	profile, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, profile.ApplicationStatus)

	stored, err := repo.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.FirstName)
	assert.Equal(t, domain.StatusPending, stored.ApplicationStatus)
}

func TestSaveProfile_UpdateKeepsStatus(t *testing.T) {
	svc, repo, _, _ := newApplicantFixture()

	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	// Admin moved the application forward in the meantime
	stored, _ := repo.GetByUserID(context.Background(), 1)
	stored.ApplicationStatus = domain.StatusShortlisted

	input := validProfile()
	input.City = "Surulere"
	profile, err := svc.SaveProfile(context.Background(), 1, input)
	require.NoError(t, err)

	assert.Equal(t, "Surulere", profile.City)
	assert.Equal(t, domain.StatusShortlisted, profile.ApplicationStatus)
}

func TestSaveProfile_Validation(t *testing.T) {
	svc, _, _, _ := newApplicantFixture()

	cases := map[string]func(*ProfileInput){
		"missing first name": func(p *ProfileInput) { p.FirstName = "" },
		"bad nin length":     func(p *ProfileInput) { p.NIN = "123" },
		"nin not numeric":    func(p *ProfileInput) { p.NIN = "1234567890a" },
		"bad gender":         func(p *ProfileInput) { p.Gender = "unknown" },
		"bad dob format":     func(p *ProfileInput) { p.DOB = "12/04/1998" },
		"short phone":        func(p *ProfileInput) { p.PhoneNumber = "12345" },
	}

	for name, mutate := range cases {
		input := validProfile()
		mutate(input)
		_, err := svc.SaveProfile(context.Background(), 1, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestSaveProfile_OptionalPhoneMayBeEmpty(t *testing.T) {
	svc, _, _, _ := newApplicantFixture()

	input := validProfile()
	input.PhoneNumber = ""
	_, err := svc.SaveProfile(context.Background(), 1, input)
	assert.NoError(t, err)
}

func TestListApplicants_SubmittedApplicantsVisible(t *testing.T) {
	applicantRepo := newFakeApplicantRepo()
	svc := NewApplicantService(applicantRepo, newFakeEducationRepo(), newFakeDocumentRepo(), &fakeFileStore{})
	workflow := NewWorkflowService(applicantRepo, NewNotificationService(newFakeTemplateRepo(), applicantRepo, &fakeMailer{}))

	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)
	_, err = workflow.SubmitApplication(context.Background(), 1)
	require.NoError(t, err)

	params := &pagination.Params{Page: 1, Limit: 20}
	result, err := svc.ListApplicants(context.Background(), domain.StatusSubmitted, params)
	require.NoError(t, err)

	responses := result.Data.([]*models.ApplicantResponse)
	require.Len(t, responses, 1)
	assert.Equal(t, domain.StatusSubmitted, responses[0].ApplicationStatus)

	// Unknown tokens are still rejected
	_, err = svc.ListApplicants(context.Background(), "approved", params)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAddEducation_YearRules(t *testing.T) {
	svc, _, _, _ := newApplicantFixture()
	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	endBeforeStart := 2014
	_, err = svc.AddEducation(context.Background(), 1, &EducationInput{
		InstitutionName: "University of Lagos",
		Degree:          "BSc",
		FieldOfStudy:    "Computer Science",
		StartYear:       2016,
		EndYear:         &endBeforeStart,
	})
	assert.ErrorIs(t, err, ErrInvalidYearRange)

	_, err = svc.AddEducation(context.Background(), 1, &EducationInput{
		InstitutionName: "University of Lagos",
		Degree:          "BSc",
		FieldOfStudy:    "Computer Science",
		StartYear:       3000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	end := 2020
	entry, err := svc.AddEducation(context.Background(), 1, &EducationInput{
		InstitutionName: "University of Lagos",
		Degree:          "BSc",
		FieldOfStudy:    "Computer Science",
		StartYear:       2016,
		EndYear:         &end,
		Grade:           "Second Class Upper",
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	entries, err := svc.ListEducation(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddEducation_RequiresProfile(t *testing.T) {
	svc, _, _, _ := newApplicantFixture()

	_, err := svc.AddEducation(context.Background(), 1, &EducationInput{
		InstitutionName: "University of Lagos",
		Degree:          "BSc",
		FieldOfStudy:    "Computer Science",
		StartYear:       2016,
	})
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}

func TestUploadDocument(t *testing.T) {
	svc, _, _, files := newApplicantFixture()
	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	doc, err := svc.UploadDocument(context.Background(), 1, &DocumentInput{
		DocumentType: "Passport Photo",
		FileName:     "photo.png",
		ContentType:  "image/png",
		Size:         1024,
		Content:      strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)
	assert.NotZero(t, doc.ID)
	require.Len(t, files.saved, 1)
	assert.Equal(t, files.saved[0], doc.FilePath)
}

func TestUploadDocument_Rejections(t *testing.T) {
	svc, _, _, _ := newApplicantFixture()
	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	_, err = svc.UploadDocument(context.Background(), 1, &DocumentInput{
		DocumentType: "Passport Photo",
		FileName:     "malware.exe",
		ContentType:  "application/octet-stream",
		Size:         1024,
		Content:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = svc.UploadDocument(context.Background(), 1, &DocumentInput{
		DocumentType: "Passport Photo",
		FileName:     "huge.pdf",
		ContentType:  "application/pdf",
		Size:         MaxDocumentSize + 1,
		Content:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadDocument(context.Background(), 1, &DocumentInput{
		DocumentType: "Tax Return",
		FileName:     "doc.pdf",
		ContentType:  "application/pdf",
		Size:         1024,
		Content:      strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteDocument_RemovesRowAndFile(t *testing.T) {
	svc, _, docRepo, files := newApplicantFixture()
	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	doc, err := svc.UploadDocument(context.Background(), 1, &DocumentInput{
		DocumentType: "Medical Report",
		FileName:     "report.pdf",
		ContentType:  "application/pdf",
		Size:         2048,
		Content:      strings.NewReader("pdf bytes"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(context.Background(), 1, doc.ID))

	_, err = docRepo.GetByID(context.Background(), doc.ID)
	assert.Error(t, err)
	require.Len(t, files.removed, 1)
	assert.Equal(t, doc.FilePath, files.removed[0])
}

func TestDeleteDocument_OtherApplicantsDocument(t *testing.T) {
	svc, applicantRepo, docRepo, _ := newApplicantFixture()
	_, err := svc.SaveProfile(context.Background(), 1, validProfile())
	require.NoError(t, err)

	// A document owned by a different applicant
	other := seedApplicant(applicantRepo, domain.StatusPending)
	other.UserID = 2
	require.NoError(t, docRepo.Create(context.Background(), &models.Document{
		ApplicantID:  other.ID,
		DocumentType: "Other",
		FilePath:     "uploads/other.pdf",
	}))

	err = svc.DeleteDocument(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
