package handlers

import (
	"errors"
	"strconv"

	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/core/services"
	"nprp-recruiteasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles applicant-facing profile endpoints
type ProfileHandler struct {
	applicantService *services.ApplicantService
	workflowService  *services.WorkflowService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(applicantService *services.ApplicantService, workflowService *services.WorkflowService) *ProfileHandler {
	return &ProfileHandler{
		applicantService: applicantService,
		workflowService:  workflowService,
	}
}

// GetProfile returns the caller's applicant profile
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := h.applicantService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			return response.NotFound(c, "Profile not created yet")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}
	return response.Success(c, "", profile)
}

// SaveProfile creates or updates the caller's applicant profile
// @Summary Save own profile
// @Description First save creates the application with status pending
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ProfileInput true "Profile data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.applicantService.SaveProfile(c.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.UnprocessableEntity(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to save profile")
	}
	return response.Success(c, "Profile saved successfully", profile)
}

// SubmitApplication marks the caller's application as submitted
// @Summary Submit application
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/submit [post]
func (h *ProfileHandler) SubmitApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	result, err := h.workflowService.SubmitApplication(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			return response.NotFound(c, "Complete your profile before submitting")
		}
		return response.InternalServerError(c, "Failed to submit application")
	}
	return response.Success(c, "Application submitted successfully", result)
}

// ListEducation returns the caller's education history
// @Summary List education entries
// @Tags Education
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /profile/education [get]
func (h *ProfileHandler) ListEducation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	entries, err := h.applicantService.ListEducation(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			return response.NotFound(c, "Profile not created yet")
		}
		return response.InternalServerError(c, "Failed to load education history")
	}
	return response.Success(c, "", entries)
}

// AddEducation adds an education entry
// @Summary Add education entry
// @Tags Education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EducationInput true "Education entry"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile/education [post]
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	entry, err := h.applicantService.AddEducation(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Profile not created yet")
		case errors.Is(err, services.ErrInvalidYearRange):
			return response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to add education entry")
		}
	}
	return response.Created(c, "Education entry added", entry)
}

// DeleteEducation removes one of the caller's education entries
// @Summary Delete education entry
// @Tags Education
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/education/{id} [delete]
func (h *ProfileHandler) DeleteEducation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	entryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid entry ID")
	}

	if err := h.applicantService.DeleteEducation(c.Context(), userID, uint(entryID)); err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Profile not created yet")
		case errors.Is(err, services.ErrEducationNotFound):
			return response.NotFound(c, "Education entry not found")
		default:
			return response.InternalServerError(c, "Failed to delete education entry")
		}
	}
	return response.Success(c, "Education entry deleted", nil)
}

// ListDocuments returns the caller's uploaded documents
// @Summary List documents
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /profile/documents [get]
func (h *ProfileHandler) ListDocuments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	docs, err := h.applicantService.ListDocuments(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			return response.NotFound(c, "Profile not created yet")
		}
		return response.InternalServerError(c, "Failed to load documents")
	}
	return response.Success(c, "", docs)
}

// UploadDocument uploads a supporting document
// @Summary Upload document
// @Description Accepts JPG, PNG or PDF up to 5MB
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param document_type formData string true "Document type"
// @Param description formData string false "Description"
// @Param document_file formData file true "File"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile/documents [post]
func (h *ProfileHandler) UploadDocument(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("document_file")
	if err != nil {
		return response.BadRequest(c, "Document file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Unable to read uploaded file")
	}
	defer file.Close()

	input := &services.DocumentInput{
		DocumentType: c.FormValue("document_type"),
		Description:  c.FormValue("description"),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
	}

	doc, err := h.applicantService.UploadDocument(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Profile not created yet")
		case errors.Is(err, services.ErrInvalidFileType), errors.Is(err, services.ErrFileTooLarge):
			return response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to upload document")
		}
	}
	return response.Created(c, "Document uploaded", doc)
}

// DeleteDocument removes one of the caller's documents
// @Summary Delete document
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/documents/{id} [delete]
func (h *ProfileHandler) DeleteDocument(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	docID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	if err := h.applicantService.DeleteDocument(c.Context(), userID, uint(docID)); err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Profile not created yet")
		case errors.Is(err, services.ErrDocumentNotFound):
			return response.NotFound(c, "Document not found")
		default:
			return response.InternalServerError(c, "Failed to delete document")
		}
	}
	return response.Success(c, "Document deleted", nil)
}
