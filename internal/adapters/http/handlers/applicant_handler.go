package handlers

import (
	"errors"
	"strconv"

	"nprp-recruiteasy/internal/core/services"
	"nprp-recruiteasy/internal/pkg/pagination"
	"nprp-recruiteasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicantHandler handles admin-facing applicant endpoints
type ApplicantHandler struct {
	applicantService    *services.ApplicantService
	workflowService     *services.WorkflowService
	notificationService *services.NotificationService
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(
	applicantService *services.ApplicantService,
	workflowService *services.WorkflowService,
	notificationService *services.NotificationService,
) *ApplicantHandler {
	return &ApplicantHandler{
		applicantService:    applicantService,
		workflowService:     workflowService,
		notificationService: notificationService,
	}
}

// UpdateStatusRequest represents a status change request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SendEmailRequest represents a templated email send request body
type SendEmailRequest struct {
	TemplateID uint `json:"template_id"`
}

// List returns a paginated list of applicants
// @Summary List applicants
// @Description Paginated applicant list, optionally filtered by status
// @Tags Applicants
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param status query string false "Status filter"
// @Success 200 {object} response.Response
// @Router /admin/applicants [get]
func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("status")

	result, err := h.applicantService.ListApplicants(c.Context(), status, params)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return response.BadRequest(c, "Invalid status filter")
		}
		return response.InternalServerError(c, "Failed to list applicants")
	}
	return response.Success(c, "", result)
}

// Get returns one applicant
// @Summary Get applicant
// @Tags Applicants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applicants/{id} [get]
func (h *ApplicantHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid applicant ID")
	}

	applicant, err := h.applicantService.GetApplicant(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrApplicantNotFound) {
			return response.NotFound(c, "Applicant not found")
		}
		return response.InternalServerError(c, "Failed to load applicant")
	}
	return response.Success(c, "", applicant)
}

// UpdateStatus applies a status transition to an applicant
// @Summary Update application status
// @Description Applies one of the allowed status values and triggers bound notifications
// @Tags Applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applicants/{id}/status [put]
func (h *ApplicantHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid applicant ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.workflowService.SetStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid application status")
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Applicant not found")
		default:
			return response.InternalServerError(c, "Failed to update status")
		}
	}

	message := "Application status updated"
	if result.NotificationError != "" {
		message = "Application status updated, but the notification email failed"
	}
	return response.Success(c, message, result)
}

// SendEmail sends a stored template to an applicant
// @Summary Send templated email
// @Tags Applicants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Param body body SendEmailRequest true "Template to send"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applicants/{id}/email [post]
func (h *ApplicantHandler) SendEmail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid applicant ID")
	}

	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rendered, err := h.notificationService.SendTemplated(c.Context(), uint(id), req.TemplateID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Applicant not found")
		case errors.Is(err, services.ErrTemplateNotFound):
			return response.NotFound(c, "Email template not found")
		case errors.Is(err, services.ErrApplicantHasNoEmail):
			return response.UnprocessableEntity(c, "Applicant has no email address")
		default:
			return response.InternalServerError(c, "Failed to send email")
		}
	}
	return response.Success(c, "Email sent successfully", rendered)
}

// PreviewEmail renders a stored template against an applicant without sending
// @Summary Preview templated email
// @Tags Applicants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Applicant ID"
// @Param template_id query int true "Template ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applicants/{id}/email/preview [get]
func (h *ApplicantHandler) PreviewEmail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid applicant ID")
	}

	templateID, err := strconv.ParseUint(c.Query("template_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid template ID")
	}

	rendered, err := h.notificationService.Preview(c.Context(), uint(id), uint(templateID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicantNotFound):
			return response.NotFound(c, "Applicant not found")
		case errors.Is(err, services.ErrTemplateNotFound):
			return response.NotFound(c, "Email template not found")
		default:
			return response.InternalServerError(c, "Failed to render preview")
		}
	}
	return response.Success(c, "", rendered)
}
