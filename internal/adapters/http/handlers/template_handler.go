package handlers

import (
	"errors"
	"strconv"

	"nprp-recruiteasy/internal/core/domain"
	"nprp-recruiteasy/internal/core/services"
	"nprp-recruiteasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TemplateHandler handles admin email template endpoints
type TemplateHandler struct {
	templateService *services.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List returns all email templates
// @Summary List email templates
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.templateService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list templates")
	}
	return response.Success(c, "", templates)
}

// Get returns one email template
// @Summary Get email template
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/templates/{id} [get]
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid template ID")
	}

	tpl, err := h.templateService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return response.NotFound(c, "Email template not found")
		}
		return response.InternalServerError(c, "Failed to load template")
	}
	return response.Success(c, "", tpl)
}

// Create creates a new email template
// @Summary Create email template
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.TemplateInput true "Template data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tpl, err := h.templateService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateTemplateName):
			return response.Conflict(c, "Template name already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, "Template name, subject and body are required")
		default:
			return response.InternalServerError(c, "Failed to create template")
		}
	}
	return response.Created(c, "Email template created", tpl)
}

// Update updates an existing email template
// @Summary Update email template
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Param body body services.TemplateInput true "Template data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid template ID")
	}

	var input services.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tpl, err := h.templateService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			return response.NotFound(c, "Email template not found")
		case errors.Is(err, services.ErrDuplicateTemplateName):
			return response.Conflict(c, "Template name already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.UnprocessableEntity(c, "Template name, subject and body are required")
		default:
			return response.InternalServerError(c, "Failed to update template")
		}
	}
	return response.Success(c, "Email template updated", tpl)
}

// Delete removes an email template
// @Summary Delete email template
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} response.Response
// @Router /admin/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid template ID")
	}

	if err := h.templateService.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete template")
	}
	return response.Success(c, "Email template deleted", nil)
}
