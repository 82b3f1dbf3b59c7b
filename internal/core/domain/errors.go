package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Applicant errors
var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrProfileIncomplete = errors.New("applicant profile is incomplete")
	ErrInvalidStatus     = errors.New("invalid application status")
)

// Template errors
var (
	ErrTemplateNotFound      = errors.New("email template not found")
	ErrDuplicateTemplateName = errors.New("template name already exists")
)
