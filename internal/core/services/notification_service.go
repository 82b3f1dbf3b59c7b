package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/pkg/mailer"
	"nprp-recruiteasy/internal/pkg/placeholder"

	"gorm.io/gorm"
)

// Notification errors
var (
	ErrApplicantHasNoEmail = errors.New("applicant has no email address")
)

// NotificationService renders templates and dispatches notification emails
type NotificationService struct {
	templateRepo  repositories.TemplateRepository
	applicantRepo repositories.ApplicantRepository
	mail          mailer.Mailer
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	templateRepo repositories.TemplateRepository,
	applicantRepo repositories.ApplicantRepository,
	mail mailer.Mailer,
) *NotificationService {
	return &NotificationService{
		templateRepo:  templateRepo,
		applicantRepo: applicantRepo,
		mail:          mail,
	}
}

// RenderedEmail is a rendered subject/body pair
type RenderedEmail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Preview renders a stored template against an applicant without sending.
// The output is identical to what SendTemplated would deliver.
func (s *NotificationService) Preview(ctx context.Context, applicantID, templateID uint) (*RenderedEmail, error) {
	applicant, tpl, err := s.load(ctx, applicantID, templateID)
	if err != nil {
		return nil, err
	}

	pctx := placeholderContext(applicant)
	subject, body := placeholder.RenderTemplate(tpl.Subject, tpl.Body, pctx)

	return &RenderedEmail{
		To:      applicantEmail(applicant),
		Subject: subject,
		Body:    body,
	}, nil
}

// SendTemplated renders a stored template against an applicant and emails it
func (s *NotificationService) SendTemplated(ctx context.Context, applicantID, templateID uint) (*RenderedEmail, error) {
	rendered, err := s.Preview(ctx, applicantID, templateID)
	if err != nil {
		return nil, err
	}
	if rendered.To == "" {
		return nil, ErrApplicantHasNoEmail
	}

	if err := s.mail.Send(rendered.To, rendered.Subject, rendered.Body, true); err != nil {
		return nil, err
	}

	log.Printf("📧 Templated email sent to %s (template %d)", rendered.To, templateID)
	return rendered, nil
}

// SendTrainingRecommendation emails the applicant that they have been
// recommended for training
func (s *NotificationService) SendTrainingRecommendation(applicant *models.Applicant) error {
	name := applicant.FirstName + " " + applicant.LastName
	subject := "Congratulations! Your Police Recruitment Application Status Update"
	body := "<p>Dear " + name + ",</p>" +
		"<p>We are pleased to inform you that your application for the Police Recruitment exercise has been <strong>Recommended for Training</strong>!</p>" +
		"<p>Further instructions regarding your next steps will be communicated shortly.</p>" +
		"<p>Sincerely,</p><p>The Police Recruitment Portal Team</p>"

	return s.sendTo(applicant, subject, body)
}

// SendRejection emails the applicant that their application was rejected
func (s *NotificationService) SendRejection(applicant *models.Applicant) error {
	name := applicant.FirstName + " " + applicant.LastName
	subject := "Update on Your Police Recruitment Application"
	body := "<p>Dear " + name + ",</p>" +
		"<p>We regret to inform you that your application for the Police Recruitment exercise has been <strong>REJECTED</strong> at this time.</p>" +
		"<p>We understand this news may be disappointing. We receive a high volume of applications, and not all candidates can be selected.</p>" +
		"<p>We wish you the best in your future endeavors.</p>" +
		"<p>Sincerely,</p><p>The Police Recruitment Portal Team</p>"

	return s.sendTo(applicant, subject, body)
}

// SendSubmissionReceived confirms to the applicant that their application
// was submitted
func (s *NotificationService) SendSubmissionReceived(applicant *models.Applicant) error {
	name := applicant.FirstName + " " + applicant.LastName
	subject := "Your Police Recruitment Application Has Been Received"
	body := "<p>Dear " + name + ",</p>" +
		"<p>Your application has been submitted and is currently pending review.</p>" +
		"<p>You will be notified when your application status changes.</p>" +
		"<p>Sincerely,</p><p>The Police Recruitment Portal Team</p>"

	return s.sendTo(applicant, subject, body)
}

func (s *NotificationService) sendTo(applicant *models.Applicant, subject, body string) error {
	to := applicantEmail(applicant)
	if to == "" {
		return ErrApplicantHasNoEmail
	}
	if err := s.mail.Send(to, subject, body, true); err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}
	log.Printf("📧 Notification sent to %s: %s", to, subject)
	return nil
}

func (s *NotificationService) load(ctx context.Context, applicantID, templateID uint) (*models.Applicant, *models.EmailTemplate, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrApplicantNotFound
		}
		return nil, nil, err
	}

	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTemplateNotFound
		}
		return nil, nil, err
	}
	return applicant, tpl, nil
}

// applicantEmail returns the account email for an applicant, empty when the
// user relation was not loaded
func applicantEmail(a *models.Applicant) string {
	if a.User == nil {
		return ""
	}
	return a.User.Email
}

// placeholderContext builds the rendering snapshot from an applicant row
func placeholderContext(a *models.Applicant) placeholder.Context {
	return placeholder.Context{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       applicantEmail(a),
		PhoneNumber: a.PhoneNumber,
		Status:      a.ApplicationStatus,
		DOB:         a.DOB,
		OtherNames:  a.OtherNames,
		Address:     a.Address,
		City:        a.City,
		State:       a.State,
	}
}
