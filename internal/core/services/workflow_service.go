package services

import (
	"context"
	"errors"
	"log"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/core/domain"

	"gorm.io/gorm"
)

// Workflow errors
var (
	ErrInvalidStatus = errors.New("invalid application status")
)

// WorkflowService applies application status transitions and triggers
// the notifications bound to specific transitions
type WorkflowService struct {
	applicantRepo repositories.ApplicantRepository
	notifications *NotificationService
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(applicantRepo repositories.ApplicantRepository, notifications *NotificationService) *WorkflowService {
	return &WorkflowService{
		applicantRepo: applicantRepo,
		notifications: notifications,
	}
}

// StatusChangeResult reports the outcome of a status change.
// NotificationError is set when the status was persisted but the triggered
// email could not be delivered; the status change is not rolled back.
type StatusChangeResult struct {
	ApplicantID       uint   `json:"applicant_id"`
	PreviousStatus    string `json:"previous_status"`
	NewStatus         string `json:"new_status"`
	NotificationSent  bool   `json:"notification_sent"`
	NotificationError string `json:"notification_error,omitempty"`
}

// SetStatus validates and applies an admin-initiated status transition.
// Setting the current status again is a no-op and triggers no notification.
func (s *WorkflowService) SetStatus(ctx context.Context, applicantID uint, newStatus string) (*StatusChangeResult, error) {
	if !domain.IsAllowedStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}

	result := &StatusChangeResult{
		ApplicantID:    applicant.ID,
		PreviousStatus: applicant.ApplicationStatus,
		NewStatus:      newStatus,
	}

	if applicant.ApplicationStatus == newStatus {
		return result, nil
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicant.ID, newStatus); err != nil {
		return nil, err
	}
	applicant.ApplicationStatus = newStatus

	log.Printf("✅ Applicant %d status: %s -> %s", applicant.ID, result.PreviousStatus, newStatus)

	s.dispatchForTransition(applicant, newStatus, result)
	return result, nil
}

// SubmitApplication is the applicant-initiated transition: it marks the
// application as submitted and sends a confirmation email
func (s *WorkflowService) SubmitApplication(ctx context.Context, userID uint) (*StatusChangeResult, error) {
	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}

	result := &StatusChangeResult{
		ApplicantID:    applicant.ID,
		PreviousStatus: applicant.ApplicationStatus,
		NewStatus:      domain.StatusSubmitted,
	}

	if err := s.applicantRepo.UpdateStatus(ctx, applicant.ID, domain.StatusSubmitted); err != nil {
		return nil, err
	}
	applicant.ApplicationStatus = domain.StatusSubmitted

	log.Printf("✅ Applicant %d submitted application", applicant.ID)

	if err := s.notifications.SendSubmissionReceived(applicant); err != nil {
		log.Printf("⚠️ Submission confirmation email failed for applicant %d: %v", applicant.ID, err)
		result.NotificationError = err.Error()
	} else {
		result.NotificationSent = true
	}
	return result, nil
}

// dispatchForTransition sends the notification bound to the new status, if
// any. Delivery failure does not undo the status change.
func (s *WorkflowService) dispatchForTransition(applicant *models.Applicant, newStatus string, result *StatusChangeResult) {
	var err error
	switch newStatus {
	case domain.StatusRecommendedForTraining:
		err = s.notifications.SendTrainingRecommendation(applicant)
	case domain.StatusRejected:
		err = s.notifications.SendRejection(applicant)
	default:
		return
	}

	if err != nil {
		log.Printf("⚠️ Notification for applicant %d (%s) failed: %v", applicant.ID, newStatus, err)
		result.NotificationError = err.Error()
		return
	}
	result.NotificationSent = true
}
