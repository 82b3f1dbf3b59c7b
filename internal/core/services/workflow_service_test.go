package services

import (
	"context"
	"testing"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkflowFixture() (*WorkflowService, *fakeApplicantRepo, *fakeMailer) {
	applicantRepo := newFakeApplicantRepo()
	templateRepo := newFakeTemplateRepo()
	mail := &fakeMailer{}
	notifications := NewNotificationService(templateRepo, applicantRepo, mail)
	return NewWorkflowService(applicantRepo, notifications), applicantRepo, mail
}

func seedApplicant(repo *fakeApplicantRepo, status string) *models.Applicant {
	return repo.add(&models.Applicant{
		UserID:            1,
		FirstName:         "Ada",
		LastName:          "Obi",
		ApplicationStatus: status,
		User:              &models.User{ID: 1, Email: "ada.obi@example.com"},
	})
}

func TestSetStatus_InvalidStatusRejectedBeforeWrite(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)

	_, err := svc.SetStatus(context.Background(), applicant.ID, "approved")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Nothing persisted, nothing sent
	assert.Equal(t, domain.StatusPending, applicant.ApplicationStatus)
	assert.Zero(t, repo.statusWrites)
	assert.Empty(t, mail.sent)
}

func TestSetStatus_UnknownApplicant(t *testing.T) {
	svc, _, _ := newWorkflowFixture()

	_, err := svc.SetStatus(context.Background(), 99, domain.StatusUnderReview)
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}

func TestSetStatus_SameStatusIsNoOp(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusRecommendedForTraining)

	result, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusRecommendedForTraining)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRecommendedForTraining, result.PreviousStatus)
	assert.Equal(t, domain.StatusRecommendedForTraining, result.NewStatus)
	assert.False(t, result.NotificationSent)
	assert.Zero(t, repo.statusWrites, "no write for a same-status call")
	assert.Empty(t, mail.sent, "no notification for a same-status call")
}

func TestSetStatus_SilentTransition(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)

	result, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusShortlisted)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusShortlisted, applicant.ApplicationStatus)
	assert.False(t, result.NotificationSent)
	assert.Empty(t, mail.sent)
}

func TestSetStatus_TrainingRecommendationSendsExactlyOnce(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)

	result, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusRecommendedForTraining)
	require.NoError(t, err)

	assert.True(t, result.NotificationSent)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ada.obi@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "Congratulations")
	assert.Contains(t, mail.sent[0].body, "Ada Obi")

	// Re-applying the same status sends nothing further
	result, err = svc.SetStatus(context.Background(), applicant.ID, domain.StatusRecommendedForTraining)
	require.NoError(t, err)
	assert.False(t, result.NotificationSent)
	assert.Len(t, mail.sent, 1)
}

func TestSetStatus_RejectionSendsNotification(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusUnderReview)

	result, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusRejected)
	require.NoError(t, err)

	assert.True(t, result.NotificationSent)
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].subject, "Update on Your Police Recruitment Application")
}

func TestSetStatus_PersistenceFailureSendsNothing(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)
	repo.failUpdate = true

	_, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusRejected)
	require.Error(t, err)

	assert.Equal(t, domain.StatusPending, applicant.ApplicationStatus)
	assert.Empty(t, mail.sent)
}

func TestSetStatus_DispatchFailureKeepsStatus(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)
	mail.fail = true

	result, err := svc.SetStatus(context.Background(), applicant.ID, domain.StatusRejected)
	require.NoError(t, err, "status change succeeds even when the email fails")

	assert.Equal(t, domain.StatusRejected, applicant.ApplicationStatus)
	assert.False(t, result.NotificationSent)
	assert.NotEmpty(t, result.NotificationError)
}

func TestSubmitApplication(t *testing.T) {
	svc, repo, mail := newWorkflowFixture()
	applicant := seedApplicant(repo, domain.StatusPending)

	result, err := svc.SubmitApplication(context.Background(), applicant.UserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSubmitted, applicant.ApplicationStatus)
	assert.Equal(t, domain.StatusPending, result.PreviousStatus)
	assert.True(t, result.NotificationSent)
	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0].body, "submitted")
}

func TestSubmitApplication_NoProfile(t *testing.T) {
	svc, _, _ := newWorkflowFixture()

	_, err := svc.SubmitApplication(context.Background(), 42)
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}
