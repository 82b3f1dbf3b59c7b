package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleAdmin     Role = "admin"
)

// Application statuses. Tokens are matched case-sensitively and must stay
// exactly as stored in the applicants.application_status column.
const (
	StatusNotStarted             = "Not Started"
	StatusProfileIncomplete      = "Profile Incomplete"
	StatusPending                = "pending"
	StatusUnderReview            = "under_review"
	StatusShortlisted            = "shortlisted"
	StatusInvitedForTest         = "invited_for_test"
	StatusInvitedForInterview    = "invited_for_interview"
	StatusMedicalCheck           = "medical_check"
	StatusRecommendedForTraining = "recommended_for_training"
	StatusRejected               = "rejected"

	// StatusSubmitted is set only by the applicant-facing submit operation,
	// never through the admin status update.
	StatusSubmitted = "submitted"
)

// AllowedStatuses is the closed set an admin may move an application into.
var AllowedStatuses = []string{
	StatusNotStarted,
	StatusProfileIncomplete,
	StatusPending,
	StatusUnderReview,
	StatusShortlisted,
	StatusInvitedForTest,
	StatusInvitedForInterview,
	StatusMedicalCheck,
	StatusRecommendedForTraining,
	StatusRejected,
}

// IsAllowedStatus reports whether s is a valid admin-settable status.
func IsAllowedStatus(s string) bool {
	for _, allowed := range AllowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// IsKnownStatus reports whether s is any status an application can hold.
// This includes "submitted", which only the applicant-facing submit
// operation writes.
func IsKnownStatus(s string) bool {
	return s == StatusSubmitted || IsAllowedStatus(s)
}

// User represents a user in the domain layer
type User struct {
	ID        uint
	Email     string
	Password  string // Hashed
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Applicant represents a recruitment profile in the domain layer
type Applicant struct {
	ID                uint
	UserID            uint
	FirstName         string
	LastName          string
	OtherNames        string
	DOB               string
	Gender            string
	PhoneNumber       string
	Address           string
	City              string
	State             string
	LGA               string
	NIN               string
	ApplicationStatus string
	CreatedAt         time.Time
}

// DocumentTypes lists the accepted upload categories.
var DocumentTypes = []string{
	"Passport Photo",
	"Birth Certificate",
	"SSCE Certificate",
	"Degree Certificate",
	"State of Origin Certificate",
	"Medical Report",
	"Other",
}

// IsDocumentType reports whether t is an accepted document type.
func IsDocumentType(t string) bool {
	for _, dt := range DocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}
