package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'applicant'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Applicant Tables
// ============================================================

// Applicant represents applicants table
type Applicant struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName         string    `gorm:"size:100;not null" json:"first_name"`
	LastName          string    `gorm:"size:100;not null" json:"last_name"`
	OtherNames        string    `gorm:"size:100" json:"other_names"`
	DOB               string    `gorm:"column:dob;size:20;not null" json:"dob"`
	Gender            string    `gorm:"size:10;not null" json:"gender"`
	PhoneNumber       string    `gorm:"size:20" json:"phone_number"`
	Address           string    `gorm:"size:255;not null" json:"address"`
	City              string    `gorm:"size:100;not null" json:"city"`
	State             string    `gorm:"size:100;not null" json:"state"`
	LGA               string    `gorm:"column:lga;size:100;not null" json:"lga"`
	NIN               string    `gorm:"column:nin;size:11;not null" json:"nin"`
	ApplicationStatus string    `gorm:"size:50;not null;default:'pending'" json:"application_status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	User      *User                   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Education []EducationalBackground `gorm:"foreignKey:ApplicantID" json:"education,omitempty"`
	Documents []Document              `gorm:"foreignKey:ApplicantID" json:"documents,omitempty"`
}

func (Applicant) TableName() string {
	return "applicants"
}

// ApplicantResponse DTO
type ApplicantResponse struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"user_id"`
	Email             string    `json:"email,omitempty"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	OtherNames        string    `json:"other_names,omitempty"`
	DOB               string    `json:"dob"`
	Gender            string    `json:"gender"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	LGA               string    `json:"lga"`
	NIN               string    `json:"nin"`
	ApplicationStatus string    `json:"application_status"`
	CreatedAt         time.Time `json:"created_at"`
}

func (a *Applicant) ToResponse() *ApplicantResponse {
	resp := &ApplicantResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		OtherNames:        a.OtherNames,
		DOB:               a.DOB,
		Gender:            a.Gender,
		PhoneNumber:       a.PhoneNumber,
		Address:           a.Address,
		City:              a.City,
		State:             a.State,
		LGA:               a.LGA,
		NIN:               a.NIN,
		ApplicationStatus: a.ApplicationStatus,
		CreatedAt:         a.CreatedAt,
	}

	if a.User != nil {
		resp.Email = a.User.Email
	}

	return resp
}

// EducationalBackground represents educational_backgrounds table
type EducationalBackground struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ApplicantID     uint      `gorm:"not null;index" json:"applicant_id"`
	InstitutionName string    `gorm:"size:150;not null" json:"institution_name"`
	Degree          string    `gorm:"size:100;not null" json:"degree"`
	FieldOfStudy    string    `gorm:"size:100;not null" json:"field_of_study"`
	StartYear       int       `gorm:"not null" json:"start_year"`
	EndYear         *int      `json:"end_year"`
	Grade           string    `gorm:"size:50" json:"grade"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Applicant *Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
}

func (EducationalBackground) TableName() string {
	return "educational_backgrounds"
}

// Document represents documents table
type Document struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ApplicantID  uint      `gorm:"not null;index" json:"applicant_id"`
	DocumentType string    `gorm:"size:50;not null" json:"document_type"`
	FilePath     string    `gorm:"size:255;not null" json:"file_path"`
	Description  string    `gorm:"size:255" json:"description,omitempty"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relations
	Applicant *Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

// ============================================================
// Email Template Table
// ============================================================

// EmailTemplate represents email_templates table
type EmailTemplate struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TemplateName string    `gorm:"uniqueIndex;size:100;not null" json:"template_name"`
	Subject      string    `gorm:"size:255;not null" json:"subject"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmailTemplate) TableName() string {
	return "email_templates"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Applicant{},
		&EducationalBackground{},
		&Document{},
		&EmailTemplate{},
	)
}
