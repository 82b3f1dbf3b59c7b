package services

import (
	"context"
	"time"

	"nprp-recruiteasy/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService handles admin dashboard statistics
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents admin dashboard data
type DashboardData struct {
	// Totals
	TotalApplicants int64 `json:"total_applicants"`
	TotalUsers      int64 `json:"total_users"`
	TotalDocuments  int64 `json:"total_documents"`
	TotalTemplates  int64 `json:"total_templates"`

	// Per-status counts
	StatusCounts map[string]int64 `json:"status_counts"`

	// Monthly Statistics
	ApplicantsThisMonth int64 `json:"applicants_this_month"`

	// Recent Activity
	RecentApplicants []ApplicantSummary `json:"recent_applicants"`
}

// ApplicantSummary represents a dashboard applicant row
type ApplicantSummary struct {
	ID                uint      `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	State             string    `json:"state"`
	ApplicationStatus string    `json:"application_status"`
	CreatedAt         time.Time `json:"created_at"`
}

// statusCountRow is one row of the grouped per-status count query
type statusCountRow struct {
	ApplicationStatus string
	Count             int64
}

// buildStatusCounts maps grouped count rows onto the full status set, so
// statuses with no applicants still show up as zero.
func buildStatusCounts(rows []statusCountRow) map[string]int64 {
	counts := make(map[string]int64, len(domain.AllowedStatuses)+1)
	for _, status := range domain.AllowedStatuses {
		counts[status] = 0
	}
	counts[domain.StatusSubmitted] = 0
	for _, row := range rows {
		counts[row.ApplicationStatus] = row.Count
	}
	return counts
}

// GetDashboard returns admin dashboard data
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	s.db.WithContext(ctx).Table("applicants").Count(&data.TotalApplicants)
	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("documents").Count(&data.TotalDocuments)
	s.db.WithContext(ctx).Table("email_templates").Count(&data.TotalTemplates)

	// Per-status breakdown. Grouping covers every stored status, including
	// "submitted" which is not admin-settable.
	var statusRows []statusCountRow
	s.db.WithContext(ctx).Table("applicants").
		Select("application_status, COUNT(id) AS count").
		Group("application_status").
		Scan(&statusRows)
	data.StatusCounts = buildStatusCounts(statusRows)

	// This month
	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("applicants").Where("created_at >= ?", startOfMonth).Count(&data.ApplicantsThisMonth)

	// Recent applicants
	err := s.db.WithContext(ctx).Table("applicants").
		Select("id, first_name, last_name, state, application_status, created_at").
		Order("created_at DESC").
		Limit(10).
		Scan(&data.RecentApplicants).Error
	if err != nil {
		return nil, err
	}

	return data, nil
}
