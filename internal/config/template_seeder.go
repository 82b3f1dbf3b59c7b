package config

import (
	"log"

	"nprp-recruiteasy/internal/adapters/persistence/models"
)

// seedEmailTemplates seeds starter notification templates so admins have
// working examples of the placeholder syntax. Existing templates are never
// overwritten.
func (s *Seeder) seedEmailTemplates() error {
	templates := []models.EmailTemplate{
		{
			TemplateName: "Test Invitation",
			Subject:      "Invitation to Recruitment Aptitude Test",
			Body: "<p>Dear {{applicant_name}},</p>" +
				"<p>Your application (ID: {{applicant_id}}) has progressed and you are invited to sit the recruitment aptitude test.</p>" +
				"<p>Date: {{test_date}}<br>Time: {{test_time}}<br>Venue: {{test_location}}</p>" +
				"<p>Please come along with a valid means of identification.</p>" +
				"<p>Sincerely,<br>The Police Recruitment Portal Team</p>",
		},
		{
			TemplateName: "Interview Invitation",
			Subject:      "Invitation to Recruitment Interview",
			Body: "<p>Dear {{applicant_name}},</p>" +
				"<p>Following your performance so far, you are invited for an interview.</p>" +
				"<p>Date: {{interview_date}}<br>Time: {{interview_time}}<br>Venue: {{interview_location}}</p>" +
				"<p>Your current application status is {{current_status}}.</p>" +
				"<p>Sincerely,<br>The Police Recruitment Portal Team</p>",
		},
		{
			TemplateName: "Status Update",
			Subject:      "Update on Your Police Recruitment Application",
			Body: "<p>Dear {{applicant_first_name}},</p>" +
				"<p>The status of your application is now {{current_status}}.</p>" +
				"<p>Log in to the portal for more details.</p>" +
				"<p>Sincerely,<br>The Police Recruitment Portal Team</p>",
		},
	}

	for _, tmpl := range templates {
		var count int64
		s.db.Model(&models.EmailTemplate{}).Where("template_name = ?", tmpl.TemplateName).Count(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Create(&tmpl).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Email templates seeded")
	return nil
}
