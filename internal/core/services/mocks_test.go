package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/core/domain"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

// fakeApplicantRepo is an in-memory ApplicantRepository
type fakeApplicantRepo struct {
	applicants map[uint]*models.Applicant
	nextID     uint

	statusWrites int
	failUpdate   bool
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{applicants: make(map[uint]*models.Applicant), nextID: 1}
}

func (r *fakeApplicantRepo) add(a *models.Applicant) *models.Applicant {
	a.ID = r.nextID
	r.nextID++
	r.applicants[a.ID] = a
	return a
}

func (r *fakeApplicantRepo) Create(_ context.Context, a *models.Applicant) error {
	r.add(a)
	return nil
}

func (r *fakeApplicantRepo) GetByID(_ context.Context, id uint) (*models.Applicant, error) {
	a, ok := r.applicants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeApplicantRepo) GetByUserID(_ context.Context, userID uint) (*models.Applicant, error) {
	for _, a := range r.applicants {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicantRepo) Update(_ context.Context, a *models.Applicant) error {
	r.applicants[a.ID] = a
	return nil
}

func (r *fakeApplicantRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	if r.failUpdate {
		return errors.New("database write failed")
	}
	a, ok := r.applicants[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.ApplicationStatus = status
	r.statusWrites++
	return nil
}

func (r *fakeApplicantRepo) List(_ context.Context, offset, limit int) ([]*models.Applicant, int64, error) {
	var out []*models.Applicant
	for _, a := range r.applicants {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicantRepo) ListByStatus(_ context.Context, status string, offset, limit int) ([]*models.Applicant, int64, error) {
	var out []*models.Applicant
	for _, a := range r.applicants {
		if a.ApplicationStatus == status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicantRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, a := range r.applicants {
		if a.ApplicationStatus == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.applicants)), nil
}

// fakeEducationRepo is an in-memory EducationRepository
type fakeEducationRepo struct {
	entries map[uint]*models.EducationalBackground
	nextID  uint
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{entries: make(map[uint]*models.EducationalBackground), nextID: 1}
}

func (r *fakeEducationRepo) Create(_ context.Context, entry *models.EducationalBackground) error {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEducationRepo) GetByID(_ context.Context, id uint) (*models.EducationalBackground, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEducationRepo) ListByApplicant(_ context.Context, applicantID uint) ([]*models.EducationalBackground, error) {
	var out []*models.EducationalBackground
	for _, e := range r.entries {
		if e.ApplicantID == applicantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEducationRepo) Delete(_ context.Context, id uint, applicantID uint) error {
	e, ok := r.entries[id]
	if !ok || e.ApplicantID != applicantID {
		return gorm.ErrRecordNotFound
	}
	delete(r.entries, id)
	return nil
}

// fakeDocumentRepo is an in-memory DocumentRepository
type fakeDocumentRepo struct {
	docs   map[uint]*models.Document
	nextID uint
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uint]*models.Document), nextID: 1}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	doc.ID = r.nextID
	r.nextID++
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id uint) (*models.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDocumentRepo) ListByApplicant(_ context.Context, applicantID uint) ([]*models.Document, error) {
	var out []*models.Document
	for _, d := range r.docs {
		if d.ApplicantID == applicantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uint, applicantID uint) error {
	d, ok := r.docs[id]
	if !ok || d.ApplicantID != applicantID {
		return gorm.ErrRecordNotFound
	}
	delete(r.docs, id)
	return nil
}

// fakeTemplateRepo is an in-memory TemplateRepository
type fakeTemplateRepo struct {
	templates map[uint]*models.EmailTemplate
	nextID    uint
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uint]*models.EmailTemplate), nextID: 1}
}

func (r *fakeTemplateRepo) Create(_ context.Context, tpl *models.EmailTemplate) error {
	for _, existing := range r.templates {
		if existing.TemplateName == tpl.TemplateName {
			return domain.ErrDuplicateTemplateName
		}
	}
	tpl.ID = r.nextID
	r.nextID++
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id uint) (*models.EmailTemplate, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tpl, nil
}

func (r *fakeTemplateRepo) GetByName(_ context.Context, name string) (*models.EmailTemplate, error) {
	for _, tpl := range r.templates {
		if tpl.TemplateName == name {
			return tpl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTemplateRepo) List(_ context.Context) ([]*models.EmailTemplate, error) {
	var out []*models.EmailTemplate
	for _, tpl := range r.templates {
		out = append(out, tpl)
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, tpl *models.EmailTemplate) error {
	for id, existing := range r.templates {
		if id != tpl.ID && existing.TemplateName == tpl.TemplateName {
			return domain.ErrDuplicateTemplateName
		}
	}
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id uint) error {
	delete(r.templates, id)
	return nil
}

// fakeFileStore records saved and removed paths in memory
type fakeFileStore struct {
	saved   []string
	removed []string
	nextID  int
}

func (s *fakeFileStore) Save(originalName string, _ io.Reader) (string, error) {
	s.nextID++
	path := fmt.Sprintf("uploads/%d-%s", s.nextID, originalName)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeFileStore) Remove(path string) error {
	s.removed = append(s.removed, path)
	return nil
}

// fakeMailer records sends and can be told to fail
type fakeMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	to      string
	subject string
	body    string
	html    bool
}

func (m *fakeMailer) Send(to, subject, body string, html bool) error {
	if m.fail {
		return errors.New("smtp connection refused")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body, html: html})
	return nil
}
