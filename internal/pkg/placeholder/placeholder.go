// Package placeholder renders email templates against an applicant snapshot.
//
// Substitution is literal, single-pass string replacement: recognized
// {{name}} tokens are replaced with applicant-derived values, event tokens
// with no bound data source become empty strings, and anything else is left
// verbatim. The same renderer backs both sending and preview.
package placeholder

import (
	"strconv"
	"strings"
	"unicode"
)

// Context is the applicant snapshot a template is rendered against.
type Context struct {
	ID          uint
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Status      string
	DOB         string
	OtherNames  string
	Address     string
	City        string
	State       string
}

// eventTokens are recognized but have no bound data source in this system;
// they substitute to the empty string.
var eventTokens = []string{
	"{{test_date}}",
	"{{test_time}}",
	"{{test_location}}",
	"{{interview_date}}",
	"{{interview_time}}",
	"{{interview_location}}",
}

// Render replaces every recognized placeholder in text with its value from ctx.
// Absent optional fields fall back to "N/A". Unrecognized tokens are left
// untouched.
func Render(text string, ctx Context) string {
	pairs := []string{
		"{{applicant_name}}", strings.TrimSpace(ctx.FirstName + " " + ctx.LastName),
		"{{applicant_first_name}}", ctx.FirstName,
		"{{applicant_last_name}}", ctx.LastName,
		"{{applicant_email}}", ctx.Email,
		"{{applicant_phone}}", orNA(ctx.PhoneNumber),
		"{{applicant_id}}", strconv.FormatUint(uint64(ctx.ID), 10),
		"{{current_status}}", HumanStatus(ctx.Status),
		"{{date_of_birth}}", orNA(ctx.DOB),
		"{{middle_name}}", orNA(ctx.OtherNames),
		"{{address}}", orNA(ctx.Address),
		"{{city}}", orNA(ctx.City),
		"{{state}}", orNA(ctx.State),
	}
	for _, token := range eventTokens {
		pairs = append(pairs, token, "")
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// RenderTemplate renders a subject/body pair against the same snapshot.
func RenderTemplate(subject, body string, ctx Context) (string, string) {
	return Render(subject, ctx), Render(body, ctx)
}

// HumanStatus formats a status token for display: underscores become spaces
// and each word is capitalized, e.g. "under_review" -> "Under Review".
func HumanStatus(status string) string {
	words := strings.Fields(strings.ReplaceAll(status, "_", " "))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
