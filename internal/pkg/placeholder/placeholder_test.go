package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullContext() Context {
	return Context{
		ID:          42,
		FirstName:   "Ada",
		LastName:    "Obi",
		Email:       "ada.obi@example.com",
		PhoneNumber: "08012345678",
		Status:      "pending",
		DOB:         "1998-04-12",
		OtherNames:  "Chiamaka",
		Address:     "12 Marina Road",
		City:        "Ikeja",
		State:       "Lagos",
	}
}

func TestRender_AllApplicantPlaceholders(t *testing.T) {
	ctx := fullContext()

	out := Render("Hello {{applicant_name}}, status: {{current_status}}", ctx)
	assert.Equal(t, "Hello Ada Obi, status: Pending", out)

	assert.Equal(t, "Ada", Render("{{applicant_first_name}}", ctx))
	assert.Equal(t, "Obi", Render("{{applicant_last_name}}", ctx))
	assert.Equal(t, "ada.obi@example.com", Render("{{applicant_email}}", ctx))
	assert.Equal(t, "08012345678", Render("{{applicant_phone}}", ctx))
	assert.Equal(t, "42", Render("{{applicant_id}}", ctx))
	assert.Equal(t, "1998-04-12", Render("{{date_of_birth}}", ctx))
	assert.Equal(t, "Chiamaka", Render("{{middle_name}}", ctx))
	assert.Equal(t, "12 Marina Road", Render("{{address}}", ctx))
	assert.Equal(t, "Ikeja", Render("{{city}}", ctx))
	assert.Equal(t, "Lagos", Render("{{state}}", ctx))
}

func TestRender_AbsentOptionalFieldsFallBackToNA(t *testing.T) {
	ctx := Context{FirstName: "Ada", LastName: "Obi", Status: "pending"}

	assert.Equal(t, "N/A", Render("{{applicant_phone}}", ctx))
	assert.Equal(t, "N/A", Render("{{date_of_birth}}", ctx))
	assert.Equal(t, "N/A", Render("{{middle_name}}", ctx))
	assert.Equal(t, "N/A", Render("{{address}}", ctx))
	assert.Equal(t, "N/A", Render("{{city}}", ctx))
	assert.Equal(t, "N/A", Render("{{state}}", ctx))
}

func TestRender_EventPlaceholdersBecomeEmpty(t *testing.T) {
	ctx := fullContext()

	out := Render("Your test is on {{test_date}} at {{test_time}}, venue {{test_location}}.", ctx)
	assert.Equal(t, "Your test is on  at , venue .", out)

	out = Render("{{interview_date}}{{interview_time}}{{interview_location}}", ctx)
	assert.Equal(t, "", out)
}

func TestRender_UnrecognizedTokensLeftVerbatim(t *testing.T) {
	ctx := fullContext()

	out := Render("Hello {{nickname}}, ref {{application_ref}}", ctx)
	assert.Equal(t, "Hello {{nickname}}, ref {{application_ref}}", out)
}

func TestRender_DoesNotRescanSubstitutedValues(t *testing.T) {
	ctx := fullContext()
	// A field value containing placeholder syntax must pass through literally
	ctx.City = "{{applicant_phone}}"

	out := Render("{{city}}", ctx)
	assert.Equal(t, "{{applicant_phone}}", out)
}

func TestRender_EachOccurrenceReplaced(t *testing.T) {
	ctx := fullContext()

	out := Render("{{applicant_first_name}} {{applicant_first_name}}", ctx)
	assert.Equal(t, "Ada Ada", out)
}

func TestRender_PureForSameInputs(t *testing.T) {
	ctx := fullContext()
	tmpl := "Dear {{applicant_name}}, your status is {{current_status}} ({{applicant_id}})."

	first := Render(tmpl, ctx)
	second := Render(tmpl, ctx)
	assert.Equal(t, first, second)
}

func TestRenderTemplate(t *testing.T) {
	ctx := fullContext()

	subject, body := RenderTemplate(
		"Update for {{applicant_name}}",
		"Dear {{applicant_first_name}}, your status is {{current_status}}.",
		ctx,
	)
	assert.Equal(t, "Update for Ada Obi", subject)
	assert.Equal(t, "Dear Ada, your status is Pending.", body)
}

func TestHumanStatus(t *testing.T) {
	assert.Equal(t, "Pending", HumanStatus("pending"))
	assert.Equal(t, "Under Review", HumanStatus("under_review"))
	assert.Equal(t, "Invited For Interview", HumanStatus("invited_for_interview"))
	assert.Equal(t, "Recommended For Training", HumanStatus("recommended_for_training"))
	assert.Equal(t, "Not Started", HumanStatus("Not Started"))
	assert.Equal(t, "", HumanStatus(""))
}
