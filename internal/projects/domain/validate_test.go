package domain

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectpulse/project-api/internal/apperr"
)

func strPtr(s string) *string { return &s }

func validInput() CreateProjectInput {
	return CreateProjectInput{
		ClientName: "Acme Corp",
		Name:       "Website Redesign",
		Status:     "active",
		StartDate:  "2026-01-15",
	}
}

func assertValidationError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, apperr.TitleValidation, appErr.Title)
	assert.Equal(t, message, appErr.Message)
}

func TestValidateCreate_Valid(t *testing.T) {
	in := validInput()
	in.Description = strPtr("  full redesign of the marketing site  ")
	in.EndDate = strPtr("2026-06-30")

	p, err := ValidateCreate(in)
	require.NoError(t, err)

	assert.Equal(t, "Website Redesign", p.Name)
	assert.Equal(t, "Acme Corp", p.ClientName)
	assert.Equal(t, StatusActive, p.Status)
	require.NotNil(t, p.Description)
	assert.Equal(t, "full redesign of the marketing site", *p.Description)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), p.StartDate)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *p.EndDate)
	assert.False(t, p.CreatedAt.IsZero())
	assert.True(t, p.ID.IsZero(), "id is assigned by the store, not the validator")
}

func TestValidateCreate_OptionalFieldsOmitted(t *testing.T) {
	p, err := ValidateCreate(validInput())
	require.NoError(t, err)

	assert.Nil(t, p.Description)
	assert.Nil(t, p.EndDate)
}

func TestValidateCreate_TrimsStrings(t *testing.T) {
	in := validInput()
	in.ClientName = "  Acme Corp  "
	in.Name = "\tWebsite Redesign\n"

	p, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", p.ClientName)
	assert.Equal(t, "Website Redesign", p.Name)
}

func TestValidateCreate_ClientNameRequired(t *testing.T) {
	for _, clientName := range []string{"", "   "} {
		in := validInput()
		in.ClientName = clientName

		_, err := ValidateCreate(in)
		assertValidationError(t, err, "Client name is required")
	}
}

func TestValidateCreate_NameRequired(t *testing.T) {
	in := validInput()
	in.Name = "  "

	_, err := ValidateCreate(in)
	assertValidationError(t, err, "Project name is required")
}

func TestValidateCreate_DescriptionPresentButEmpty(t *testing.T) {
	in := validInput()
	in.Description = strPtr("   ")

	_, err := ValidateCreate(in)
	assertValidationError(t, err, "Description must be a non-empty string")
}

func TestValidateCreate_Status(t *testing.T) {
	for _, status := range []string{"", "archived", "ACTIVE", "done"} {
		in := validInput()
		in.Status = status

		_, err := ValidateCreate(in)
		assertValidationError(t, err, "Invalid or missing project status")
	}

	for _, status := range []string{"active", "on_hold", "completed"} {
		in := validInput()
		in.Status = status

		p, err := ValidateCreate(in)
		require.NoError(t, err)
		assert.Equal(t, Status(status), p.Status)
	}
}

func TestValidateCreate_StartDate(t *testing.T) {
	in := validInput()
	in.StartDate = ""
	_, err := ValidateCreate(in)
	assertValidationError(t, err, "Start date is required")

	in = validInput()
	in.StartDate = "not-a-date"
	_, err = ValidateCreate(in)
	assertValidationError(t, err, "Start date must be a valid ISO date")

	in = validInput()
	in.StartDate = "2026-01-15T09:30:00Z"
	p, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC), p.StartDate)
}

func TestValidateCreate_EndDate(t *testing.T) {
	in := validInput()
	in.EndDate = strPtr("garbage")
	_, err := ValidateCreate(in)
	assertValidationError(t, err, "End date must be a valid ISO date")

	in = validInput()
	in.EndDate = strPtr("2026-01-01")
	_, err = ValidateCreate(in)
	assertValidationError(t, err, "End date cannot be before start date")

	// Equal dates are allowed: the rule is "cannot be before".
	in = validInput()
	in.EndDate = strPtr("2026-01-15")
	p, err := ValidateCreate(in)
	require.NoError(t, err)
	require.NotNil(t, p.EndDate)
	assert.True(t, p.EndDate.Equal(p.StartDate))
}

func TestValidateCreate_FailFastOrder(t *testing.T) {
	// Everything is wrong; the first rule (client name) must win.
	_, err := ValidateCreate(CreateProjectInput{
		Status:    "bogus",
		StartDate: "bogus",
	})
	assertValidationError(t, err, "Client name is required")
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusActive.IsValid())
	assert.True(t, StatusOnHold.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("cancelled").IsValid())
	assert.False(t, Status("").IsValid())
}
