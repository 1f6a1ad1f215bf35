package domain

import (
	"strings"
	"time"

	"github.com/projectpulse/project-api/internal/apperr"
)

// CreateProjectInput is the untrusted creation payload. Optional fields are
// pointers so that "absent" and "present but empty" stay distinguishable.
type CreateProjectInput struct {
	ClientName  string  `json:"clientName"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// Accepted "ISO date" layouts: date-only values parse at midnight UTC.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ValidateCreate normalizes and validates a creation payload, producing a
// sanitized Project or the first violated rule as a validation error.
// The store id is assigned later, at insert time.
func ValidateCreate(in CreateProjectInput) (*Project, error) {
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return nil, apperr.Validation("Client name is required")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("Project name is required")
	}

	var description *string
	if in.Description != nil {
		trimmed := strings.TrimSpace(*in.Description)
		if trimmed == "" {
			return nil, apperr.Validation("Description must be a non-empty string")
		}
		description = &trimmed
	}

	status := Status(strings.TrimSpace(in.Status))
	if !status.IsValid() {
		return nil, apperr.Validation("Invalid or missing project status")
	}

	if strings.TrimSpace(in.StartDate) == "" {
		return nil, apperr.Validation("Start date is required")
	}
	startDate, ok := parseDate(strings.TrimSpace(in.StartDate))
	if !ok {
		return nil, apperr.Validation("Start date must be a valid ISO date")
	}

	var endDate *time.Time
	if in.EndDate != nil {
		parsed, ok := parseDate(strings.TrimSpace(*in.EndDate))
		if !ok {
			return nil, apperr.Validation("End date must be a valid ISO date")
		}
		if parsed.Before(startDate) {
			return nil, apperr.Validation("End date cannot be before start date")
		}
		endDate = &parsed
	}

	now := time.Now().UTC()
	return &Project{
		Name:        name,
		ClientName:  clientName,
		Status:      status,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
