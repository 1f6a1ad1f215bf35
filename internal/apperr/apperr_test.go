package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, &Error{Code: http.StatusBadRequest, Title: TitleValidation, Message: "bad input"},
		Validation("bad input"))
	assert.Equal(t, &Error{Code: http.StatusNotFound, Title: TitleNotFound, Message: "missing"},
		NotFound("missing"))
	assert.Equal(t, &Error{Code: http.StatusInternalServerError, Title: TitleFailure, Message: "write lost"},
		Failure("write lost"))
}

func TestFrom(t *testing.T) {
	t.Run("passes tagged errors through", func(t *testing.T) {
		tagged := NotFound("Project not found")
		assert.Same(t, tagged, From(tagged))
	})

	t.Run("wraps tagged errors through fmt.Errorf chains", func(t *testing.T) {
		wrapped := fmt.Errorf("service: %w", Validation("Invalid project id"))
		got := From(wrapped)
		assert.Equal(t, http.StatusBadRequest, got.Code)
		assert.Equal(t, TitleValidation, got.Title)
	})

	t.Run("downgrades unknown faults to a generic 500", func(t *testing.T) {
		got := From(fmt.Errorf("connection reset"))
		assert.Equal(t, http.StatusInternalServerError, got.Code)
		assert.Equal(t, TitleInternal, got.Title)
		assert.Equal(t, "connection reset", got.Message)
	})
}
