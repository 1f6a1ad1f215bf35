package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projectpulse/project-api/internal/projects/domain"
)

func TestBuildFilter(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(ListFilter{}))
	})

	t.Run("status equality", func(t *testing.T) {
		query := buildFilter(ListFilter{Status: domain.StatusOnHold})
		assert.Equal(t, bson.M{"status": domain.StatusOnHold}, query)
	})

	t.Run("search spans name and clientName, case-insensitive", func(t *testing.T) {
		query := buildFilter(ListFilter{Search: "acme"})

		pattern := primitive.Regex{Pattern: "acme", Options: "i"}
		assert.Equal(t, bson.A{
			bson.M{"name": pattern},
			bson.M{"clientName": pattern},
		}, query["$or"])
	})

	t.Run("search input is quoted, not interpreted as regex", func(t *testing.T) {
		query := buildFilter(ListFilter{Search: "a.c*"})

		or := query["$or"].(bson.A)
		pattern := or[0].(bson.M)["name"].(primitive.Regex)
		assert.Equal(t, `a\.c\*`, pattern.Pattern)
	})

	t.Run("status and search combine", func(t *testing.T) {
		query := buildFilter(ListFilter{Status: domain.StatusActive, Search: "x"})
		assert.Equal(t, domain.StatusActive, query["status"])
		assert.Contains(t, query, "$or")
	})
}
