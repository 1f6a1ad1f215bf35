package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projectpulse/project-api/internal/projects/domain"
)

// CollectionName is the mongo collection backing project records.
const CollectionName = "projects"

// ListFilter is the explicit filter specification the service hands to the
// store: an optional status equality match and an optional case-insensitive
// substring search over name OR clientName.
type ListFilter struct {
	Status domain.Status
	Search string
}

// SortSpec selects one of the whitelisted sort fields and a direction.
// The service validates Field before it reaches the repository.
type SortSpec struct {
	Field      string
	Descending bool
}

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(CollectionName)}
}

// Create inserts a validated project and returns it with the store-assigned id.
// A missing id in the insert result is left zero for the service to reject.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return p, nil
}

// List returns one page of projects matching the filter plus the total match count.
func (r *ProjectRepository) List(ctx context.Context, filter ListFilter, sort SortSpec, skip, limit int64) ([]domain.Project, int64, error) {
	query := buildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	direction := 1
	if sort.Descending {
		direction = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Field, Value: direction}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.Project, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByID returns the project with the given id, or nil when absent.
func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	var p domain.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Exists reports whether a project with the given id is stored.
func (r *ProjectRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByID removes the project and reports whether a document was deleted.
func (r *ProjectRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// SetStatus updates the status and refreshes updatedAt, reporting whether
// the store modified a document.
func (r *ProjectRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.Status) (bool, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// buildFilter translates the filter spec into a mongo query. Search input is
// quoted so regex metacharacters match literally.
func buildFilter(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"clientName": pattern},
		}
	}
	return query
}
