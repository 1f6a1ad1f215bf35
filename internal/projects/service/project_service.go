package service

import (
	"context"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/projectpulse/project-api/internal/apperr"
	"github.com/projectpulse/project-api/internal/projects/domain"
	"github.com/projectpulse/project-api/internal/projects/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Fields the list operation may sort on; everything else is rejected before
// the store is reached.
var sortableFields = map[string]struct{}{
	"createdAt": {},
	"startDate": {},
}

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	List(ctx context.Context, filter repository.ListFilter, sort repository.SortSpec, skip, limit int64) ([]domain.Project, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.Status) (bool, error)
}

// ListParams carries the raw list query parameters as received from the
// controller; normalization and defaulting happen here.
type ListParams struct {
	Page   string
	Limit  string
	Status string
	Search string
	Sort   string
}

// Pagination is the list-response metadata.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// ProjectService enforces the business rules around project persistence.
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service.
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates the payload and persists a new project.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	p, err := domain.ValidateCreate(in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if created.ID.IsZero() {
		return nil, apperr.Failure("Project could not be created")
	}
	return created, nil
}

// List returns one page of projects plus pagination metadata.
func (s *ProjectService) List(ctx context.Context, params ListParams) ([]domain.Project, *Pagination, error) {
	page := parsePositiveInt(params.Page, defaultPage)
	limit := parsePositiveInt(params.Limit, defaultLimit)
	skip := int64(page-1) * int64(limit)

	sort, err := parseSortToken(params.Sort)
	if err != nil {
		return nil, nil, err
	}

	filter := repository.ListFilter{
		Status: domain.Status(strings.TrimSpace(params.Status)),
		Search: strings.TrimSpace(params.Search),
	}

	items, total, err := s.repo.List(ctx, filter, sort, skip, int64(limit))
	if err != nil {
		return nil, nil, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return items, &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetByID fetches a single project.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Project not found")
	}
	return p, nil
}

// Delete removes a project, checking existence first.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Project not found")
	}

	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.Failure("Project could not be deleted")
	}
	return nil
}

// UpdateStatus moves a project to a new lifecycle status. Transitions are
// unrestricted within the enum.
func (s *ProjectService) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	newStatus := domain.Status(strings.TrimSpace(status))
	if !newStatus.IsValid() {
		return apperr.Validation("Invalid or missing project status")
	}

	exists, err := s.repo.Exists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Project not found")
	}

	updated, err := s.repo.SetStatus(ctx, oid, newStatus)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.Failure("Project status could not be updated")
	}
	return nil
}

// parseID rejects malformed identifiers before any store call.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid project id")
	}
	return oid, nil
}

// parseSortToken resolves a "[-]field" token against the sortable-field
// whitelist. An empty token means newest first.
func parseSortToken(token string) (repository.SortSpec, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return repository.SortSpec{Field: "createdAt", Descending: true}, nil
	}

	descending := false
	field := token
	if strings.HasPrefix(token, "-") {
		descending = true
		field = token[1:]
	}

	if _, ok := sortableFields[field]; !ok {
		return repository.SortSpec{}, apperr.Validation("Sorting not allowed on this field")
	}
	return repository.SortSpec{Field: field, Descending: descending}, nil
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
