package http

import (
	"context"

	"github.com/gin-gonic/gin"

	httpapi "github.com/projectpulse/project-api/internal/api/http"
	"github.com/projectpulse/project-api/internal/apperr"
	"github.com/projectpulse/project-api/internal/projects/domain"
	"github.com/projectpulse/project-api/internal/projects/service"
)

// ProjectService is the business-logic contract the handlers depend on.
type ProjectService interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, params service.ListParams) ([]domain.Project, *service.Pagination, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type Handler struct {
	svc ProjectService
}

func NewHandler(svc ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpapi.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	httpapi.Created(c, "Project created successfully", p)
}

func (h *Handler) list(c *gin.Context) {
	params := service.ListParams{
		Page:   c.Query("page"),
		Limit:  c.Query("limit"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	items, pagination, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	httpapi.OK(c, "Projects fetched successfully", gin.H{
		"projects":   items,
		"pagination": pagination,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	httpapi.OK(c, "Project fetched successfully", p)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Error(c, apperr.Validation("Invalid or missing project status"))
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		httpapi.Error(c, err)
		return
	}

	httpapi.OK(c, "Project status updated successfully", nil)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpapi.Error(c, err)
		return
	}

	httpapi.OK(c, "Project deleted successfully", nil)
}
