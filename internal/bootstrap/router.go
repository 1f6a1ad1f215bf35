package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/projectpulse/project-api/internal/api/http"
	"github.com/projectpulse/project-api/internal/api/http/middleware"
	"github.com/projectpulse/project-api/internal/db"
	projecthttp "github.com/projectpulse/project-api/internal/projects/http"
	"github.com/projectpulse/project-api/internal/projects/repository"
	"github.com/projectpulse/project-api/internal/projects/service"
)

type RouterDeps struct {
	Store            *db.Mongo
	Logger           *zap.Logger
	CORSAllowOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))

	corsCfg := cors.DefaultConfig()
	if len(dep.CORSAllowOrigins) == 1 && dep.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.CORSAllowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projectRepo := repository.NewProjectRepository(dep.Store.Database())
	projectSvc := service.NewProjectService(projectRepo)
	projectHandler := projecthttp.NewHandler(projectSvc)

	projectsGroup := api.Group("/projects")
	projectHandler.Register(projectsGroup)

	return r
}
