package routes

import (
	"fmt"

	"multiservice-api/handlers"
	"multiservice-api/identity"
	"multiservice-api/logger"
	"multiservice-api/metrics"
	"multiservice-api/middleware"
	"multiservice-api/repository"
	"multiservice-api/statuses"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the collaborators the router is composed from.
type Deps struct {
	Repo        *repository.Repository
	Verifier    identity.Verifier
	Logger      *zap.Logger
	Metrics     *metrics.HTTPMetrics
	CORSOrigins []string
}

// NewRouter builds the engine with recovery, request logging, metrics and CORS.
func NewRouter(d Deps) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := statuses.RegisterValidators(v); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.CORS(d.CORSOrigins))

	SetupRoutes(r, handlers.New(d.Repo, d.Logger), d.Verifier, d.Metrics)
	return r, nil
}
