package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/metrics"
	"github.com/redlabs/storefront/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router. Metric exclusion
// is configured on Metrics itself, not here.
type RouterDeps struct {
	Log         *logrus.Logger
	Metrics     *metrics.Metrics
	Catalog     ProductCatalog
	Predictions PredictionService
	CORSOrigins []string
	ServiceName string
	Version     string
}

// Router-level limits.
const (
	maxBodySize  = 1 << 20 // 1 MB; demo payloads are tiny
	maxPageLimit = 100     // items per listing page
	liveInterval = time.Second
)

// setupMiddleware configures the middleware chain. Order matters: the
// metrics collector wraps gin.Recovery so a panicking handler is observed
// with the 500 the client receives, while CORS preflights stay out of the
// traffic series entirely.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(corsMiddleware(deps.CORSOrigins))
	r.Use(middleware.Prometheus(deps.Metrics))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
}

// corsMiddleware builds the CORS layer. The demo defaults to allowing every
// origin; credentials are only allowed with an explicit origin list.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		MaxAge:       1 * time.Hour,
	}

	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
			break
		}
	}

	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

// registerRoutes sets up all route handlers.
func registerRoutes(r *gin.Engine, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(log, deps.ServiceName, deps.Version)
	products := NewProductHandler(deps.Catalog, log)
	predictions := NewPredictionHandler(deps.Predictions, log)

	r.GET("/", indexHandler(deps.ServiceName, deps.Version))
	r.GET("/health", health.Liveness)

	// Exposition endpoint, unauthenticated and excluded from its own series
	// via the default exclude list.
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := r.Group("/api/v1")

	api.GET("/products", products.List)
	api.POST("/products", products.Create)
	api.GET("/products/:id", products.Get)
	api.PUT("/products/:id", products.Update)
	api.DELETE("/products/:id", products.Delete)
	api.POST("/products/:id/process", products.Process)

	api.POST("/ai/predict", predictions.Predict)
	api.GET("/ai/predict/:id", predictions.Get)

	api.GET("/live", liveHandler(log, deps.Metrics, deps.CORSOrigins, liveInterval))
}

// NewRouter creates and configures the gin engine with all middleware and
// routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r, deps)

	return r
}
