package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/cache"
	"github.com/taskflow/taskflow/internal/config"
	"github.com/taskflow/taskflow/internal/http/handlers"
	"github.com/taskflow/taskflow/internal/http/middlewares"
	"github.com/taskflow/taskflow/internal/observability"
	"github.com/taskflow/taskflow/internal/store"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func NewRouter(
	cfg config.Config,
	st *store.Store,
	jwtManager *auth.Manager,
	prom *observability.Prom,
	reg *prometheus.Registry,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(otelgin.Middleware("taskflow"))
	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	// uniform error shapes for unmatched verbs and routes
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		handlers.RespondError(ctx, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(ctx *gin.Context) {
		handlers.RespondNotFound(ctx, "Not found")
	})

	// health + metrics
	h := handlers.NewHealthHandler()
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	authMW := middlewares.NewAuthMiddleware(jwtManager)
	authLimiter := middlewares.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)

	// Wire up handlers
	authHandler := handlers.NewAuthHandler(st, st, jwtManager)
	projectsHandler := handlers.NewProjectsHandler(st)
	tasksHandler := handlers.NewTasksHandler(st)
	usersHandler := handlers.NewUsersHandler(st)
	statsHandler := handlers.NewStatsHandlerWithCache(st, cache.New(30*time.Second))
	activityHandler := handlers.NewActivityHandler(st)
	worktimeHandler := handlers.NewWorktimeHandler(st)

	authGroup := r.Group("/auth", authLimiter.RateLimiterMiddleware(middlewares.KeyByIP))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	api := r.Group("/", authMW.RequireAuth())
	api.GET("/projects", projectsHandler.List)
	api.POST("/projects", projectsHandler.Create)
	api.PUT("/projects/:id", projectsHandler.Update)
	api.DELETE("/projects/:id", projectsHandler.Delete)

	api.GET("/tasks", tasksHandler.List)
	api.POST("/tasks", tasksHandler.Create)
	api.PUT("/tasks/:id", tasksHandler.Update)
	api.DELETE("/tasks/:id", tasksHandler.Delete)

	api.GET("/users", usersHandler.List)
	api.GET("/stats", statsHandler.Get)
	api.GET("/activity-table", activityHandler.Table)
	api.POST("/worktime", worktimeHandler.AddEntry)

	// Read-only endpoints polled by dashboard widgets; these alone accept
	// a ?token= fallback.
	r.GET("/activity", authMW.RequireAuthAllowQueryToken(), activityHandler.Feed)
	r.GET("/worktime", authMW.RequireAuthAllowQueryToken(), worktimeHandler.GetSeries)

	return r
}
