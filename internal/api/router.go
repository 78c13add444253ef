package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/access"
	"github.com/Harshitk-cp/tenantdesk/internal/api/handlers"
	mw "github.com/Harshitk-cp/tenantdesk/internal/api/middleware"
	"github.com/Harshitk-cp/tenantdesk/internal/buildconfig"
	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/service"
	"github.com/Harshitk-cp/tenantdesk/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options carries the tunables NewApp needs; cmd/server fills it from config.
type Options struct {
	DemoPassword     string
	BcryptCost       int
	DefaultTenant    string
	InitialLoadDelay time.Duration
	RefreshInterval  time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
	AllowedOrigins   []string
}

// App is the application-state container: it owns every store and service,
// the router, and the background services that need lifecycle management.
type App struct {
	Router      *chi.Mux
	Sessions    *service.SessionService
	Tenants     *service.TenantService
	Refresher   *service.RefresherService
	RateLimiter *mw.RateLimiter
	counters    *mw.Counters
	startTime   time.Time
}

func NewApp(opts Options, logger *zap.Logger) (*App, error) {
	// Stores
	identityStore, err := store.NewIdentityStore(opts.DemoPassword, opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("init identity store: %w", err)
	}
	sessionStore := store.NewSessionStore()
	tenantStore := store.NewTenantStore()
	userStore := store.NewUserStore()

	// Services
	sessionSvc := service.NewSessionService(identityStore, sessionStore, logger)
	tenantSvc := service.NewTenantService(tenantStore, userStore, service.NewRandomAnalyticsGenerator(), logger)
	refresher := service.NewRefresherService(tenantSvc, opts.DefaultTenant, logger)
	refresher.SetInitialDelay(opts.InitialLoadDelay)
	refresher.SetInterval(opts.RefreshInterval)

	// Handlers
	authHandler := handlers.NewAuthHandler(sessionSvc, tenantSvc, logger)
	tenantHandler := handlers.NewTenantHandler(tenantSvc)
	userHandler := handlers.NewUserHandler(tenantSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(tenantSvc)
	viewHandler := handlers.NewViewHandler(tenantSvc)

	r := chi.NewRouter()
	app := &App{
		Router:      r,
		Sessions:    sessionSvc,
		Tenants:     tenantSvc,
		Refresher:   refresher,
		RateLimiter: mw.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		counters:    &mw.Counters{},
		startTime:   time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Metrics(app.counters))
	r.Use(mw.Logging(logger, tenantSvc.ActiveTenantID))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(app.RateLimiter.Middleware)

	// Health and metrics (no auth)
	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.SessionAuth(sessionSvc))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-in", authHandler.SignIn)
			r.Post("/sign-out", authHandler.SignOut)
			r.Get("/session", authHandler.Session)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRoles())

			r.Get("/navigation", authHandler.Navigation)
			r.Get("/tenants", tenantHandler.List)
			r.With(mw.RequireRoles(domain.RoleAdmin)).Post("/tenant/select", tenantHandler.Select)

			// Everything below reads or mutates the active tenant.
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireSessionTenant(tenantSvc))

				r.Get("/tenant", tenantHandler.Get)
				r.With(mw.RequirePermission(domain.PermManageSettings)).Patch("/tenant/settings", tenantHandler.UpdateSettings)

				r.Get("/analytics", analyticsHandler.Get)
				r.Post("/analytics/refresh", analyticsHandler.Refresh)

				r.Route("/users", func(r chi.Router) {
					r.Use(mw.RequirePermission(domain.PermManageUsers))
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", userHandler.GetByID)
						r.Patch("/", userHandler.Update)
						r.Delete("/", userHandler.Delete)
						r.Put("/role", userHandler.ChangeRole)
					})
				})
			})
		})

		r.Route("/views", func(r chi.Router) {
			for _, route := range access.Routes() {
				h := http.Handler(viewHandler.Handler(route.View))
				if !route.Public {
					h = mw.RequireRoles(route.RequiredRoles...)(h)
				}
				r.Method(http.MethodGet, route.Pattern, h)
			}
			r.NotFound(viewHandler.NotFound)
		})
	})

	return app, nil
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"loading": app.Tenants.Loading(),
			"build":   buildconfig.Current(),
		})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"goroutines":     runtime.NumGoroutine(),
			"rate_limiters":  app.RateLimiter.Len(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}
		for k, v := range app.counters.Snapshot() {
			response[k] = v
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.IdentityStore = (*store.IdentityStore)(nil)
	_ domain.SessionStore  = (*store.SessionStore)(nil)
	_ domain.TenantStore   = (*store.TenantStore)(nil)
	_ domain.UserStore     = (*store.UserStore)(nil)
	_ mw.Authenticator     = (*service.SessionService)(nil)
	_ mw.TenantChecker     = (*service.TenantService)(nil)
)
