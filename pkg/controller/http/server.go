package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/complypilot/complypilot/pkg/usecase"
	"github.com/complypilot/complypilot/pkg/utils/logging"
)

// apiVersion is reported by the service banner endpoint.
const apiVersion = "1.0.0"

type Server struct {
	router        *chi.Mux
	uc            *usecase.UseCases
	allowedOrigin string
}

// Options is a functional option for Server configuration
type Options func(*Server)

// WithAllowedOrigin enables CORS for a browser frontend served from the
// given origin. "*" allows any origin but disables credentialed requests.
func WithAllowedOrigin(origin string) Options {
	return func(s *Server) {
		s.allowedOrigin = origin
	}
}

// New builds the REST router. All endpoints live under /api; everything
// except the banner, health probe, session exchange and plan table requires
// a valid session.
func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	if s.allowedOrigin != "" {
		r.Use(corsMiddleware(s.allowedOrigin))
	}
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/", bannerHandler())
		r.Get("/health", healthHandler())
		r.Post("/auth/session", authSessionHandler(uc.Auth))
		r.Get("/subscription/plans", subscriptionPlansHandler(uc.Subscription))

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(uc.Auth))

			r.Get("/auth/me", authMeHandler(uc.Profile))
			r.Post("/auth/logout", authLogoutHandler(uc.Auth))

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", profileGetHandler(uc.Profile))
				r.Put("/profile", profileUpdateHandler(uc.Profile))
			})

			r.Route("/health-check", func(r chi.Router) {
				r.Get("/questions", healthCheckQuestionsHandler(uc.HealthCheck))
				r.Post("/submit", healthCheckSubmitHandler(uc.HealthCheck))
				r.Get("/latest", healthCheckLatestHandler(uc.HealthCheck))
				r.Get("/history", healthCheckHistoryHandler(uc.HealthCheck))
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/upload", documentUploadHandler(uc.Document))
				r.Get("/", documentListHandler(uc.Document))
				r.Get("/{documentID}", documentGetHandler(uc.Document))
				r.Post("/{documentID}/analyze", documentAnalyzeHandler(uc.Document))
				r.Delete("/{documentID}", documentDeleteHandler(uc.Document))
			})

			r.Route("/risk-register", func(r chi.Router) {
				r.Post("/generate", riskRegisterGenerateHandler(uc.RiskRegister))
				r.Get("/", riskRegisterGetHandler(uc.RiskRegister))
				r.Put("/{riskID}", riskStatusUpdateHandler(uc.RiskRegister))
			})

			r.Get("/dashboard", dashboardHandler(uc.Dashboard))
			r.Get("/subscription", subscriptionGetHandler(uc.Subscription))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// bannerHandler serves the service banner at the API root
func bannerHandler() http.HandlerFunc {
	type response struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, response{
			Message: "ComplyPilot API",
			Version: apiVersion,
		})
	}
}

// healthHandler serves the liveness probe
func healthHandler() http.HandlerFunc {
	type response struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, response{Status: "healthy"})
	}
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
