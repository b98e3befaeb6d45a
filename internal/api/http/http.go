package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"

	"github.com/sellerdesk/shop-manager/internal/analytics"
	"github.com/sellerdesk/shop-manager/internal/dependency"
	"github.com/sellerdesk/shop-manager/internal/middleware"
	"github.com/sellerdesk/shop-manager/internal/ratelimit"
)

// Config is the configuration for the http server.
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// JWTSecret enables bearer-token auth on the report API when set.
	JWTSecret string `mapstructure:"jwt_secret"`

	// ReportRateLimit caps report requests per client IP per
	// ReportRateWindow seconds. Zero disables the limiter.
	ReportRateLimit  int `mapstructure:"report_rate_limit"`
	ReportRateWindow int `mapstructure:"report_rate_window"`
}

// Server is the http server.
type Server struct {
	hs      *http.Server
	c       *Config
	engine  *analytics.Engine
	rep     dependency.Repository
	jwtAuth *jwtauth.JWTAuth
	limiter *ratelimit.Limiter
	done    chan struct{}
}

// New creates a new server.
func New(c *Config, engine *analytics.Engine, rep dependency.Repository) *Server {
	s := &Server{
		c:      c,
		engine: engine,
		rep:    rep,
		done:   make(chan struct{}),
	}
	if c.JWTSecret != "" {
		s.jwtAuth = jwtauth.New("HS256", []byte(c.JWTSecret), nil)
	}
	if c.ReportRateLimit > 0 {
		window := time.Duration(c.ReportRateWindow) * time.Second
		if window <= 0 {
			window = 15 * time.Second
		}
		s.limiter = ratelimit.NewLimiter(window, c.ReportRateLimit)
	}
	return s
}

// Done returns a channel that is closed when the http server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(middleware.ClientIdentifier)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/healthz", s.handleHealth)

	r.Route("/api/analytics", func(r chi.Router) {
		if s.jwtAuth != nil {
			r.Use(jwtauth.Verifier(s.jwtAuth))
			r.Use(jwtauth.Authenticator)
		}
		r.Use(s.throttleReports)
		r.Get("/orders", s.handleReport)
		r.Post("/orders", s.handleReport)
	})

	return r
}

// throttleReports rejects clients that exceed the per-IP report quota.
// Scans are the expensive path, so only the analytics routes pay this.
func (s *Server) throttleReports(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow(middleware.GetClientIP(r.Context())) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the server.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("shop-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, draining in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}
