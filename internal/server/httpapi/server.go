package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/beautyease/beautyease/internal/logging"
	"github.com/beautyease/beautyease/internal/server/models"
	"github.com/beautyease/beautyease/internal/server/services"
	"github.com/beautyease/beautyease/internal/wire"
)

// UserService is the slice of services.UserService the API needs.
type UserService interface {
	Register(ctx context.Context, email, password, fullName string) (*services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, patch *wire.ProfilePatch) (*models.Profile, error)
}

type ScanService interface {
	Save(ctx context.Context, userID string, req *wire.SaveScanRequest) (*models.Scan, error)
	List(ctx context.Context, userID string, limit int) ([]*models.Scan, error)
}

type MediaService interface {
	GetPresignedPutURL(ctx context.Context, userID string) (string, string, error)
	GetPresignedGetURL(ctx context.Context, key string) (string, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	profiles  ProfileService
	scans     ScanService
	media     MediaService
	jwtSecret []byte
	validate  *validator.Validate
}

func NewServer(addr string, l logging.Logger, us UserService, ps ProfileService, ss ScanService, ms MediaService, secretKey string) *Server {
	return &Server{
		address:   addr,
		logger:    l.With("module", "httpapi"),
		users:     us,
		profiles:  ps,
		scans:     ss,
		media:     ms,
		jwtSecret: []byte(secretKey),
		validate:  validator.New(),
	}
}

// Router assembles the chi router. Split from Run so tests can drive it
// through httptest without binding a socket.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.logMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/refresh", s.handleRefresh)
		r.Post("/auth/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/profile", s.handleGetProfile)
			r.Patch("/profile", s.handlePatchProfile)

			r.Post("/scans", s.handleSaveScan)
			r.Get("/scans", s.handleListScans)

			r.Post("/media/upload-url", s.handleUploadURL)
			r.Get("/media/download-url", s.handleDownloadURL)
		})
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
