// Package httpapi exposes the noteboard services over HTTP using gin.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"noteboard/internal/logging"
	"noteboard/internal/server/services"
)

type Server struct {
	address   string
	auth      *services.AuthService
	pages     *services.PageService
	records   *services.RecordService
	logger    logging.Logger
	jwtSecret []byte
	router    *gin.Engine
}

func NewServer(a string, l logging.Logger, as *services.AuthService, ps *services.PageService, rs *services.RecordService, secretKey string) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		auth:      as,
		pages:     ps,
		records:   rs,
		jwtSecret: []byte(secretKey),
		router:    gin.New(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	// "Authorization" must be allowed so clients can send the bearer token
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	s.router.POST("/login", s.handleLogin)

	s.router.GET("/offset", s.handleOffsetPage)
	s.router.GET("/cursor", s.handleCursorPage)

	// write paths are token-gated
	protected := s.router.Group("/")
	protected.Use(s.requireAuth())
	{
		protected.POST("/", s.handleCreateRecord)
		protected.DELETE("/:name", s.handleDeleteRecord)
	}
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
