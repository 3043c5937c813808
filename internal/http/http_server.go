package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/services/problem"
	"gitlab.com/dsa-judge.net/internal/core/services/run"
	"gitlab.com/dsa-judge.net/internal/core/services/submission"
	"gitlab.com/dsa-judge.net/internal/handlers"
	"gitlab.com/dsa-judge.net/internal/handlers/problems"
	"gitlab.com/dsa-judge.net/internal/handlers/runs"
	"gitlab.com/dsa-judge.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	problemService    problem.IProblemService
	runService        run.IRunService
	submissionService submission.ISubmissionService
	jwtService        primary.JWTService
}

func NewServiceProvider(
	problemService problem.IProblemService,
	runService run.IRunService,
	submissionService submission.ISubmissionService,
	jwtService primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		problemService:    problemService,
		runService:        runService,
		submissionService: submissionService,
		jwtService:        jwtService,
	}
}

type ServerOption func(*Server)

// WithWriteTimeout bounds response writes. It must exceed the longest
// judging round.
func WithWriteTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

// WithMetricsGatherer exposes the gatherer on /metrics
func WithMetricsGatherer(gatherer prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithAdminRole sets the role allowed to author problems
func WithAdminRole(role string) ServerOption {
	return func(s *Server) {
		s.adminRole = role
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger

	writeTimeout time.Duration
	gatherer     prometheus.Gatherer
	adminRole    string
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger, options ...ServerOption) *Server {
	s := &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
		writeTimeout:    60 * time.Second,
		gatherer:        prometheus.DefaultGatherer,
		adminRole:       "ADMIN",
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	handlers.NewHealthHandler(s.ServiceName).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods("GET")

	mw := handlers.New(s.ServiceProvider.jwtService, s.adminRole)
	protected := r.NewRoute().Subrouter()
	protected.Use(mw.JWTMiddleware)

	problems.
		NewProblemHandler(s.ServiceProvider.problemService, s.logger, s.adminRole).
		RegisterRoutes(protected, mw)
	runs.NewRunHandler(s.ServiceProvider.runService, s.logger).RegisterRoutes(protected)
	submissions.NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(protected)

	s.router = r
	return nil
}

// Handler returns the routed handler; Init must have been called
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background. Listen errors other than a clean
// shutdown are reported on the returned channel.
func (s *Server) Start(ctx context.Context) <-chan error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	return nil
}
