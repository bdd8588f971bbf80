package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/customeros/notestack/api"
	"github.com/customeros/notestack/api/handlers"
	"github.com/customeros/notestack/config"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/repository"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/services"
)

type Server struct {
	config       *config.Config
	log          logger.Logger
	httpServer   *http.Server
	router       *gin.Engine
	services     *services.Services
	repositories *repository.Repositories
	tracerCloser io.Closer
}

func NewServer(cfg *config.Config, notestackDB *gorm.DB) (*Server, error) {
	// Initialize logger
	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	// Initialize tracing
	tracer, closer, err := tracing.NewJaegerTracer(cfg.Tracing, appLogger)
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	// Initialize storage and repositories
	storageService := services.InitStorage(cfg.StorageConfig)
	repos := repository.InitRepositories(notestackDB, storageService)

	// Initialize services
	svcs, err := services.InitServices(cfg.AppConfig.RabbitMQURL, appLogger, storageService, repos)
	if err != nil {
		closer.Close()
		return nil, err
	}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger())
	api.RegisterRoutes(router, handlers.InitHandlers(appLogger, svcs.Coordinator, cfg.AppConfig.MaxPartBytes))

	return &Server{
		config:       cfg,
		log:          appLogger,
		router:       router,
		services:     svcs,
		repositories: repos,
		tracerCloser: closer,
		httpServer: &http.Server{
			Addr:         ":" + cfg.AppConfig.APIPort,
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.AppConfig.ReadTimeoutSecs) * time.Second,
			WriteTimeout: time.Duration(cfg.AppConfig.WriteTimeoutSecs) * time.Second,
		},
	}, nil
}

func (s *Server) Run() error {
	serverErr := make(chan error, 1)

	go func() {
		defer tracing.RecoverAndLogToJaeger(s.log)
		s.log.Infof("Starting HTTP server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	s.log.Info("notestack is now running. Press Ctrl+C to exit.")

	return s.waitForShutdown(serverErr)
}

func (s *Server) waitForShutdown(serverErr <-chan error) error {
	defer tracing.RecoverAndLogToJaeger(s.log)

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
		s.log.Info("Shutting down...")
	case err := <-serverErr:
		s.log.Errorf("HTTP server error: %v", err)
		runErr = err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("HTTP server shutdown error: %v", err)
	} else {
		s.log.Info("HTTP server shut down successfully")
	}

	// in-flight note.created events are bounded by the coordinator's publish timeout
	s.services.Coordinator.Wait()
	if s.services.EventPublisher != nil {
		if err := s.services.EventPublisher.Close(); err != nil {
			s.log.Errorf("Event publisher shutdown error: %v", err)
		}
	}

	if s.tracerCloser != nil {
		s.tracerCloser.Close()
	}
	_ = s.log.Sync()

	return runErr
}
