package config

import (
	"fmt"
	"mordomia/database/postgres"
	authHandler "mordomia/internal/api/auth/handler"
	authRepository "mordomia/internal/api/auth/repository"
	authService "mordomia/internal/api/auth/service"
	bankHandler "mordomia/internal/api/bank/handler"
	bankRepository "mordomia/internal/api/bank/repository"
	bankService "mordomia/internal/api/bank/service"
	financeHandler "mordomia/internal/api/finance/handler"
	financeRepository "mordomia/internal/api/finance/repository"
	financeService "mordomia/internal/api/finance/service"
	goalHandler "mordomia/internal/api/goal/handler"
	goalRepository "mordomia/internal/api/goal/repository"
	goalService "mordomia/internal/api/goal/service"
	realtimeHandler "mordomia/internal/api/realtime/handler"
	reportHandler "mordomia/internal/api/report/handler"
	reportService "mordomia/internal/api/report/service"
	"mordomia/internal/middleware"
	"mordomia/pkg/bcrypt"
	"mordomia/pkg/gemini"
	"mordomia/pkg/google"
	"mordomia/pkg/realtime"
	"mordomia/pkg/redis"
	"mordomia/pkg/s3"
	"mordomia/pkg/utils"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const realtimeBuffer = 32

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	hub            *realtime.Hub
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
	}
	if server.hub == nil {
		server.hub = realtime.NewHub(server.log, realtimeBuffer)
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log, server.redisServer)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to Postgres and applies pending migrations.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithGoogleProvider enables Google sign-in when GOOGLE_CLIENT_ID is set.
func WithGoogleProvider() ServerOption {
	return func(s *Server) error {
		if os.Getenv("GOOGLE_CLIENT_ID") == "" {
			s.warn("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
			return nil
		}
		s.googleProvider = google.New()
		return nil
	}
}

// WithRedisServer enables logout revocation and Google sign-in state when
// REDIS_ADDRESS is set.
func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if os.Getenv("REDIS_ADDRESS") == "" {
			s.warn("REDIS_ADDRESS not set, logout and Google sign-in disabled")
			return nil
		}
		s.redisServer = redis.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			s.warn(fmt.Sprintf("S3 client not configured, report archive disabled: %v", err))
			return nil
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			s.warn(fmt.Sprintf("Gemini client not configured, using rule-based assessments: %v", err))
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithRealtimeHub() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before realtime hub")
		}
		s.hub = realtime.NewHub(s.log, realtimeBuffer)
		return nil
	}
}

func (s *Server) warn(msg string) {
	if s.log != nil {
		s.log.Warn(msg)
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Finance Domain
	financeRepo := financeRepository.New(s.db, s.log)
	bankRepo := bankRepository.New(s.db, s.log)
	financeServices := financeService.NewFinanceService(s.log, financeRepo, bankRepo, s.utils, s.hub)
	financeHandlers := financeHandler.New(s.log, s.validator, s.middleware, financeServices)

	// Bank Domain
	bankServices := bankService.NewBankService(s.log, bankRepo, s.utils, s.hub)
	bankHandlers := bankHandler.New(s.log, s.validator, s.middleware, bankServices)

	// Goal Domain
	goalRepo := goalRepository.New(s.db, s.log)
	goalServices := goalService.NewGoalService(s.log, goalRepo, s.utils, s.hub)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)

	// Reports
	reportServices := reportService.NewReportService(s.log, financeRepo, bankRepo, goalRepo, s.geminiClient, s.s3Client, s.utils)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	// Realtime
	realtimeHandlers := realtimeHandler.New(s.log, s.middleware, s.hub, s.redisServer)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, financeHandlers, bankHandlers, goalHandlers, reportHandlers, realtimeHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests and releases the external clients.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
