package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/cache"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/handlers"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/middleware"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/objectstore"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/queue"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/storage/postgres"
	"github.com/Kleberfca/timeline-project-system/internal/adapter/vault"
	wsAdapter "github.com/Kleberfca/timeline-project-system/internal/adapter/websocket"
	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/observability/telemetry"
	"github.com/Kleberfca/timeline-project-system/internal/service/admin"
	"github.com/Kleberfca/timeline-project-system/internal/service/arquivo"
	"github.com/Kleberfca/timeline-project-system/internal/service/auth"
	"github.com/Kleberfca/timeline-project-system/internal/service/cliente"
	"github.com/Kleberfca/timeline-project-system/internal/service/email"
	"github.com/Kleberfca/timeline-project-system/internal/service/projeto"
	"github.com/Kleberfca/timeline-project-system/internal/service/sistema"
	"github.com/Kleberfca/timeline-project-system/internal/service/timeline"
	"github.com/Kleberfca/timeline-project-system/pkg/config"
)

const serviceName = "timeline-project-system"

func main() {
	// 1. Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Timeline Project System", zap.String("service", serviceName))

	// 2. Configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if cfg.Log.Development {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	// 3. Secrets from Vault, when enabled, override the config file.
	if cfg.Vault.Enabled {
		sm, err := vault.NewSecretManager(cfg.Vault.Addr, cfg.Vault.Token, cfg.Vault.Path)
		if err != nil {
			logger.Fatal("Failed to connect to Vault", zap.Error(err))
		}
		if secret, err := sm.GetJWTSecret(); err == nil {
			cfg.JWT.Secret = secret
		}
		if key, err := sm.GetStorageSigningKey(); err == nil {
			cfg.Storage.SigningKey = key
		}
		if pass, err := sm.GetSMTPPassword(); err == nil {
			cfg.Email.SMTPPassword = pass
		}
		logger.Info("Secrets loaded from Vault")
	}

	// 4. Tracing
	if cfg.Telemetry.Enabled {
		tp, err := telemetry.InitTracer(cfg.Telemetry.ServiceName, cfg.Telemetry.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. PostgreSQL
	db, err := postgres.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := postgres.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 6. Cache, with in-memory fallback for local development
	appCache, err := cache.NewRedisCache(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
		appCache = cache.NewLocalCache(cfg.Redis.CleanupInterval, logger)
	}
	defer appCache.Close()

	// 7. Message queue
	var mq queue.MessageQueue
	switch cfg.Queue.Provider {
	case "rabbitmq":
		mq, err = queue.NewRabbitMQQueue(cfg.Queue.RabbitMQURL, logger)
	default:
		mq, err = queue.NewNATSQueue(cfg.Queue.NATSUrl, logger)
	}
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer mq.Close()

	// 8. Object storage
	store, err := objectstore.NewLocalStore(cfg.Storage, cfg.Server.BaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	// 9. Repositories
	userRepo := postgres.NewUserRepository(db, logger)
	clienteRepo := postgres.NewClienteRepository(db, logger)
	projetoRepo := postgres.NewProjetoRepository(db, logger)
	timelineRepo := postgres.NewTimelineRepository(db, logger)
	catalogRepo := postgres.NewCatalogRepository(db, logger)
	arquivoRepo := postgres.NewArquivoRepository(db, logger)
	sistemaRepo := postgres.NewSistemaConfigRepository(db, logger)

	// 10. Services
	emailService, err := email.NewService(cfg.Email, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}
	publisher := queue.NewEventPublisher(mq, logger)

	authService := auth.NewService(userRepo, appCache, emailService, cfg.JWT, cfg.Server.FrontendURL, logger)
	clienteService := cliente.NewService(clienteRepo, logger)
	projetoService := projeto.NewService(projetoRepo, clienteRepo, catalogRepo, logger)
	timelineService := timeline.NewService(timelineRepo, projetoRepo, publisher, logger)
	arquivoService := arquivo.NewService(arquivoRepo, timelineRepo, projetoRepo, store, publisher, cfg.Storage.SignedURLTTL, logger)
	sistemaService := sistema.NewService(sistemaRepo, store, appCache, logger)
	adminService := admin.NewService(clienteRepo, projetoRepo, timelineRepo, logger)

	// 11. Seed the fixed fase and etapa catalog
	if err := projetoService.EnsureCatalog(context.Background()); err != nil {
		logger.Fatal("Failed to seed etapa catalog", zap.Error(err))
	}

	// 12. Realtime hub and queue fanout
	hub := wsAdapter.NewHub()
	go hub.Run()

	if err := subscribeRealtime(mq, hub, logger); err != nil {
		logger.Fatal("Failed to subscribe to realtime subjects", zap.Error(err))
	}

	// 13. HTTP server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             domain.MaxFileSize + 1024*1024,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.Server.AllowedOrigins))
	app.Use(middleware.CircuitBreaker(logger))

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Stored objects, public or signed
	storageHandler := handlers.NewStorageHandler(store, logger)
	app.Get("/storage/:bucket/*", storageHandler.Serve)

	// 14. API routes
	authHandler := handlers.NewAuthHandler(authService, userRepo, logger)
	clienteHandler := handlers.NewClienteHandler(clienteService, logger)
	projetoHandler := handlers.NewProjetoHandler(projetoService, logger)
	timelineHandler := handlers.NewTimelineHandler(timelineService, logger)
	arquivoHandler := handlers.NewArquivoHandler(arquivoService, logger)
	sistemaHandler := handlers.NewSistemaHandler(sistemaService, logger)
	dashboardHandler := handlers.NewDashboardHandler(adminService, logger)

	v1 := app.Group("/api/v1")

	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/refresh", authHandler.RefreshToken)
	v1.Post("/auth/esqueci-senha", authHandler.ForgotPassword)
	v1.Post("/auth/redefinir-senha", authHandler.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Put("/auth/perfil", authHandler.UpdatePerfil)
	protected.Post("/auth/alterar-senha", authHandler.ChangePassword)

	protected.Get("/projetos", projetoHandler.List)
	protected.Get("/projetos/:id", projetoHandler.Get)
	protected.Get("/projetos/:id/timeline", timelineHandler.ListByProjeto)
	protected.Get("/timeline/:entryId/arquivos", arquivoHandler.List)
	protected.Get("/sistema/config", sistemaHandler.Get)

	adminOnly := protected.Group("", middleware.AdminOnly())
	adminOnly.Post("/clientes", clienteHandler.Create)
	adminOnly.Get("/clientes", clienteHandler.List)
	adminOnly.Get("/clientes/:id", clienteHandler.Get)
	adminOnly.Put("/clientes/:id", clienteHandler.Update)
	adminOnly.Delete("/clientes/:id", clienteHandler.Deactivate)

	adminOnly.Post("/projetos", projetoHandler.Create)
	adminOnly.Put("/projetos/:id", projetoHandler.Update)
	adminOnly.Delete("/projetos/:id", projetoHandler.Deactivate)

	adminOnly.Put("/timeline/:entryId/status", timelineHandler.UpdateStatus)
	adminOnly.Put("/timeline/:entryId/observacoes", timelineHandler.UpdateObservacoes)
	adminOnly.Post("/timeline/:entryId/arquivos", arquivoHandler.Upload)
	adminOnly.Post("/timeline/:entryId/links", arquivoHandler.AddLink)
	adminOnly.Delete("/arquivos/:id", arquivoHandler.Remove)

	adminOnly.Put("/sistema/config", sistemaHandler.Update)
	adminOnly.Post("/sistema/logo", sistemaHandler.UploadLogo)
	adminOnly.Post("/sistema/favicon", sistemaHandler.UploadFavicon)
	adminOnly.Get("/dashboard", dashboardHandler.Stats)

	// 15. WebSocket feed, one room per projeto. Browsers cannot set headers
	// on websocket upgrades, so the token travels as a query param.
	app.Use("/ws/projetos/:id", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		user, err := authService.ValidateToken(c.Context(), c.Query("token"))
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if _, err := projetoService.GetByID(c.Context(), c.Params("id"), user); err != nil {
			return err
		}
		c.Locals("user_id", user.ID)
		return c.Next()
	})
	app.Get("/ws/projetos/:id", websocket.New(func(c *websocket.Conn) {
		projetoID := c.Params("id")
		userID, _ := c.Locals("user_id").(string)

		telemetry.RealtimeClients.Inc()
		defer telemetry.RealtimeClients.Dec()
		hub.AddClient(c, userID, projetoID)
	}))

	// 16. Serve
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 17. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited gracefully")
}

// subscribeRealtime routes queue events to the websocket room of the
// projeto they belong to. The payload is forwarded untouched; only the
// projeto_id is inspected.
func subscribeRealtime(mq queue.MessageQueue, hub *wsAdapter.Hub, logger *zap.Logger) error {
	fanout := func(subject string) func(data []byte) error {
		return func(data []byte) error {
			var envelope struct {
				ProjetoID string `json:"projeto_id"`
			}
			if err := json.Unmarshal(data, &envelope); err != nil {
				return fmt.Errorf("malformed event on %s: %w", subject, err)
			}
			if envelope.ProjetoID == "" {
				logger.Warn("Dropping event without projeto_id", zap.String("subject", subject))
				return nil
			}
			telemetry.RealtimeEventsTotal.WithLabelValues(subject).Inc()
			hub.BroadcastToProjeto(envelope.ProjetoID, data)
			return nil
		}
	}

	if err := mq.Subscribe(queue.SubjectTimeline, fanout(queue.SubjectTimeline)); err != nil {
		return err
	}
	return mq.Subscribe(queue.SubjectArquivos, fanout(queue.SubjectArquivos))
}
