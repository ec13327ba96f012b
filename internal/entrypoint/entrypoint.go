package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookcafe/internal/audit"
	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/database"
	auditrepo "github.com/mrlokans/bookcafe/internal/database/audit"
	"github.com/mrlokans/bookcafe/internal/database/books"
	"github.com/mrlokans/bookcafe/internal/database/categories"
	"github.com/mrlokans/bookcafe/internal/database/menus"
	"github.com/mrlokans/bookcafe/internal/database/orders"
	"github.com/mrlokans/bookcafe/internal/demo"
	http_controllers "github.com/mrlokans/bookcafe/internal/http"
	"github.com/mrlokans/bookcafe/internal/logging"
	"github.com/mrlokans/bookcafe/internal/middleware"
	"github.com/mrlokans/bookcafe/internal/scheduler"
	"github.com/mrlokans/bookcafe/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Application holds every long-lived component of the server.
type Application struct {
	Router *gin.Engine

	db          *database.Database
	audit       *audit.Service
	taskClient  *tasks.Client
	taskCancel  context.CancelFunc
	scheduler   *scheduler.AuditCleanupScheduler
	rateLimiter *middleware.RateLimiter
}

// NewApplication opens the database and wires repositories, audit trail,
// task queue, scheduler and router. Call Shutdown to release them.
func NewApplication(cfg *config.Config, version string) (*Application, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &Application{db: db}

	var recorder http_controllers.MutationRecorder
	if cfg.Audit.Enabled {
		app.audit = audit.NewService(auditrepo.NewRepository(db.DB))
		recorder = app.audit
	}

	if cfg.Tasks.Enabled && app.audit != nil {
		if err := app.startTasks(cfg); err != nil {
			app.Shutdown(context.Background())
			return nil, err
		}
	}

	if cfg.RateLimit.Enabled {
		app.rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		})
	}

	var demoMode *demo.Middleware
	if cfg.Demo.Enabled {
		logrus.Warn("Demo mode enabled, API writes are rejected")
		demoMode = demo.NewMiddleware(true)
	}

	router, err := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:          books.NewRepository(db.DB),
		Categories:     categories.NewRepository(db.DB),
		Menus:          menus.NewRepository(db.DB),
		Orders:         orders.NewRepository(db.DB),
		Database:       db,
		Audit:          recorder,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimiter:    app.rateLimiter,
		Demo:           demoMode,
		StaticPath:     cfg.Static.Path,
		Version:        version,
	})
	if err != nil {
		app.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	app.Router = router

	return app, nil
}

// startTasks brings up the queue workers and the nightly audit sweep.
func (a *Application) startTasks(cfg *config.Config) error {
	if err := scheduler.ValidateCronSchedule(cfg.Audit.CleanupSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", cfg.Audit.CleanupSchedule, err)
	}

	client, err := tasks.NewClient(cfg.Database.Path, tasks.ConfigFrom(cfg.Tasks))
	if err != nil {
		return fmt.Errorf("failed to initialize task queue: %w", err)
	}
	a.taskClient = client

	client.Register(tasks.NewCleanupAuditEventsQueue(a.audit))

	var taskCtx context.Context
	taskCtx, a.taskCancel = context.WithCancel(context.Background())
	go client.Start(taskCtx)

	a.scheduler = scheduler.NewAuditCleanupScheduler(client, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
	if err := a.scheduler.Start(taskCtx); err != nil {
		return fmt.Errorf("failed to start audit cleanup scheduler: %w", err)
	}
	return nil
}

// Shutdown stops background work in dependency order and closes the database.
func (a *Application) Shutdown(ctx context.Context) {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.taskClient != nil {
		a.taskClient.Stop(ctx)
		if a.taskCancel != nil {
			a.taskCancel()
		}
		if err := a.taskClient.Close(); err != nil {
			logrus.WithError(err).Warn("Error closing task client")
		}
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.audit != nil {
		a.audit.Wait()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logrus.WithError(err).Warn("Error closing database")
		}
	}
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout. onShutdown runs after the server stops accepting
// requests.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	// SIGKILL can't be caught, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if onShutdown != nil {
			onShutdown(context.Background())
		}
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logrus.WithFields(logrus.Fields{"signal": sig.String(), "timeout": timeout}).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	logrus.Info("Server exiting")
	return nil
}

// Run configures logging, builds the application and serves it.
func Run(cfg *config.Config, version string) error {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	logrus.WithField("version", version).Info("Starting Book Cafe API")

	app, err := NewApplication(cfg, version)
	if err != nil {
		return err
	}

	return Serve(app.Router, cfg, app.Shutdown)
}

// SeedDemo fills the configured database with demo records.
func SeedDemo(ctx context.Context, cfg *config.Config) (demo.Summary, error) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return demo.Summary{}, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return demo.Seed(ctx, demo.Stores{
		Categories: categories.NewRepository(db.DB),
		Books:      books.NewRepository(db.DB),
		Menus:      menus.NewRepository(db.DB),
		Orders:     orders.NewRepository(db.DB),
	})
}

// CleanupAudit runs a single audit retention sweep outside the server.
func CleanupAudit(cfg *config.Config, retentionDays int) (int64, error) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if retentionDays <= 0 {
		retentionDays = cfg.Audit.RetentionDays
	}
	service := audit.NewService(auditrepo.NewRepository(db.DB))
	return tasks.CleanupAuditEvents(service, retentionDays)
}
