package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/cvdelivery"
	"portfolio-backend/internal/github"
	"portfolio-backend/internal/notify"
	"portfolio-backend/internal/pdfconvert"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/storage/object"
	localstore "portfolio-backend/internal/shared/storage/object/local"
	miniostore "portfolio-backend/internal/shared/storage/object/minio"
	s3store "portfolio-backend/internal/shared/storage/object/s3"
	"portfolio-backend/internal/shared/telemetry"
)

const (
	pageFetchTimeout = 10 * time.Second
	githubTimeout    = 15 * time.Second
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	Publisher       notify.Publisher
	ContactRepo     contact.Repo
	ContactService  *contact.Service
	CVService       *cvdelivery.Service
	GitHubService   *github.Service
	PDFService      *pdfconvert.Service
	NotifyProcessor MessageProcessor
}

// MessageProcessor allows callers to override notification processing for tests.
type MessageProcessor interface {
	Process(ctx context.Context, msg notify.Message) error
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	publisher, err := buildPublisher(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Store:     store,
		Publisher: publisher,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		CVHandler:      cvdelivery.NewHandler(app.CVService),
		ContactHandler: contact.NewHandler(app.ContactService),
		GitHubHandler:  github.NewHandler(app.GitHubService),
		PDFHandler:     pdfconvert.NewHandler(app.PDFService),
		Limiter:        middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	// Dev databases are migrated on start; other environments run cmd/migrate.
	if cfg.IsDevLike() {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			telemetry.Warn("bootstrap.db.memory", map[string]any{"reason": "migrations failed", "error": err.Error()})
			_ = sqlDB.Close()
			return nil, nil
		}
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "minio":
		return miniostore.New(ctx, miniostore.Options{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			UseSSL:    cfg.MinIOUseSSL,
			Bucket:    cfg.MinIOBucket,
			Region:    cfg.AWSRegion,
		})
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildPublisher(ctx context.Context, cfg config.Config) (notify.Publisher, error) {
	if strings.TrimSpace(cfg.ContactQueueURL) == "" {
		return notify.Noop{}, nil
	}
	pub, err := notify.NewSQSPublisher(ctx, cfg.AWSRegion, cfg.ContactQueueURL)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.notify.disabled", map[string]any{"error": err.Error()})
			return notify.Noop{}, nil
		}
		return nil, err
	}
	return pub, nil
}

func buildServices(ctx context.Context, app *App) error {
	cfg := app.Config

	var contactRepo contact.Repo
	if app.DB != nil {
		contactRepo = &contact.PGRepo{DB: app.DB}
	} else {
		contactRepo = contact.NewMemoryRepo()
	}

	fetcher := pdfconvert.NewHTTPFetcher(pageFetchTimeout)
	renderer := pdfconvert.NewClient(cfg.PDFRenderURL, cfg.PDFRenderAPIKey, cfg.PDFRenderTimeout)
	if strings.TrimSpace(cfg.PDFRenderURL) == "" {
		telemetry.Warn("bootstrap.pdf_render.disabled", map[string]any{"reason": "PDF_RENDER_URL empty"})
	}

	app.ContactRepo = contactRepo
	app.ContactService = contact.NewService(contactRepo, app.Publisher)
	app.CVService = cvdelivery.NewService(app.Store, renderer, fetcher, cfg.FrontendBaseURLs)
	app.PDFService = &pdfconvert.Service{Renderer: renderer, Fetcher: fetcher}
	app.GitHubService = github.NewService(github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, githubTimeout))

	processor, err := buildProcessor(ctx, cfg, contactRepo)
	if err != nil {
		return err
	}
	app.NotifyProcessor = processor

	if app.ContactService == nil || app.CVService == nil || app.GitHubService == nil {
		return errors.New("failed to initialize services")
	}
	return nil
}

func buildProcessor(ctx context.Context, cfg config.Config, marker notify.Marker) (*notify.Processor, error) {
	proc := &notify.Processor{Marker: marker, To: strings.TrimSpace(cfg.NotifyEmailTo)}
	if strings.TrimSpace(cfg.NotifyEmailFrom) == "" {
		return proc, nil
	}
	sender, err := notify.NewSESSender(ctx, cfg.AWSRegion, cfg.NotifyEmailFrom)
	if err != nil {
		return nil, err
	}
	proc.Sender = sender
	return proc, nil
}
