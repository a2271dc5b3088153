package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/secure-notes/internal/common/config"
	"github.com/AlibekovAA/secure-notes/internal/common/constants"
	"github.com/AlibekovAA/secure-notes/internal/common/db"
	"github.com/AlibekovAA/secure-notes/internal/common/logger"
	noterepo "github.com/AlibekovAA/secure-notes/internal/note/repository"
	userrepo "github.com/AlibekovAA/secure-notes/internal/user/repository"
)

type App struct {
	Log      *logger.Logger
	Pool     *pgxpool.Pool
	UserRepo userrepo.Repository
	NoteRepo noterepo.Repository

	stopMetrics context.CancelFunc
}

type NotesApp struct {
	App
	Config config.NotesConfig
}

func NewNotesApp() (*NotesApp, error) {
	log, err := initializeLogger("notes")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.LoadNotesConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
		return nil, err
	}
	log.SetLevel(cfg.LogLevel)

	if cfg.MigrateOnStart {
		if err := db.RunMigrations(log, cfg.DatabaseURL); err != nil {
			return nil, err
		}
	}

	app, err := initializeApp(log, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	return &NotesApp{
		App:    *app,
		Config: cfg,
	}, nil
}

// Close stops pool sampling and releases every pooled connection.
func (a *App) Close(_ context.Context) error {
	if a.stopMetrics != nil {
		a.stopMetrics()
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
	return nil
}

func initializeApp(log *logger.Logger, databaseURL string) (*App, error) {
	pool := db.NewPool(log, databaseURL)
	if pool == nil {
		return nil, fmt.Errorf("failed to initialize database pool")
	}

	metricsCtx, stopMetrics := context.WithCancel(context.Background())
	db.StartPoolMetrics(metricsCtx, pool, constants.DBPoolMetricsInterval)

	return &App{
		Log:         log,
		Pool:        pool,
		UserRepo:    userrepo.NewPgRepository(pool),
		NoteRepo:    noterepo.NewPgRepository(pool),
		stopMetrics: stopMetrics,
	}, nil
}

func initializeLogger(serviceName string) (*logger.Logger, error) {
	return logger.New(os.Getenv("LOG_DIR"), serviceName, os.Getenv("LOG_LEVEL"))
}
