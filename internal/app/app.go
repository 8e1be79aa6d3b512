// This package is used to initialize the application. It has dependencies on most
// other packages. Other packages can depend on it as a quick way to get access to
// all the dependencies.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/spinwheel/internal/bgjobs"
	"github.com/petuhovskiy/spinwheel/internal/conf"
	"github.com/petuhovskiy/spinwheel/internal/log"
	"github.com/petuhovskiy/spinwheel/internal/models"
	"github.com/petuhovskiy/spinwheel/internal/render"
	"github.com/petuhovskiy/spinwheel/internal/repos"
	"github.com/petuhovskiy/spinwheel/internal/wheel"
)

// DrawSaver persists finished draws.
type DrawSaver interface {
	Save(draw *models.Draw) error
}

type App struct {
	Config   *conf.App
	DB       *gorm.DB
	Repo     *Repos
	Saver    DrawSaver
	Register *bgjobs.Register
	Renderer wheel.Renderer
}

// rendered animation frames per logged frame, roughly one line a second
const renderEvery = 60

func NewApp(cfg *conf.App) (*App, error) {
	a := &App{
		Config:   cfg,
		Saver:    repos.NopSaver{},
		Register: bgjobs.NewRegister(),
		Renderer: render.NewLogger(context.Background(), renderEvery),
	}

	if cfg.PostgresDSN == "" {
		log.Warn(context.Background(), "POSTGRES_DSN is not set, draws will not be persisted")
		return a, nil
	}

	db, err := connectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	repo, err := createRepos(db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create repos: %w", err)
	}

	a.DB = db
	a.Repo = repo
	a.Saver = repos.NewDrawSaver(repo.Draw, repo.SeqDraw, cfg.DrawName)
	return a, nil
}

// WheelOptions returns options shared by every wheel of the application.
func (a *App) WheelOptions() []wheel.Option {
	return []wheel.Option{
		wheel.WithDuration(a.Config.SpinDuration),
		wheel.WithFrameInterval(a.Config.FrameInterval),
		wheel.WithRenderer(a.Renderer),
		wheel.WithRegister(a.Register),
	}
}

func (a *App) StartPrometheus() {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler())
		err := http.ListenAndServe(a.Config.PrometheusBind, mux)
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(context.TODO(), "prometheus server error", zap.Error(err))
		}
	}()
}

func connectDB(cfg *conf.App) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

type Repos struct {
	Draw     *repos.DrawRepo
	Sequence *repos.SequenceRepo
	SeqDraw  *repos.Sequence
}

func createRepos(db *gorm.DB, cfg *conf.App) (*Repos, error) {
	err := db.AutoMigrate(
		&models.Sequence{},
		&models.Draw{},
		&models.DrawSpin{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if cfg.DebugDB {
		db = db.Debug()
	}

	drawRepo := repos.NewDrawRepo(db)
	sequenceRepo := repos.NewSequenceRepo(db)

	drawSeq, err := sequenceRepo.Get(fmt.Sprintf("draw-%s", cfg.DrawName))
	if err != nil {
		return nil, fmt.Errorf("failed to get draw sequence: %w", err)
	}

	return &Repos{
		Draw:     drawRepo,
		Sequence: sequenceRepo,
		SeqDraw:  drawSeq,
	}, nil
}
