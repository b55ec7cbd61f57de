package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "processo-backend/internal/auth"
	"processo-backend/internal/cases"
	"processo-backend/internal/datajud"
	"processo-backend/internal/llm"
	openai "processo-backend/internal/llm/openai"
	"processo-backend/internal/shared/config"
	"processo-backend/internal/shared/server"
	"processo-backend/internal/shared/storage/db"
	"processo-backend/internal/shared/storage/object"
	localstore "processo-backend/internal/shared/storage/object/local"
	s3store "processo-backend/internal/shared/storage/object/s3"
	"processo-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	CasesRepo     cases.Repo
	UsersRepo     users.Repo
	Datajud       *datajud.Client
	Summarizer    llm.Summarizer
	CasesService  *cases.Service
	UsersService  *users.Service
	CasesHandler  *cases.Handler
	UsersHandler  *users.Handler
	GoogleAuth    *googleauth.GoogleService
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

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		CasesHandler: app.CasesHandler,
		UsersHandler: app.UsersHandler,
		GoogleAuth:   app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var caseRepo cases.Repo
	var userRepo users.Repo

	if app.DB != nil {
		caseRepo = &cases.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		caseRepo = cases.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	summarizer := llm.Summarizer(llm.Placeholder{})
	if app.Config.LLMProvider == "openai" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		summarizer = openaiClient
	}

	datajudClient := datajud.NewClient(app.Config.DatajudBaseURL, app.Config.DatajudTribunal, app.Config.DatajudAPIKey)

	caseSvc := &cases.Service{
		Repo:       caseRepo,
		Fetcher:    datajudClient,
		Summarizer: summarizer,
		Store:      app.Store,
	}
	userSvc := &users.Service{Repo: userRepo}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.CasesRepo = caseRepo
	app.UsersRepo = userRepo
	app.Datajud = datajudClient
	app.Summarizer = summarizer
	app.CasesService = caseSvc
	app.UsersService = userSvc
	app.CasesHandler = cases.NewHandler(caseSvc)
	app.UsersHandler = &users.Handler{Service: userSvc}
	app.GoogleAuth = googleAuthSvc

	return nil
}
