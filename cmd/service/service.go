// @title        Student Registry API
// @version      1.0
// @description  Student records with username/password login and admin-only changes.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /api/auth/login
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"student-registry/internal/cache"
	"student-registry/internal/config"
	"student-registry/internal/database"
	"student-registry/internal/handler"
	"student-registry/internal/logger"
	mw "student-registry/internal/middleware"
	"student-registry/internal/router"
	"student-registry/internal/service"
	"student-registry/internal/store"
	"student-registry/internal/store/postgres"
	"student-registry/internal/store/sqlite"
	"student-registry/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "student-registry/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	configFlag   = flag.String("config", "", "path to a YAML config file")
	rollbackFlag = flag.Bool("rollback", false, "roll back every postgres migration and exit")
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newSQLiteStore  = sqlite.New
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func configPath() string {
	if *configFlag != "" {
		return *configFlag
	}
	return os.Getenv("CONFIG_PATH")
}

func openStore(ctx context.Context, cfg config.Storage) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := newSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		db, err := newPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return postgres.New(db), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func rollback(cfg config.Storage) error {
	if cfg.Driver != config.DriverPostgres {
		return fmt.Errorf("rollback needs the %s driver, got %q", config.DriverPostgres, cfg.Driver)
	}
	if err := rollbackFn(cfg.DatabaseURL); err != nil {
		return err
	}
	logger.Info().Msg("all migrations rolled back")
	return nil
}

func run() error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		return err
	}
	logger.Configure(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	if *rollbackFlag {
		return rollback(cfg.Storage)
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	defer st.Close()

	cch, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer cch.Close()

	tokens, err := service.NewTokenManager(service.TokenConfig{
		Secret:    cfg.JWT.Secret,
		Algorithm: cfg.JWT.Algorithm,
		TTL:       cfg.JWT.TTL,
		Issuer:    cfg.JWT.Issuer,
	})
	if err != nil {
		return err
	}

	hashers := newWorkerPool(cfg.Hashing.Workers)
	defer hashers.Stop()

	if cfg.Admin.Password != "" {
		created, err := service.NewAccounts(st, tokens, hashers).EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			logger.Info().Str("username", cfg.Admin.Username).Msg("admin account created")
		}
	} else {
		logger.Warn().Msg("ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(mw.RequestLogger())
	e.Use(middleware.Recover())

	router.Setup(e, st, cch, tokens, hashers)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Str("storage", cfg.Storage.Driver).Msg("starting server")
	return startServer(e, cfg.Addr)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		logger.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
