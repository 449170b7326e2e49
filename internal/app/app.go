package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/chain"
	"github.com/nftperks/raffleport/internal/config"
	"github.com/nftperks/raffleport/internal/events"
	"github.com/nftperks/raffleport/internal/handlers"
	"github.com/nftperks/raffleport/internal/orchestrator"
	"github.com/nftperks/raffleport/internal/pg"
	"github.com/nftperks/raffleport/internal/repo"
	"github.com/nftperks/raffleport/internal/service"
	"github.com/nftperks/raffleport/pkg/auth"
	"github.com/nftperks/raffleport/pkg/logger"
)

const balanceCacheMaxAge = 30 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	bus        *events.Bus
	deployment *orchestrator.DeploymentOrchestrator
	ending     *orchestrator.EndingOrchestrator

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	executor, err := chain.NewExecutor(cfg)
	if err != nil {
		zap.L().Error("chain executor init failed: ", zap.Error(err))
		return fmt.Errorf("can't init chain executor: %w", err)
	}

	clock := cache.SystemClock{}
	a.bus = events.NewBus()
	balanceCache := cache.NewBalanceCache(clock, balanceCacheMaxAge)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, a.bus, balanceCache, clock)
	a.deployment = orchestrator.NewDeployment(a.srv.RaffleService, executor)
	a.ending = orchestrator.NewEnding(a.srv.RaffleService, a.repo.EntryRepo, executor)
	a.api = handlers.New(a.srv, a.deployment, a.ending)

	a.startCacheInvalidation(ctx, balanceCache)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startCacheInvalidation(ctx context.Context, balanceCache *cache.BalanceCache) {
	sub := a.bus.SubscribeBalance()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		balanceCache.WatchInvalidation(ctx, sub)
	}()
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.bus.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
