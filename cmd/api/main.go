package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-ledger/config"
	httpHandler "wallet-ledger/internal/adapter/http/handler"
	"wallet-ledger/internal/adapter/storage/memory"
	pgStorage "wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// repositories is the storage surface the services are built on.
type repositories struct {
	transactor   ports.DBTransactor
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
	exercices    ports.ExerciceRepository
	snapshots    ports.SnapshotRepository
	funds        ports.FrozenFundRepository
	qrTransfers  ports.QRTransferRepository
	shares       ports.FamilyShareRepository
	categories   ports.CategoryRepository
	checkers     []ports.HealthChecker
	close        func()
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Database.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting wallet ledger")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("session.secret is required (WLG_SESSION_SECRET)")
	}

	ctx := context.Background()

	repos, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer repos.close()

	// Redis is optional: without it the idempotency fast path and rate
	// limiting are off and the durable store alone decides.
	var (
		idempCache     ports.IdempotencyCache
		rateLimitStore *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		idempCache = redisStorage.NewIdempotencyCache(rdb, cfg.Redis.KeyPrefix)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb, cfg.Redis.KeyPrefix)
		repos.checkers = append(repos.checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: idempotency cache and rate limiting are off")
	}

	journal := service.NewJournal(repos.transactor, repos.wallets, repos.transactions, repos.snapshots, repos.exercices)

	exerciceSvc := service.NewExerciceService(journal, repos.qrTransfers, logger.Component(log, "exercice"))
	walletSvc := service.NewWalletService(journal, repos.funds, repos.qrTransfers, repos.shares, repos.categories, logger.Component(log, "wallet"))
	ledgerSvc := service.NewLedgerService(journal, logger.Component(log, "ledger"))
	freezeSvc := service.NewFreezeService(journal, repos.funds, logger.Component(log, "freeze"))
	qrSvc := service.NewQRTransferService(journal, repos.qrTransfers, repos.funds, idempCache, cfg.Ledger.IdempotencyTTL, logger.Component(log, "qr_transfer"))
	transferSvc := service.NewTransferService(journal, logger.Component(log, "transfer"))
	businessSvc := service.NewBusinessPaymentService(journal, idempCache, cfg.Ledger.IdempotencyTTL, logger.Component(log, "business_payment"))
	shareSvc := service.NewFamilyShareService(repos.wallets, repos.transactions, repos.shares, cfg.Ledger.ShareMaxTTL, logger.Component(log, "family_share"))
	analyticsSvc := service.NewAnalyticsService(repos.transactions, logger.Component(log, "analytics"))
	sessionSvc := service.NewJWTSessionService(repos.wallets, repos.exercices, cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)

	firstYear := cfg.Ledger.FirstYear(time.Now().UTC())
	if _, err := exerciceSvc.EnsureYear(ctx, firstYear); err != nil && !errors.Is(err, apperror.ErrYearExists(firstYear)) {
		log.Fatal().Err(err).Int("year", firstYear).Msg("Failed to open initial fiscal year")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		ExerciceSvc:    exerciceSvc,
		LedgerSvc:      ledgerSvc,
		FreezeSvc:      freezeSvc,
		QRTransferSvc:  qrSvc,
		TransferSvc:    transferSvc,
		BusinessSvc:    businessSvc,
		ShareSvc:       shareSvc,
		AnalyticsSvc:   analyticsSvc,
		SessionSvc:     sessionSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: repos.checkers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openStorage builds the repositories for the configured driver. The memory
// driver keeps everything in process and is lost on exit.
func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.Database.Driver == "memory" {
		log.Warn().Msg("Using in-memory storage: data is not persisted")
		store := memory.NewStore()
		r := store.Repositories()
		return &repositories{
			transactor:   store,
			wallets:      r.Wallets,
			transactions: r.Transactions,
			exercices:    r.Exercices,
			snapshots:    r.Snapshots,
			funds:        r.FrozenFunds,
			qrTransfers:  r.QRTransfers,
			shares:       r.Shares,
			categories:   r.Categories,
			close:        func() {},
		}, nil
	}

	if cfg.Database.AutoMigrate {
		if err := pgStorage.RunMigrations(cfg.Database.DSN()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("Database migrations applied")
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	return &repositories{
		transactor:   pgStorage.NewTransactor(pool),
		wallets:      pgStorage.NewWalletRepo(pool),
		transactions: pgStorage.NewTransactionRepo(pool),
		exercices:    pgStorage.NewExerciceRepo(pool),
		snapshots:    pgStorage.NewSnapshotRepo(pool),
		funds:        pgStorage.NewFrozenFundRepo(pool),
		qrTransfers:  pgStorage.NewQRTransferRepo(pool),
		shares:       pgStorage.NewFamilyShareRepo(pool),
		categories:   pgStorage.NewCategoryRepo(pool),
		checkers:     []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
		close:        pool.Close,
	}, nil
}
