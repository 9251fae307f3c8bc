package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StayEscrow/internal/config"
	"github.com/stpnv0/StayEscrow/internal/handler"
	"github.com/stpnv0/StayEscrow/internal/ipfs"
	"github.com/stpnv0/StayEscrow/internal/ledger"
	"github.com/stpnv0/StayEscrow/internal/middleware"
	"github.com/stpnv0/StayEscrow/internal/notification"
	"github.com/stpnv0/StayEscrow/internal/payment"
	"github.com/stpnv0/StayEscrow/internal/personhood"
	"github.com/stpnv0/StayEscrow/internal/repository"
	"github.com/stpnv0/StayEscrow/internal/router"
	"github.com/stpnv0/StayEscrow/internal/scheduler"
	"github.com/stpnv0/StayEscrow/internal/service"
	"github.com/stpnv0/StayEscrow/internal/session"
	"github.com/stpnv0/StayEscrow/internal/siwe"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	ledger     *ledger.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"StayEscrow",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initLedger(); err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ReadTimeout)
	defer cancel()
	if err := db.Master.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initLedger() error {
	lc := a.cfg.Ledger
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ReadTimeout)
	defer cancel()

	client, err := ledger.Dial(ctx, ledger.Config{
		RPCURL:           lc.RPCURL,
		ChainID:          lc.ChainID,
		RelayerKey:       lc.RelayerKey,
		PropertyContract: common.HexToAddress(lc.PropertyContract),
		BookingContract:  common.HexToAddress(lc.BookingContract),
		StakingContract:  common.HexToAddress(lc.StakingContract),
		DisputeContract:  common.HexToAddress(lc.DisputeContract),
		Wait: ledger.WaitPolicy{
			Timeout:  lc.WaitTimeout,
			Attempts: lc.WaitAttempts,
			Delay:    lc.WaitDelay,
			MaxDelay: lc.WaitMaxDelay,
			Factor:   lc.WaitFactor,
		},
	}, a.log)
	if err != nil {
		return fmt.Errorf("connecting to ledger: %w", err)
	}

	a.ledger = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "ledger connected",
		logger.Int64("chain_id", lc.ChainID),
		logger.String("relayer", client.Relayer().Hex()),
	)

	return nil
}

func (a *App) initServices() error {
	nonceRepo := repository.NewNonceRepo(a.db)
	intentRepo := repository.NewPaymentIntentRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	sessions := session.NewIssuer(a.cfg.Auth.SessionSecret, a.cfg.Auth.SessionTTL)
	verifier := siwe.NewVerifier(a.cfg.Ledger.ChainID,
		siwe.WithDomain(a.cfg.Auth.SIWEDomain),
		siwe.WithContractWallets(a.ledger),
	)

	personhoodClient := personhood.New(personhood.Config{
		BaseURL: a.cfg.Personhood.BaseURL,
		AppID:   a.cfg.Personhood.AppID,
		Timeout: a.cfg.Personhood.Timeout,
	})
	paymentClient := payment.New(payment.Config{
		BaseURL: a.cfg.Payment.BaseURL,
		AppID:   a.cfg.Payment.AppID,
		APIKey:  a.cfg.Payment.APIKey,
		Timeout: a.cfg.Payment.Timeout,
	})
	if !paymentClient.Configured() {
		a.log.Warn("payment verifier credentials are missing, payment confirmations will be rejected")
	}
	images := ipfs.New(ipfs.Config{
		APIURL:  a.cfg.IPFS.APIURL,
		Timeout: a.cfg.IPFS.Timeout,
	})

	authService := service.NewAuthService(nonceRepo, verifier, sessions, a.cfg.Auth.NonceTTL, a.log)
	personhoodService := service.NewPersonhoodService(personhoodClient, sessions, a.cfg.Personhood.Action, a.log)
	paymentService := service.NewPaymentService(intentRepo, paymentClient, a.cfg.Auth.PaymentTTL, a.log)
	stakingService := service.NewStakingService(a.ledger, a.cfg.Ledger.RequireStake, a.log)
	propertyService := service.NewPropertyService(a.ledger, stakingService, images, a.log)
	escrow := common.HexToAddress(a.cfg.Ledger.BookingContract)
	bookingService := service.NewBookingService(a.ledger, a.ledger, intentRepo, stakingService, n, escrow, a.log)
	disputeService := service.NewDisputeService(a.ledger, a.ledger, n, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
		scheduler.NewPurger("auth_nonces", authService),
		scheduler.NewPurger("payment_intents", paymentService),
	)

	h := handler.NewHandler(handler.Services{
		Auth:       authService,
		Personhood: personhoodService,
		Payment:    paymentService,
		Property:   propertyService,
		Booking:    bookingService,
		Staking:    stakingService,
		Dispute:    disputeService,
	}, handler.Config{
		CookieDomain:   a.cfg.Auth.CookieDomain,
		CookieSecure:   a.cfg.Auth.CookieSecure,
		ChallengeTTL:   a.cfg.Auth.NonceTTL,
		SessionTTL:     a.cfg.Auth.SessionTTL,
		MaxUploadBytes: a.cfg.IPFS.MaxUploadBytes,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		sessions,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.ledger.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "ledger connection closed")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
