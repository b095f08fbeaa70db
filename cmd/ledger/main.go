package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guild-wager-platform/config"
	httpHandler "guild-wager-platform/internal/adapter/http/handler"
	pgStorage "guild-wager-platform/internal/adapter/storage/postgres"
	redisStorage "guild-wager-platform/internal/adapter/storage/redis"
	"guild-wager-platform/internal/core/ports"
	"guild-wager-platform/internal/service"
	"guild-wager-platform/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "wager-ledger",
		Usage: "guild wager ledger service: wallet system of record, sync surface",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting wager ledger service")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("connecting to Redis: %w", err)
	}
	defer rdb.Close() //nolint:errcheck
	log.Info().Msg("Redis connected")

	guildWalletRepo := pgStorage.NewGuildWalletRepo(pool)
	userWalletRepo := pgStorage.NewUserWalletRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	betRepo := pgStorage.NewBetRepo(pool)
	qualRepo := pgStorage.NewQualificationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	codec, err := service.NewSecretCodec(cfg.Secrets, logger.Component(log, "codec"))
	if err != nil {
		return fmt.Errorf("initializing secret codec: %w", err)
	}

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupLedgerRouter(httpHandler.LedgerRouterDeps{
		GuildWallets:   guildWalletRepo,
		UserWallets:    userWalletRepo,
		Events:         eventRepo,
		Bets:           betRepo,
		Qualifications: qualRepo,
		Transactor:     transactor,
		Cipher:         codec,
		InternalSecret: cfg.Sync.Secret,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down ledger service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Ledger service exited")
	return nil
}
