package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stoik/link-guard/internal/adapters/discord"
	"github.com/stoik/link-guard/internal/adapters/links"
	"github.com/stoik/link-guard/internal/adapters/notify"
	"github.com/stoik/link-guard/internal/adapters/storage"
	"github.com/stoik/link-guard/internal/application"
	"github.com/stoik/link-guard/internal/config"
	"github.com/stoik/link-guard/internal/domain/detection"
	"github.com/stoik/link-guard/internal/metrics"
	"github.com/stoik/link-guard/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Run wires every adapter from cfg and serves until ctx is canceled or a
// component fails
func Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	if err := cfg.RequireToken(); err != nil {
		return err
	}

	store, err := NewStore(cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	gateway, err := discord.NewGateway(cfg.DiscordToken, cfg.ShardCount, log)
	if err != nil {
		return err
	}

	m := metrics.New()
	notifier := notify.NewBreakerNotifier(
		gateway.Notifier(),
		cfg.NotifyBreakerTimeout,
		cfg.NotifyBreakerMaxFailures,
		discord.IsClientError,
	)
	service := application.NewLinkGuardService(
		links.NewXurlsFinder(),
		detection.NewDetector(cfg.Watchlist),
		notifier,
		store,
		m,
		log,
	)

	log.WithFields(logrus.Fields{
		"shards":    cfg.ShardCount,
		"watchlist": cfg.Watchlist.Domains(),
	}).Info("starting link-guard")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gateway.Run(ctx, service)
	})

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.RunServer(ctx, cfg.MetricsAddr, m, log)
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("app: stopped with error")
		return err
	}

	log.Info("app: stopped gracefully")
	return nil
}

// NewStore returns PostgreSQL storage when DATABASE_URL is set, in-memory storage otherwise
func NewStore(cfg config.Config, log *logrus.Logger) (ports.Storage, error) {
	if cfg.DatabaseURL == "" {
		log.WithField("capacity", cfg.MemoryStoreCapacity).Info("no database configured, keeping warnings in memory")
		return storage.NewMemoryStore(cfg.MemoryStoreCapacity), nil
	}

	store, err := storage.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.InitSchema(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Info("connected to PostgreSQL")
	return store, nil
}

// NewScanner builds a service for offline scanning with ScanText
//
// Warnings from HandleMessage are discarded and kept only in process memory.
func NewScanner(cfg config.Config, log *logrus.Logger) *application.LinkGuardService {
	return NewOfflineService(cfg, storage.NewMemoryStore(1), log)
}

// NewOfflineService builds a service over store that never reaches a chat platform
func NewOfflineService(cfg config.Config, store ports.Storage, log *logrus.Logger) *application.LinkGuardService {
	return application.NewLinkGuardService(
		links.NewXurlsFinder(),
		detection.NewDetector(cfg.Watchlist),
		notify.Discard{},
		store,
		metrics.New(),
		log,
	)
}
