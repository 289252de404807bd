package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/arcade-backend/internal/config"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/flags"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
	"github.com/rocketscienceinc/arcade-backend/internal/repository"
	"github.com/rocketscienceinc/arcade-backend/internal/repository/storage"
	"github.com/rocketscienceinc/arcade-backend/internal/usecase"
	"github.com/rocketscienceinc/arcade-backend/transport/rest"
	"github.com/rocketscienceinc/arcade-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err := sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	catalog, err := flags.LoadCatalog()
	if err != nil {
		return fmt.Errorf("could not load flag commands: %w", err)
	}

	useCases := newUseCases(logger, conf, redisStorage, sqliteStorage, catalog)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.New(logger, conf.StaticDir, conf.HTTPPort, conf.SocketPort).Start(groupCtx, conf.HTTPPort); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if err := websocket.New(logger, useCases).Start(groupCtx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newUseCases(
	logger *slog.Logger,
	conf *config.Config,
	redisStorage *storage.RedisStorage,
	sqliteStorage *storage.Storage,
	catalog *flags.Catalog,
) websocket.UseCases {
	client, ttl := redisStorage.Connection, conf.Redis.SessionTTL
	rnd := pkg.NewRandom()

	results := usecase.NewResultManager(logger, repository.NewResultRepository(sqliteStorage.Connection))

	return websocket.UseCases{
		Tiles: usecase.NewTilesManager(
			logger,
			repository.NewSessionRepository[entity.TileGame](client, entity.GameTiles, ttl),
			repository.NewBestScoreRepository(client, conf.BestScoreKey),
			results,
			rnd,
		),
		Omok: usecase.NewOmokManager(
			logger,
			repository.NewSessionRepository[entity.OmokGame](client, entity.GameOmok, ttl),
		),
		OddColor: usecase.NewOddColorManager(
			logger,
			repository.NewSessionRepository[entity.OddColorGame](client, entity.GameOddColor, ttl),
			results,
			rnd,
		),
		ColorMatch: usecase.NewColorMatchManager(
			logger,
			repository.NewSessionRepository[entity.ColorMatchGame](client, entity.GameColorMatch, ttl),
			results,
			rnd,
		),
		Flags: usecase.NewFlagsManager(
			logger,
			repository.NewSessionRepository[entity.FlagGame](client, entity.GameFlags, ttl),
			flags.NewCaller(catalog),
			results,
			rnd,
		),
		Results: results,
	}
}
