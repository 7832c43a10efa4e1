package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prajwal000/Egharbari-sub001/config"
	"github.com/prajwal000/Egharbari-sub001/events"
	"github.com/prajwal000/Egharbari-sub001/logger"
	"github.com/prajwal000/Egharbari-sub001/media"
	"github.com/prajwal000/Egharbari-sub001/ratelimit"
	"github.com/prajwal000/Egharbari-sub001/routes"
	"github.com/prajwal000/Egharbari-sub001/store/memory"
	"github.com/prajwal000/Egharbari-sub001/store/mongostore"
	"github.com/prajwal000/Egharbari-sub001/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, logCloser, err := logger.New(logger.Config{
		AppName: cfg.AppName,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Fluent: logger.FluentConfig{
			Enabled: cfg.FluentBit.Enabled,
			Host:    cfg.FluentBit.Host,
			Port:    cfg.FluentBit.Port,
			Level:   cfg.FluentBit.Level,
		},
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := routes.Deps{
		Tokens:    utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiry),
		Publisher: events.NopPublisher{},
	}

	switch cfg.StoreDriver {
	case "memory":
		log.Warn("using in-memory store; data is lost on restart")
		deps.Stores = memory.New()
	default:
		client, err := config.ConnectDB(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect from MongoDB", "error", err)
			}
		}()
		if err := mongostore.EnsureIndexes(ctx, client, cfg.Mongo); err != nil {
			return err
		}
		log.Info("connected to MongoDB", "database", cfg.Mongo.Database)
		deps.Stores = mongostore.New(client, cfg.Mongo)
		deps.DB = config.MongoPinger{Client: client}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = utils.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable; continuing", "addr", cfg.Redis.Addr, "error", err)
		}
		if cfg.Cache.Enabled {
			deps.Cache = utils.NewCache(redisClient, cfg.Cache.TTL)
		}
	}

	var limiterStore ratelimit.Store
	if cfg.RateLimit.Backend == "redis" && redisClient != nil {
		limiterStore = ratelimit.NewRedisStore(redisClient, cfg.AppName+":ratelimit:")
	} else {
		memStore := ratelimit.NewMemoryStore(cfg.RateLimit.MaxKeys)
		defer memStore.Close()
		limiterStore = memStore
	}
	deps.Limiter = ratelimit.New(limiterStore, cfg.RateLimit.Max, cfg.RateLimit.Window)

	if cfg.Cloudinary.Enabled() {
		deps.Uploader = media.NewCloudinaryClient(media.Config{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Folder:    cfg.Cloudinary.Folder,
		})
	} else {
		log.Warn("cloudinary not configured; uploads disabled")
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return err
		}
		defer publisher.Close()
		deps.Publisher = publisher
	}

	e := routes.NewServer(cfg, log, deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
