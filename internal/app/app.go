package app

import (
	"context"
	"fmt"

	"go-guardconsole/internal/bootstrap"
	"go-guardconsole/internal/cacheadmin"
	"go-guardconsole/internal/config"
	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/events"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/messaging/kafka/consumer"
	"go-guardconsole/internal/messaging/kafka/producer"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// infra holds the connections shared by the api and the consumer.
type infra struct {
	rdb     *redis.Client
	db      *gorm.DB
	closers []func()
}

func (i *infra) close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		i.closers[n]()
	}
}

func connectInfra(cfg config.Config, logger *zap.Logger) (*infra, error) {
	in := &infra{}

	if cfg.NeedsRedis() {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
		if err != nil {
			return nil, err
		}
		in.rdb = rdb
		in.closers = append(in.closers, func() { _ = rdb.Close() })
	}

	if cfg.CredentialBackend == config.BackendPostgres {
		db, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
			Host:     cfg.DBHost,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			Port:     cfg.DBPort,
			SSLMode:  cfg.DBSSLMode,
		}, connectRetries, logger)
		if err != nil {
			in.close()
			return nil, err
		}
		in.db = db
		in.closers = append(in.closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}

	return in, nil
}

func newCredentialStore(cfg config.Config, in *infra) (credential.Store, error) {
	switch cfg.CredentialBackend {
	case config.BackendRedis:
		return credential.NewRedisStore(in.rdb, cfg.CredentialTTL), nil
	case config.BackendPostgres:
		store := credential.NewGormStore(in.db)
		if err := store.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("migrate credential table: %w", err)
		}
		return store, nil
	default:
		return credential.NewMemoryStore(), nil
	}
}

func newQueryCache(cfg config.Config, in *infra) query.Cache {
	if cfg.CacheBackend == config.BackendRedis {
		return query.NewRedisCache(in.rdb)
	}
	return query.NewMemoryCache()
}

func newQueryClient(cfg config.Config, cache query.Cache, logger *zap.Logger) *query.Client {
	opts := query.DefaultOptions()
	opts.StaleTime = cfg.QueryStaleTime
	opts.GCTime = cfg.QueryGCTime
	opts.MaxRetries = cfg.QueryMaxRetries
	return query.NewClient(cache, opts, logger)
}

// newUpstreams builds the auth and core API clients sharing one credential
// policy. Cleared credentials are written to the audit log.
func newUpstreams(cfg config.Config, store credential.Store, audit bootstrap.AuditLogger, logger *zap.Logger) (authAPI, coreAPI *httpclient.Client, err error) {
	authAPI, err = httpclient.New(httpclient.Config{Name: "auth", BaseURL: cfg.AuthAPIURL, Timeout: cfg.UpstreamTimeout}, logger)
	if err != nil {
		return nil, nil, err
	}
	coreAPI, err = httpclient.New(httpclient.Config{Name: "core", BaseURL: cfg.CoreAPIURL, Timeout: cfg.UpstreamTimeout}, logger)
	if err != nil {
		return nil, nil, err
	}

	policy := httpclient.NewPolicy(store, logger,
		httpclient.WithRedirectOnUnauthorized(cfg.RedirectOnUnauthorized),
		httpclient.WithClearedHook(func(ctx context.Context, path string) {
			audit.Log(ctx, bootstrap.AuditLog{
				Action:  bootstrap.AuditCredentialCleared,
				Message: "Upstream rejected the session token",
				Meta:    map[string]any{"path": path},
			})
		}),
	)
	policy.Apply(authAPI, coreAPI)
	return authAPI, coreAPI, nil
}

// BuildApp wires infrastructure, modules and routes into router. The
// returned func releases connections and stops in-process consumers.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger, audit bootstrap.AuditLogger) (func(), error) {
	in, err := connectInfra(cfg, logger)
	if err != nil {
		return nil, err
	}

	store, err := newCredentialStore(cfg, in)
	if err != nil {
		in.close()
		return nil, err
	}

	authAPI, coreAPI, err := newUpstreams(cfg, store, audit, logger)
	if err != nil {
		in.close()
		return nil, err
	}

	cache := newQueryCache(cfg, in)
	queries := newQueryClient(cfg, cache, logger)

	// Each api instance is its own origin so it can skip its own broadcasts.
	origin := uuid.New().String()
	var publisher cacheadmin.Publisher
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries, logger)
		if err != nil {
			in.close()
			return nil, err
		}
		in.closers = append(in.closers, func() { _ = writer.Close() })
		publisher = producer.NewPublisher(writer)
	}
	cacheAdmin := cacheadmin.NewService(cache, publisher, origin, logger)

	if err := registerModules(router, modules{
		cfg:        cfg,
		store:      store,
		authAPI:    authAPI,
		coreAPI:    coreAPI,
		queries:    queries,
		cacheAdmin: cacheAdmin,
		logger:     logger,
	}); err != nil {
		in.close()
		return nil, err
	}

	if cfg.KafkaBroker != "" {
		startLocalConsumers(cfg, in, cacheAdmin, origin, logger)
	}

	logger.Info("app built",
		zap.String("cache_backend", cfg.CacheBackend),
		zap.String("credential_backend", cfg.CredentialBackend),
		zap.Bool("kafka", cfg.KafkaBroker != ""),
	)
	return in.close, nil
}

// startLocalConsumers keeps an in-process cache in step with the cluster.
// Every instance reads under its own group so each one sees every event.
// A shared redis cache needs no broadcast replay and leaves defaults
// events to cmd/consumer.
func startLocalConsumers(cfg config.Config, in *infra, cacheAdmin cacheadmin.Service, origin string, logger *zap.Logger) {
	if cfg.CacheBackend != config.BackendMemory {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	instanceGroup := cfg.KafkaGroupID + "-" + origin

	invalidated := connection.NewKafkaReader(cfg.KafkaBroker, events.CacheInvalidatedTopic, instanceGroup)
	defaultsChanged := connection.NewKafkaReader(cfg.KafkaBroker, events.GuardDefaultsChangedTopic, instanceGroup)

	go consumer.ConsumeCacheInvalidated(ctx, invalidated, cacheAdmin, origin, logger)
	go consumer.ConsumeGuardDefaultsChanged(ctx, defaultsChanged, cacheAdmin, logger)

	in.closers = append(in.closers, func() {
		cancel()
		_ = invalidated.Close()
		_ = defaultsChanged.Close()
	})
}
