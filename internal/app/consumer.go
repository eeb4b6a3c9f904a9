package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-guardconsole/internal/cacheadmin"
	"go-guardconsole/internal/config"
	"go-guardconsole/internal/events"
	"go-guardconsole/internal/messaging/kafka/consumer"
	"go-guardconsole/internal/shared/connection"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunConsumer invalidates the shared redis cache when the core API reports
// changed guard defaults. It blocks until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	// The consumer only makes sense against a cache the api instances share,
	// and it never reads credentials.
	cfg.CacheBackend = config.BackendRedis
	cfg.CredentialBackend = config.BackendMemory

	in, err := connectInfra(cfg, logger)
	if err != nil {
		return err
	}
	defer in.close()

	cache := newQueryCache(cfg, in)
	cacheAdmin := cacheadmin.NewService(cache, nil, "consumer-"+uuid.New().String(), logger)

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.GuardDefaultsChangedTopic, cfg.KafkaGroupID)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeGuardDefaultsChanged(ctx, reader, cacheAdmin, logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
