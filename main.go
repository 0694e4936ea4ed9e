package main

import (
	"context"
	"log"
	"net/http"

	"newspulse/api"
	"newspulse/cache"
	"newspulse/common"
	"newspulse/config"
	"newspulse/history"
	"newspulse/pipeline"
	"newspulse/providers"
	"newspulse/scheduler"
	"newspulse/shared/kafka"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.FromEnv()
	ctx := context.Background()

	provs := providers.FromConfig(cfg)
	log.Printf("Configured %d providers", len(provs))

	pipe := pipeline.New(provs, cfg.ProviderTimeout, providers.Query{
		Text:     cfg.Query,
		Limit:    cfg.FetchLimit,
		Language: cfg.Language,
	})
	pipe.ExtractSummaries = cfg.ExtractSummaries

	store := newCacheStore(cfg)
	svc := &pipeline.Service{
		Pipeline:        pipe,
		Cache:           cache.NewManager(store, cfg.CacheTTL),
		DefaultMinScore: cfg.MinScore,
		DefaultLimit:    cfg.Limit,
	}

	agg := &history.Aggregator{
		Refresh: svc.Refresh,
		Store:   newSnapshotStore(ctx, cfg),
	}

	sched, err := scheduler.New(cfg.SnapshotCron, agg)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
			Handler: &scheduler.RefreshHandler{Aggregator: agg},
		})
		if err != nil {
			log.Fatalf("Failed to create Kafka consumer: %v", err)
		}
		if err := consumer.Start(ctx); err != nil {
			log.Fatalf("Failed to start Kafka consumer: %v", err)
		}
		defer consumer.Close()
	}

	r := api.NewRouter(svc, agg)
	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/trending")
	log.Println("  GET  /api/historical")
	log.Println("  GET  /api/providers")
	log.Println("  POST /api/refresh")
	log.Println("  POST /api/refresh/snapshot")
	log.Println("  GET  /api/health")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newCacheStore picks the Redis-backed cache store when REDIS_ADDR is set,
// falling back to process memory.
func newCacheStore(cfg config.Config) cache.Store {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryStore()
	}
	store, err := cache.NewRedisStore(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Printf("Warning: failed to init Redis cache: %v (falling back to memory)", err)
		return cache.NewMemoryStore()
	}
	log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	return store
}

// newSnapshotStore picks the S3 snapshot store when S3_BUCKET is set,
// falling back to process memory (history lost on restart).
func newSnapshotStore(ctx context.Context, cfg config.Config) history.SnapshotStore {
	if cfg.S3Bucket == "" {
		log.Println("S3 not configured; keeping snapshots in memory")
		return history.NewMemoryStore()
	}
	s3c, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (keeping snapshots in memory)", err)
		return history.NewMemoryStore()
	}
	log.Printf("Using S3 snapshot store: bucket %q prefix %q", cfg.S3Bucket, cfg.S3Prefix)
	return history.NewS3Store(s3c, cfg.S3Bucket, cfg.S3Prefix)
}
