package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/pizzeria/internal/adapter/backend"
	"github.com/rl1809/pizzeria/internal/adapter/handler"
	"github.com/rl1809/pizzeria/internal/adapter/storage"
	"github.com/rl1809/pizzeria/internal/config"
	"github.com/rl1809/pizzeria/internal/core/domain"
	"github.com/rl1809/pizzeria/internal/core/service"
	"github.com/rl1809/pizzeria/internal/logger"
	"github.com/rl1809/pizzeria/internal/port"
)

const writeTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize client storage
	clientStorage, closeStorage, err := openStorage(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open client storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	zl.Info("client storage ready", zap.String("driver", cfg.Storage.Driver))

	// Initialize backend client and session
	api := backend.NewRESTClient(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})
	session := service.NewSession(api, clientStorage, zl, service.WithWriteQueueSize(cfg.Workers.QueueSize))

	// Start write workers
	wg := startWriters(cfg.Workers.Count, cfg.Workers.QueueSize, session.Writes(), clientStorage, zl)
	zl.Info("started write workers", zap.Int("count", cfg.Workers.Count))

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler()
	grpcHandler.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.App.GRPCAddr)
	if err != nil {
		zl.Fatal("failed to listen", zap.String("addr", cfg.App.GRPCAddr), zap.Error(err))
	}

	go func() {
		zl.Info("gRPC server listening", zap.String("addr", cfg.App.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			zl.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpHandler := handler.NewHTTPHandler(session, zl)
	httpServer := &http.Server{
		Addr:    cfg.App.HTTPAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		zl.Info("HTTP server listening", zap.String("addr", cfg.App.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			zl.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Warn("HTTP shutdown", zap.Error(err))
	}
	zl.Info("HTTP server stopped")

	grpcHandler.Shutdown()
	grpcServer.GracefulStop()
	zl.Info("gRPC server stopped")

	// Close the write queue and wait for workers to flush it
	session.Close()
	wg.Wait()
	zl.Info("workers stopped")

	closeStorage()
	zl.Info("connections closed")
}

// openStorage connects the configured client storage driver and returns a
// func releasing it.
func openStorage(ctx context.Context, cfg *config.Config, zl *zap.Logger) (port.ClientStorage, func(), error) {
	switch cfg.Storage.Driver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return storage.NewRedisAdapter(rdb, cfg.Redis.KeyPrefix), func() { rdb.Close() }, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		if n, err := adapter.DeleteExpired(ctx); err != nil {
			zl.Warn("failed to purge expired entries", zap.Error(err))
		} else if n > 0 {
			zl.Info("purged expired entries", zap.Int64("count", n))
		}
		return adapter, func() { db.Close() }, nil

	default:
		mem := storage.NewMemoryAdapter()
		go mem.Start()
		return mem, mem.Stop, nil
	}
}

// startWriters fans the write queue out to n workers. Entries are sharded by
// key, so writes to one key are applied in the order they were queued. The
// returned WaitGroup is done once queue is closed and every shard drained.
func startWriters(n, shardSize int, queue <-chan domain.StorageEntry, store port.ClientStorage, zl *zap.Logger) *sync.WaitGroup {
	if n < 1 {
		n = 1
	}
	shards := make([]chan domain.StorageEntry, n)
	for i := range shards {
		shards[i] = make(chan domain.StorageEntry, shardSize)
	}

	wg := &sync.WaitGroup{}
	for i, shard := range shards {
		wg.Add(1)
		go func(id int, shard <-chan domain.StorageEntry) {
			defer wg.Done()
			workerLoop(id, shard, store, zl)
		}(i, shard)
	}

	go func() {
		for entry := range queue {
			shards[xxhash.Sum64String(entry.Key)%uint64(n)] <- entry
		}
		for _, shard := range shards {
			close(shard)
		}
	}()
	return wg
}

func workerLoop(id int, queue <-chan domain.StorageEntry, store port.ClientStorage, zl *zap.Logger) {
	for entry := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)

		if err := store.Set(ctx, entry.Key, entry.Value, entry.TTL); err != nil {
			zl.Warn("failed to save client entry",
				zap.Int("worker", id),
				zap.String("key", entry.Key),
				zap.Error(err),
			)
		} else {
			zl.Debug("saved client entry", zap.Int("worker", id), zap.String("key", entry.Key))
		}

		cancel()
	}
}
