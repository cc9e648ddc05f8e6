// Package app собирает зависимости приложения.
package app

import (
	"context"
	"errors"
	"log"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/catalog"
	"github.com/caterquest/caterquest/internal/chat"
	"github.com/caterquest/caterquest/internal/config"
	"github.com/caterquest/caterquest/internal/config/db"
	"github.com/caterquest/caterquest/internal/kafka"
	"github.com/caterquest/caterquest/internal/repository"
	"github.com/caterquest/caterquest/internal/retry"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App содержит все зависимости приложения.
type App struct {
	Config   *config.Config
	DBPool   *pgxpool.Pool
	Storage  *repository.PostgresStorage
	Cache    repository.ListingCache
	Sessions *auth.Manager
	Producer *kafka.Producer
	Registry *chat.Registry
	Catalog  *catalog.Service

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp создает приложение с кешем выдачи и реестром чата.
func NewApp(cfg *config.Config) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		Config:   cfg,
		Cache:    repository.NewMemListingCache(cfg.Cache.MaxItems, cfg.Cache.TTL),
		Sessions: auth.NewManager(cfg.Auth.SessionTTL),
		Registry: chat.NewRegistry(),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Init выполняет инициализацию зависимостей приложения.
// База данных обязательна: без нее ни один маршрут не работает.
func (a *App) Init() error {
	log.Printf("Initialized listing cache: max %d items, TTL %s", a.Config.Cache.MaxItems, a.Config.Cache.TTL)
	a.Cache.StartJanitor(a.ctx, a.Config.Cache.CleanupInterval)

	if err := a.initDatabase(a.ctx); err != nil {
		return err
	}

	listingPolicy := retry.Policy{
		Wait:        a.Config.Retry.Listing.Wait,
		MaxAttempts: a.Config.Retry.Listing.MaxAttempts,
	}
	a.Catalog = catalog.NewService(a.Storage, a.Cache, listingPolicy)

	a.Producer = kafka.NewProducer(a.Config.Kafka.Brokers, a.Config.Kafka.OrderTopic, a.Config.Kafka.ChatTopic)

	go kafka.RunChatConsumer(
		a.ctx,
		a.Config.Kafka.Brokers,
		a.Config.Kafka.ChatTopic,
		a.Config.Kafka.GroupID,
		a.Registry,
	)

	return nil
}

// ReadPolicy возвращает политику повторов для чтений вне выдачи продавцов.
func (a *App) ReadPolicy() retry.Policy {
	return retry.Policy{
		Wait:        a.Config.Retry.Read.Wait,
		MaxAttempts: a.Config.Retry.Read.MaxAttempts,
	}
}

func (a *App) initDatabase(ctx context.Context) error {
	if a.Config.Database.DSN == "" {
		return errors.New("database DSN is required")
	}

	pool, err := db.NewPool(ctx, a.Config.Database.DSN)
	if err != nil {
		return err
	}

	a.DBPool = pool
	a.Storage = repository.NewPostgresStorage(pool)
	log.Println("Database initialized successfully")

	return nil
}

// Close останавливает фоновые задачи и освобождает ресурсы.
func (a *App) Close() {
	a.cancel()

	if a.Producer != nil {
		if err := a.Producer.Close(); err != nil {
			log.Printf("kafka producer close error: %v", err)
		}
	}

	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
