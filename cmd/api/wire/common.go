//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"memberhub-server/cmd/config"
	"memberhub-server/internal/customfields/httpapi"
	"memberhub-server/internal/customfields/persistence"
	"memberhub-server/internal/customfields/usecases"
	"memberhub-server/internal/infra/cache"
	"memberhub-server/internal/infra/pubsub"
	"memberhub-server/internal/infra/sql"

	"github.com/google/wire"
)

var CatalogSet = wire.NewSet(
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	persistence.NewFieldDefinitionRepository,
	wire.Bind(new(usecases.FieldDefinitionRepository), new(*persistence.SimpleFieldDefinitionRepository)),
	persistence.NewFieldTabRepository,
	wire.Bind(new(usecases.FieldTabRepository), new(*persistence.SimpleFieldTabRepository)),
	usecases.NewCatalogService,
	wire.Bind(new(usecases.CatalogService), new(*usecases.SimpleCatalogService)),
)

func InitializeFormController() (*httpapi.FormController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideCacheTTL,
		CatalogSet,
		persistence.NewFieldValueRepository,
		wire.Bind(new(usecases.FieldValueRepository), new(*persistence.SimpleFieldValueRepository)),
		persistence.NewScopeRepository,
		wire.Bind(new(usecases.ScopeRepository), new(*persistence.SimpleScopeRepository)),
		usecases.NewValidationService,
		wire.Bind(new(usecases.ValidationService), new(*usecases.SimpleValidationService)),
		usecases.NewSubmissionService,
		wire.Bind(new(usecases.SubmissionService), new(*usecases.SimpleSubmissionService)),
		usecases.NewFormViewService,
		wire.Bind(new(usecases.FormViewService), new(*usecases.SimpleFormViewService)),
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeFieldDefinitionController() (*httpapi.FieldDefinitionController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		CatalogSet,
		usecases.NewFieldDefinitionService,
		wire.Bind(new(usecases.FieldDefinitionService), new(*usecases.SimpleFieldDefinitionService)),
		httpapi.NewFieldDefinitionController,
	)
	return nil, nil
}

func InitializeFieldTabController() (*httpapi.FieldTabController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		CatalogSet,
		usecases.NewFieldTabService,
		wire.Bind(new(usecases.FieldTabService), new(*usecases.SimpleFieldTabService)),
		httpapi.NewFieldTabController,
	)
	return nil, nil
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	if cfg.General.Environment == "local" {
		orm, err := sql.NewMemoryORM()
		if err != nil {
			panic(err)
		}

		return orm
	}

	db := sql.NewPosgreDatabase(cfg.Postgresql.URL)
	if err := db.Open(); err != nil {
		panic(err)
	}

	orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN)
	if err != nil {
		panic(err)
	}

	return orm
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	return pubsub.NewFactory(pubsub.FactoryOptions{
		Environment:       cfg.General.Environment,
		KafkaBrokers:      cfg.Kafka.Brokers,
		SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
	})
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideCache(cfg config.AppConfig) cache.Cache {
	if cfg.Cache.Driver == "redis" {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB

		redisCache, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			panic(err)
		}

		return redisCache
	}

	ristrettoCache, err := cache.New(nil)
	if err != nil {
		panic(err)
	}

	return ristrettoCache
}

func provideCacheTTL(cfg config.AppConfig) time.Duration {
	return time.Duration(cfg.Cache.TTLSeconds) * time.Second
}
