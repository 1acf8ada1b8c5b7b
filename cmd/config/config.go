package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("memberhub_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel:    viper.GetString("general.log_level"),
				Environment: viper.GetString("general.environment"),
			},
			HTTPServer: HTTPServerConfig{
				Addr: viper.GetString("httpserver.addr"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers:        viper.GetStringSlice("kafka.brokers"),
				SchemaRegistry: viper.GetString("kafka.schema_registry"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Cache: CacheConfig{
				Driver:     viper.GetString("cache.driver"),
				TTLSeconds: viper.GetInt("cache.ttl_seconds"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	HTTPServer HTTPServerConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Cache      CacheConfig
}

type GeneralConfig struct {
	LogLevel    string
	Environment string
}

type HTTPServerConfig struct {
	Addr string
}

type KafkaConfig struct {
	Brokers        []string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Driver     string
	TTLSeconds int
}
