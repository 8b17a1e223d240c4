/*
 *     Copyright 2024 The Housing Estimator Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/docker/go-units"

	"github.com/getadityaarya/india-housing-price-predictor/cmd/dependency/base"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`

	// Categories overrides the vocabularies of categorical attributes,
	// they must match the encoder the model is trained with.
	Categories []category.Category `yaml:"categories" mapstructure:"categories"`

	// Cache configuration.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Storage configuration.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// ListenIP is listen ip, like: 0.0.0.0, 192.168.0.1.
	ListenIP net.IP `yaml:"listenIP" mapstructure:"listenIP"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// Server work directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Limiter configuration of estimate requests.
	Limiter LimiterConfig `yaml:"limiter" mapstructure:"limiter"`
}

type LimiterConfig struct {
	// Enable rate limit of estimate requests.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Limit is the number of requests per second.
	Limit float64 `yaml:"limit" mapstructure:"limit"`

	// Burst is the maximum burst size.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

type ModelConfig struct {
	// Path of the trained model artifact.
	Path string `yaml:"path" mapstructure:"path"`
}

type CacheConfig struct {
	// Enable estimate cache.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Local in-process cache.
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`

	// Redis shared cache, ignored when no addresses are given.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type LocalCacheConfig struct {
	// Size of the local cache.
	Size int `yaml:"size" mapstructure:"size"`

	// TTL of the local cache.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type RedisConfig struct {
	// Addrs is server addresses.
	Addrs []string `yaml:"addrs" mapstructure:"addrs"`

	// Password is server password.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is server db.
	DB int `yaml:"db" mapstructure:"db"`

	// TTL of the redis cache.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type StorageConfig struct {
	// Enable recording served estimates.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// MaxSize is the maximum size of a record file before rotation, like: 100MB.
	MaxSize string `yaml:"maxSize" mapstructure:"maxSize"`

	// MaxBackups is the maximum number of rotated record files to retain.
	MaxBackups int `yaml:"maxBackups" mapstructure:"maxBackups"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options: base.Options{
			PProfPort: DefaultPProfPort,
			Telemetry: base.TelemetryOption{
				ServiceName: DefaultServiceName,
			},
		},
		Server: ServerConfig{
			Port:          DefaultServerPort,
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
			Limiter: LimiterConfig{
				Enable: false,
				Limit:  DefaultLimiterLimit,
				Burst:  DefaultLimiterBurst,
			},
		},
		Model: ModelConfig{
			Path: DefaultModelPath,
		},
		Cache: CacheConfig{
			Enable: false,
			Local: LocalCacheConfig{
				Size: DefaultLocalCacheSize,
				TTL:  DefaultLocalCacheTTL,
			},
			Redis: RedisConfig{
				TTL: DefaultRedisCacheTTL,
			},
		},
		Storage: StorageConfig{
			Enable:     false,
			MaxSize:    DefaultStorageMaxSize,
			MaxBackups: DefaultStorageMaxBackups,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.ListenIP == nil {
		return errors.New("server requires parameter listenIP")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if cfg.Server.Limiter.Enable {
		if cfg.Server.Limiter.Limit <= 0 {
			return errors.New("limiter requires parameter limit")
		}

		if cfg.Server.Limiter.Burst <= 0 {
			return errors.New("limiter requires parameter burst")
		}
	}

	if cfg.Model.Path == "" {
		return errors.New("model requires parameter path")
	}

	if len(cfg.Categories) == 0 {
		return errors.New("categories requires at least one category")
	}

	registry, err := category.New(cfg.Categories...)
	if err != nil {
		return err
	}

	for _, column := range feature.ColumnOrder {
		if column.Kind != feature.KindCategory {
			continue
		}

		if _, err := registry.Values(column.Name); err != nil {
			return fmt.Errorf("categories requires category %s", column.Name)
		}
	}

	if cfg.Cache.Enable {
		if cfg.Cache.Local.Size <= 0 {
			return errors.New("local cache requires parameter size")
		}

		if cfg.Cache.Local.TTL <= 0 {
			return errors.New("local cache requires parameter ttl")
		}

		if len(cfg.Cache.Redis.Addrs) > 0 && cfg.Cache.Redis.TTL <= 0 {
			return errors.New("redis cache requires parameter ttl")
		}
	}

	if cfg.Storage.Enable {
		if size, err := units.FromHumanSize(cfg.Storage.MaxSize); err != nil || size <= 0 {
			return errors.New("storage requires parameter maxSize")
		}

		if cfg.Storage.MaxBackups <= 0 {
			return errors.New("storage requires parameter maxBackups")
		}
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Server.ListenIP == nil {
		cfg.Server.ListenIP = net.IPv4zero
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = category.DefaultCategories()
	}

	return nil
}
