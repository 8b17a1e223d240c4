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

//go:generate mockgen -destination mocks/cache_mock.go -source cache.go -package mocks

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/config"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const (
	// EstimateNamespace prefix of estimate cache key.
	EstimateNamespace = "estimate"
)

// Cache is the interface used for caching estimates of feature vectors.
type Cache interface {
	// GetEstimate returns the cached estimate of the vector predicted by the model version.
	GetEstimate(context.Context, string, feature.Vector) (float64, bool)

	// SetEstimate caches the estimate of the vector predicted by the model version.
	SetEstimate(context.Context, string, feature.Vector, float64) error

	// Stats returns the hits and misses of the cache.
	Stats() (uint64, uint64)

	// Close releases the redis client.
	Close() error
}

type estimateCache struct {
	*cache.Cache
	rdb redis.UniversalClient
	ttl time.Duration
}

// New returns a two-level estimate cache, redis is used when addresses are configured.
func New(cfg *config.CacheConfig) (Cache, error) {
	options := &cache.Options{
		LocalCache:   cache.NewTinyLFU(cfg.Local.Size, cfg.Local.TTL),
		StatsEnabled: true,
	}

	c := &estimateCache{ttl: cfg.Local.TTL}
	if len(cfg.Redis.Addrs) > 0 {
		rdb, err := newRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}

		// Item ttl is the expiration of redis, the local cache expires by its own ttl.
		options.Redis = rdb
		c.rdb = rdb
		c.ttl = cfg.Redis.TTL
	}

	c.Cache = cache.New(options)
	return c, nil
}

// GetEstimate returns the cached estimate of the vector predicted by the model version.
func (c *estimateCache) GetEstimate(ctx context.Context, modelVersion string, v feature.Vector) (float64, bool) {
	var price float64
	if err := c.Get(ctx, MakeEstimateCacheKey(modelVersion, v), &price); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warnf("get estimate cache failed: %s", err.Error())
		}

		return 0, false
	}

	return price, true
}

// SetEstimate caches the estimate of the vector predicted by the model version.
func (c *estimateCache) SetEstimate(ctx context.Context, modelVersion string, v feature.Vector, price float64) error {
	return c.Set(&cache.Item{
		Ctx:   ctx,
		Key:   MakeEstimateCacheKey(modelVersion, v),
		Value: price,
		TTL:   c.ttl,
	})
}

// Stats returns the hits and misses of the cache.
func (c *estimateCache) Stats() (uint64, uint64) {
	stats := c.Cache.Stats()
	if stats == nil {
		return 0, 0
	}

	return stats.Hits, stats.Misses
}

// Close releases the redis client.
func (c *estimateCache) Close() error {
	if c.rdb == nil {
		return nil
	}

	return c.rdb.Close()
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("estimator:%s:%s", namespace, id)
}

// Make cache key for estimate.
func MakeEstimateCacheKey(modelVersion string, v feature.Vector) string {
	return MakeCacheKey(EstimateNamespace, fmt.Sprintf("%s:%s", modelVersion, v.String()))
}
