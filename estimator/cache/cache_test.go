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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/config"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
)

var (
	mockVector = feature.Vector{2, 950, 5, 3, 2, 7, 0, 0, 0, 1, 1, 0}

	mockCacheConfig = &config.CacheConfig{
		Enable: true,
		Local: config.LocalCacheConfig{
			Size: 100,
			TTL:  time.Minute,
		},
	}
)

func TestCache_New(t *testing.T) {
	tests := []struct {
		name   string
		config *config.CacheConfig
		expect func(t *testing.T, c Cache, err error)
	}{
		{
			name:   "new local cache",
			config: mockCacheConfig,
			expect: func(t *testing.T, c Cache, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NoError(c.Close())
			},
		},
		{
			name: "new cache with unreachable redis",
			config: &config.CacheConfig{
				Enable: true,
				Local:  mockCacheConfig.Local,
				Redis: config.RedisConfig{
					Addrs: []string{"127.0.0.1:1"},
					TTL:   time.Minute,
				},
			},
			expect: func(t *testing.T, c Cache, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "ping redis")
				assert.Nil(c)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.config)
			tc.expect(t, c, err)
		})
	}
}

func TestCache_Estimate(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, c Cache)
	}{
		{
			name: "estimate is not cached",
			run: func(t *testing.T, c Cache) {
				assert := assert.New(t)
				price, ok := c.GetEstimate(context.Background(), "foo", mockVector)
				assert.False(ok)
				assert.Equal(float64(0), price)

				hits, misses := c.Stats()
				assert.Equal(uint64(0), hits)
				assert.Equal(uint64(1), misses)
			},
		},
		{
			name: "estimate is cached",
			run: func(t *testing.T, c Cache) {
				assert := assert.New(t)
				assert.NoError(c.SetEstimate(context.Background(), "foo", mockVector, 155.5))
				price, ok := c.GetEstimate(context.Background(), "foo", mockVector)
				assert.True(ok)
				assert.Equal(155.5, price)

				hits, _ := c.Stats()
				assert.Equal(uint64(1), hits)
			},
		},
		{
			name: "estimate of another model version is not cached",
			run: func(t *testing.T, c Cache) {
				assert := assert.New(t)
				assert.NoError(c.SetEstimate(context.Background(), "foo", mockVector, 155.5))
				_, ok := c.GetEstimate(context.Background(), "bar", mockVector)
				assert.False(ok)
			},
		},
		{
			name: "estimate of another vector is not cached",
			run: func(t *testing.T, c Cache) {
				assert := assert.New(t)
				assert.NoError(c.SetEstimate(context.Background(), "foo", mockVector, 155.5))
				v := mockVector
				v[0] = 3
				_, ok := c.GetEstimate(context.Background(), "foo", v)
				assert.False(ok)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(mockCacheConfig)
			if err != nil {
				t.Fatal(err)
			}
			defer c.Close()

			tc.run(t, c)
		})
	}
}

func TestMakeEstimateCacheKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("estimator:estimate:foo:2,950,5,3,2,7,0,0,0,1,1,0", MakeEstimateCacheKey("foo", mockVector))
}
