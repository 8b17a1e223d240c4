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
	"time"
)

const (
	// DefaultServerPort is default port for server.
	DefaultServerPort = 8080

	// DefaultModelPath is default path of the model artifact.
	DefaultModelPath = "housing_model.json"

	// DefaultPProfPort is default port of pprof, negative disables it.
	DefaultPProfPort = -1

	// DefaultServiceName is default service name of traces.
	DefaultServiceName = "housing-estimator"
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultLimiterLimit is default number of estimate requests per second.
	DefaultLimiterLimit = 100

	// DefaultLimiterBurst is default burst of estimate requests.
	DefaultLimiterBurst = 200
)

const (
	// DefaultLocalCacheSize is default size of local cache.
	DefaultLocalCacheSize = 10000

	// DefaultLocalCacheTTL is default ttl of local cache.
	DefaultLocalCacheTTL = 10 * time.Minute

	// DefaultRedisCacheTTL is default ttl of redis cache.
	DefaultRedisCacheTTL = time.Hour
)

const (
	// DefaultStorageMaxSize is the default maximum size of a record file.
	DefaultStorageMaxSize = "100MB"

	// DefaultStorageMaxBackups is the default number of rotated record files to keep.
	DefaultStorageMaxBackups = 10
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)
