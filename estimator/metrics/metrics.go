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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/config"
	"github.com/getadityaarya/india-housing-price-predictor/pkg/types"
	"github.com/getadityaarya/india-housing-price-predictor/version"
)

const (
	// ReasonInvalidInput is the failure reason of client input errors.
	ReasonInvalidInput = "invalid_input"

	// ReasonConfiguration is the failure reason of configuration errors.
	ReasonConfiguration = "configuration"

	// ReasonModelUnavailable is the failure reason when the model is not loaded.
	ReasonModelUnavailable = "model_unavailable"

	// ReasonPredictionFailure is the failure reason when the model fails.
	ReasonPredictionFailure = "prediction_failure"
)

// Variables declared for metrics.
var (
	EstimateCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "estimate_total",
		Help:      "Counter of the number of the estimate requests.",
	})

	EstimateFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "estimate_failure_total",
		Help:      "Counter of the number of failed of the estimate requests.",
	}, []string{"reason"})

	PredictCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "predict_total",
		Help:      "Counter of the number of the model predictions.",
	})

	PredictFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "predict_failure_total",
		Help:      "Counter of the number of failed of the model predictions.",
	}, []string{"reason"})

	CacheHitCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "cache_hit_total",
		Help:      "Counter of the number of the estimate cache hits.",
	})

	CacheMissCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "cache_miss_total",
		Help:      "Counter of the number of the estimate cache misses.",
	})

	RecordFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "record_failure_total",
		Help:      "Counter of the number of failed of the estimate recording.",
	})

	ModelStateGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "model_state",
		Help:      "State of the prediction model, the current state is set to 1.",
	}, []string{"state"})

	CacheStatsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "cache_stats",
		Help:      "Hits and misses of the local and redis tiers of the estimate cache.",
	}, []string{"type"})

	StorageSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "storage_size_bytes",
		Help:      "Size of the estimate file in bytes.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.EstimatorMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
