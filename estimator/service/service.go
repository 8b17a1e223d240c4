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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/cache"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/metrics"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/prediction"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/storage"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/types"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const (
	// TracerName is the name of the estimator tracer.
	TracerName = "housing-estimator"

	// SpanEstimate is the span name of estimating.
	SpanEstimate = "estimate"
)

// ErrStorageDisabled is returned when served estimates are not recorded.
var ErrStorageDisabled = errors.New("storage of estimates is disabled")

// Service is the interface used for estimating listing prices.
type Service interface {
	// Estimate builds the feature vector of raw attributes and predicts its price.
	Estimate(context.Context, feature.RawAttributes) (*types.EstimateResponse, error)

	// Categories returns the vocabularies of categorical attributes.
	Categories() []category.Category

	// Health returns the state of the prediction model.
	Health() types.HealthResponse

	// EstimatesSummary returns statistics of recorded estimates.
	EstimatesSummary(context.Context) (*types.EstimatesSummaryResponse, error)

	// ExportEstimates opens recorded estimates as one csv with header.
	ExportEstimates(context.Context) (io.ReadCloser, error)

	// ClearEstimates removes recorded estimates.
	ClearEstimates(context.Context) error
}

type service struct {
	registry     *category.Registry
	builder      feature.Builder
	prediction   prediction.Service
	modelVersion string
	cache        cache.Cache
	storage      storage.Storage
}

// Option is a functional option for configuring the service.
type Option func(s *service)

// WithCache caches estimates of feature vectors.
func WithCache(c cache.Cache) Option {
	return func(s *service) {
		s.cache = c
	}
}

// WithStorage records served estimates.
func WithStorage(st storage.Storage) Option {
	return func(s *service) {
		s.storage = st
	}
}

// WithBuilder sets the feature vector builder, the default builder encodes with the registry.
func WithBuilder(b feature.Builder) Option {
	return func(s *service) {
		s.builder = b
	}
}

// New returns a new Service instance.
func New(registry *category.Registry, ps prediction.Service, modelVersion string, options ...Option) Service {
	s := &service{
		registry:     registry,
		builder:      feature.New(registry),
		prediction:   ps,
		modelVersion: modelVersion,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Estimate builds the feature vector of raw attributes and predicts its price.
func (s *service) Estimate(ctx context.Context, raw feature.RawAttributes) (*types.EstimateResponse, error) {
	ctx, span := otel.Tracer(TracerName).Start(ctx, SpanEstimate)
	defer span.End()

	metrics.EstimateCount.Inc()
	resp, err := s.estimate(ctx, raw)
	if err != nil {
		metrics.EstimateFailureCount.WithLabelValues(failureReason(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("estimate.id", resp.ID),
		attribute.Float64("estimate.price", resp.Price),
		attribute.Bool("estimate.cached", resp.Cached),
	)
	return resp, nil
}

func (s *service) estimate(ctx context.Context, raw feature.RawAttributes) (*types.EstimateResponse, error) {
	v, err := s.builder.Build(raw)
	if err != nil {
		return nil, err
	}

	log := logger.With("modelVersion", s.modelVersion, "vector", v.String())
	price, cached := s.cachedEstimate(ctx, v)
	if !cached {
		price, err = s.prediction.Predict(v)
		if err != nil {
			return nil, err
		}

		if s.useCache() {
			if err := s.cache.SetEstimate(ctx, s.modelVersion, v, price); err != nil {
				log.Warnf("cache estimate failed: %s", err.Error())
			}
		}
	}

	resp := &types.EstimateResponse{
		ID:           uuid.NewString(),
		Price:        price,
		Unit:         types.PriceUnit,
		Text:         types.FormatPrice(price),
		ModelVersion: s.modelVersion,
		Cached:       cached,
	}

	if s.storage != nil {
		if err := s.storage.Create(makeRecord(resp, raw, v)); err != nil {
			metrics.RecordFailureCount.Inc()
			log.Errorf("record estimate %s failed: %s", resp.ID, err.Error())
		}
		metrics.StorageSizeGauge.Set(float64(s.storage.Size()))
	}

	log.Debugf("estimate %s is %f, cached %t", resp.ID, price, cached)
	return resp, nil
}

// cachedEstimate returns the cached estimate of the vector.
func (s *service) cachedEstimate(ctx context.Context, v feature.Vector) (float64, bool) {
	if !s.useCache() {
		return 0, false
	}

	price, ok := s.cache.GetEstimate(ctx, s.modelVersion, v)
	hits, misses := s.cache.Stats()
	metrics.CacheStatsGauge.WithLabelValues("hits").Set(float64(hits))
	metrics.CacheStatsGauge.WithLabelValues("misses").Set(float64(misses))
	if !ok {
		metrics.CacheMissCount.Inc()
		return 0, false
	}

	metrics.CacheHitCount.Inc()
	return price, true
}

// useCache reports whether estimates are cached, estimates of an unversioned model are never cached.
func (s *service) useCache() bool {
	return s.cache != nil && s.modelVersion != "" && s.prediction.State() == prediction.StateReady
}

// Categories returns the vocabularies of categorical attributes.
func (s *service) Categories() []category.Category {
	return s.registry.Categories()
}

// Health returns the state of the prediction model.
func (s *service) Health() types.HealthResponse {
	return types.HealthResponse{
		State:        s.prediction.State(),
		ModelVersion: s.modelVersion,
	}
}

// EstimatesSummary returns statistics of recorded estimates.
func (s *service) EstimatesSummary(ctx context.Context) (*types.EstimatesSummaryResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	records, err := s.storage.List()
	if err != nil {
		return nil, err
	}

	resp := &types.EstimatesSummaryResponse{
		Count: len(records),
		Unit:  types.PriceUnit,
	}
	if len(records) == 0 {
		return resp, nil
	}

	prices := make(stats.Float64Data, 0, len(records))
	for _, record := range records {
		prices = append(prices, record.Price)
	}

	if resp.Mean, err = prices.Mean(); err != nil {
		return nil, err
	}

	if resp.Median, err = prices.Median(); err != nil {
		return nil, err
	}

	if resp.Min, err = prices.Min(); err != nil {
		return nil, err
	}

	if resp.Max, err = prices.Max(); err != nil {
		return nil, err
	}

	if resp.P90, err = prices.PercentileNearestRank(90); err != nil {
		return nil, err
	}

	return resp, nil
}

// ExportEstimates opens recorded estimates as one csv with header.
func (s *service) ExportEstimates(ctx context.Context) (io.ReadCloser, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	return s.storage.Open()
}

// ClearEstimates removes recorded estimates.
func (s *service) ClearEstimates(ctx context.Context) error {
	if s.storage == nil {
		return ErrStorageDisabled
	}

	if err := s.storage.Clear(); err != nil {
		return err
	}

	metrics.StorageSizeGauge.Set(float64(s.storage.Size()))
	logger.Info("recorded estimates are cleared")
	return nil
}

func makeRecord(resp *types.EstimateResponse, raw feature.RawAttributes, v feature.Vector) storage.Record {
	return storage.Record{
		ID:                           resp.ID,
		BHK:                          int64(v[0]),
		Size:                         v[1],
		Age:                          int64(v[2]),
		NearbySchools:                int64(v[3]),
		NearbyHospitals:              int64(v[4]),
		City:                         raw[category.City],
		PropertyType:                 raw[category.PropertyType],
		FurnishedStatus:              raw[category.FurnishedStatus],
		PublicTransportAccessibility: raw[category.PublicTransportAccessibility],
		ParkingSpace:                 raw[category.ParkingSpace],
		Security:                     raw[category.Security],
		AvailabilityStatus:           raw[category.AvailabilityStatus],
		Price:                        resp.Price,
		ModelVersion:                 resp.ModelVersion,
		CreatedAt:                    time.Now().UnixNano(),
	}
}

func failureReason(err error) string {
	var configErr *category.ConfigurationError
	var predictionErr *prediction.PredictionFailureError

	switch {
	case feature.IsInputError(err):
		return metrics.ReasonInvalidInput
	case errors.As(err, &configErr):
		return metrics.ReasonConfiguration
	case errors.Is(err, prediction.ErrModelUnavailable):
		return metrics.ReasonModelUnavailable
	case errors.As(err, &predictionErr):
		return metrics.ReasonPredictionFailure
	default:
		return metrics.ReasonPredictionFailure
	}
}
