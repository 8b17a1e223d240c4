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

package estimator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/cache"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/config"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/metrics"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/models"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/prediction"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/router"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/storage"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
	"github.com/getadityaarya/india-housing-price-predictor/pkg/dfpath"
)

const (
	// gracefulStopTimeout specifies a time limit for
	// in-flight estimates during shutdown.
	gracefulStopTimeout = 10 * time.Second
)

type Server struct {
	// Server configuration.
	config *config.Config

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server

	// Estimate cache.
	cache cache.Cache

	// Storage of served estimates.
	storage storage.Storage
}

func New(ctx context.Context, cfg *config.Config, d dfpath.Dfpath) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize category registry.
	registry, err := category.New(cfg.Categories...)
	if err != nil {
		return nil, err
	}

	// Initialize prediction service, the model is loaded once.
	var (
		predictionService prediction.Service
		modelVersion      string
	)
	model, err := models.Load(cfg.Model.Path)
	if err != nil {
		logger.Errorf("load model failed, estimates are unavailable: %s", err.Error())
		predictionService = prediction.New(nil)
	} else {
		modelVersion = model.Version
		predictionService = prediction.New(model)
	}

	var options []service.Option

	// Initialize estimate cache.
	if cfg.Cache.Enable {
		s.cache, err = cache.New(&cfg.Cache)
		if err != nil {
			return nil, err
		}
		options = append(options, service.WithCache(s.cache))
	}

	// Initialize storage.
	if cfg.Storage.Enable {
		maxSize, err := units.FromHumanSize(cfg.Storage.MaxSize)
		if err != nil {
			return nil, fmt.Errorf("parse storage maxSize %s: %w", cfg.Storage.MaxSize, err)
		}

		s.storage, err = storage.New(d.DataDir(), maxSize, cfg.Storage.MaxBackups)
		if err != nil {
			return nil, err
		}
		options = append(options, service.WithStorage(s.storage))
	}

	// Initialize REST server.
	svc := service.New(registry, predictionService, modelVersion, options...)
	s.restServer = &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.ListenIP.String(), strconv.Itoa(cfg.Server.Port)),
		Handler: router.Init(cfg, svc),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	g := errgroup.Group{}

	// Started metrics server.
	if s.metricsServer != nil {
		g.Go(func() error {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}

				return fmt.Errorf("metrics server closed unexpect: %w", err)
			}

			return nil
		})
	}

	// Started REST server.
	g.Go(func() error {
		logger.Infof("started rest server at %s", s.restServer.Addr)
		if err := s.restServer.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}

			return fmt.Errorf("rest server closed unexpect: %w", err)
		}

		return nil
	})

	return g.Wait()
}

func (s *Server) Stop() {
	var errs error
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	if err := s.restServer.Shutdown(ctx); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("rest server: %w", err))
	} else {
		logger.Info("rest server closed under request")
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("metrics server: %w", err))
		} else {
			logger.Info("metrics server closed under request")
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("cache: %w", err))
		}
	}

	if errs != nil {
		logger.Errorf("estimator failed to stop: %s", errs.Error())
	}
}
