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

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/config"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/handlers"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/middlewares"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
	"github.com/getadityaarya/india-housing-price-predictor/pkg/types"
	"github.com/getadityaarya/india-housing-price-predictor/version"
)

const (
	PrometheusSubsystemName = "housing_estimator"
	OtelServiceName         = "housing-estimator"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.Request.URL.Path
	}
	p.Use(r)

	// Opentelemetry
	if cfg.Options.Telemetry.Jaeger != "" {
		r.Use(otelgin.Middleware(OtelServiceName))
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Request(types.EstimatorName + "/" + version.GitVersion))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	apiv1 := r.Group("/api/v1")

	// Category
	apiv1.GET("/categories", h.GetCategories)

	// Estimate
	e := apiv1.Group("/estimates")
	if cfg.Server.Limiter.Enable {
		e.POST("", middlewares.RateLimit(cfg.Server.Limiter.Limit, cfg.Server.Limiter.Burst), h.CreateEstimate)
	} else {
		e.POST("", h.CreateEstimate)
	}
	e.DELETE("", h.DestroyEstimates)
	e.GET("summary", h.GetEstimatesSummary)
	e.GET("export", h.ExportEstimates)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	// Swagger
	apiSwagger := ginSwagger.URL("/swagger/doc.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, apiSwagger))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middlewares.ErrorResponse{
			Message: http.StatusText(http.StatusNotFound),
		})
	})

	return r
}
