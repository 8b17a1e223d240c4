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

package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-http-utils/headers"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/types"
)

// @Summary Create Estimate
// @Description Estimate the price of a listing by form or json attributes
// @Tags Estimate
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param Estimate body map[string]string true "Listing attributes"
// @Success 200 {object} types.EstimateResponse
// @Failure 422
// @Failure 429
// @Failure 500
// @Failure 503
// @Router /api/v1/estimates [post]
func (h *Handlers) CreateEstimate(ctx *gin.Context) {
	var lookup func(string) (string, bool)
	if ctx.ContentType() == binding.MIMEJSON {
		var json map[string]any
		if err := ctx.ShouldBindJSON(&json); err != nil {
			ctx.Error(err).SetType(gin.ErrorTypeBind) // nolint: errcheck
			return
		}

		lookup = types.JSONLookup(json)
	} else {
		lookup = ctx.GetPostForm
	}

	estimate, err := h.service.Estimate(ctx.Request.Context(), types.MakeRawAttributes(lookup))
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, estimate)
}

// @Summary Get Estimates Summary
// @Description Get statistics of recorded estimates
// @Tags Estimate
// @Accept json
// @Produce json
// @Success 200 {object} types.EstimatesSummaryResponse
// @Failure 404
// @Failure 500
// @Router /api/v1/estimates/summary [get]
func (h *Handlers) GetEstimatesSummary(ctx *gin.Context) {
	summary, err := h.service.EstimatesSummary(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// @Summary Export Estimates
// @Description Export recorded estimates as csv
// @Tags Estimate
// @Produce text/csv
// @Success 200 {file} file
// @Failure 404
// @Failure 500
// @Router /api/v1/estimates/export [get]
func (h *Handlers) ExportEstimates(ctx *gin.Context) {
	rc, err := h.service.ExportEstimates(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
	defer rc.Close()

	ctx.Header(headers.ContentType, "text/csv")
	ctx.Header(headers.ContentDisposition, "attachment; filename=estimates.csv")
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, rc); err != nil {
		ctx.Error(err) // nolint: errcheck
	}
}

// @Summary Destroy Estimates
// @Description Remove recorded estimates
// @Tags Estimate
// @Accept json
// @Produce json
// @Success 200
// @Failure 404
// @Failure 500
// @Router /api/v1/estimates [delete]
func (h *Handlers) DestroyEstimates(ctx *gin.Context) {
	if err := h.service.ClearEstimates(ctx.Request.Context()); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}
