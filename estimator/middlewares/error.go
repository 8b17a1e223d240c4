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

package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/prediction"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const (
	// ModelUnavailableMessage is the message of estimates without a loaded model.
	ModelUnavailableMessage = "Error: Model not loaded."

	// PredictionFailureMessage is the message of estimates failed in the model.
	PredictionFailureMessage = "An error occurred during prediction. Please check your inputs."
)

type ErrorResponse struct {
	Message     string `json:"message,omitempty"`
	Error       string `json:"errors,omitempty"`
	DocumentURL string `json:"documentation_url,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err.IsType(gin.ErrorTypeBind) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: http.StatusText(http.StatusUnprocessableEntity),
				Error:   err.Error(),
			})
			return
		}

		// Client input error handler
		if feature.IsInputError(err.Err) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: http.StatusText(http.StatusUnprocessableEntity),
				Error:   err.Error(),
			})
			return
		}

		// Model error handler
		if errors.Is(err.Err, prediction.ErrModelUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Message: ModelUnavailableMessage,
			})
			return
		}

		var predictionErr *prediction.PredictionFailureError
		if errors.As(err.Err, &predictionErr) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: PredictionFailureMessage,
			})
			return
		}

		// Category configuration error handler
		var configErr *category.ConfigurationError
		if errors.As(err.Err, &configErr) {
			logger.WithRequestID(c.GetString(RequestID)).Errorf("category configuration is invalid: %s", configErr.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: http.StatusText(http.StatusInternalServerError),
			})
			return
		}

		if errors.Is(err.Err, service.ErrStorageDisabled) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
				Error:   err.Error(),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
