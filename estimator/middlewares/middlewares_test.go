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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/prediction"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service"
)

func mockErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Error())
	r.GET("/", func(c *gin.Context) {
		c.Error(err) // nolint: errcheck
	})
	return r
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, code int, resp ErrorResponse)
	}{
		{
			name: "missing field",
			err:  &feature.MissingFieldError{Field: feature.BHK},
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, code)
				assert.Equal("missing value for BHK", resp.Error)
			},
		},
		{
			name: "invalid numeric field",
			err:  &feature.InvalidNumericFieldError{Field: feature.BHK, RawValue: "two"},
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, code)
				assert.Equal(`invalid numeric value "two" for BHK`, resp.Error)
			},
		},
		{
			name: "unknown category value",
			err:  &category.UnknownCategoryValueError{Attribute: category.City, Value: "Atlantis"},
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, code)
				assert.Equal(`unknown value "Atlantis" for City`, resp.Error)
			},
		},
		{
			name: "model unavailable",
			err:  prediction.ErrModelUnavailable,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, code)
				assert.Equal(ModelUnavailableMessage, resp.Message)
			},
		},
		{
			name: "prediction failure",
			err:  &prediction.PredictionFailureError{Cause: errors.New("foo")},
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, code)
				assert.Equal(PredictionFailureMessage, resp.Message)
				assert.Empty(resp.Error)
			},
		},
		{
			name: "category configuration error",
			err:  &category.ConfigurationError{Attribute: category.City, Message: "attribute is not registered"},
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, code)
				assert.Equal(http.StatusText(http.StatusInternalServerError), resp.Message)
				assert.Empty(resp.Error)
			},
		},
		{
			name: "storage disabled",
			err:  service.ErrStorageDisabled,
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, code)
			},
		},
		{
			name: "unknown error",
			err:  errors.New("foo"),
			expect: func(t *testing.T, code int, resp ErrorResponse) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, code)
				assert.Empty(resp.Error)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mockErrorRouter(tc.err).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			tc.expect(t, w.Code, resp)
		})
	}
}

func TestRateLimit(t *testing.T) {
	assert := assert.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0.001, 2))
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, code := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(code, w.Code)
	}
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "generate request id",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Len(w.Header().Get(RequestID), 36)
				assert.Equal("foo", w.Header().Get("Server"))
			},
		},
		{
			name: "keep request id",
			id:   "bar",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal("bar", w.Header().Get(RequestID))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(Request("foo"))
			r.GET("/", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.id != "" {
				req.Header.Set(RequestID, tc.id)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			tc.expect(t, w)
		})
	}
}
