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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/middlewares"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/prediction"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/service/mocks"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/types"
)

var (
	mockEstimate = &types.EstimateResponse{
		ID:    "foo",
		Price: 155.5,
		Unit:  types.PriceUnit,
		Text:  types.FormatPrice(155.5),
	}

	mockRawAttributes = feature.RawAttributes{
		category.City:                         "Mumbai",
		category.PropertyType:                 "Apartment",
		category.FurnishedStatus:              "Furnished",
		category.PublicTransportAccessibility: "High",
		category.ParkingSpace:                 "Yes",
		category.Security:                     "Yes",
		category.AvailabilityStatus:           "Ready_to_Move",
		feature.BHK:                           "2",
		feature.Size:                          "950",
		feature.Age:                           "5",
		feature.NearbySchools:                 "3",
		feature.NearbyHospitals:               "2",
	}

	mockForm = url.Values{
		"city":             {"Mumbai"},
		"property_type":    {"Apartment"},
		"furnished_status": {"Furnished"},
		"transport":        {"High"},
		"parking":          {"Yes"},
		"security":         {"Yes"},
		"availability":     {"Ready_to_Move"},
		"bhk":              {"2"},
		"size":             {"950"},
		"age":              {"5"},
		"schools":          {"3"},
		"hospitals":        {"2"},
	}

	mockJSON = `{"City":"Mumbai","Property_Type":"Apartment","Furnished_Status":"Furnished",` +
		`"Public_Transport_Accessibility":"High","Parking_Space":"Yes","Security":"Yes",` +
		`"Availability_Status":"Ready_to_Move","BHK":2,"Size":950,"Age":5,"Nearby_Schools":3,"Nearby_Hospitals":2}`
)

func mockRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares.Error())
	r.GET("/healthy", h.GetHealth)
	r.GET("/categories", h.GetCategories)
	r.POST("/estimates", h.CreateEstimate)
	r.DELETE("/estimates", h.DestroyEstimates)
	r.GET("/estimates/summary", h.GetEstimatesSummary)
	r.GET("/estimates/export", h.ExportEstimates)
	return r
}

func newFormRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func newJSONRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandlers_CreateEstimate(t *testing.T) {
	tests := []struct {
		name   string
		req    func() *http.Request
		mock   func(m *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "estimate form with aliases",
			req: func() *http.Request {
				return newFormRequest(mockForm)
			},
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.Estimate(gomock.Any(), gomock.Eq(mockRawAttributes)).Return(mockEstimate, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)

				var resp types.EstimateResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(*mockEstimate, resp)
				assert.Equal("Estimated Price: ₹155.50 Lakhs", resp.Text)
			},
		},
		{
			name: "estimate json with attribute names",
			req: func() *http.Request {
				return newJSONRequest(mockJSON)
			},
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.Estimate(gomock.Any(), gomock.Eq(mockRawAttributes)).Return(mockEstimate, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "estimate malformed json",
			req: func() *http.Request {
				return newJSONRequest("{")
			},
			mock: func(m *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)

				var resp middlewares.ErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(http.StatusText(http.StatusUnprocessableEntity), resp.Message)
				assert.NotEmpty(resp.Error)
			},
		},
		{
			name: "estimate with missing field",
			req: func() *http.Request {
				form := url.Values{"city": {"Mumbai"}}
				return newFormRequest(form)
			},
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.Estimate(gomock.Any(), gomock.Eq(feature.RawAttributes{category.City: "Mumbai"})).
					Return(nil, &feature.MissingFieldError{Field: category.PropertyType}).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)

				var resp middlewares.ErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal("missing value for Property_Type", resp.Error)
			},
		},
		{
			name: "estimate without model",
			req: func() *http.Request {
				return newFormRequest(mockForm)
			},
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.Estimate(gomock.Any(), gomock.Any()).Return(nil, prediction.ErrModelUnavailable).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, w.Code)

				var resp middlewares.ErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(middlewares.ModelUnavailableMessage, resp.Message)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc.EXPECT())

			w := httptest.NewRecorder()
			mockRouter(New(svc)).ServeHTTP(w, tc.req())
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetEstimatesSummary(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "get summary",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.EstimatesSummary(gomock.Any()).Return(&types.EstimatesSummaryResponse{
					Count: 2, Mean: 15, Median: 15, Min: 10, Max: 20, P90: 20, Unit: types.PriceUnit,
				}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)

				var resp types.EstimatesSummaryResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(2, resp.Count)
				assert.Equal(float64(15), resp.Mean)
			},
		},
		{
			name: "storage disabled",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.EstimatesSummary(gomock.Any()).Return(nil, service.ErrStorageDisabled).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc.EXPECT())

			w := httptest.NewRecorder()
			mockRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/estimates/summary", nil))
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ExportEstimates(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "export estimates",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.ExportEstimates(gomock.Any()).Return(io.NopCloser(strings.NewReader("id,Price\nfoo,155.5\n")), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("text/csv", w.Header().Get(headers.ContentType))
				assert.Equal("attachment; filename=estimates.csv", w.Header().Get(headers.ContentDisposition))
				assert.Equal("id,Price\nfoo,155.5\n", w.Body.String())
			},
		},
		{
			name: "storage disabled",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.ExportEstimates(gomock.Any()).Return(nil, service.ErrStorageDisabled).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
		{
			name: "open estimates failed",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.ExportEstimates(gomock.Any()).Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc.EXPECT())

			w := httptest.NewRecorder()
			mockRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/estimates/export", nil))
			tc.expect(t, w)
		})
	}
}

func TestHandlers_DestroyEstimates(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(m *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "destroy estimates",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.ClearEstimates(gomock.Any()).Return(nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "storage disabled",
			mock: func(m *mocks.MockServiceMockRecorder) {
				m.ClearEstimates(gomock.Any()).Return(service.ErrStorageDisabled).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc.EXPECT())

			w := httptest.NewRecorder()
			mockRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/estimates", nil))
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetCategories(t *testing.T) {
	assert := assert.New(t)
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().Categories().Return([]category.Category{
		{Name: category.City, Values: []string{"Delhi", "Mumbai"}},
	}).Times(1)

	w := httptest.NewRecorder()
	mockRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(http.StatusOK, w.Code)

	var resp []category.Category
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal([]string{"Delhi", "Mumbai"}, resp[0].Values)
}

func TestHandlers_GetHealth(t *testing.T) {
	tests := []struct {
		name   string
		health types.HealthResponse
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "model is ready",
			health: types.HealthResponse{State: prediction.StateReady, ModelVersion: "bar"},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name:   "model is unavailable",
			health: types.HealthResponse{State: prediction.StateUnavailable},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, w.Code)

				var resp types.HealthResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(prediction.StateUnavailable, resp.State)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			svc.EXPECT().Health().Return(tc.health).Times(1)

			w := httptest.NewRecorder()
			mockRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthy", nil))
			tc.expect(t, w)
		})
	}
}
