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

package models

import (
	"encoding/json"
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/stretchr/testify/assert"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
)

var mockCoefficients = []float64{12.5, 0.1, -0.5, 1, 1, 2, 3, -1, -2, 4, 5, -6}

func TestLinearRegression_Predict(t *testing.T) {
	tests := []struct {
		name   string
		model  *LinearRegression
		vector feature.Vector
		expect func(t *testing.T, price float64, err error)
	}{
		{
			name:   "predict mumbai apartment",
			model:  NewLinearRegression(10, mockCoefficients),
			vector: feature.Vector{2, 950, 5, 3, 2, 7, 0, 0, 0, 1, 1, 0},
			expect: func(t *testing.T, price float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.InDelta(155.5, price, 1e-9)
			},
		},
		{
			name:   "predict zero vector",
			model:  NewLinearRegression(10, mockCoefficients),
			vector: feature.Vector{},
			expect: func(t *testing.T, price float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(float64(10), price)
			},
		},
		{
			name: "model is not fitted",
			model: func() *LinearRegression {
				lr := NewLinearRegression(10, mockCoefficients)
				lr.Fitted = false
				return lr
			}(),
			vector: feature.Vector{},
			expect: func(t *testing.T, price float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "no fitted model")
			},
		},
		{
			name: "model attributes mismatch vector",
			model: func() *LinearRegression {
				lr := NewLinearRegression(10, mockCoefficients)
				lr.Attrs = lr.Attrs[:3]
				return lr
			}(),
			vector: feature.Vector{},
			expect: func(t *testing.T, price float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model has 3 attributes, vector has 12")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			price, err := tc.model.Predict(tc.vector)
			tc.expect(t, price, err)
		})
	}
}

func TestLinearRegression_PredictGrid(t *testing.T) {
	assert := assert.New(t)
	lr := NewLinearRegression(1, []float64{2, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(lr.Attrs))
	for i, a := range lr.Attrs {
		specs[i] = inst.AddAttribute(a)
	}
	inst.AddAttribute(lr.Cls)
	assert.NoError(inst.AddClassAttribute(lr.Cls))
	assert.NoError(inst.Extend(2))
	for row := 0; row < 2; row++ {
		for i, spec := range specs {
			inst.Set(spec, row, base.PackFloatToBytes(float64(row+i)))
		}
	}

	ret, err := lr.PredictGrid(inst)
	assert.NoError(err)
	clsSpec, err := ret.GetAttribute(lr.Cls)
	assert.NoError(err)
	assert.Equal(float64(1+0*2+1*3), base.UnpackBytesToFloat(ret.Get(clsSpec, 0)))
	assert.Equal(float64(1+1*2+2*3), base.UnpackBytesToFloat(ret.Get(clsSpec, 1)))
}

func TestLinearRegression_Validate(t *testing.T) {
	tests := []struct {
		name   string
		model  func() *LinearRegression
		expect func(t *testing.T, err error)
	}{
		{
			name: "valid model",
			model: func() *LinearRegression {
				return NewLinearRegression(0, mockCoefficients)
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "model without class attribute",
			model: func() *LinearRegression {
				lr := NewLinearRegression(0, mockCoefficients)
				lr.Cls = nil
				return lr
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model requires class attribute")
			},
		},
		{
			name: "model with missing coefficients",
			model: func() *LinearRegression {
				return NewLinearRegression(0, mockCoefficients[:11])
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model has 11 coefficients for 12 attributes")
			},
		},
		{
			name: "model with swapped columns",
			model: func() *LinearRegression {
				lr := NewLinearRegression(0, mockCoefficients)
				lr.Attrs[0], lr.Attrs[1] = lr.Attrs[1], lr.Attrs[0]
				return lr
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model attribute 0 must be BHK")
			},
		},
		{
			name: "model with too few attributes",
			model: func() *LinearRegression {
				lr := NewLinearRegression(0, mockCoefficients)
				lr.Attrs = lr.Attrs[:11]
				return lr
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model has 11 attributes, feature vector has 12")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, tc.model().Validate())
		})
	}
}

func TestLinearRegression_JSON(t *testing.T) {
	assert := assert.New(t)
	lr := NewLinearRegression(3.5, mockCoefficients)

	data, err := json.Marshal(lr)
	assert.NoError(err)

	decoded := &LinearRegression{}
	assert.NoError(json.Unmarshal(data, decoded))
	assert.True(decoded.Fitted)
	assert.Equal(3.5, decoded.Disturbance)
	assert.Equal(mockCoefficients, decoded.RegressionCoefficients)
	assert.Equal(feature.ColumnNames()[5], decoded.Attrs[5].Name)
	assert.Equal(DefaultClassAttributeName, decoded.Cls.Name)
	assert.NoError(decoded.Validate())
}
