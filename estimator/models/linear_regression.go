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
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/sjwhitworth/golearn/base"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
)

// DefaultClassAttributeName is the name of the predicted attribute.
const DefaultClassAttributeName = "Price_in_Lakhs"

// LinearRegression linear regression model struct.
type LinearRegression struct {
	Fitted                 bool                   `json:"fitted" mapstructure:"fitted"`
	Disturbance            float64                `json:"disturbance" mapstructure:"disturbance"`
	RegressionCoefficients []float64              `json:"regression_coefficients" mapstructure:"regression_coefficients"`
	Attrs                  []*base.FloatAttribute `json:"attrs" mapstructure:"attrs"`
	Cls                    *base.FloatAttribute   `json:"cls" mapstructure:"cls"`

	// Version is the digest of the artifact the model is loaded from.
	Version string `json:"-" mapstructure:"-"`
}

// NewLinearRegression returns an instance of linear regression model
// fitted with the given parameters, attributes follow the feature column order.
func NewLinearRegression(disturbance float64, coefficients []float64) *LinearRegression {
	attrs := make([]*base.FloatAttribute, 0, len(feature.ColumnOrder))
	for _, name := range feature.ColumnNames() {
		attrs = append(attrs, base.NewFloatAttribute(name))
	}

	return &LinearRegression{
		Fitted:                 true,
		Disturbance:            disturbance,
		RegressionCoefficients: coefficients,
		Attrs:                  attrs,
		Cls:                    base.NewFloatAttribute(DefaultClassAttributeName),
	}
}

// Validate checks the model can serve feature vectors.
func (lr *LinearRegression) Validate() error {
	if !lr.Fitted {
		return errors.New("no fitted model")
	}

	if lr.Cls == nil {
		return errors.New("model requires class attribute")
	}

	if len(lr.Attrs) != feature.VectorLen {
		return fmt.Errorf("model has %d attributes, feature vector has %d", len(lr.Attrs), feature.VectorLen)
	}

	if len(lr.RegressionCoefficients) != len(lr.Attrs) {
		return fmt.Errorf("model has %d coefficients for %d attributes", len(lr.RegressionCoefficients), len(lr.Attrs))
	}

	for i, name := range feature.ColumnNames() {
		if lr.Attrs[i] == nil || lr.Attrs[i].Name != name {
			return fmt.Errorf("model attribute %d must be %s", i, name)
		}
	}

	return nil
}

// Predict returns the estimate of a single feature vector.
func (lr *LinearRegression) Predict(v feature.Vector) (float64, error) {
	if len(lr.Attrs) != len(v) {
		return 0, fmt.Errorf("model has %d attributes, vector has %d", len(lr.Attrs), len(v))
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(lr.Attrs))
	for i, a := range lr.Attrs {
		specs[i] = inst.AddAttribute(a)
	}

	inst.AddAttribute(lr.Cls)
	if err := inst.AddClassAttribute(lr.Cls); err != nil {
		return 0, err
	}

	if err := inst.Extend(1); err != nil {
		return 0, err
	}

	for i, spec := range specs {
		inst.Set(spec, 0, base.PackFloatToBytes(v[i]))
	}

	ret, err := lr.PredictGrid(inst)
	if err != nil {
		return 0, err
	}

	clsSpec, err := ret.GetAttribute(lr.Cls)
	if err != nil {
		return 0, err
	}

	return base.UnpackBytesToFloat(ret.Get(clsSpec, 0)), nil
}

// PredictGrid uses parameters of model to predict the data provided.
func (lr *LinearRegression) PredictGrid(X base.FixedDataGrid) (base.FixedDataGrid, error) {
	if !lr.Fitted {
		return nil, errors.New("no fitted model")
	}

	ret := base.GeneratePredictionVector(X)
	attrs := make([]base.Attribute, len(lr.Attrs))
	for idx, a := range lr.Attrs {
		attrs[idx] = a
	}
	attrSpecs := base.ResolveAttributes(X, attrs)
	clsSpec, err := ret.GetAttribute(lr.Cls)
	if err != nil {
		return nil, err
	}

	err = X.MapOverRows(attrSpecs, func(row [][]byte, i int) (bool, error) {
		var prediction = lr.Disturbance
		for j, r := range row {
			prediction += base.UnpackBytesToFloat(r) * lr.RegressionCoefficients[j]
		}

		ret.Set(clsSpec, i, base.PackFloatToBytes(prediction))
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return ret, nil
}

func (lr *LinearRegression) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"fitted":                  lr.Fitted,
		"disturbance":             lr.Disturbance,
		"regression_coefficients": lr.RegressionCoefficients,
		"attrs":                   lr.marshalFloatAttributes(),
		"cls":                     marshalFloatAttribute(lr.Cls),
	})
}

func marshalFloatAttribute(f *base.FloatAttribute) map[string]interface{} {
	if f == nil {
		return nil
	}

	return map[string]interface{}{
		"name":      f.Name,
		"precision": f.Precision,
	}
}

func (lr *LinearRegression) marshalFloatAttributes() []map[string]interface{} {
	ans := make([]map[string]interface{}, len(lr.Attrs))
	for idx, attr := range lr.Attrs {
		ans[idx] = marshalFloatAttribute(attr)
	}
	return ans
}

func (lr *LinearRegression) UnmarshalJSON(data []byte) error {
	var d map[string]interface{}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	return mapstructure.Decode(d, lr)
}
