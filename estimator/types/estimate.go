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

package types

import (
	"encoding/json"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
)

// PriceUnit is the unit of estimates.
const PriceUnit = "Lakhs"

// FormFieldAliases maps field names of the listing form to attribute names.
var FormFieldAliases = map[string]string{
	"city":             category.City,
	"property_type":    category.PropertyType,
	"furnished_status": category.FurnishedStatus,
	"transport":        category.PublicTransportAccessibility,
	"parking":          category.ParkingSpace,
	"security":         category.Security,
	"availability":     category.AvailabilityStatus,
	"bhk":              feature.BHK,
	"size":             feature.Size,
	"age":              feature.Age,
	"schools":          feature.NearbySchools,
	"hospitals":        feature.NearbyHospitals,
}

type EstimateResponse struct {
	ID           string  `json:"id"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	Text         string  `json:"text"`
	ModelVersion string  `json:"model_version,omitempty"`
	Cached       bool    `json:"cached"`
}

type EstimatesSummaryResponse struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P90    float64 `json:"p90"`
	Unit   string  `json:"unit"`
}

type HealthResponse struct {
	State        string `json:"state"`
	ModelVersion string `json:"model_version,omitempty"`
}

// MakeRawAttributes collects attributes by their names, then by their form aliases.
// An attribute name takes precedence over its alias.
func MakeRawAttributes(lookup func(string) (string, bool)) feature.RawAttributes {
	raw := feature.RawAttributes{}
	for _, name := range feature.ColumnNames() {
		if value, ok := lookup(name); ok {
			raw[name] = value
		}
	}

	for alias, name := range FormFieldAliases {
		if _, ok := raw[name]; ok {
			continue
		}

		if value, ok := lookup(alias); ok {
			raw[name] = value
		}
	}

	return raw
}

// JSONLookup returns the lookup of a decoded json object, null values are absent.
func JSONLookup(body map[string]any) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := body[key]
		if !ok {
			return "", false
		}

		switch x := v.(type) {
		case string:
			return x, true
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64), true
		case json.Number:
			return x.String(), true
		case bool:
			return strconv.FormatBool(x), true
		case nil:
			return "", false
		default:
			b, err := json.Marshal(x)
			if err != nil {
				return "", false
			}

			return string(b), true
		}
	}
}

// FormatPrice returns the display text of the estimate.
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Estimated Price: ₹%.2f %s", price, PriceUnit)
}
