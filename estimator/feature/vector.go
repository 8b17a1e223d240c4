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

package feature

import (
	"strconv"
	"strings"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
)

const (
	// BHK is the attribute name of the bedroom, hall and kitchen count.
	BHK = "BHK"

	// Size is the attribute name of the size in square feet.
	Size = "Size"

	// Age is the attribute name of the property age in years.
	Age = "Age"

	// NearbySchools is the attribute name of the nearby schools count.
	NearbySchools = "Nearby_Schools"

	// NearbyHospitals is the attribute name of the nearby hospitals count.
	NearbyHospitals = "Nearby_Hospitals"
)

// Kind is the kind of a column.
type Kind int

const (
	// KindInteger is a non-negative integer column.
	KindInteger Kind = iota

	// KindReal is a non-negative real column.
	KindReal

	// KindCategory is a category code column.
	KindCategory
)

// Column is one position of the feature vector.
type Column struct {
	Name string
	Kind Kind
}

// VectorLen is the number of columns the model is trained on.
const VectorLen = 12

// ColumnOrder is the column order of the trained model.
// It must not change without retraining the model.
var ColumnOrder = [VectorLen]Column{
	{Name: BHK, Kind: KindInteger},
	{Name: Size, Kind: KindReal},
	{Name: Age, Kind: KindInteger},
	{Name: NearbySchools, Kind: KindInteger},
	{Name: NearbyHospitals, Kind: KindInteger},
	{Name: category.City, Kind: KindCategory},
	{Name: category.PropertyType, Kind: KindCategory},
	{Name: category.FurnishedStatus, Kind: KindCategory},
	{Name: category.PublicTransportAccessibility, Kind: KindCategory},
	{Name: category.ParkingSpace, Kind: KindCategory},
	{Name: category.Security, Kind: KindCategory},
	{Name: category.AvailabilityStatus, Kind: KindCategory},
}

// ColumnNames returns the names of ColumnOrder.
func ColumnNames() []string {
	names := make([]string, VectorLen)
	for i, c := range ColumnOrder {
		names[i] = c.Name
	}

	return names
}

// Vector is the feature vector in ColumnOrder.
type Vector [VectorLen]float64

// String returns the comma separated values of the vector.
func (v Vector) String() string {
	values := make([]string, VectorLen)
	for i, x := range v {
		values[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}

	return strings.Join(values, ",")
}

// RawAttributes maps attribute name to the raw value supplied by the client.
type RawAttributes map[string]string
