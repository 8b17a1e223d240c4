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

package category

import (
	"golang.org/x/exp/slices"
)

const (
	// City is the attribute name of the listing city.
	City = "City"

	// PropertyType is the attribute name of the property type.
	PropertyType = "Property_Type"

	// FurnishedStatus is the attribute name of the furnished status.
	FurnishedStatus = "Furnished_Status"

	// PublicTransportAccessibility is the attribute name of the public transport accessibility level.
	PublicTransportAccessibility = "Public_Transport_Accessibility"

	// ParkingSpace is the attribute name of the parking space availability.
	ParkingSpace = "Parking_Space"

	// Security is the attribute name of the security availability.
	Security = "Security"

	// AvailabilityStatus is the attribute name of the availability status.
	AvailabilityStatus = "Availability_Status"
)

// Category is a closed vocabulary of one categorical attribute,
// the order of values is the encoding order.
type Category struct {
	// Name is the attribute name.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Values is the vocabulary of the attribute.
	Values []string `json:"values" yaml:"values" mapstructure:"values"`
}

// Registry holds the vocabularies of all categorical attributes and encodes values into codes.
// It is immutable after New and safe for concurrent use.
type Registry struct {
	// categories keeps registration order.
	categories []Category

	// codes maps attribute name to value codes.
	codes map[string]map[string]int
}

// New returns a registry of the given categories.
func New(categories ...Category) (*Registry, error) {
	r := &Registry{
		categories: make([]Category, 0, len(categories)),
		codes:      make(map[string]map[string]int, len(categories)),
	}

	for _, c := range categories {
		if c.Name == "" {
			return nil, &ConfigurationError{Message: "category requires parameter name"}
		}

		if _, ok := r.codes[c.Name]; ok {
			return nil, &ConfigurationError{Attribute: c.Name, Message: "category is registered twice"}
		}

		if len(c.Values) == 0 {
			return nil, &ConfigurationError{Attribute: c.Name, Message: "category requires at least one value"}
		}

		codes := make(map[string]int, len(c.Values))
		for i, v := range c.Values {
			if _, ok := codes[v]; ok {
				return nil, &ConfigurationError{Attribute: c.Name, Message: "duplicate value " + v}
			}

			codes[v] = i
		}

		r.codes[c.Name] = codes
		r.categories = append(r.categories, Category{
			Name:   c.Name,
			Values: slices.Clone(c.Values),
		})
	}

	return r, nil
}

// Encode returns the code of value within the vocabulary of attribute.
func (r *Registry) Encode(attribute, value string) (int, error) {
	codes, ok := r.codes[attribute]
	if !ok {
		return 0, &ConfigurationError{Attribute: attribute, Message: "attribute is not registered"}
	}

	code, ok := codes[value]
	if !ok {
		return 0, &UnknownCategoryValueError{Attribute: attribute, Value: value}
	}

	return code, nil
}

// Values returns a copy of the vocabulary of attribute.
func (r *Registry) Values(attribute string) ([]string, error) {
	i := slices.IndexFunc(r.categories, func(c Category) bool {
		return c.Name == attribute
	})
	if i < 0 {
		return nil, &ConfigurationError{Attribute: attribute, Message: "attribute is not registered"}
	}

	return slices.Clone(r.categories[i].Values), nil
}

// Categories returns a copy of all categories in registration order.
func (r *Registry) Categories() []Category {
	categories := make([]Category, len(r.categories))
	for i, c := range r.categories {
		categories[i] = Category{
			Name:   c.Name,
			Values: slices.Clone(c.Values),
		}
	}

	return categories
}
