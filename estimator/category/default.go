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

// The vocabularies below are listed in the order the training encoder assigned codes,
// which is the lexicographic order of the classes. Changing any of them requires a retrain.
var (
	// DefaultCities is the vocabulary of City.
	DefaultCities = []string{
		"Bangalore", "Chennai", "Coimbatore", "Delhi", "Hyderabad", "Kochi",
		"Kolkata", "Mumbai", "Pune",
	}

	// DefaultPropertyTypes is the vocabulary of Property_Type.
	DefaultPropertyTypes = []string{"Apartment", "Independent House", "Villa"}

	// DefaultFurnishedStatus is the vocabulary of Furnished_Status.
	DefaultFurnishedStatus = []string{"Furnished", "Semi-Furnished", "Unfurnished"}

	// DefaultTransportAccessibility is the vocabulary of Public_Transport_Accessibility.
	DefaultTransportAccessibility = []string{"High", "Low", "Medium"}

	// DefaultYesNo is the vocabulary of Parking_Space and Security.
	DefaultYesNo = []string{"No", "Yes"}

	// DefaultAvailabilityStatus is the vocabulary of Availability_Status.
	DefaultAvailabilityStatus = []string{"Ready_to_Move", "Under_Construction"}
)

// DefaultCategories returns the training-time categories.
func DefaultCategories() []Category {
	return []Category{
		{Name: City, Values: DefaultCities},
		{Name: PropertyType, Values: DefaultPropertyTypes},
		{Name: FurnishedStatus, Values: DefaultFurnishedStatus},
		{Name: PublicTransportAccessibility, Values: DefaultTransportAccessibility},
		{Name: ParkingSpace, Values: DefaultYesNo},
		{Name: Security, Values: DefaultYesNo},
		{Name: AvailabilityStatus, Values: DefaultAvailabilityStatus},
	}
}

// Default returns the registry of the training-time categories.
func Default() *Registry {
	r, err := New(DefaultCategories()...)
	if err != nil {
		panic(err)
	}

	return r
}
