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

package storage

// Record is a served estimate, columns follow the training dataset.
type Record struct {
	// ID is record id.
	ID string `csv:"id"`

	// BHK is the number of bedrooms, hall and kitchen.
	BHK int64 `csv:"BHK"`

	// Size is the area of the property.
	Size float64 `csv:"Size"`

	// Age is the age of the property in years.
	Age int64 `csv:"Age"`

	// NearbySchools is the number of nearby schools.
	NearbySchools int64 `csv:"Nearby_Schools"`

	// NearbyHospitals is the number of nearby hospitals.
	NearbyHospitals int64 `csv:"Nearby_Hospitals"`

	City                         string `csv:"City"`
	PropertyType                 string `csv:"Property_Type"`
	FurnishedStatus              string `csv:"Furnished_Status"`
	PublicTransportAccessibility string `csv:"Public_Transport_Accessibility"`
	ParkingSpace                 string `csv:"Parking_Space"`
	Security                     string `csv:"Security"`
	AvailabilityStatus           string `csv:"Availability_Status"`

	// Price is the estimate in lakhs.
	Price float64 `csv:"Price_in_Lakhs"`

	// ModelVersion is the version of the model served the estimate.
	ModelVersion string `csv:"model_version"`

	// CreatedAt is the record create nanosecond time.
	CreatedAt int64 `csv:"created_at"`
}
