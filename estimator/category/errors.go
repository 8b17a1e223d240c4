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

import "fmt"

// ConfigurationError is a setup defect, such as an attribute that was never registered.
type ConfigurationError struct {
	Attribute string
	Message   string
}

func (e *ConfigurationError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("category configuration: %s", e.Message)
	}

	return fmt.Sprintf("category configuration %s: %s", e.Attribute, e.Message)
}

// UnknownCategoryValueError is returned when a value is outside the vocabulary of its attribute.
type UnknownCategoryValueError struct {
	Attribute string
	Value     string
}

func (e *UnknownCategoryValueError) Error() string {
	return fmt.Sprintf("unknown value %q for %s", e.Value, e.Attribute)
}
