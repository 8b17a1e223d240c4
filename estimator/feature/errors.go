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
	"errors"
	"fmt"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/category"
)

// InvalidNumericFieldError is returned when a numeric attribute can not be parsed.
type InvalidNumericFieldError struct {
	Field    string
	RawValue string
}

func (e *InvalidNumericFieldError) Error() string {
	return fmt.Sprintf("invalid numeric value %q for %s", e.RawValue, e.Field)
}

// MissingFieldError is returned when an attribute is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing value for %s", e.Field)
}

// IsInputError reports whether err is caused by the client input and can be fixed by resubmitting.
func IsInputError(err error) bool {
	var (
		invalidErr *InvalidNumericFieldError
		missingErr *MissingFieldError
		unknownErr *category.UnknownCategoryValueError
	)

	return errors.As(err, &invalidErr) || errors.As(err, &missingErr) || errors.As(err, &unknownErr)
}
