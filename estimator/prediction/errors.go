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

package prediction

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned by every prediction when the model failed to load.
var ErrModelUnavailable = errors.New("model unavailable")

// PredictionFailureError wraps any failure raised inside the model.
type PredictionFailureError struct {
	Cause error
}

func (e *PredictionFailureError) Error() string {
	return fmt.Sprintf("prediction failure: %s", e.Cause)
}

func (e *PredictionFailureError) Unwrap() error {
	return e.Cause
}
