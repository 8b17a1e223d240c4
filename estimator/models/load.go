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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

// Load reads a fitted linear regression model artifact from path.
// The model is validated against the feature column order.
func Load(path string) (*LinearRegression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	lr := &LinearRegression{}
	if err := json.Unmarshal(data, lr); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	if err := lr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model %s: %w", path, err)
	}

	digest := sha256.Sum256(data)
	lr.Version = hex.EncodeToString(digest[:])[:12]
	logger.WithModel(path, lr.Version).Info("model loaded")
	return lr, nil
}
