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

//go:generate mockgen -destination mocks/builder_mock.go -source builder.go -package mocks

package feature

import (
	"math"
	"strconv"
	"strings"
)

// Encoder encodes a category value into its code.
type Encoder interface {
	Encode(attribute, value string) (int, error)
}

// Builder is the interface used for building feature vectors.
type Builder interface {
	// Build converts raw attributes into the vector in ColumnOrder.
	Build(RawAttributes) (Vector, error)
}

type builder struct {
	encoder Encoder
}

// New returns a new Builder instance.
func New(encoder Encoder) Builder {
	return &builder{encoder: encoder}
}

// Build converts raw attributes into the vector in ColumnOrder,
// it returns the first error in column order and no vector.
func (b *builder) Build(raw RawAttributes) (Vector, error) {
	var v Vector
	for i, column := range ColumnOrder {
		value, ok := raw[column.Name]
		if !ok {
			return Vector{}, &MissingFieldError{Field: column.Name}
		}

		var (
			x   float64
			err error
		)
		switch column.Kind {
		case KindInteger:
			x, err = parseInteger(column.Name, value)
		case KindReal:
			x, err = parseReal(column.Name, value)
		case KindCategory:
			var code int
			code, err = b.encoder.Encode(column.Name, value)
			x = float64(code)
		}

		if err != nil {
			return Vector{}, err
		}

		v[i] = x
	}

	return v, nil
}

func parseInteger(field, value string) (float64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return 0, &InvalidNumericFieldError{Field: field, RawValue: value}
	}

	return float64(n), nil
}

func parseReal(field, value string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &InvalidNumericFieldError{Field: field, RawValue: value}
	}

	// "-0" parses to negative zero, which would key the cache apart from "0".
	if x == 0 {
		x = 0
	}

	return x, nil
}
