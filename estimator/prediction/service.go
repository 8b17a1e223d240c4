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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package prediction

import (
	"fmt"
	"math"
	"reflect"

	"github.com/looplab/fsm"

	"github.com/getadityaarya/india-housing-price-predictor/estimator/feature"
	"github.com/getadityaarya/india-housing-price-predictor/estimator/metrics"
	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const (
	// Service has been created but the model is not attached.
	StateUninitialized = "Uninitialized"

	// Service serves predictions.
	StateReady = "Ready"

	// Service has no model, every prediction fails.
	StateUnavailable = "Unavailable"
)

const (
	// Model is attached.
	EventLoad = "Load"

	// Model failed to load.
	EventFail = "Fail"
)

// Model is the trained model, it must be safe for concurrent use.
type Model interface {
	// Predict returns the estimate of the vector in the model's native unit.
	Predict(feature.Vector) (float64, error)
}

// Service is the interface used for predicting with the trained model.
type Service interface {
	// Predict returns the raw estimate of the vector.
	Predict(feature.Vector) (float64, error)

	// State returns the state of the service.
	State() string
}

type service struct {
	model Model

	// fsm is driven once in New, Ready and Unavailable are terminal.
	fsm *fsm.FSM
}

// New returns a new Service instance. A nil model, typed or not, makes the service
// permanently unavailable.
func New(model Model) Service {
	if isNil(model) {
		model = nil
	}

	s := &service{model: model}
	s.fsm = fsm.NewFSM(
		StateUninitialized,
		fsm.Events{
			{Name: EventLoad, Src: []string{StateUninitialized}, Dst: StateReady},
			{Name: EventFail, Src: []string{StateUninitialized}, Dst: StateUnavailable},
		},
		fsm.Callbacks{
			EventLoad: func(e *fsm.Event) {
				logger.Infof("prediction service state is %s", e.FSM.Current())
			},
			EventFail: func(e *fsm.Event) {
				logger.Errorf("prediction service state is %s, every prediction fails until restart", e.FSM.Current())
			},
		},
	)

	event := EventLoad
	if model == nil {
		event = EventFail
	}

	if err := s.fsm.Event(event); err != nil {
		logger.Errorf("prediction service event %s failed: %s", event, err.Error())
	}

	for _, state := range []string{StateReady, StateUnavailable} {
		if s.fsm.Is(state) {
			metrics.ModelStateGauge.WithLabelValues(state).Set(1)
		} else {
			metrics.ModelStateGauge.WithLabelValues(state).Set(0)
		}
	}

	return s
}

// Predict returns the raw estimate of the vector. Errors and panics of the
// model are returned as *PredictionFailureError.
func (s *service) Predict(v feature.Vector) (price float64, err error) {
	metrics.PredictCount.Inc()
	if !s.fsm.Is(StateReady) {
		metrics.PredictFailureCount.WithLabelValues(metrics.ReasonModelUnavailable).Inc()
		return 0, ErrModelUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			price, err = 0, &PredictionFailureError{Cause: fmt.Errorf("model panic: %v", r)}
		}

		if err != nil {
			metrics.PredictFailureCount.WithLabelValues(metrics.ReasonPredictionFailure).Inc()
			logger.With("vector", v.String()).Errorf("predict failed: %s", err.Error())
		}
	}()

	price, err = s.model.Predict(v)
	if err != nil {
		return 0, &PredictionFailureError{Cause: err}
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &PredictionFailureError{Cause: fmt.Errorf("non-finite estimate %v", price)}
	}

	return price, nil
}

// State returns the state of the service.
func (s *service) State() string {
	return s.fsm.Current()
}

func isNil(model Model) bool {
	if model == nil {
		return true
	}

	v := reflect.ValueOf(model)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}
