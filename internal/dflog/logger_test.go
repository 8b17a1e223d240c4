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

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	core, logs := observer.New(level)
	coreLogger := CoreLogger
	t.Cleanup(func() {
		SetCoreLogger(coreLogger)
	})

	SetCoreLogger(zap.New(core).Sugar())
	return logs
}

func TestSugaredLoggerOnWith(t *testing.T) {
	tests := []struct {
		name   string
		level  zapcore.Level
		run    func()
		expect func(t *testing.T, logs *observer.ObservedLogs)
	}{
		{
			name:  "with request id",
			level: zapcore.InfoLevel,
			run: func() {
				WithRequestID("foo").Warnf("bar %d", 1)
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				entries := logs.All()
				assert.Len(entries, 1)
				assert.Equal(zapcore.WarnLevel, entries[0].Level)
				assert.Equal("bar 1", entries[0].Message)
				assert.Equal("foo", entries[0].ContextMap()["requestID"])
			},
		},
		{
			name:  "with model",
			level: zapcore.InfoLevel,
			run: func() {
				WithModel("/foo/model.json", "bar").Info("model loaded")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				entries := logs.All()
				assert.Len(entries, 1)
				assert.Equal(map[string]any{"modelPath": "/foo/model.json", "modelVersion": "bar"}, entries[0].ContextMap())
			},
		},
		{
			name:  "debug is dropped by info level",
			level: zapcore.InfoLevel,
			run: func() {
				With("foo", "bar").Debugf("baz")
				With("foo", "bar").Errorf("qux")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				entries := logs.All()
				assert.Len(entries, 1)
				assert.Equal("qux", entries[0].Message)
				assert.Equal("bar", entries[0].ContextMap()["foo"])
			},
		},
		{
			name:  "debug is written by debug level",
			level: zapcore.DebugLevel,
			run: func() {
				With("foo", "bar").Debugf("baz %s", "qux")
			},
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.FilterMessage("baz qux").FilterField(zap.String("foo", "bar")).Len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := observe(t, tc.level)
			tc.run()
			tc.expect(t, logs)
		})
	}
}

func TestLogger(t *testing.T) {
	assert := assert.New(t)
	logs := observe(t, zapcore.InfoLevel)

	Infof("foo %s", "bar")
	Warnf("baz")
	Errorf("qux")
	Error("quux")
	assert.Equal(4, logs.Len())
	assert.Equal("foo bar", logs.All()[0].Message)
	assert.Equal(zapcore.ErrorLevel, logs.All()[3].Level)
}
