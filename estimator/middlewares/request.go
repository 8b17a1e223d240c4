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

package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	"github.com/google/uuid"

	logger "github.com/getadityaarya/india-housing-price-predictor/internal/dflog"
)

const RequestID = "X-Request-ID"

// Request sets the request id and the server version of responses.
func Request(serverVersion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestID, id)
		c.Header(RequestID, id)
		c.Header(headers.Server, serverVersion)
		c.Next()

		if len(c.Errors) > 0 {
			logger.WithRequestID(id).Warnf("%s %s failed: %s", c.Request.Method, c.Request.URL.Path, c.Errors.Last().Error())
		}
	}
}
