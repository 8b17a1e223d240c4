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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	// nolint
	_ "github.com/getadityaarya/india-housing-price-predictor/estimator/category"
)

// @Summary Get Categories
// @Description Get vocabularies of categorical attributes
// @Tags Category
// @Accept json
// @Produce json
// @Success 200 {object} []category.Category
// @Router /api/v1/categories [get]
func (h *Handlers) GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.Categories())
}
