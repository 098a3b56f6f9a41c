// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
)

type AnalyticsController struct {
	analyticsService shared.AnalyticsService
	slaService       shared.SLAService
}

func NewAnalyticsController(analyticsService shared.AnalyticsService, slaService shared.SLAService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		slaService:       slaService,
	}
}

// @Summary Mean time to remediate per severity
// @Tags Analytics
// @Param assetId query string false "Restrict to one asset"
// @Success 200 {array} dtos.MTTRBySeverity
// @Router /tenants/{tenantID}/analytics/mttr [get]
func (c *AnalyticsController) MTTR(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var assetID *uuid.UUID
	if raw := ctx.QueryParam("assetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid assetId").WithInternal(err)
		}
		assetID = &id
	}

	mttr, err := c.analyticsService.MTTR(ctx.Request().Context(), tenantID, assetID)
	if err != nil {
		return httpError(err, "could not calculate mttr")
	}
	return ctx.JSON(http.StatusOK, mttr)
}

func (c *AnalyticsController) SLAViolations(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	violations, err := c.slaService.ListViolations(ctx.Request().Context(), tenantID)
	if err != nil {
		return httpError(err, "could not list sla violations")
	}
	return ctx.JSON(http.StatusOK, violations)
}
