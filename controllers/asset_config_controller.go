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

	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/transformer"
)

type AssetConfigController struct {
	assetConfigService shared.AssetConfigService
}

func NewAssetConfigController(assetConfigService shared.AssetConfigService) *AssetConfigController {
	return &AssetConfigController{
		assetConfigService: assetConfigService,
	}
}

// @Summary Read the deduplication, reimport and SLA settings of an asset
// @Tags AssetConfig
// @Success 200 {object} dtos.AssetConfigDTO
// @Router /tenants/{tenantID}/assets/{assetID}/config [get]
func (c *AssetConfigController) Read(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	assetID, err := pathID(ctx, shared.GetAssetID, "asset")
	if err != nil {
		return err
	}

	config, err := c.assetConfigService.Get(ctx.Request().Context(), tenantID, assetID)
	if err != nil {
		return httpError(err, "could not read asset config")
	}
	return ctx.JSON(http.StatusOK, transformer.AssetConfigModelToDTO(config))
}

// @Summary Update the settings of an asset
// @Tags AssetConfig
// @Param body body dtos.AssetConfigUpdateRequest true "Changes"
// @Success 200 {object} dtos.AssetConfigDTO
// @Router /tenants/{tenantID}/assets/{assetID}/config [put]
func (c *AssetConfigController) Update(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	assetID, err := pathID(ctx, shared.GetAssetID, "asset")
	if err != nil {
		return err
	}

	var req dtos.AssetConfigUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	config, err := c.assetConfigService.Update(ctx.Request().Context(), tenantID, assetID, req)
	if err != nil {
		return httpError(err, "could not update asset config")
	}
	return ctx.JSON(http.StatusOK, transformer.AssetConfigModelToDTO(config))
}
