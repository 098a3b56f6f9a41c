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
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type FindingGroupController struct {
	findingGroupService shared.FindingGroupService
}

func NewFindingGroupController(findingGroupService shared.FindingGroupService) *FindingGroupController {
	return &FindingGroupController{
		findingGroupService: findingGroupService,
	}
}

func (c *FindingGroupController) List(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	groups, err := c.findingGroupService.List(ctx.Request().Context(), tenantID)
	if err != nil {
		return httpError(err, "could not list finding groups")
	}
	return ctx.JSON(http.StatusOK, utils.Map(groups, transformer.FindingGroupModelToDTO))
}

// @Summary Group findings of a single test run
// @Tags FindingGroups
// @Param body body dtos.FindingGroupCreateRequest true "Group"
// @Success 201 {object} dtos.FindingGroupDTO
// @Router /tenants/{tenantID}/groups [post]
func (c *FindingGroupController) Create(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var req dtos.FindingGroupCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	group, err := c.findingGroupService.Create(ctx.Request().Context(), tenantID, req, shared.GetActor(ctx))
	if err != nil {
		return httpError(err, "could not create finding group")
	}
	return ctx.JSON(http.StatusCreated, transformer.FindingGroupModelToDTO(group))
}

func (c *FindingGroupController) Read(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	groupID, err := pathID(ctx, shared.GetGroupID, "group")
	if err != nil {
		return err
	}

	group, err := c.findingGroupService.Read(ctx.Request().Context(), tenantID, groupID)
	if err != nil {
		return httpError(err, "could not read finding group")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingGroupModelToDTO(group))
}
