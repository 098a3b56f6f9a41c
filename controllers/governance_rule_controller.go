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

type GovernanceRuleController struct {
	governanceRuleService shared.GovernanceRuleService
}

func NewGovernanceRuleController(governanceRuleService shared.GovernanceRuleService) *GovernanceRuleController {
	return &GovernanceRuleController{
		governanceRuleService: governanceRuleService,
	}
}

func (c *GovernanceRuleController) List(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	rules, err := c.governanceRuleService.List(ctx.Request().Context(), tenantID)
	if err != nil {
		return httpError(err, "could not list governance rules")
	}
	return ctx.JSON(http.StatusOK, utils.Map(rules, transformer.GovernanceRuleModelToDTO))
}

// @Summary Create a governance rule
// @Description Rules are evaluated by priority against every newly created finding. The first match applies its action.
// @Tags GovernanceRules
// @Param body body dtos.GovernanceRuleCreateRequest true "Rule"
// @Success 201 {object} dtos.GovernanceRuleDTO
// @Router /tenants/{tenantID}/governance-rules [post]
func (c *GovernanceRuleController) Create(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var req dtos.GovernanceRuleCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	rule, err := c.governanceRuleService.Create(ctx.Request().Context(), tenantID, req)
	if err != nil {
		return httpError(err, "could not create governance rule")
	}
	return ctx.JSON(http.StatusCreated, transformer.GovernanceRuleModelToDTO(rule))
}

func (c *GovernanceRuleController) Delete(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	ruleID, err := pathID(ctx, shared.GetRuleID, "rule")
	if err != nil {
		return err
	}

	if err := c.governanceRuleService.Delete(ctx.Request().Context(), tenantID, ruleID); err != nil {
		return httpError(err, "could not delete governance rule")
	}
	return ctx.NoContent(http.StatusNoContent)
}
