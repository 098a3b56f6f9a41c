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

	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/transformer"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/labstack/echo/v4"
)

type FindingController struct {
	findingService           shared.FindingService
	governanceService        shared.GovernanceService
	persistenceRouterService shared.PersistenceRouterService
}

func NewFindingController(findingService shared.FindingService, governanceService shared.GovernanceService, persistenceRouterService shared.PersistenceRouterService) *FindingController {
	return &FindingController{
		findingService:           findingService,
		governanceService:        governanceService,
		persistenceRouterService: persistenceRouterService,
	}
}

// @Summary List findings of a tenant
// @Tags Findings
// @Param tenantID path string true "Tenant ID"
// @Param assetId query string false "Restrict to one asset"
// @Param status query string false "Comma separated VLM states"
// @Param severity query string false "Comma separated severities"
// @Param sourceTool query string false "Source tool"
// @Param includeDuplicates query bool false "Include duplicate findings"
// @Param search query string false "Search in title and description"
// @Success 200 {object} shared.Paged[dtos.FindingDTO]
// @Router /tenants/{tenantID}/findings [get]
func (c *FindingController) List(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	filter, err := shared.GetFindingFilter(ctx)
	if err != nil {
		return httpError(err, "could not list findings")
	}

	paged, err := c.findingService.List(ctx.Request().Context(), tenantID, filter, shared.GetPageInfo(ctx))
	if err != nil {
		return httpError(err, "could not list findings")
	}
	return ctx.JSON(http.StatusOK, paged.Map(func(f models.Finding) any {
		return transformer.FindingModelToDTO(f)
	}))
}

// @Summary Read a finding
// @Tags Findings
// @Success 200 {object} dtos.FindingDTO
// @Router /tenants/{tenantID}/findings/{findingID} [get]
func (c *FindingController) Read(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	findingID, err := pathID(ctx, shared.GetFindingID, "finding")
	if err != nil {
		return err
	}

	finding, err := c.findingService.Read(ctx.Request().Context(), tenantID, findingID)
	if err != nil {
		return httpError(err, "could not read finding")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingModelToDTO(finding))
}

// @Summary Apply a manual governance edit to a finding
// @Description Immutable fields are rejected with 422, illegal transitions list the allowed targets.
// @Tags Findings
// @Param body body dtos.FindingPatch true "Patch"
// @Success 200 {object} dtos.FindingDTO
// @Failure 422 {object} object
// @Router /tenants/{tenantID}/findings/{findingID} [patch]
func (c *FindingController) Patch(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	findingID, err := pathID(ctx, shared.GetFindingID, "finding")
	if err != nil {
		return err
	}

	var patch dtos.FindingPatch
	if err := ctx.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse patch").WithInternal(err)
	}

	finding, err := c.governanceService.ApplyGovernanceEdit(ctx.Request().Context(), tenantID, findingID, patch, shared.GetActor(ctx))
	if err != nil {
		return httpError(err, "could not update finding")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingModelToDTO(finding))
}

// @Summary Apply the same governance edit to many findings of one asset
// @Tags Findings
// @Param body body dtos.BulkEditRequest true "Bulk edit"
// @Success 200 {array} dtos.FindingDTO
// @Failure 403 {object} object
// @Router /tenants/{tenantID}/findings/bulk-edit [post]
func (c *FindingController) BulkEdit(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var req dtos.BulkEditRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	findings, err := c.governanceService.BulkEdit(ctx.Request().Context(), tenantID, req.FindingIDs, req.Patch, shared.GetActor(ctx))
	if err != nil {
		return httpError(err, "could not bulk edit findings")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingModelsToDTOs(findings))
}

func (c *FindingController) Events(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	findingID, err := pathID(ctx, shared.GetFindingID, "finding")
	if err != nil {
		return err
	}

	events, err := c.findingService.ListEvents(ctx.Request().Context(), tenantID, findingID)
	if err != nil {
		return httpError(err, "could not list finding events")
	}
	return ctx.JSON(http.StatusOK, utils.Map(events, transformer.FindingEventModelToDTO))
}

func (c *FindingController) Duplicates(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	findingID, err := pathID(ctx, shared.GetFindingID, "finding")
	if err != nil {
		return err
	}

	duplicates, err := c.persistenceRouterService.ListDuplicates(ctx.Request().Context(), tenantID, findingID)
	if err != nil {
		return httpError(err, "could not list duplicates")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingModelsToDTOs(duplicates))
}

// @Summary Merge a duplicate into its original
// @Description The original is moved to UNDER_REVIEW.
// @Tags Findings
// @Success 200 {object} dtos.FindingDTO
// @Router /tenants/{tenantID}/findings/{findingID}/merge [post]
func (c *FindingController) Merge(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	duplicateID, err := pathID(ctx, shared.GetFindingID, "finding")
	if err != nil {
		return err
	}

	original, err := c.persistenceRouterService.MergeDuplicate(ctx.Request().Context(), tenantID, duplicateID, shared.GetActor(ctx))
	if err != nil {
		return httpError(err, "could not merge duplicate")
	}
	return ctx.JSON(http.StatusOK, transformer.FindingModelToDTO(original))
}

// @Summary Persist a finding as original or duplicate
// @Tags Findings
// @Param body body dtos.FindingIngestRequest true "Finding"
// @Success 201 {object} dtos.PersistenceResult
// @Router /tenants/{tenantID}/assets/{assetID}/findings [post]
func (c *FindingController) Persist(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	assetID, err := pathID(ctx, shared.GetAssetID, "asset")
	if err != nil {
		return err
	}

	var req dtos.FindingIngestRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse finding").WithInternal(err)
	}
	req.AssetID = assetID

	result, err := c.persistenceRouterService.Route(ctx.Request().Context(), tenantID, assetID, req)
	if err != nil {
		return httpError(err, "could not persist finding")
	}
	return ctx.JSON(http.StatusCreated, result)
}
