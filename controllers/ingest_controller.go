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
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/transformer"
	"github.com/labstack/echo/v4"
)

type IngestController struct {
	correlationService shared.CorrelationService
	reimportService    shared.ReimportService
}

func NewIngestController(correlationService shared.CorrelationService, reimportService shared.ReimportService) *IngestController {
	return &IngestController{
		correlationService: correlationService,
		reimportService:    reimportService,
	}
}

// @Summary Ingest a single finding
// @Tags Ingest
// @Param body body dtos.FindingIngestRequest true "Finding"
// @Success 200 {object} dtos.IngestResult
// @Router /tenants/{tenantID}/ingest [post]
func (c *IngestController) Ingest(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var req dtos.FindingIngestRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, err := c.correlationService.Ingest(ctx.Request().Context(), nil, tenantID, req)
	if err != nil {
		return httpError(err, "could not ingest finding")
	}

	status := http.StatusOK
	if result.Action == dtos.IngestActionCreated {
		status = http.StatusCreated
	}
	return ctx.JSON(status, result)
}

// @Summary Ingest many findings, failures are reported per item
// @Tags Ingest
// @Param body body []dtos.FindingIngestRequest true "Findings"
// @Success 200 {object} dtos.BatchIngestResult
// @Router /tenants/{tenantID}/ingest/batch [post]
func (c *IngestController) BatchIngest(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}

	var reqs []dtos.FindingIngestRequest
	if err := ctx.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse findings").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, c.correlationService.BatchIngest(ctx.Request().Context(), tenantID, reqs))
}

func (c *IngestController) UploadZAP(ctx shared.Context) error {
	return c.upload(ctx, transformer.ZAPReportToIngestRequests)
}

func (c *IngestController) UploadSARIF(ctx shared.Context) error {
	return c.upload(ctx, transformer.SARIFReportToIngestRequests)
}

// upload converts a scanner report and ingests it. With ?reimport=true the report is treated
// as the complete result of a recurring scan and reconciled against the stored findings
// of each source tool it contains.
func (c *IngestController) upload(ctx shared.Context, convert func([]byte, uuid.UUID) ([]dtos.FindingIngestRequest, error)) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	assetID, err := pathID(ctx, shared.GetAssetID, "asset")
	if err != nil {
		return err
	}

	data, err := readReport(ctx)
	if err != nil {
		return err
	}
	reqs, err := convert(data, assetID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}

	reimport, _ := strconv.ParseBool(ctx.QueryParam("reimport"))
	if !reimport {
		return ctx.JSON(http.StatusOK, c.correlationService.BatchIngest(ctx.Request().Context(), tenantID, reqs))
	}

	byTool := map[string][]dtos.FindingIngestRequest{}
	var tools []string
	for _, req := range reqs {
		if _, ok := byTool[req.SourceTool]; !ok {
			tools = append(tools, req.SourceTool)
		}
		byTool[req.SourceTool] = append(byTool[req.SourceTool], req)
	}

	results := make(map[string]dtos.ImportScanResult, len(tools))
	for _, tool := range tools {
		result, err := c.reimportService.ImportScan(ctx.Request().Context(), tenantID, assetID, dtos.ReimportRequest{
			SourceTool: tool,
			Findings:   byTool[tool],
		})
		if err != nil {
			return httpError(err, "could not import scan")
		}
		slog.Info("imported scan", "tenantID", tenantID, "assetID", assetID, "sourceTool", tool, "new", result.Reconciliation.New, "closed", result.Reconciliation.Closed)
		results[tool] = result
	}
	return ctx.JSON(http.StatusOK, results)
}

// @Summary Reconcile a recurring scan against the stored findings
// @Description Findings missing from the scan are closed, returning ones reactivated and new ones ingested.
// @Tags Ingest
// @Param body body dtos.ReimportRequest true "Scan"
// @Success 200 {object} dtos.ImportScanResult
// @Router /tenants/{tenantID}/assets/{assetID}/reimport [post]
func (c *IngestController) Reimport(ctx shared.Context) error {
	tenantID, err := pathID(ctx, shared.GetTenantID, "tenant")
	if err != nil {
		return err
	}
	assetID, err := pathID(ctx, shared.GetAssetID, "asset")
	if err != nil {
		return err
	}

	var req dtos.ReimportRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	for i := range req.Findings {
		req.Findings[i].AssetID = assetID
	}

	result, err := c.reimportService.ImportScan(ctx.Request().Context(), tenantID, assetID, req)
	if err != nil {
		return httpError(err, "could not reimport scan")
	}
	return ctx.JSON(http.StatusOK, result)
}
