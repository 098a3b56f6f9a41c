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

package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/normalize"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/statemachine"
)

type reimportService struct {
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
	assetConfigService     shared.AssetConfigService
	correlationService     shared.CorrelationService
	now                    func() time.Time
}

var _ shared.ReimportService = (*reimportService)(nil)

func NewReimportService(findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository, assetConfigService shared.AssetConfigService, correlationService shared.CorrelationService) *reimportService {
	return &reimportService{
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
		assetConfigService:     assetConfigService,
		correlationService:     correlationService,
		now:                    time.Now,
	}
}

// correlationKeyOf returns the key ingest would store for the request, or an empty
// string when the request carries nothing to identify it.
func correlationKeyOf(req dtos.FindingIngestRequest) string {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.VulnerabilityType) == "" {
		return ""
	}
	key, _ := normalize.FindingKeys(req, normalize.DefaultSeverity)
	return key
}

func (s *reimportService) resolvePolicy(ctx context.Context, tenantID, assetID uuid.UUID, policy *dtos.ReimportPolicy) (dtos.ReimportPolicy, error) {
	config, err := s.assetConfigService.Get(ctx, tenantID, assetID)
	if err != nil {
		return dtos.ReimportPolicy{}, err
	}
	if !config.ReimportEnabled {
		// classification only
		return config.ReimportPolicy(), nil
	}
	if policy != nil {
		return *policy, nil
	}
	return config.ReimportPolicy(), nil
}

// Reconcile closes the active findings of the tool the scan no longer reports and
// reactivates mitigated findings the scan reports again.
func (s *reimportService) Reconcile(ctx context.Context, tenantID, assetID uuid.UUID, sourceTool string, findings []dtos.FindingIngestRequest, policy *dtos.ReimportPolicy) (dtos.ReimportResult, error) {
	if strings.TrimSpace(sourceTool) == "" {
		return dtos.ReimportResult{}, shared.NewValidationError("sourceTool", "must not be empty")
	}
	resolved, err := s.resolvePolicy(ctx, tenantID, assetID, policy)
	if err != nil {
		return dtos.ReimportResult{}, err
	}

	keys := make([]string, 0, len(findings))
	for _, f := range findings {
		f.AssetID = assetID
		keys = append(keys, correlationKeyOf(f))
	}

	var diff statemachine.ReimportDiff
	err = s.findingRepository.Transaction(func(tx shared.DB) error {
		active, err := s.findingRepository.ListByStatusForAssetAndTool(tx, tenantID, assetID, sourceTool, dtos.OpenVLMStatuses)
		if err != nil {
			return shared.WrapStoreError(err, "list active findings", "finding", "")
		}
		mitigated, err := s.findingRepository.ListByStatusForAssetAndTool(tx, tenantID, assetID, sourceTool, []dtos.VLMStatus{dtos.VLMStatusInactiveMitigated})
		if err != nil {
			return shared.WrapStoreError(err, "list mitigated findings", "finding", "")
		}

		diff = statemachine.DiffRecurringScan(keys, active, mitigated, resolved)
		return s.apply(tx, diff)
	})
	if err != nil {
		return dtos.ReimportResult{}, err
	}

	monitoring.ReimportTransitions.WithLabelValues("closed").Add(float64(len(diff.ToClose)))
	monitoring.ReimportTransitions.WithLabelValues("reactivated").Add(float64(len(diff.ToReactivate)))
	result := diff.Result()
	slog.Info("reconciled recurring scan", "tenantID", tenantID, "assetID", assetID, "sourceTool", sourceTool,
		"closed", result.Closed, "reactivated", result.Reactivated, "new", result.New, "unchanged", result.Unchanged)
	return result, nil
}

func (s *reimportService) apply(tx shared.DB, diff statemachine.ReimportDiff) error {
	now := s.now()
	changed := make([]models.Finding, 0, len(diff.ToClose)+len(diff.ToReactivate)+len(diff.Unchanged))
	events := make([]models.FindingEvent, 0, len(diff.ToClose)+len(diff.ToReactivate))

	for _, f := range diff.ToClose {
		before := f.StatusVLM
		statemachine.ApplyStatusChange(&f, dtos.VLMStatusInactiveMitigated, now)
		changed = append(changed, f)
		events = append(events, models.NewFindingEvent(f, models.EventTypeReimportClosed, models.SystemActor, before, []string{"statusVlm", "mitigatedDate"}))
	}
	for _, f := range diff.ToReactivate {
		before := f.StatusVLM
		statemachine.ApplyStatusChange(&f, dtos.VLMStatusActive, now)
		f.LastSeenTimestamp = now
		changed = append(changed, f)
		events = append(events, models.NewFindingEvent(f, models.EventTypeReimportReactivated, models.SystemActor, before, []string{"statusVlm", "mitigatedDate", "lastSeenTimestamp"}))
	}
	for _, f := range diff.Unchanged {
		f.LastSeenTimestamp = now
		changed = append(changed, f)
	}

	if err := s.findingRepository.SaveBatch(tx, changed); err != nil {
		return shared.WrapStoreError(err, "save reimported findings", "finding", "")
	}
	if err := s.findingEventRepository.CreateBatch(tx, events); err != nil {
		return shared.WrapStoreError(err, "create finding events", "finding event", "")
	}
	return nil
}

// ImportScan reconciles the scan and ingests the findings nobody knew yet.
func (s *reimportService) ImportScan(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.ReimportRequest) (dtos.ImportScanResult, error) {
	if err := shared.V.Struct(req); err != nil {
		return dtos.ImportScanResult{}, shared.NewValidationError("", err.Error())
	}

	reconciliation, err := s.Reconcile(ctx, tenantID, assetID, req.SourceTool, req.Findings, req.Policy)
	if err != nil {
		return dtos.ImportScanResult{}, err
	}

	newKeys := make(map[string]struct{}, len(reconciliation.Details.NewCorrelationKeys))
	for _, key := range reconciliation.Details.NewCorrelationKeys {
		newKeys[key] = struct{}{}
	}

	toIngest := make([]dtos.FindingIngestRequest, 0, len(newKeys))
	for _, f := range req.Findings {
		f.AssetID = assetID
		if f.SourceTool == "" {
			f.SourceTool = req.SourceTool
		}
		if _, ok := newKeys[correlationKeyOf(f)]; ok {
			toIngest = append(toIngest, f)
		}
	}

	return dtos.ImportScanResult{
		Reconciliation: reconciliation,
		Ingestion:      s.correlationService.BatchIngest(ctx, tenantID, toIngest),
	}, nil
}
