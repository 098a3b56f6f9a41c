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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/normalize"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/statemachine"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"gorm.io/gorm"
)

type persistenceRouterService struct {
	findingCreator
	assetConfigService shared.AssetConfigService
	locker             shared.FingerprintLocker
	strategySelector   *normalize.StrategySelector
	now                func() time.Time
}

var _ shared.PersistenceRouterService = (*persistenceRouterService)(nil)

func NewPersistenceRouterService(findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository, ruleService shared.GovernanceRuleService, assetConfigService shared.AssetConfigService, locker shared.FingerprintLocker, strategySelector *normalize.StrategySelector) *persistenceRouterService {
	return &persistenceRouterService{
		findingCreator: findingCreator{
			findingRepository:      findingRepository,
			findingEventRepository: findingEventRepository,
			ruleService:            ruleService,
		},
		assetConfigService: assetConfigService,
		locker:             locker,
		strategySelector:   strategySelector,
		now:                time.Now,
	}
}

// Route decides whether a finding reported for an asset is a reimport of a known
// finding, a duplicate of a finding on another asset or a new finding.
func (s *persistenceRouterService) Route(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.FindingIngestRequest) (dtos.PersistenceResult, error) {
	req.AssetID = assetID
	n, err := normalizeIngestRequest(s.strategySelector, req)
	if err != nil {
		return dtos.PersistenceResult{}, err
	}

	config, err := s.assetConfigService.Get(ctx, tenantID, assetID)
	if err != nil {
		return dtos.PersistenceResult{}, err
	}
	var scope *uuid.UUID
	if !config.SearchesTenantWide() {
		scope = &assetID
	}

	unlock, err := s.locker.Lock(ctx, fmt.Sprintf("%s|%s|%s", tenantID, assetID, n.correlationKey))
	if err != nil {
		return dtos.PersistenceResult{}, fmt.Errorf("could not acquire fingerprint lock: %w", err)
	}
	defer unlock()

	result, err := s.route(ctx, tenantID, assetID, scope, n)
	if err != nil && database.IsDuplicateKeyError(err) {
		// a concurrent route inserted the same key, the second pass finds it
		monitoring.IngestConflictRetries.Inc()
		result, err = s.route(ctx, tenantID, assetID, scope, n)
	}
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return dtos.PersistenceResult{}, shared.WrapStoreError(err, "route finding", "finding", "")
		}
		return dtos.PersistenceResult{}, err
	}

	monitoring.PersistenceRoutes.WithLabelValues(string(result.Status)).Inc()
	return result, nil
}

func (s *persistenceRouterService) route(ctx context.Context, tenantID, assetID uuid.UUID, scope *uuid.UUID, n normalizedFinding) (dtos.PersistenceResult, error) {
	var result dtos.PersistenceResult
	err := s.findingRepository.Transaction(func(tx shared.DB) error {
		original, err := s.findingRepository.FindOriginal(tx, tenantID, scope, n.correlationKey)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			result, err = s.createOriginal(ctx, tx, tenantID, n)
			return err
		case err != nil:
			return shared.WrapStoreError(err, "find original finding", "finding", "")
		case original.AssetID == assetID:
			result, err = s.refresh(tx, original)
			return err
		default:
			result, err = s.createDuplicate(ctx, tx, tenantID, original, n)
			return err
		}
	})
	return result, err
}

func (s *persistenceRouterService) createOriginal(ctx context.Context, tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (dtos.PersistenceResult, error) {
	f := newFindingFromRequest(tenantID, n, s.now())
	if err := s.insert(ctx, tx, &f); err != nil {
		return dtos.PersistenceResult{}, err
	}
	return dtos.PersistenceResult{Status: dtos.PersistenceNewFinding, FindingID: f.ID}, nil
}

// refresh bumps last seen of a finding reported again by its own asset.
func (s *persistenceRouterService) refresh(tx shared.DB, f models.Finding) (dtos.PersistenceResult, error) {
	f.LastSeenTimestamp = s.now()
	if f.Status == dtos.FindingStatusClosed {
		f.Status = dtos.FindingStatusReopened
	}
	if err := s.findingRepository.Save(tx, &f); err != nil {
		return dtos.PersistenceResult{}, shared.WrapStoreError(err, "refresh finding", "finding", f.ID.String())
	}

	originalID := f.ID
	if f.OriginalFindingID != nil {
		originalID = *f.OriginalFindingID
	}
	return dtos.PersistenceResult{
		Status:            dtos.PersistenceReimportedFiltered,
		FindingID:         f.ID,
		OriginalFindingID: &originalID,
	}, nil
}

func (s *persistenceRouterService) createDuplicate(ctx context.Context, tx shared.DB, tenantID uuid.UUID, original models.Finding, n normalizedFinding) (dtos.PersistenceResult, error) {
	// the target asset may already hold a duplicate of the same original
	existing, err := s.findingRepository.FindByCorrelationKey(tx, tenantID, n.req.AssetID, n.correlationKey)
	if err == nil {
		return s.refresh(tx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.PersistenceResult{}, shared.WrapStoreError(err, "find finding", "finding", "")
	}

	duplicate := newFindingFromRequest(tenantID, n, s.now())
	duplicate.StatusVLM = dtos.VLMStatusInactiveDuplicate
	duplicate.IsDuplicate = true
	duplicate.OriginalFindingID = utils.Ptr(original.ID)

	if err := s.insert(ctx, tx, &duplicate); err != nil {
		return dtos.PersistenceResult{}, err
	}
	return dtos.PersistenceResult{
		Status:            dtos.PersistenceDuplicateCreated,
		FindingID:         duplicate.ID,
		OriginalFindingID: utils.Ptr(original.ID),
	}, nil
}

func (s *persistenceRouterService) ListDuplicates(ctx context.Context, tenantID, originalID uuid.UUID) ([]models.Finding, error) {
	if _, err := s.findingRepository.ReadInTenant(nil, tenantID, originalID); err != nil {
		return nil, shared.WrapStoreError(err, "read finding", "finding", originalID.String())
	}
	duplicates, err := s.findingRepository.ListDuplicates(nil, tenantID, originalID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list duplicates", "finding", originalID.String())
	}
	return duplicates, nil
}

// MergeDuplicate marks the duplicate as merged and sends the original back to review for a retest.
func (s *persistenceRouterService) MergeDuplicate(ctx context.Context, tenantID, duplicateID uuid.UUID, actor string) (models.Finding, error) {
	var original models.Finding
	err := s.findingRepository.Transaction(func(tx shared.DB) error {
		duplicate, err := s.findingRepository.ReadInTenant(tx, tenantID, duplicateID)
		if err != nil {
			return shared.WrapStoreError(err, "read finding", "finding", duplicateID.String())
		}
		if !duplicate.IsDuplicate || duplicate.OriginalFindingID == nil {
			return shared.NewValidationError("findingId", "finding is not a duplicate")
		}

		original, err = s.findingRepository.ReadInTenant(tx, tenantID, *duplicate.OriginalFindingID)
		if err != nil {
			return shared.WrapStoreError(err, "read finding", "finding", duplicate.OriginalFindingID.String())
		}

		now := s.now()
		originalBefore := original.StatusVLM
		if err := statemachine.ValidateTransition(originalBefore, dtos.VLMStatusUnderReview); err != nil {
			return err
		}
		originalChanged := []string{}
		if statemachine.ApplyStatusChange(&original, dtos.VLMStatusUnderReview, now) {
			originalChanged = append(originalChanged, "statusVlm")
		}
		if err := s.findingRepository.Save(tx, &original); err != nil {
			return shared.WrapStoreError(err, "save finding", "finding", original.ID.String())
		}

		duplicateBefore := duplicate.StatusVLM
		duplicate.Status = dtos.FindingStatusMerged
		duplicate.MitigatedDate = utils.Ptr(now)
		if err := s.findingRepository.Save(tx, &duplicate); err != nil {
			return shared.WrapStoreError(err, "save finding", "finding", duplicate.ID.String())
		}

		events := []models.FindingEvent{
			models.NewFindingEvent(duplicate, models.EventTypeDuplicateMerged, actor, duplicateBefore, []string{"status", "mitigatedDate"}),
			models.NewFindingEvent(original, models.EventTypeDuplicateMerged, actor, originalBefore, originalChanged),
		}
		for i := range events {
			events[i].SetArbitraryJSONData(map[string]any{
				"duplicateFindingId": duplicate.ID.String(),
				"originalFindingId":  original.ID.String(),
			})
		}
		if err := s.findingEventRepository.CreateBatch(tx, events); err != nil {
			return shared.WrapStoreError(err, "create finding events", "finding event", "")
		}
		return nil
	})
	return original, err
}
