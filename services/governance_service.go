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
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/statemachine"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type governanceService struct {
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
	findingGroupRepository shared.FindingGroupRepository
	now                    func() time.Time
}

var _ shared.GovernanceService = (*governanceService)(nil)

func NewGovernanceService(findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository, findingGroupRepository shared.FindingGroupRepository) *governanceService {
	return &governanceService{
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
		findingGroupRepository: findingGroupRepository,
		now:                    time.Now,
	}
}

func recordEditOutcome(err error) {
	switch {
	case err == nil:
		monitoring.GovernanceEdits.WithLabelValues("applied").Inc()
	case shared.IsUnprocessable(err) || shared.IsValidationError(err) || shared.IsForbidden(err):
		monitoring.GovernanceEdits.WithLabelValues("rejected").Inc()
	default:
		monitoring.GovernanceEdits.WithLabelValues("failed").Inc()
	}
}

// edit applies the patch to one finding inside tx and records the audit event.
func (s *governanceService) edit(tx shared.DB, f *models.Finding, patch dtos.FindingPatch, actor string) error {
	if patch.GroupID != nil {
		if _, err := s.findingGroupRepository.ReadInTenant(tx, f.TenantID, *patch.GroupID); err != nil {
			return shared.WrapStoreError(err, "read finding group", "finding group", patch.GroupID.String())
		}
	}

	outcome, err := statemachine.ApplyPatch(f, patch, s.now())
	if err != nil {
		return err
	}
	if !outcome.Changed() {
		return nil
	}

	if err := s.findingRepository.Save(tx, f); err != nil {
		return shared.WrapStoreError(err, "save finding", "finding", f.ID.String())
	}

	eventType := models.EventTypeEdited
	if outcome.StatusChanged {
		eventType = models.EventTypeStatusChanged
	}
	event := models.NewFindingEvent(*f, eventType, actor, outcome.StatusBefore, outcome.ChangedFields)
	if err := s.findingEventRepository.Create(tx, &event); err != nil {
		return shared.WrapStoreError(err, "create finding event", "finding event", "")
	}
	return nil
}

func (s *governanceService) ApplyGovernanceEdit(ctx context.Context, tenantID, findingID uuid.UUID, patch dtos.FindingPatch, actor string) (models.Finding, error) {
	var finding models.Finding
	err := s.findingRepository.Transaction(func(tx shared.DB) error {
		var err error
		finding, err = s.findingRepository.ReadInTenant(tx, tenantID, findingID)
		if err != nil {
			return shared.WrapStoreError(err, "read finding", "finding", findingID.String())
		}
		return s.edit(tx, &finding, patch, actor)
	})
	recordEditOutcome(err)
	if err != nil {
		return models.Finding{}, err
	}
	return finding, nil
}

// BulkEdit applies one patch to findings of a single asset. Either every finding is
// changed or none is.
func (s *governanceService) BulkEdit(ctx context.Context, tenantID uuid.UUID, findingIDs []uuid.UUID, patch dtos.FindingPatch, actor string) ([]models.Finding, error) {
	ids := utils.UniqBy(findingIDs, func(id uuid.UUID) uuid.UUID { return id })
	if len(ids) == 0 {
		return nil, shared.NewValidationError("findingIds", "must not be empty")
	}

	var findings []models.Finding
	err := s.findingRepository.Transaction(func(tx shared.DB) error {
		var err error
		findings, err = s.findingRepository.ListByIDsInTenant(tx, tenantID, ids)
		if err != nil {
			return shared.WrapStoreError(err, "list findings", "finding", "")
		}
		if err := checkSingleAsset(ids, findings); err != nil {
			return err
		}

		for i := range findings {
			if err := s.edit(tx, &findings[i], patch, actor); err != nil {
				return err
			}
		}
		return nil
	})
	recordEditOutcome(err)
	if err != nil {
		return nil, err
	}
	return findings, nil
}

// checkSingleAsset rejects bulk edits that reach outside the tenant or span assets.
func checkSingleAsset(ids []uuid.UUID, findings []models.Finding) error {
	assets := utils.UniqBy(utils.Map(findings, func(f models.Finding) uuid.UUID { return f.AssetID }), func(id uuid.UUID) uuid.UUID { return id })
	if len(findings) == len(ids) && len(assets) <= 1 {
		return nil
	}

	assetIDs := utils.Map(assets, func(id uuid.UUID) string { return id.String() })
	sort.Strings(assetIDs)
	return &shared.CrossAssetBulkEditForbidden{AssetIDs: assetIDs}
}

// ReactivateExpiredExceptions moves risk acceptances past their expiration date back to ACTIVE.
func (s *governanceService) ReactivateExpiredExceptions(ctx context.Context) (dtos.ExceptionExpiryResult, error) {
	result := dtos.ExceptionExpiryResult{FindingIDs: []uuid.UUID{}}
	now := s.now()

	expired, err := s.findingRepository.ListExpiredRiskAcceptances(nil, now)
	if err != nil {
		return result, shared.WrapStoreError(err, "list expired risk acceptances", "finding", "")
	}

	for _, f := range expired {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := s.findingRepository.Transaction(func(tx shared.DB) error {
			before := f.StatusVLM
			expiredAt := f.ExpirationDate
			statemachine.ApplyStatusChange(&f, dtos.VLMStatusActive, now)
			f.Justification = nil
			if err := s.findingRepository.Save(tx, &f); err != nil {
				return err
			}

			event := models.NewFindingEvent(f, models.EventTypeExceptionExpired, models.SystemActor, before, []string{"statusVlm", "riskAccepted", "justification"})
			if expiredAt != nil {
				event.SetArbitraryJSONData(map[string]any{"expirationDate": expiredAt.Format(time.RFC3339)})
			}
			return s.findingEventRepository.Create(tx, &event)
		})
		if err != nil {
			slog.Warn("could not reactivate expired exception", "findingID", f.ID, "err", err)
			continue
		}
		result.Reactivated++
		result.FindingIDs = append(result.FindingIDs, f.ID)
	}
	return result, nil
}
