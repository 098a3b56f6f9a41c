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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

// slaAlertInterval throttles repeated alerts for the same finding.
const slaAlertInterval = 24 * time.Hour

type slaService struct {
	findingRepository     shared.FindingRepository
	slaAlertRepository    shared.SLAAlertRepository
	assetConfigRepository shared.AssetConfigRepository
	now                   func() time.Time
}

var _ shared.SLAService = (*slaService)(nil)

func NewSLAService(findingRepository shared.FindingRepository, slaAlertRepository shared.SLAAlertRepository, assetConfigRepository shared.AssetConfigRepository) *slaService {
	return &slaService{
		findingRepository:     findingRepository,
		slaAlertRepository:    slaAlertRepository,
		assetConfigRepository: assetConfigRepository,
		now:                   time.Now,
	}
}

// configsFor returns the config of every asset the findings belong to, falling back to the defaults.
func (s *slaService) configsFor(findings []models.Finding) (map[uuid.UUID]models.AssetConfig, error) {
	assetIDs := utils.UniqBy(utils.Map(findings, func(f models.Finding) uuid.UUID { return f.AssetID }), func(id uuid.UUID) uuid.UUID { return id })
	stored, err := s.assetConfigRepository.ListByAssets(nil, assetIDs)
	if err != nil {
		return nil, err
	}

	configs := make(map[uuid.UUID]models.AssetConfig, len(assetIDs))
	for _, c := range stored {
		configs[c.AssetID] = c
	}
	for _, f := range findings {
		if _, ok := configs[f.AssetID]; !ok {
			configs[f.AssetID] = models.DefaultAssetConfig(f.TenantID, f.AssetID)
		}
	}
	return configs, nil
}

// daysOverdue is negative while the finding is still inside its window.
func daysOverdue(f models.Finding, slaDays int, now time.Time) int {
	age := int(now.Sub(f.FirstSeenTimestamp).Hours() / 24)
	return age - slaDays
}

func (s *slaService) CheckViolations(ctx context.Context) (dtos.SLACheckResult, error) {
	result := dtos.SLACheckResult{}
	now := s.now()

	findings, err := s.findingRepository.ListOpenOriginals(nil)
	if err != nil {
		return result, shared.WrapStoreError(err, "list open findings", "finding", "")
	}
	configs, err := s.configsFor(findings)
	if err != nil {
		return result, shared.WrapStoreError(err, "list asset configs", "asset config", "")
	}

	for _, f := range findings {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Checked++

		slaDays := configs[f.AssetID].SLADays(f.EffectiveSeverity())
		overdue := daysOverdue(f, slaDays, now)
		if overdue <= 0 {
			if f.SLADaysOverdue != 0 {
				f.SLADaysOverdue = 0
				if err := s.findingRepository.Save(nil, &f); err != nil {
					slog.Warn("could not reset sla state", "findingID", f.ID, "err", err)
				}
			}
			continue
		}
		result.Violations++

		shouldAlert := f.SLAViolationAlertedAt == nil || now.Sub(*f.SLAViolationAlertedAt) >= slaAlertInterval
		if !shouldAlert && f.SLADaysOverdue == overdue {
			continue
		}

		err := s.findingRepository.Transaction(func(tx shared.DB) error {
			f.SLADaysOverdue = overdue
			if shouldAlert {
				f.SLAViolationAlertedAt = utils.Ptr(now)
				alert := models.SLAAlert{
					FindingID:   f.ID,
					TenantID:    f.TenantID,
					AssetID:     f.AssetID,
					Severity:    f.EffectiveSeverity(),
					SLADays:     slaDays,
					DaysOverdue: overdue,
					AlertedAt:   now,
				}
				if err := s.slaAlertRepository.Create(tx, &alert); err != nil {
					return err
				}
			}
			return s.findingRepository.Save(tx, &f)
		})
		if err != nil {
			slog.Warn("could not record sla violation", "findingID", f.ID, "err", err)
			continue
		}
		if shouldAlert {
			result.Alerted++
			slog.Info("sla violated", "findingID", f.ID, "tenantID", f.TenantID, "severity", f.EffectiveSeverity(), "daysOverdue", overdue)
		}
	}
	return result, nil
}

func (s *slaService) ListViolations(ctx context.Context, tenantID uuid.UUID) ([]dtos.SLAViolationDTO, error) {
	findings, err := s.findingRepository.ListSLAViolations(nil, tenantID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list sla violations", "finding", "")
	}
	configs, err := s.configsFor(findings)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list asset configs", "asset config", "")
	}

	violations := make([]dtos.SLAViolationDTO, 0, len(findings))
	for _, f := range findings {
		violations = append(violations, dtos.SLAViolationDTO{
			FindingID:     f.ID,
			AssetID:       f.AssetID,
			Title:         f.DisplayTitle(),
			Severity:      f.EffectiveSeverity(),
			StatusVLM:     f.StatusVLM,
			FirstSeen:     f.FirstSeenTimestamp,
			SLADays:       configs[f.AssetID].SLADays(f.EffectiveSeverity()),
			DaysOverdue:   f.SLADaysOverdue,
			LastAlertedAt: f.SLAViolationAlertedAt,
		})
	}
	return violations, nil
}
