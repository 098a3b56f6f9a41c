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
	"math"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type analyticsService struct {
	findingRepository shared.FindingRepository
}

var _ shared.AnalyticsService = (*analyticsService)(nil)

func NewAnalyticsService(findingRepository shared.FindingRepository) *analyticsService {
	return &analyticsService{findingRepository: findingRepository}
}

// MTTR computes the mean time to remediate per severity from first seen to mitigation.
// Severities without mitigated findings are omitted.
func (s *analyticsService) MTTR(ctx context.Context, tenantID uuid.UUID, assetID *uuid.UUID) ([]dtos.MTTRBySeverity, error) {
	findings, err := s.findingRepository.ListMitigated(nil, tenantID, assetID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list mitigated findings", "finding", "")
	}
	return calculateMTTR(findings), nil
}

func calculateMTTR(findings []models.Finding) []dtos.MTTRBySeverity {
	hoursBySeverity := make(map[dtos.Severity][]float64)
	for _, f := range findings {
		if f.MitigatedDate == nil {
			continue
		}
		hours := f.MitigatedDate.Sub(f.FirstSeenTimestamp).Hours()
		if hours < 0 {
			continue
		}
		severity := f.EffectiveSeverity()
		hoursBySeverity[severity] = append(hoursBySeverity[severity], hours)
	}

	res := []dtos.MTTRBySeverity{}
	for _, severity := range dtos.SeverityOrder {
		hours := hoursBySeverity[severity]
		if len(hours) == 0 {
			continue
		}
		sum, minHours, maxHours := 0.0, math.Inf(1), math.Inf(-1)
		for _, h := range hours {
			sum += h
			minHours = math.Min(minHours, h)
			maxHours = math.Max(maxHours, h)
		}
		avgHours := sum / float64(len(hours))
		res = append(res, dtos.MTTRBySeverity{
			Severity: severity,
			Total:    len(hours),
			AvgDays:  utils.RoundTo(avgHours/24, 2),
			AvgHours: utils.RoundTo(avgHours, 2),
			MinDays:  utils.RoundTo(minHours/24, 2),
			MaxDays:  utils.RoundTo(maxHours/24, 2),
		})
	}
	return res
}
