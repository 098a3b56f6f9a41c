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

	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
)

type retentionService struct {
	findingRepository     shared.FindingRepository
	assetConfigRepository shared.AssetConfigRepository
}

var _ shared.RetentionService = (*retentionService)(nil)

func NewRetentionService(findingRepository shared.FindingRepository, assetConfigRepository shared.AssetConfigRepository) *retentionService {
	return &retentionService{
		findingRepository:     findingRepository,
		assetConfigRepository: assetConfigRepository,
	}
}

// EnforceDuplicateRetention deletes the oldest duplicates of every original finding
// beyond the max_duplicates of its asset. Running it twice deletes nothing the second time.
func (s *retentionService) EnforceDuplicateRetention(ctx context.Context) (dtos.RetentionResult, error) {
	result := dtos.RetentionResult{Details: []dtos.RetentionDetail{}}

	configs, err := s.assetConfigRepository.ListWithRetentionPolicy(nil)
	if err != nil {
		return result, shared.WrapStoreError(err, "list asset configs", "asset config", "")
	}

	for _, config := range configs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		originalIDs, err := s.findingRepository.ListOriginalIDsByAsset(nil, config.TenantID, config.AssetID)
		if err != nil {
			slog.Warn("could not list original findings", "assetID", config.AssetID, "err", err)
			continue
		}

		for _, originalID := range originalIDs {
			result.Processed++

			duplicates, err := s.findingRepository.ListDuplicates(nil, config.TenantID, originalID)
			if err != nil {
				slog.Warn("could not list duplicates", "originalFindingID", originalID, "err", err)
				continue
			}
			excess := len(duplicates) - config.MaxDuplicates
			if excess <= 0 {
				continue
			}

			deleted := 0
			// duplicates are ordered oldest first
			for _, duplicate := range duplicates[:excess] {
				if err := s.findingRepository.Delete(nil, duplicate.ID); err != nil {
					slog.Warn("could not delete duplicate", "findingID", duplicate.ID, "err", err)
					continue
				}
				deleted++
			}
			if deleted == 0 {
				continue
			}

			result.Deleted += deleted
			result.Details = append(result.Details, dtos.RetentionDetail{
				OriginalFindingID: originalID,
				DuplicatesFound:   len(duplicates),
				DuplicatesDeleted: deleted,
			})
		}
	}

	monitoring.DuplicatesDeletedAmount.Add(float64(result.Deleted))
	slog.Info("enforced duplicate retention", "processed", result.Processed, "deleted", result.Deleted)
	return result, nil
}
