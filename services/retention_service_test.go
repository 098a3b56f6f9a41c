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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func duplicatesOf(n int) []models.Finding {
	res := make([]models.Finding, n)
	for i := range res {
		res[i] = models.Finding{Model: models.Model{ID: uuid.New()}, IsDuplicate: true}
	}
	return res
}

func TestEnforceDuplicateRetention(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()

	t.Run("should delete the oldest duplicates beyond the limit", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		assetConfigRepository := mocks.NewAssetConfigRepository(t)

		config := models.DefaultAssetConfig(tenantID, assetID)
		config.MaxDuplicates = 1
		withExcess, withinLimit := uuid.New(), uuid.New()
		duplicates := duplicatesOf(3)

		assetConfigRepository.On("ListWithRetentionPolicy", mock.Anything).Return([]models.AssetConfig{config}, nil)
		findingRepository.On("ListOriginalIDsByAsset", mock.Anything, tenantID, assetID).Return([]uuid.UUID{withExcess, withinLimit}, nil)
		findingRepository.On("ListDuplicates", mock.Anything, tenantID, withExcess).Return(duplicates, nil)
		findingRepository.On("ListDuplicates", mock.Anything, tenantID, withinLimit).Return(duplicatesOf(1), nil)
		findingRepository.On("Delete", mock.Anything, duplicates[0].ID).Return(nil).Once()
		findingRepository.On("Delete", mock.Anything, duplicates[1].ID).Return(nil).Once()

		s := NewRetentionService(findingRepository, assetConfigRepository)
		result, err := s.EnforceDuplicateRetention(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 2, result.Deleted)
		require.Len(t, result.Details, 1)
		assert.Equal(t, withExcess, result.Details[0].OriginalFindingID)
		assert.Equal(t, 3, result.Details[0].DuplicatesFound)
		assert.Equal(t, 2, result.Details[0].DuplicatesDeleted)
		findingRepository.AssertNotCalled(t, "Delete", mock.Anything, duplicates[2].ID)
	})

	t.Run("should keep going when a single delete fails", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		assetConfigRepository := mocks.NewAssetConfigRepository(t)

		config := models.DefaultAssetConfig(tenantID, assetID)
		config.MaxDuplicates = 0
		originalID := uuid.New()
		duplicates := duplicatesOf(2)

		assetConfigRepository.On("ListWithRetentionPolicy", mock.Anything).Return([]models.AssetConfig{config}, nil)
		findingRepository.On("ListOriginalIDsByAsset", mock.Anything, tenantID, assetID).Return([]uuid.UUID{originalID}, nil)
		findingRepository.On("ListDuplicates", mock.Anything, tenantID, originalID).Return(duplicates, nil)
		findingRepository.On("Delete", mock.Anything, duplicates[0].ID).Return(errors.New("lock timeout"))
		findingRepository.On("Delete", mock.Anything, duplicates[1].ID).Return(nil)

		s := NewRetentionService(findingRepository, assetConfigRepository)
		result, err := s.EnforceDuplicateRetention(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Deleted)
		require.Len(t, result.Details, 1)
		assert.Equal(t, 1, result.Details[0].DuplicatesDeleted)
	})

	t.Run("should report nothing when no asset configures a retention policy", func(t *testing.T) {
		assetConfigRepository := mocks.NewAssetConfigRepository(t)
		assetConfigRepository.On("ListWithRetentionPolicy", mock.Anything).Return([]models.AssetConfig{}, nil)

		s := NewRetentionService(mocks.NewFindingRepository(t), assetConfigRepository)
		result, err := s.EnforceDuplicateRetention(context.Background())
		require.NoError(t, err)
		assert.Zero(t, result.Processed)
		assert.Empty(t, result.Details)
	})
}
