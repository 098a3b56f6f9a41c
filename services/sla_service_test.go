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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should be negative inside the window", func(t *testing.T) {
		f := models.Finding{FirstSeenTimestamp: now.Add(-48 * time.Hour)}
		assert.Equal(t, -5, daysOverdue(f, 7, now))
	})

	t.Run("should only count completed days", func(t *testing.T) {
		f := models.Finding{FirstSeenTimestamp: now.Add(-(9*24 + 23) * time.Hour)}
		assert.Equal(t, 2, daysOverdue(f, 7, now))
	})
}

func TestCheckViolations(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tenantID := uuid.New()
	assetID := uuid.New()

	t.Run("should alert once per interval and reset findings back inside their window", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		slaAlertRepository := mocks.NewSLAAlertRepository(t)
		assetConfigRepository := mocks.NewAssetConfigRepository(t)

		fresh := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, AssetID: assetID, SeverityAdjusted: dtos.SeverityCritical, FirstSeenTimestamp: now.AddDate(0, 0, -10)}
		recentlyAlerted := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, AssetID: assetID, SeverityAdjusted: dtos.SeverityCritical, FirstSeenTimestamp: now.AddDate(0, 0, -10), SLADaysOverdue: 3, SLAViolationAlertedAt: utils.Ptr(now.Add(-time.Hour))}
		backInWindow := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, AssetID: assetID, SeverityAdjusted: dtos.SeverityHigh, SeverityManual: utils.Ptr(dtos.SeverityLow), FirstSeenTimestamp: now.AddDate(0, 0, -40), SLADaysOverdue: 10}

		findingRepository.On("ListOpenOriginals", mock.Anything).Return([]models.Finding{fresh, recentlyAlerted, backInWindow}, nil)
		assetConfigRepository.On("ListByAssets", mock.Anything, []uuid.UUID{assetID}).Return([]models.AssetConfig{}, nil)
		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)

		saved := map[uuid.UUID]models.Finding{}
		findingRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			f := args.Get(1).(*models.Finding)
			saved[f.ID] = *f
		}).Return(nil)

		var alert models.SLAAlert
		slaAlertRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			alert = *args.Get(1).(*models.SLAAlert)
		}).Return(nil).Once()

		s := NewSLAService(findingRepository, slaAlertRepository, assetConfigRepository)
		s.now = func() time.Time { return now }

		result, err := s.CheckViolations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dtos.SLACheckResult{Checked: 3, Violations: 2, Alerted: 1}, result)

		assert.Equal(t, fresh.ID, alert.FindingID)
		assert.Equal(t, 7, alert.SLADays)
		assert.Equal(t, 3, alert.DaysOverdue)
		assert.Equal(t, 3, saved[fresh.ID].SLADaysOverdue)
		assert.Equal(t, now, *saved[fresh.ID].SLAViolationAlertedAt)

		assert.NotContains(t, saved, recentlyAlerted.ID)
		// the manual LOW severity grants 180 days
		assert.Equal(t, 0, saved[backInWindow.ID].SLADaysOverdue)
	})

	t.Run("should use the sla window configured for the asset", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		assetConfigRepository := mocks.NewAssetConfigRepository(t)

		config := models.DefaultAssetConfig(tenantID, assetID)
		config.SLAConfig = datatypes.NewJSONType(map[dtos.Severity]int{dtos.SeverityMedium: 30})
		f := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, AssetID: assetID, SeverityAdjusted: dtos.SeverityMedium, FirstSeenTimestamp: now.AddDate(0, 0, -31), SLADaysOverdue: 1, SLAViolationAlertedAt: utils.Ptr(now.Add(-time.Hour))}

		findingRepository.On("ListOpenOriginals", mock.Anything).Return([]models.Finding{f}, nil)
		assetConfigRepository.On("ListByAssets", mock.Anything, []uuid.UUID{assetID}).Return([]models.AssetConfig{config}, nil)

		s := NewSLAService(findingRepository, mocks.NewSLAAlertRepository(t), assetConfigRepository)
		s.now = func() time.Time { return now }

		result, err := s.CheckViolations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Violations)
		assert.Equal(t, 0, result.Alerted)
	})
}
