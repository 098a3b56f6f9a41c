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

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateFindingGroup(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()

	member := func(severity dtos.Severity, testRun *string) models.Finding {
		return models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, AssetID: assetID, SeverityAdjusted: severity, TestRunID: testRun, StatusVLM: dtos.VLMStatusActive}
	}

	t.Run("should group the findings and count their severities", func(t *testing.T) {
		findingGroupRepository := mocks.NewFindingGroupRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		findingEventRepository := mocks.NewFindingEventRepository(t)

		findings := []models.Finding{member(dtos.SeverityHigh, utils.Ptr("run-1")), member(dtos.SeverityHigh, utils.Ptr("run-1")), member(dtos.SeverityInfo, utils.Ptr("run-1"))}
		ids := []uuid.UUID{findings[0].ID, findings[1].ID, findings[2].ID}
		groupID := uuid.New()

		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)
		findingRepository.On("ListByIDsInTenant", mock.Anything, tenantID, ids).Return(findings, nil)
		findingGroupRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.FindingGroup).ID = groupID
		}).Return(nil)
		findingRepository.On("AssignGroup", mock.Anything, groupID, ids).Return(nil)

		var events []models.FindingEvent
		findingEventRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			events = args.Get(1).([]models.FindingEvent)
		}).Return(nil)

		s := NewFindingGroupService(findingGroupRepository, findingRepository, findingEventRepository)
		// duplicate ids are ignored
		group, err := s.Create(context.Background(), tenantID, dtos.FindingGroupCreateRequest{Name: "login page", FindingIDs: append(ids, ids[0])}, "alice")
		require.NoError(t, err)

		assert.Equal(t, 3, group.FindingCount)
		assert.Equal(t, 2, group.HighCount)
		assert.Equal(t, 1, group.InfoCount)
		assert.Equal(t, "run-1", *group.TestRunID)
		assert.Equal(t, "alice", group.CreatedBy)
		require.Len(t, events, 3)
		for _, e := range events {
			assert.Equal(t, models.EventTypeGrouped, e.Type)
		}
	})

	t.Run("should reject findings of different test runs", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		findings := []models.Finding{member(dtos.SeverityHigh, utils.Ptr("run-1")), member(dtos.SeverityHigh, nil)}
		ids := []uuid.UUID{findings[0].ID, findings[1].ID}
		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)
		findingRepository.On("ListByIDsInTenant", mock.Anything, tenantID, ids).Return(findings, nil)

		s := NewFindingGroupService(mocks.NewFindingGroupRepository(t), findingRepository, mocks.NewFindingEventRepository(t))
		_, err := s.Create(context.Background(), tenantID, dtos.FindingGroupCreateRequest{Name: "mixed", FindingIDs: ids}, "alice")
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("should report a finding of another tenant as not found", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		known := member(dtos.SeverityLow, nil)
		foreign := uuid.New()
		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)
		findingRepository.On("ListByIDsInTenant", mock.Anything, tenantID, []uuid.UUID{known.ID, foreign}).Return([]models.Finding{known}, nil)

		s := NewFindingGroupService(mocks.NewFindingGroupRepository(t), findingRepository, mocks.NewFindingEventRepository(t))
		_, err := s.Create(context.Background(), tenantID, dtos.FindingGroupCreateRequest{Name: "x", FindingIDs: []uuid.UUID{known.ID, foreign}}, "alice")
		assert.True(t, shared.IsNotFound(err))
	})
}
