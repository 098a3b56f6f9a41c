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

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type findingGroupService struct {
	findingGroupRepository shared.FindingGroupRepository
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
}

var _ shared.FindingGroupService = (*findingGroupService)(nil)

func NewFindingGroupService(findingGroupRepository shared.FindingGroupRepository, findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository) *findingGroupService {
	return &findingGroupService{
		findingGroupRepository: findingGroupRepository,
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
	}
}

func sameTestRun(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Create groups findings of one asset and test run.
func (s *findingGroupService) Create(ctx context.Context, tenantID uuid.UUID, req dtos.FindingGroupCreateRequest, actor string) (models.FindingGroup, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.FindingGroup{}, shared.NewValidationError("", err.Error())
	}
	ids := utils.UniqBy(req.FindingIDs, func(id uuid.UUID) uuid.UUID { return id })

	var group models.FindingGroup
	err := s.findingRepository.Transaction(func(tx shared.DB) error {
		findings, err := s.findingRepository.ListByIDsInTenant(tx, tenantID, ids)
		if err != nil {
			return shared.WrapStoreError(err, "list findings", "finding", "")
		}
		if len(findings) != len(ids) {
			for _, id := range ids {
				if _, ok := utils.Find(findings, func(f models.Finding) bool { return f.ID == id }); !ok {
					return shared.NewNotFound("finding", id.String())
				}
			}
		}

		first := findings[0]
		for _, f := range findings[1:] {
			if f.AssetID != first.AssetID {
				return shared.NewValidationError("findingIds", "all findings must belong to the same asset")
			}
			if !sameTestRun(f.TestRunID, first.TestRunID) {
				return shared.NewValidationError("findingIds", "all findings must belong to the same test run")
			}
		}

		group = models.FindingGroup{
			TenantID:    tenantID,
			AssetID:     first.AssetID,
			TestRunID:   first.TestRunID,
			Name:        req.Name,
			Description: req.Description,
			CreatedBy:   actor,
		}
		group.RecountSeverities(findings)
		if err := s.findingGroupRepository.Create(tx, &group); err != nil {
			return shared.WrapStoreError(err, "create finding group", "finding group", "")
		}
		if err := s.findingRepository.AssignGroup(tx, group.ID, ids); err != nil {
			return shared.WrapStoreError(err, "assign finding group", "finding", "")
		}

		events := make([]models.FindingEvent, 0, len(findings))
		for i := range findings {
			findings[i].GroupID = utils.Ptr(group.ID)
			event := models.NewFindingEvent(findings[i], models.EventTypeGrouped, actor, findings[i].StatusVLM, []string{"groupId"})
			event.SetArbitraryJSONData(map[string]any{"groupId": group.ID.String(), "groupName": group.Name})
			events = append(events, event)
		}
		if err := s.findingEventRepository.CreateBatch(tx, events); err != nil {
			return shared.WrapStoreError(err, "create finding events", "finding event", "")
		}
		group.Findings = findings
		return nil
	})
	if err != nil {
		return models.FindingGroup{}, err
	}
	return group, nil
}

func (s *findingGroupService) List(ctx context.Context, tenantID uuid.UUID) ([]models.FindingGroup, error) {
	groups, err := s.findingGroupRepository.ListByTenant(nil, tenantID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list finding groups", "finding group", "")
	}
	return groups, nil
}

func (s *findingGroupService) Read(ctx context.Context, tenantID, groupID uuid.UUID) (models.FindingGroup, error) {
	group, err := s.findingGroupRepository.ReadInTenant(nil, tenantID, groupID)
	if err != nil {
		return models.FindingGroup{}, shared.WrapStoreError(err, "read finding group", "finding group", groupID.String())
	}
	return group, nil
}
