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
	"github.com/l3montree-dev/devguard-vlm/shared"
)

type findingService struct {
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
}

var _ shared.FindingService = (*findingService)(nil)

func NewFindingService(findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository) *findingService {
	return &findingService{
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
	}
}

func (s *findingService) List(ctx context.Context, tenantID uuid.UUID, filter shared.FindingFilter, pageInfo shared.PageInfo) (shared.Paged[models.Finding], error) {
	for _, status := range filter.StatusVLM {
		if !status.IsValid() {
			return shared.Paged[models.Finding]{}, shared.NewValidationError("status", "unknown status "+string(status))
		}
	}
	for _, severity := range filter.Severity {
		if !severity.IsValid() {
			return shared.Paged[models.Finding]{}, shared.NewValidationError("severity", "unknown severity "+string(severity))
		}
	}

	paged, err := s.findingRepository.ListPaged(nil, tenantID, filter, pageInfo)
	if err != nil {
		return shared.Paged[models.Finding]{}, shared.WrapStoreError(err, "list findings", "finding", "")
	}
	return paged, nil
}

func (s *findingService) Read(ctx context.Context, tenantID, findingID uuid.UUID) (models.Finding, error) {
	f, err := s.findingRepository.ReadInTenant(nil, tenantID, findingID)
	if err != nil {
		return models.Finding{}, shared.WrapStoreError(err, "read finding", "finding", findingID.String())
	}
	return f, nil
}

// ListEvents returns the audit trail of a finding, oldest first.
func (s *findingService) ListEvents(ctx context.Context, tenantID, findingID uuid.UUID) ([]models.FindingEvent, error) {
	if _, err := s.Read(ctx, tenantID, findingID); err != nil {
		return nil, err
	}
	events, err := s.findingEventRepository.ListByFinding(nil, tenantID, findingID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list finding events", "finding event", "")
	}
	return events, nil
}
