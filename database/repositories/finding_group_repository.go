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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"gorm.io/gorm"
)

type findingGroupRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.FindingGroup]
}

func NewFindingGroupRepository(db *gorm.DB) *findingGroupRepository {
	return &findingGroupRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.FindingGroup](db),
	}
}

func (r *findingGroupRepository) ReadInTenant(tx *gorm.DB, tenantID, groupID uuid.UUID) (models.FindingGroup, error) {
	var group models.FindingGroup
	err := r.GetDB(tx).Preload("Findings", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("tenant_id = ? AND id = ?", tenantID, groupID).First(&group).Error
	return group, err
}

func (r *findingGroupRepository) ListByTenant(tx *gorm.DB, tenantID uuid.UUID) ([]models.FindingGroup, error) {
	groups := []models.FindingGroup{}
	err := r.GetDB(tx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&groups).Error
	return groups, err
}
