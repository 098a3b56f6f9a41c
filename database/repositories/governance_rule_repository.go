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

type governanceRuleRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.GovernanceRule]
}

func NewGovernanceRuleRepository(db *gorm.DB) *governanceRuleRepository {
	return &governanceRuleRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.GovernanceRule](db),
	}
}

func (r *governanceRuleRepository) ListByTenant(tx *gorm.DB, tenantID uuid.UUID) ([]models.GovernanceRule, error) {
	rules := []models.GovernanceRule{}
	err := r.GetDB(tx).Where("tenant_id = ?", tenantID).Order("priority DESC").Order("created_at ASC").Find(&rules).Error
	return rules, err
}

func (r *governanceRuleRepository) ListEnabledByTenant(tx *gorm.DB, tenantID uuid.UUID) ([]models.GovernanceRule, error) {
	rules := []models.GovernanceRule{}
	err := r.GetDB(tx).
		Where("tenant_id = ? AND enabled = ?", tenantID, true).
		Order("priority DESC").Order("created_at ASC").
		Find(&rules).Error
	return rules, err
}

func (r *governanceRuleRepository) DeleteInTenant(tx *gorm.DB, tenantID, ruleID uuid.UUID) error {
	res := r.GetDB(tx).Where("tenant_id = ? AND id = ?", tenantID, ruleID).Delete(&models.GovernanceRule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
