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

type slaAlertRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.SLAAlert]
}

func NewSLAAlertRepository(db *gorm.DB) *slaAlertRepository {
	return &slaAlertRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.SLAAlert](db),
	}
}

func (r *slaAlertRepository) ListByFinding(tx *gorm.DB, findingID uuid.UUID) ([]models.SLAAlert, error) {
	alerts := []models.SLAAlert{}
	err := r.GetDB(tx).Where("finding_id = ?", findingID).Order("alerted_at ASC").Find(&alerts).Error
	return alerts, err
}
