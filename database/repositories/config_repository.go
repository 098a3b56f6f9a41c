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
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type configRepository struct {
	db *gorm.DB
	*GormRepository[string, models.Config]
}

func NewConfigRepository(db *gorm.DB) *configRepository {
	return &configRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Config](db),
	}
}

// Save upserts by key.
func (r *configRepository) Save(tx *gorm.DB, config *models.Config) error {
	return r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"val"}),
	}).Create(config).Error
}
