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

type assetConfigRepository struct {
	db *gorm.DB
}

func NewAssetConfigRepository(db *gorm.DB) *assetConfigRepository {
	return &assetConfigRepository{db: db}
}

func (r *assetConfigRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *assetConfigRepository) ReadByAsset(tx *gorm.DB, assetID uuid.UUID) (models.AssetConfig, error) {
	var config models.AssetConfig
	err := r.getDB(tx).Where("asset_id = ?", assetID).First(&config).Error
	return config, err
}

func (r *assetConfigRepository) Save(tx *gorm.DB, config *models.AssetConfig) error {
	return r.getDB(tx).Save(config).Error
}

func (r *assetConfigRepository) ListWithRetentionPolicy(tx *gorm.DB) ([]models.AssetConfig, error) {
	configs := []models.AssetConfig{}
	err := r.getDB(tx).
		Where("delete_duplicate_findings = ? AND enable_deduplication = ?", true, true).
		Order("tenant_id ASC").Order("asset_id ASC").
		Find(&configs).Error
	return configs, err
}

func (r *assetConfigRepository) ListByAssets(tx *gorm.DB, assetIDs []uuid.UUID) ([]models.AssetConfig, error) {
	configs := []models.AssetConfig{}
	if len(assetIDs) == 0 {
		return configs, nil
	}
	err := r.getDB(tx).Where("asset_id IN ?", assetIDs).Find(&configs).Error
	return configs, err
}
