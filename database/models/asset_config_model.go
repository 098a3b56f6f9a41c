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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"gorm.io/datatypes"
)

// AssetConfig carries the deduplication, reimport and sla policy of one asset.
type AssetConfig struct {
	AssetID                 uuid.UUID                                 `json:"assetId" gorm:"type:uuid;primarykey"`
	TenantID                uuid.UUID                                 `json:"tenantId" gorm:"type:uuid;not null;index"`
	Name                    string                                    `json:"name" gorm:"type:text"`
	EnableDeduplication     bool                                      `json:"enableDeduplication" gorm:"not null"`
	DeduplicationScope      dtos.DeduplicationScope                   `json:"deduplicationScope" gorm:"type:text;not null"`
	DeleteDuplicateFindings bool                                      `json:"deleteDuplicateFindings" gorm:"not null"`
	MaxDuplicates           int                                       `json:"maxDuplicates" gorm:"not null"`
	ReimportEnabled         bool                                      `json:"reimportEnabled" gorm:"not null"`
	CloseOldFindings        bool                                      `json:"closeOldFindings" gorm:"not null"`
	DoNotReactivate         bool                                      `json:"doNotReactivate" gorm:"not null"`
	SLAConfig               datatypes.JSONType[map[dtos.Severity]int] `json:"slaConfig" gorm:"column:sla_config;type:jsonb"`
	CreatedAt               time.Time                                 `json:"createdAt"`
	UpdatedAt               time.Time                                 `json:"updatedAt"`
}

func (AssetConfig) TableName() string {
	return "asset_configs"
}

// DefaultAssetConfig is used for assets nobody configured explicitly.
func DefaultAssetConfig(tenantID, assetID uuid.UUID) AssetConfig {
	return AssetConfig{
		AssetID:                 assetID,
		TenantID:                tenantID,
		EnableDeduplication:     true,
		DeduplicationScope:      dtos.DeduplicationScopeTenant,
		DeleteDuplicateFindings: false,
		MaxDuplicates:           10,
		ReimportEnabled:         true,
		CloseOldFindings:        true,
		DoNotReactivate:         false,
		SLAConfig:               datatypes.NewJSONType(map[dtos.Severity]int{}),
	}
}

// SLADays returns the configured resolution window for a severity.
func (c AssetConfig) SLADays(severity dtos.Severity) int {
	if days, ok := c.SLAConfig.Data()[severity]; ok && days > 0 {
		return days
	}
	if days, ok := dtos.DefaultSLADays[severity]; ok {
		return days
	}
	return dtos.FallbackSLADays
}

// SearchesTenantWide reports whether original findings are looked up across all assets.
func (c AssetConfig) SearchesTenantWide() bool {
	return c.EnableDeduplication && c.DeduplicationScope == dtos.DeduplicationScopeTenant
}

func (c AssetConfig) ReimportPolicy() dtos.ReimportPolicy {
	if !c.ReimportEnabled {
		return dtos.ReimportPolicy{CloseOldFindings: false, DoNotReactivate: true}
	}
	return dtos.ReimportPolicy{CloseOldFindings: c.CloseOldFindings, DoNotReactivate: c.DoNotReactivate}
}
