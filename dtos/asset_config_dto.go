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

package dtos

import "github.com/google/uuid"

type DeduplicationScope string

const (
	DeduplicationScopeTenant DeduplicationScope = "TENANT"
	DeduplicationScopeAsset  DeduplicationScope = "ASSET"
)

// DefaultSLADays is used for every severity an asset config does not list.
var DefaultSLADays = map[Severity]int{
	SeverityCritical: 7,
	SeverityHigh:     30,
	SeverityMedium:   90,
	SeverityLow:      180,
}

const FallbackSLADays = 90

type AssetConfigDTO struct {
	AssetID                 uuid.UUID          `json:"assetId"`
	TenantID                uuid.UUID          `json:"tenantId"`
	Name                    string             `json:"name"`
	EnableDeduplication     bool               `json:"enableDeduplication"`
	DeduplicationScope      DeduplicationScope `json:"deduplicationScope"`
	DeleteDuplicateFindings bool               `json:"deleteDuplicateFindings"`
	MaxDuplicates           int                `json:"maxDuplicates"`
	ReimportEnabled         bool               `json:"reimportEnabled"`
	CloseOldFindings        bool               `json:"closeOldFindings"`
	DoNotReactivate         bool               `json:"doNotReactivate"`
	SLAConfig               map[Severity]int   `json:"slaConfig"`
}

type AssetConfigUpdateRequest struct {
	Name                    *string             `json:"name"`
	EnableDeduplication     *bool               `json:"enableDeduplication"`
	DeduplicationScope      *DeduplicationScope `json:"deduplicationScope" validate:"omitempty,oneof=TENANT ASSET"`
	DeleteDuplicateFindings *bool               `json:"deleteDuplicateFindings"`
	MaxDuplicates           *int                `json:"maxDuplicates" validate:"omitempty,min=0"`
	ReimportEnabled         *bool               `json:"reimportEnabled"`
	CloseOldFindings        *bool               `json:"closeOldFindings"`
	DoNotReactivate         *bool               `json:"doNotReactivate"`
	SLAConfig               map[Severity]int    `json:"slaConfig"`
}
