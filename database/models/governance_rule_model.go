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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"gorm.io/datatypes"
)

type GovernanceRule struct {
	Model
	TenantID       uuid.UUID                   `json:"tenantId" gorm:"type:uuid;not null;index"`
	Name           string                      `json:"name" gorm:"type:text;not null"`
	Enabled        bool                        `json:"enabled" gorm:"not null"`
	Priority       int                         `json:"priority" gorm:"not null;default:0"`
	Severities     datatypes.JSONSlice[string] `json:"severities" gorm:"type:jsonb"`
	CWEList        datatypes.JSONSlice[string] `json:"cweList" gorm:"column:cwe_list;type:jsonb"`
	SourceTools    datatypes.JSONSlice[string] `json:"sourceTools" gorm:"type:jsonb"`
	Action         dtos.GovernanceRuleAction   `json:"action" gorm:"type:text;not null"`
	AutoJustify    string                      `json:"autoJustify" gorm:"type:text"`
	ExpirationDays int                         `json:"expirationDays" gorm:"not null;default:90"`
}

func (GovernanceRule) TableName() string {
	return "governance_rules"
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

// Matches reports whether every configured criterion accepts the finding.
// Empty criteria match everything.
func (r GovernanceRule) Matches(f Finding) bool {
	if len(r.Severities) > 0 && !containsFold(r.Severities, string(f.SeverityAdjusted)) {
		return false
	}
	if len(r.CWEList) > 0 && (f.CWE == nil || !containsFold(r.CWEList, *f.CWE)) {
		return false
	}
	if len(r.SourceTools) > 0 && !containsFold(r.SourceTools, f.SourceTool) {
		return false
	}
	return true
}

type SLAAlert struct {
	Model
	FindingID   uuid.UUID     `json:"findingId" gorm:"type:uuid;not null;index"`
	TenantID    uuid.UUID     `json:"tenantId" gorm:"type:uuid;not null;index"`
	AssetID     uuid.UUID     `json:"assetId" gorm:"type:uuid;not null"`
	Severity    dtos.Severity `json:"severity" gorm:"type:text;not null"`
	SLADays     int           `json:"slaDays" gorm:"not null"`
	DaysOverdue int           `json:"daysOverdue" gorm:"not null"`
	AlertedAt   time.Time     `json:"alertedAt" gorm:"not null"`
}

func (SLAAlert) TableName() string {
	return "sla_alerts"
}
