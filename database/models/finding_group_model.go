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
	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
)

type FindingGroup struct {
	Model
	TenantID      uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;index"`
	AssetID       uuid.UUID `json:"assetId" gorm:"type:uuid;not null"`
	TestRunID     *string   `json:"testRunId" gorm:"type:text"`
	Name          string    `json:"name" gorm:"type:text;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	FindingCount  int       `json:"findingCount" gorm:"not null;default:0"`
	CriticalCount int       `json:"criticalCount" gorm:"not null;default:0"`
	HighCount     int       `json:"highCount" gorm:"not null;default:0"`
	MediumCount   int       `json:"mediumCount" gorm:"not null;default:0"`
	LowCount      int       `json:"lowCount" gorm:"not null;default:0"`
	InfoCount     int       `json:"infoCount" gorm:"not null;default:0"`
	CreatedBy     string    `json:"createdBy" gorm:"type:text"`

	Findings []Finding `json:"findings" gorm:"foreignKey:GroupID"`
}

func (FindingGroup) TableName() string {
	return "finding_groups"
}

// RecountSeverities recalculates the counters from the member findings.
func (g *FindingGroup) RecountSeverities(findings []Finding) {
	g.FindingCount = len(findings)
	g.CriticalCount, g.HighCount, g.MediumCount, g.LowCount, g.InfoCount = 0, 0, 0, 0, 0
	for _, f := range findings {
		switch f.EffectiveSeverity() {
		case dtos.SeverityCritical:
			g.CriticalCount++
		case dtos.SeverityHigh:
			g.HighCount++
		case dtos.SeverityMedium:
			g.MediumCount++
		case dtos.SeverityLow:
			g.LowCount++
		default:
			g.InfoCount++
		}
	}
}
