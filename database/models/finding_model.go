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
	databasetypes "github.com/l3montree-dev/devguard-vlm/database/types"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"gorm.io/datatypes"
)

type Finding struct {
	Model
	TenantID uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_findings_tenant_correlation_asset,priority:1;index:idx_findings_tenant_dedup_asset,priority:1"`
	AssetID  uuid.UUID `json:"assetId" gorm:"type:uuid;not null;uniqueIndex:idx_findings_tenant_correlation_asset,priority:3;index:idx_findings_tenant_dedup_asset,priority:3"`

	// provenance, written once on creation
	RawTitle         string        `json:"rawTitle" gorm:"type:text;not null"`
	SeverityOriginal dtos.Severity `json:"severityOriginal" gorm:"type:text;not null"`
	CorrelationKey   string        `json:"correlationKey" gorm:"type:text;not null;uniqueIndex:idx_findings_tenant_correlation_asset,priority:2"`

	Title             string             `json:"title" gorm:"type:text;not null"`
	TitleUserEdited   *string            `json:"titleUserEdited" gorm:"type:text"`
	Description       string             `json:"description" gorm:"type:text"`
	SeverityAdjusted  dtos.Severity      `json:"severityAdjusted" gorm:"type:text;not null"`
	SeverityManual    *dtos.Severity     `json:"severityManual" gorm:"type:text"`
	CVE               *string            `json:"cve" gorm:"type:text"`
	CVSSScore         *float64           `json:"cvssScore" gorm:"column:cvss_score"`
	CVSSVector        *string            `json:"cvssVector" gorm:"column:cvss_vector;type:text"`
	CWE               *string            `json:"cwe" gorm:"column:cwe;type:text"`
	VulnerabilityType string             `json:"vulnerabilityType" gorm:"type:text"`
	URL               string             `json:"url" gorm:"column:url;type:text"`
	Parameter         string             `json:"parameter" gorm:"type:text"`
	LocationType      *dtos.LocationType `json:"locationType" gorm:"type:text"`

	DeduplicationHash string  `json:"deduplicationHash" gorm:"type:text;not null;index:idx_findings_tenant_dedup_asset,priority:2"`
	SourceTool        string  `json:"sourceTool" gorm:"type:text;not null;index:idx_findings_source_tool_id,priority:1"`
	SourceToolID      *string `json:"sourceToolId" gorm:"type:text;index:idx_findings_source_tool_id,priority:2"`

	Status               dtos.FindingStatus `json:"status" gorm:"type:text;not null;default:'open'"`
	StatusVLM            dtos.VLMStatus     `json:"statusVlm" gorm:"column:status_vlm;type:text;not null;default:'ACTIVE'"`
	FirstSeenTimestamp   time.Time          `json:"firstSeenTimestamp" gorm:"not null"`
	LastSeenTimestamp    time.Time          `json:"lastSeenTimestamp" gorm:"not null"`
	LastStatusChangeDate *time.Time         `json:"lastStatusChangeDate"`
	MitigatedDate        *time.Time         `json:"mitigatedDate"`

	IsDuplicate bool `json:"isDuplicate" gorm:"not null;default:false"`
	// OriginalFindingID is a plain back-reference. Duplicates are independent rows.
	OriginalFindingID *uuid.UUID `json:"originalFindingId" gorm:"type:uuid;index"`

	IsVerified      bool                        `json:"isVerified" gorm:"not null;default:false"`
	IsFalsePositive bool                        `json:"isFalsePositive" gorm:"not null;default:false"`
	RiskAccepted    bool                        `json:"riskAccepted" gorm:"not null;default:false"`
	Justification   *string                     `json:"justification" gorm:"type:text"`
	Tags            datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	ControlMapping  datatypes.JSONSlice[string] `json:"controlMapping" gorm:"type:jsonb"`
	ExpirationDate  *time.Time                  `json:"expirationDate"`
	GroupID         *uuid.UUID                  `json:"groupId" gorm:"type:uuid;index"`
	TestRunID       *string                     `json:"testRunId" gorm:"type:text"`
	RawPayload      databasetypes.JSONB         `json:"rawPayload" gorm:"type:jsonb"`

	SLAViolationAlertedAt *time.Time `json:"slaViolationAlertedAt" gorm:"column:sla_violation_alerted_at"`
	SLADaysOverdue        int        `json:"slaDaysOverdue" gorm:"column:sla_days_overdue;not null;default:0"`
}

func (Finding) TableName() string {
	return "findings"
}

// DisplayTitle prefers the analyst edited title.
func (f Finding) DisplayTitle() string {
	if f.TitleUserEdited != nil && *f.TitleUserEdited != "" {
		return *f.TitleUserEdited
	}
	return f.Title
}

func (f Finding) EffectiveSeverity() dtos.Severity {
	if f.SeverityManual != nil && f.SeverityManual.IsValid() {
		return *f.SeverityManual
	}
	return f.SeverityAdjusted
}

func (f Finding) HasJustification() bool {
	return f.Justification != nil && *f.Justification != ""
}
