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
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"gorm.io/datatypes"
)

type FindingEventType string

const (
	EventTypeCreated             FindingEventType = "created"
	EventTypeUpdated             FindingEventType = "updated"
	EventTypeEdited              FindingEventType = "edited"
	EventTypeStatusChanged       FindingEventType = "status_changed"
	EventTypeReimportClosed      FindingEventType = "reimport_closed"
	EventTypeReimportReactivated FindingEventType = "reimport_reactivated"
	EventTypeDuplicateCreated    FindingEventType = "duplicate_created"
	EventTypeDuplicateMerged     FindingEventType = "duplicate_merged"
	EventTypeRuleApplied         FindingEventType = "rule_applied"
	EventTypeExceptionExpired    FindingEventType = "exception_expired"
	EventTypeGrouped             FindingEventType = "grouped"
)

// SystemActor is recorded for mutations no human triggered.
const SystemActor = "system"

type FindingEvent struct {
	Model
	FindingID     uuid.UUID                   `json:"findingId" gorm:"type:uuid;not null;index"`
	TenantID      uuid.UUID                   `json:"tenantId" gorm:"type:uuid;not null;index"`
	Type          FindingEventType            `json:"type" gorm:"type:text;not null"`
	Actor         string                      `json:"actor" gorm:"type:text;not null"`
	StatusBefore  *dtos.VLMStatus             `json:"statusBefore" gorm:"type:text"`
	StatusAfter   *dtos.VLMStatus             `json:"statusAfter" gorm:"type:text"`
	Justification *string                     `json:"justification" gorm:"type:text"`
	ChangedFields datatypes.JSONSlice[string] `json:"changedFields" gorm:"type:jsonb"`

	ArbitraryJSONData string `json:"arbitraryJSONData" gorm:"type:text"`
	arbitraryJSONData map[string]any
}

func (FindingEvent) TableName() string {
	return "finding_events"
}

func (event *FindingEvent) GetArbitraryJSONData() map[string]any {
	if event.ArbitraryJSONData == "" {
		return make(map[string]any)
	}
	if event.arbitraryJSONData == nil {
		event.arbitraryJSONData = make(map[string]any)
		if err := json.Unmarshal([]byte(event.ArbitraryJSONData), &event.arbitraryJSONData); err != nil {
			slog.Error("could not parse additional data", "err", err, "findingEventID", event.ID)
		}
	}
	return event.arbitraryJSONData
}

func (event *FindingEvent) SetArbitraryJSONData(data map[string]any) {
	event.arbitraryJSONData = data
	dataBytes, err := json.Marshal(event.arbitraryJSONData)
	if err != nil {
		slog.Error("could not marshal additional data", "err", err, "findingEventID", event.ID)
	}
	event.ArbitraryJSONData = string(dataBytes)
}

func statusPtr(s dtos.VLMStatus) *dtos.VLMStatus {
	if s == "" {
		return nil
	}
	return &s
}

func NewFindingEvent(finding Finding, eventType FindingEventType, actor string, before dtos.VLMStatus, changedFields []string) FindingEvent {
	return FindingEvent{
		FindingID:     finding.ID,
		TenantID:      finding.TenantID,
		Type:          eventType,
		Actor:         actor,
		StatusBefore:  statusPtr(before),
		StatusAfter:   statusPtr(finding.StatusVLM),
		Justification: finding.Justification,
		ChangedFields: changedFields,
	}
}
