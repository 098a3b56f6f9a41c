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

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// SeverityOrder lists the canonical levels from most to least severe.
var SeverityOrder = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo}

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	}
	return false
}

// VLMStatus is the governed lifecycle state of a finding.
type VLMStatus string

const (
	VLMStatusActive                VLMStatus = "ACTIVE"
	VLMStatusActiveVerified        VLMStatus = "ACTIVE_VERIFIED"
	VLMStatusUnderReview           VLMStatus = "UNDER_REVIEW"
	VLMStatusInactiveMitigated     VLMStatus = "INACTIVE_MITIGATED"
	VLMStatusInactiveFalsePositive VLMStatus = "INACTIVE_FALSE_POSITIVE"
	VLMStatusInactiveRiskAccepted  VLMStatus = "INACTIVE_RISK_ACCEPTED"
	VLMStatusInactiveOutOfScope    VLMStatus = "INACTIVE_OUT_OF_SCOPE"
	VLMStatusInactiveDuplicate     VLMStatus = "INACTIVE_DUPLICATE"
)

func (s VLMStatus) IsValid() bool {
	switch s {
	case VLMStatusActive, VLMStatusActiveVerified, VLMStatusUnderReview,
		VLMStatusInactiveMitigated, VLMStatusInactiveFalsePositive, VLMStatusInactiveRiskAccepted,
		VLMStatusInactiveOutOfScope, VLMStatusInactiveDuplicate:
		return true
	}
	return false
}

func (s VLMStatus) IsInactive() bool {
	switch s {
	case VLMStatusInactiveMitigated, VLMStatusInactiveFalsePositive, VLMStatusInactiveRiskAccepted,
		VLMStatusInactiveOutOfScope, VLMStatusInactiveDuplicate:
		return true
	}
	return false
}

// OpenVLMStatuses are the states considered "still to be worked on".
var OpenVLMStatuses = []VLMStatus{VLMStatusActive, VLMStatusActiveVerified, VLMStatusUnderReview}

// FindingStatus is the simple external-facing status synced to ticket systems.
type FindingStatus string

const (
	FindingStatusOpen       FindingStatus = "open"
	FindingStatusInProgress FindingStatus = "in_progress"
	FindingStatusResolved   FindingStatus = "resolved"
	FindingStatusClosed     FindingStatus = "closed"
	FindingStatusReopened   FindingStatus = "reopened"
	FindingStatusMerged     FindingStatus = "merged"
)

type LocationType string

const (
	LocationTypeWeb            LocationType = "WEB"
	LocationTypeAPI            LocationType = "API"
	LocationTypeMobile         LocationType = "MOBILE"
	LocationTypeInfrastructure LocationType = "INFRASTRUCTURE"
	LocationTypeCode           LocationType = "CODE"
)

type DeduplicationStrategy string

const (
	StrategySourceToolID   DeduplicationStrategy = "SOURCE_TOOL_ID"
	StrategyCrossToolHash  DeduplicationStrategy = "CROSS_TOOL_HASH"
	StrategyCorrelationKey DeduplicationStrategy = "CORRELATION_KEY"
	StrategyHybrid         DeduplicationStrategy = "HYBRID"
)

func (s DeduplicationStrategy) IsValid() bool {
	switch s {
	case StrategySourceToolID, StrategyCrossToolHash, StrategyCorrelationKey, StrategyHybrid:
		return true
	}
	return false
}

// Permits reports whether a matcher belonging to the given strategy may run.
func (s DeduplicationStrategy) Permits(matcher DeduplicationStrategy) bool {
	return s == StrategyHybrid || s == matcher
}

type IngestAction string

const (
	IngestActionCreated IngestAction = "CREATED"
	IngestActionUpdated IngestAction = "UPDATED"
)

type PersistenceStatus string

const (
	PersistenceNewFinding         PersistenceStatus = "NEW_FINDING"
	PersistenceReimportedFiltered PersistenceStatus = "REIMPORTED_FILTERED"
	PersistenceDuplicateCreated   PersistenceStatus = "DUPLICATE_CREATED"
)

// FindingIngestRequest is a single normalized-or-raw finding as delivered by a tool adapter.
type FindingIngestRequest struct {
	AssetID           uuid.UUID      `json:"assetId" validate:"required"`
	Title             string         `json:"title" validate:"required"`
	Description       string         `json:"description"`
	Severity          string         `json:"severity"`
	SourceTool        string         `json:"sourceTool" validate:"required"`
	SourceToolID      string         `json:"sourceToolId"`
	VulnerabilityType string         `json:"vulnerabilityType"`
	URL               string         `json:"url"`
	Parameter         string         `json:"parameter"`
	LocationType      LocationType   `json:"locationType"`
	CVE               *string        `json:"cve"`
	CVSSScore         *float64       `json:"cvssScore"`
	CVSSVector        *string        `json:"cvssVector"`
	CWE               *string        `json:"cwe"`
	Status            *FindingStatus `json:"status"`
	TestRunID         *string        `json:"testRunId"`
	ControlMapping    []string       `json:"controlMapping"`
	RawPayload        map[string]any `json:"rawPayload"`
}

type IngestResult struct {
	Action       IngestAction           `json:"action"`
	FindingID    uuid.UUID              `json:"findingId"`
	StrategyUsed DeduplicationStrategy  `json:"strategyUsed"`
	MatchedBy    *DeduplicationStrategy `json:"matchedBy,omitempty"`
}

type BatchIngestItem struct {
	Index  int           `json:"index"`
	Result *IngestResult `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type BatchIngestResult struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []BatchIngestItem `json:"items"`
}

type PersistenceResult struct {
	Status            PersistenceStatus `json:"status"`
	FindingID         uuid.UUID         `json:"findingId"`
	OriginalFindingID *uuid.UUID        `json:"originalFindingId,omitempty"`
}

type FindingDTO struct {
	ID                   uuid.UUID     `json:"id"`
	TenantID             uuid.UUID     `json:"tenantId"`
	AssetID              uuid.UUID     `json:"assetId"`
	RawTitle             string        `json:"rawTitle"`
	Title                string        `json:"title"`
	TitleUserEdited      *string       `json:"titleUserEdited"`
	DisplayTitle         string        `json:"displayTitle"`
	Description          string        `json:"description"`
	SeverityOriginal     Severity      `json:"severityOriginal"`
	SeverityAdjusted     Severity      `json:"severityAdjusted"`
	SeverityManual       *Severity     `json:"severityManual"`
	EffectiveSeverity    Severity      `json:"effectiveSeverity"`
	CVE                  *string       `json:"cve"`
	CVSSScore            *float64      `json:"cvssScore"`
	CVSSVector           *string       `json:"cvssVector"`
	CWE                  *string       `json:"cwe"`
	VulnerabilityType    string        `json:"vulnerabilityType"`
	URL                  string        `json:"url"`
	Parameter            string        `json:"parameter"`
	LocationType         *LocationType `json:"locationType"`
	CorrelationKey       string        `json:"correlationKey"`
	DeduplicationHash    string        `json:"deduplicationHash"`
	SourceTool           string        `json:"sourceTool"`
	SourceToolID         *string       `json:"sourceToolId"`
	Status               FindingStatus `json:"status"`
	StatusVLM            VLMStatus     `json:"statusVlm"`
	FirstSeenTimestamp   time.Time     `json:"firstSeenTimestamp"`
	LastSeenTimestamp    time.Time     `json:"lastSeenTimestamp"`
	LastStatusChangeDate *time.Time    `json:"lastStatusChangeDate"`
	MitigatedDate        *time.Time    `json:"mitigatedDate"`
	IsDuplicate          bool          `json:"isDuplicate"`
	OriginalFindingID    *uuid.UUID    `json:"originalFindingId"`
	IsVerified           bool          `json:"isVerified"`
	IsFalsePositive      bool          `json:"isFalsePositive"`
	RiskAccepted         bool          `json:"riskAccepted"`
	Justification        *string       `json:"justification"`
	Tags                 []string      `json:"tags"`
	ControlMapping       []string      `json:"controlMapping"`
	ExpirationDate       *time.Time    `json:"expirationDate"`
	GroupID              *uuid.UUID    `json:"groupId"`
	TestRunID            *string       `json:"testRunId"`
	SLADaysOverdue       int           `json:"slaDaysOverdue"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

type FindingEventDTO struct {
	ID            uuid.UUID      `json:"id"`
	FindingID     uuid.UUID      `json:"findingId"`
	Type          string         `json:"type"`
	Actor         string         `json:"actor"`
	StatusBefore  *VLMStatus     `json:"statusBefore"`
	StatusAfter   *VLMStatus     `json:"statusAfter"`
	Justification *string        `json:"justification"`
	ChangedFields []string       `json:"changedFields"`
	Data          map[string]any `json:"data"`
	CreatedAt     time.Time      `json:"createdAt"`
}
