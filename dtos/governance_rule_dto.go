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

type GovernanceRuleAction string

const (
	RuleActionSuppress   GovernanceRuleAction = "SUPPRESS"
	RuleActionAutoAccept GovernanceRuleAction = "AUTO_ACCEPT"
	RuleActionEscalate   GovernanceRuleAction = "ESCALATE"
)

const DefaultExceptionExpirationDays = 90

type GovernanceRuleCreateRequest struct {
	Name           string               `json:"name" validate:"required"`
	Enabled        *bool                `json:"enabled"`
	Priority       int                  `json:"priority"`
	Severities     []Severity           `json:"severities"`
	CWEList        []string             `json:"cweList"`
	SourceTools    []string             `json:"sourceTools"`
	Action         GovernanceRuleAction `json:"action" validate:"required,oneof=SUPPRESS AUTO_ACCEPT ESCALATE"`
	AutoJustify    string               `json:"autoJustify"`
	ExpirationDays *int                 `json:"expirationDays" validate:"omitempty,min=1"`
}

type GovernanceRuleDTO struct {
	ID             uuid.UUID            `json:"id"`
	TenantID       uuid.UUID            `json:"tenantId"`
	Name           string               `json:"name"`
	Enabled        bool                 `json:"enabled"`
	Priority       int                  `json:"priority"`
	Severities     []string             `json:"severities"`
	CWEList        []string             `json:"cweList"`
	SourceTools    []string             `json:"sourceTools"`
	Action         GovernanceRuleAction `json:"action"`
	AutoJustify    string               `json:"autoJustify"`
	ExpirationDays int                  `json:"expirationDays"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type FindingGroupCreateRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	FindingIDs  []uuid.UUID `json:"findingIds" validate:"required,min=1"`
}

type FindingGroupDTO struct {
	ID            uuid.UUID    `json:"id"`
	TenantID      uuid.UUID    `json:"tenantId"`
	AssetID       uuid.UUID    `json:"assetId"`
	TestRunID     *string      `json:"testRunId"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	FindingCount  int          `json:"findingCount"`
	CriticalCount int          `json:"criticalCount"`
	HighCount     int          `json:"highCount"`
	MediumCount   int          `json:"mediumCount"`
	LowCount      int          `json:"lowCount"`
	InfoCount     int          `json:"infoCount"`
	CreatedBy     string       `json:"createdBy"`
	CreatedAt     time.Time    `json:"createdAt"`
	Findings      []FindingDTO `json:"findings,omitempty"`
}
