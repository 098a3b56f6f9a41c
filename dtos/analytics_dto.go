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

type MTTRBySeverity struct {
	Severity Severity `json:"severity"`
	Total    int      `json:"total"`
	AvgDays  float64  `json:"avgDays"`
	AvgHours float64  `json:"avgHours"`
	MinDays  float64  `json:"minDays"`
	MaxDays  float64  `json:"maxDays"`
}

type SLAViolationDTO struct {
	FindingID     uuid.UUID  `json:"findingId"`
	AssetID       uuid.UUID  `json:"assetId"`
	Title         string     `json:"title"`
	Severity      Severity   `json:"severity"`
	StatusVLM     VLMStatus  `json:"statusVlm"`
	FirstSeen     time.Time  `json:"firstSeen"`
	SLADays       int        `json:"slaDays"`
	DaysOverdue   int        `json:"daysOverdue"`
	LastAlertedAt *time.Time `json:"lastAlertedAt"`
}

type SLACheckResult struct {
	Checked    int `json:"checked"`
	Violations int `json:"violations"`
	Alerted    int `json:"alerted"`
}

type ExceptionExpiryResult struct {
	Reactivated int         `json:"reactivated"`
	FindingIDs  []uuid.UUID `json:"findingIds"`
}
