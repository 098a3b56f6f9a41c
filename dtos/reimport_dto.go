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

type ReimportPolicy struct {
	CloseOldFindings bool `json:"closeOldFindings"`
	DoNotReactivate  bool `json:"doNotReactivate"`
}

type ReimportRequest struct {
	SourceTool string                 `json:"sourceTool" validate:"required"`
	Findings   []FindingIngestRequest `json:"findings"`
	// Policy overrides the asset config when set.
	Policy *ReimportPolicy `json:"policy"`
}

type ReimportDetails struct {
	ClosedIDs          []uuid.UUID `json:"closedIds"`
	ReactivatedIDs     []uuid.UUID `json:"reactivatedIds"`
	UnchangedIDs       []uuid.UUID `json:"unchangedIds"`
	NewCorrelationKeys []string    `json:"newCorrelationKeys"`
}

type ReimportResult struct {
	Closed      int             `json:"closed"`
	Reactivated int             `json:"reactivated"`
	New         int             `json:"new"`
	Unchanged   int             `json:"unchanged"`
	Details     ReimportDetails `json:"details"`
}

// ImportScanResult is the reconciliation outcome plus the ingestion of the new findings.
type ImportScanResult struct {
	Reconciliation ReimportResult    `json:"reconciliation"`
	Ingestion      BatchIngestResult `json:"ingestion"`
}

type RetentionDetail struct {
	OriginalFindingID uuid.UUID `json:"originalFindingId"`
	DuplicatesFound   int       `json:"duplicatesFound"`
	DuplicatesDeleted int       `json:"duplicatesDeleted"`
}

type RetentionResult struct {
	Processed int               `json:"processed"`
	Deleted   int               `json:"deleted"`
	Details   []RetentionDetail `json:"details"`
}
