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

package statemachine

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
)

var inactiveTerminals = []dtos.VLMStatus{
	dtos.VLMStatusInactiveMitigated,
	dtos.VLMStatusInactiveFalsePositive,
	dtos.VLMStatusInactiveRiskAccepted,
	dtos.VLMStatusInactiveOutOfScope,
}

// AllowedTransitions is the governance graph for manual status edits.
// Ingestion, reimport and the persistence router establish state directly.
var AllowedTransitions = map[dtos.VLMStatus][]dtos.VLMStatus{
	dtos.VLMStatusActive:                append([]dtos.VLMStatus{dtos.VLMStatusActiveVerified, dtos.VLMStatusUnderReview}, inactiveTerminals...),
	dtos.VLMStatusActiveVerified:        append([]dtos.VLMStatus{dtos.VLMStatusUnderReview}, inactiveTerminals...),
	dtos.VLMStatusUnderReview:           append([]dtos.VLMStatus{dtos.VLMStatusActive, dtos.VLMStatusActiveVerified}, inactiveTerminals...),
	dtos.VLMStatusInactiveMitigated:     {dtos.VLMStatusActive, dtos.VLMStatusActiveVerified},
	dtos.VLMStatusInactiveRiskAccepted:  {dtos.VLMStatusActive, dtos.VLMStatusActiveVerified},
	dtos.VLMStatusInactiveOutOfScope:    {dtos.VLMStatusActive, dtos.VLMStatusActiveVerified},
	dtos.VLMStatusInactiveFalsePositive: {},
	dtos.VLMStatusInactiveDuplicate:     {},
}

// ValidateTransition checks a manual move from -> to. Staying in the same state is always allowed.
func ValidateTransition(from, to dtos.VLMStatus) error {
	if !to.IsValid() {
		return shared.NewValidationError("statusVlm", fmt.Sprintf("unknown status %q", to))
	}
	if from == to {
		return nil
	}
	allowed := AllowedTransitions[from]
	if !slices.Contains(allowed, to) {
		return &shared.IllegalTransition{From: from, To: to, Allowed: allowed}
	}
	return nil
}

func RequiresJustification(to dtos.VLMStatus) bool {
	return to.IsInactive()
}

// ApplyStatusChange moves the finding to the given status and keeps the dependent
// bookkeeping fields in sync. It does not validate the transition.
func ApplyStatusChange(f *models.Finding, to dtos.VLMStatus, now time.Time) bool {
	if f.StatusVLM == to {
		return false
	}
	f.StatusVLM = to
	f.LastStatusChangeDate = &now

	switch to {
	case dtos.VLMStatusInactiveMitigated:
		f.MitigatedDate = &now
	case dtos.VLMStatusActive, dtos.VLMStatusActiveVerified, dtos.VLMStatusUnderReview:
		f.MitigatedDate = nil
	}
	if to == dtos.VLMStatusActiveVerified {
		f.IsVerified = true
	}
	f.IsFalsePositive = to == dtos.VLMStatusInactiveFalsePositive
	f.RiskAccepted = to == dtos.VLMStatusInactiveRiskAccepted
	return true
}

// PatchOutcome describes what ApplyPatch changed.
type PatchOutcome struct {
	StatusBefore  dtos.VLMStatus
	StatusChanged bool
	ChangedFields []string
}

func (o PatchOutcome) Changed() bool {
	return len(o.ChangedFields) > 0
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// ValidatePatch rejects a patch without touching the finding.
func ValidatePatch(f models.Finding, patch dtos.FindingPatch) error {
	if immutable := patch.ImmutableKeys(); len(immutable) > 0 {
		return &shared.ImmutableFieldViolation{Fields: immutable}
	}
	if patch.SeverityManual != nil && !patch.SeverityManual.IsValid() {
		return shared.NewValidationError("severityManual", fmt.Sprintf("unknown severity %q", *patch.SeverityManual))
	}
	if patch.StatusVLM == nil {
		return nil
	}

	to := *patch.StatusVLM
	if err := ValidateTransition(f.StatusVLM, to); err != nil {
		return err
	}
	if to != f.StatusVLM && RequiresJustification(to) {
		justification := f.Justification
		if patch.Justification != nil {
			justification = patch.Justification
		}
		if justification == nil || *justification == "" {
			return &shared.JustificationRequired{Target: to}
		}
	}
	return nil
}

// ApplyPatch validates the patch and applies it to f in place.
func ApplyPatch(f *models.Finding, patch dtos.FindingPatch, now time.Time) (PatchOutcome, error) {
	outcome := PatchOutcome{StatusBefore: f.StatusVLM}
	if err := ValidatePatch(*f, patch); err != nil {
		return outcome, err
	}

	changed := func(field string) {
		outcome.ChangedFields = append(outcome.ChangedFields, field)
	}

	if patch.TitleUserEdited != nil {
		next := patch.TitleUserEdited
		if *next == "" {
			next = nil
		}
		if !stringPtrEqual(f.TitleUserEdited, next) {
			f.TitleUserEdited = next
			changed("titleUserEdited")
		}
	}
	if patch.SeverityManual != nil && (f.SeverityManual == nil || *f.SeverityManual != *patch.SeverityManual) {
		f.SeverityManual = patch.SeverityManual
		changed("severityManual")
	}
	if patch.Description != nil && f.Description != *patch.Description {
		f.Description = *patch.Description
		changed("description")
	}
	if patch.IsVerified != nil && f.IsVerified != *patch.IsVerified {
		f.IsVerified = *patch.IsVerified
		changed("isVerified")
	}
	if patch.IsFalsePositive != nil && f.IsFalsePositive != *patch.IsFalsePositive {
		f.IsFalsePositive = *patch.IsFalsePositive
		changed("isFalsePositive")
	}
	if patch.RiskAccepted != nil && f.RiskAccepted != *patch.RiskAccepted {
		f.RiskAccepted = *patch.RiskAccepted
		changed("riskAccepted")
	}
	if patch.Justification != nil && !stringPtrEqual(f.Justification, patch.Justification) {
		f.Justification = patch.Justification
		changed("justification")
	}
	if patch.Tags != nil && !slices.Equal([]string(f.Tags), *patch.Tags) {
		f.Tags = append([]string{}, *patch.Tags...)
		changed("tags")
	}
	if patch.GroupID != nil && !uuidPtrEqual(f.GroupID, patch.GroupID) {
		f.GroupID = patch.GroupID
		changed("groupId")
	}
	if patch.ExpirationDate != nil && !timePtrEqual(f.ExpirationDate, patch.ExpirationDate) {
		f.ExpirationDate = patch.ExpirationDate
		changed("expirationDate")
	}
	if patch.StatusVLM != nil && ApplyStatusChange(f, *patch.StatusVLM, now) {
		outcome.StatusChanged = true
		changed("statusVlm")
	}
	return outcome, nil
}
