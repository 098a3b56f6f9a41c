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
	"sort"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
)

// ReimportDiff is the classification of a recurring scan against the stored findings
// of one asset and tool.
type ReimportDiff struct {
	// active findings missing from the current scan, only filled when old findings get closed
	ToClose []models.Finding
	// mitigated findings detected again
	ToReactivate []models.Finding
	// active findings detected again
	Unchanged []models.Finding
	// correlation keys nobody knows yet, sorted
	NewKeys []string
}

func (d ReimportDiff) Result() dtos.ReimportResult {
	ids := func(findings []models.Finding) []uuid.UUID {
		res := make([]uuid.UUID, len(findings))
		for i, f := range findings {
			res[i] = f.ID
		}
		return res
	}
	return dtos.ReimportResult{
		Closed:      len(d.ToClose),
		Reactivated: len(d.ToReactivate),
		New:         len(d.NewKeys),
		Unchanged:   len(d.Unchanged),
		Details: dtos.ReimportDetails{
			ClosedIDs:          ids(d.ToClose),
			ReactivatedIDs:     ids(d.ToReactivate),
			UnchangedIDs:       ids(d.Unchanged),
			NewCorrelationKeys: append([]string{}, d.NewKeys...),
		},
	}
}

// DiffRecurringScan compares the keys of the current scan with the active and mitigated
// findings. It does not mutate its inputs and is deterministic for equal inputs.
func DiffRecurringScan(currentKeys []string, active []models.Finding, mitigated []models.Finding, policy dtos.ReimportPolicy) ReimportDiff {
	diff := ReimportDiff{
		ToClose:      []models.Finding{},
		ToReactivate: []models.Finding{},
		Unchanged:    []models.Finding{},
		NewKeys:      []string{},
	}

	candidates := make(map[string]struct{}, len(currentKeys))
	for _, key := range currentKeys {
		if key != "" {
			candidates[key] = struct{}{}
		}
	}

	for _, f := range active {
		if _, ok := candidates[f.CorrelationKey]; ok {
			diff.Unchanged = append(diff.Unchanged, f)
			continue
		}
		if policy.CloseOldFindings {
			diff.ToClose = append(diff.ToClose, f)
		}
	}
	// every key matched by an active finding is neither new nor reactivated
	for _, f := range diff.Unchanged {
		delete(candidates, f.CorrelationKey)
	}

	if !policy.DoNotReactivate {
		for _, f := range mitigated {
			if _, ok := candidates[f.CorrelationKey]; !ok {
				continue
			}
			diff.ToReactivate = append(diff.ToReactivate, f)
			delete(candidates, f.CorrelationKey)
		}
	}

	for key := range candidates {
		diff.NewKeys = append(diff.NewKeys, key)
	}
	sort.Strings(diff.NewKeys)
	return diff
}
