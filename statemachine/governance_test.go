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
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []dtos.VLMStatus{
	dtos.VLMStatusActive,
	dtos.VLMStatusActiveVerified,
	dtos.VLMStatusUnderReview,
	dtos.VLMStatusInactiveMitigated,
	dtos.VLMStatusInactiveFalsePositive,
	dtos.VLMStatusInactiveRiskAccepted,
	dtos.VLMStatusInactiveOutOfScope,
	dtos.VLMStatusInactiveDuplicate,
}

func decodePatch(t *testing.T, payload string) dtos.FindingPatch {
	t.Helper()
	var patch dtos.FindingPatch
	require.NoError(t, json.Unmarshal([]byte(payload), &patch))
	return patch
}

func TestValidateTransition(t *testing.T) {
	// rows and columns follow allStatuses, x marks a legal manual edit
	expectedEdges := []string{
		//A  V  R  M  F  K  O  D
		". x x x x x x .", // ACTIVE
		". . x x x x x .", // ACTIVE_VERIFIED
		"x x . x x x x .", // UNDER_REVIEW
		"x x . . . . . .", // INACTIVE_MITIGATED
		". . . . . . . .", // INACTIVE_FALSE_POSITIVE
		"x x . . . . . .", // INACTIVE_RISK_ACCEPTED
		"x x . . . . . .", // INACTIVE_OUT_OF_SCOPE
		". . . . . . . .", // INACTIVE_DUPLICATE
	}
	edge := func(i, j int) bool {
		return strings.Fields(expectedEdges[i])[j] == "x"
	}

	t.Run("should contain exactly the governance edges", func(t *testing.T) {
		assert.Len(t, AllowedTransitions, len(allStatuses))
		for i, from := range allStatuses {
			for j, to := range allStatuses {
				assert.Equal(t, edge(i, j), slices.Contains(AllowedTransitions[from], to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should validate every pair against the governance edges", func(t *testing.T) {
		for i, from := range allStatuses {
			for j, to := range allStatuses {
				err := ValidateTransition(from, to)
				if from == to || edge(i, j) {
					assert.NoError(t, err, "%s -> %s", from, to)
					continue
				}
				var illegal *shared.IllegalTransition
				assert.ErrorAs(t, err, &illegal, "%s -> %s", from, to)
			}
		}
	})

	t.Run("should keep false positive and duplicate terminal", func(t *testing.T) {
		assert.Empty(t, AllowedTransitions[dtos.VLMStatusInactiveFalsePositive])
		assert.Empty(t, AllowedTransitions[dtos.VLMStatusInactiveDuplicate])
		assert.Error(t, ValidateTransition(dtos.VLMStatusInactiveFalsePositive, dtos.VLMStatusActive))
	})

	t.Run("should allow reopening a mitigated finding", func(t *testing.T) {
		assert.NoError(t, ValidateTransition(dtos.VLMStatusInactiveMitigated, dtos.VLMStatusActive))
		assert.Error(t, ValidateTransition(dtos.VLMStatusInactiveMitigated, dtos.VLMStatusUnderReview))
	})

	t.Run("should reject unknown target states", func(t *testing.T) {
		err := ValidateTransition(dtos.VLMStatusActive, dtos.VLMStatus("DONE"))
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestApplyPatch(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should reject immutable fields present in the payload", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive}
		_, err := ApplyPatch(&f, decodePatch(t, `{"rawTitle":"x","description":"y"}`), now)

		var immutable *shared.ImmutableFieldViolation
		require.ErrorAs(t, err, &immutable)
		assert.Equal(t, []string{"rawTitle"}, immutable.Fields)
		assert.Empty(t, f.Description)
	})

	t.Run("should reject immutable fields in any spelling", func(t *testing.T) {
		payloads := map[string]string{
			"correlation_key":   `{"correlation_key":"x"}`,
			"raw_title":         `{"raw_title":"x"}`,
			"severity_original": `{"severity_original":"LOW"}`,
			"CorrelationKey":    `{"CorrelationKey":"x"}`,
			"tenant_id":         `{"tenant_id":"x"}`,
			"created_at":        `{"created_at":"2026-01-01T00:00:00Z"}`,
			"ID":                `{"ID":"x"}`,
		}
		for key, payload := range payloads {
			f := models.Finding{StatusVLM: dtos.VLMStatusActive}
			_, err := ApplyPatch(&f, decodePatch(t, payload), now)

			var immutable *shared.ImmutableFieldViolation
			require.ErrorAs(t, err, &immutable, key)
			assert.Equal(t, []string{key}, immutable.Fields)
		}
	})

	t.Run("should accept editable fields written in snake case", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive}
		_, err := ApplyPatch(&f, decodePatch(t, `{"is_verified":true,"description":"y"}`), now)
		assert.NoError(t, err)
	})

	t.Run("should require a justification for an inactive target", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive}
		_, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"INACTIVE_RISK_ACCEPTED"}`), now)

		var required *shared.JustificationRequired
		require.ErrorAs(t, err, &required)
		assert.Equal(t, dtos.VLMStatusActive, f.StatusVLM)
	})

	t.Run("should accept a stored justification", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive, Justification: utils.Ptr("accepted by ciso")}
		outcome, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"INACTIVE_RISK_ACCEPTED"}`), now)

		require.NoError(t, err)
		assert.True(t, outcome.StatusChanged)
		assert.True(t, f.RiskAccepted)
		assert.Equal(t, now, *f.LastStatusChangeDate)
	})

	t.Run("should treat an empty justification as missing", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive, Justification: utils.Ptr("stored")}
		_, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"INACTIVE_OUT_OF_SCOPE","justification":""}`), now)

		var required *shared.JustificationRequired
		assert.ErrorAs(t, err, &required)
	})

	t.Run("should stamp the mitigation date when mitigating", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusUnderReview}
		outcome, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"INACTIVE_MITIGATED","justification":"fixed in 1.2.3"}`), now)

		require.NoError(t, err)
		assert.Equal(t, dtos.VLMStatusUnderReview, outcome.StatusBefore)
		assert.Equal(t, []string{"justification", "statusVlm"}, outcome.ChangedFields)
		assert.Equal(t, now, *f.MitigatedDate)
	})

	t.Run("should treat the same state as a no-op", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusInactiveFalsePositive}
		outcome, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"INACTIVE_FALSE_POSITIVE"}`), now)

		require.NoError(t, err)
		assert.False(t, outcome.StatusChanged)
		assert.False(t, outcome.Changed())
		assert.Nil(t, f.LastStatusChangeDate)
	})

	t.Run("should apply classification edits without touching the status", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive, SeverityAdjusted: dtos.SeverityLow}
		outcome, err := ApplyPatch(&f, decodePatch(t, `{"severityManual":"HIGH","titleUserEdited":"Stored XSS in search","tags":["pci"]}`), now)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"severityManual", "titleUserEdited", "tags"}, outcome.ChangedFields)
		assert.Equal(t, dtos.SeverityHigh, f.EffectiveSeverity())
		assert.Equal(t, "Stored XSS in search", f.DisplayTitle())
		assert.Equal(t, dtos.VLMStatusActive, f.StatusVLM)
	})

	t.Run("should reject an unknown manual severity", func(t *testing.T) {
		f := models.Finding{StatusVLM: dtos.VLMStatusActive}
		_, err := ApplyPatch(&f, decodePatch(t, `{"severityManual":"SEVERE"}`), now)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("should clear the mitigation date when reopening", func(t *testing.T) {
		mitigated := now.Add(-time.Hour)
		f := models.Finding{StatusVLM: dtos.VLMStatusInactiveMitigated, MitigatedDate: &mitigated}
		_, err := ApplyPatch(&f, decodePatch(t, `{"statusVlm":"ACTIVE"}`), now)

		require.NoError(t, err)
		assert.Nil(t, f.MitigatedDate)
	})
}
