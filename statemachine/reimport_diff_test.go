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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/stretchr/testify/assert"
)

func findingWithKey(key string, status dtos.VLMStatus) models.Finding {
	return models.Finding{
		Model:          models.Model{ID: uuid.New()},
		CorrelationKey: key,
		StatusVLM:      status,
	}
}

func TestDiffRecurringScan(t *testing.T) {
	closeAndReactivate := dtos.ReimportPolicy{CloseOldFindings: true, DoNotReactivate: false}

	t.Run("should close missing findings, keep present ones and report new keys", func(t *testing.T) {
		k1 := findingWithKey("k1", dtos.VLMStatusActive)
		k2 := findingWithKey("k2", dtos.VLMStatusActiveVerified)

		diff := DiffRecurringScan([]string{"k2", "k3"}, []models.Finding{k1, k2}, nil, closeAndReactivate)

		assert.Equal(t, []models.Finding{k1}, diff.ToClose)
		assert.Equal(t, []models.Finding{k2}, diff.Unchanged)
		assert.Empty(t, diff.ToReactivate)
		assert.Equal(t, []string{"k3"}, diff.NewKeys)

		res := diff.Result()
		assert.Equal(t, 1, res.Closed)
		assert.Equal(t, 1, res.Unchanged)
		assert.Equal(t, 1, res.New)
		assert.Equal(t, 0, res.Reactivated)
		assert.Equal(t, []uuid.UUID{k1.ID}, res.Details.ClosedIDs)
		assert.Equal(t, []uuid.UUID{k2.ID}, res.Details.UnchangedIDs)
	})

	t.Run("should reactivate a mitigated finding instead of reporting it as new", func(t *testing.T) {
		k1 := findingWithKey("k1", dtos.VLMStatusInactiveMitigated)
		k2 := findingWithKey("k2", dtos.VLMStatusActive)

		diff := DiffRecurringScan([]string{"k1", "k2"}, []models.Finding{k2}, []models.Finding{k1}, closeAndReactivate)

		assert.Equal(t, []models.Finding{k1}, diff.ToReactivate)
		assert.Equal(t, []models.Finding{k2}, diff.Unchanged)
		assert.Empty(t, diff.NewKeys)
		assert.Empty(t, diff.ToClose)
	})

	t.Run("should report a mitigated key as new when reactivation is disabled", func(t *testing.T) {
		k1 := findingWithKey("k1", dtos.VLMStatusInactiveMitigated)

		diff := DiffRecurringScan([]string{"k1"}, nil, []models.Finding{k1}, dtos.ReimportPolicy{CloseOldFindings: true, DoNotReactivate: true})

		assert.Empty(t, diff.ToReactivate)
		assert.Equal(t, []string{"k1"}, diff.NewKeys)
	})

	t.Run("should not close anything when closing old findings is disabled", func(t *testing.T) {
		k1 := findingWithKey("k1", dtos.VLMStatusActive)

		diff := DiffRecurringScan([]string{"k2"}, []models.Finding{k1}, nil, dtos.ReimportPolicy{})

		assert.Empty(t, diff.ToClose)
		assert.Empty(t, diff.Unchanged)
		assert.Equal(t, []string{"k2"}, diff.NewKeys)
	})

	t.Run("should be deterministic and sort new keys", func(t *testing.T) {
		active := []models.Finding{findingWithKey("a", dtos.VLMStatusActive)}
		keys := []string{"zeta", "alpha", "mu", "alpha", ""}

		first := DiffRecurringScan(keys, active, nil, closeAndReactivate)
		second := DiffRecurringScan(keys, active, nil, closeAndReactivate)

		assert.Equal(t, []string{"alpha", "mu", "zeta"}, first.NewKeys)
		assert.Equal(t, first, second)
	})

	t.Run("should not mutate the inputs", func(t *testing.T) {
		active := []models.Finding{findingWithKey("k1", dtos.VLMStatusActive)}
		mitigated := []models.Finding{findingWithKey("k2", dtos.VLMStatusInactiveMitigated)}

		DiffRecurringScan([]string{"k2"}, active, mitigated, closeAndReactivate)

		assert.Equal(t, dtos.VLMStatusActive, active[0].StatusVLM)
		assert.Equal(t, dtos.VLMStatusInactiveMitigated, mitigated[0].StatusVLM)
	})
}
