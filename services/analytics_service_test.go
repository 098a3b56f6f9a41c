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

package services

import (
	"testing"
	"time"

	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mitigatedAfter(severity dtos.Severity, d time.Duration) models.Finding {
	firstSeen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Finding{
		SeverityAdjusted:   severity,
		FirstSeenTimestamp: firstSeen,
		MitigatedDate:      utils.Ptr(firstSeen.Add(d)),
		StatusVLM:          dtos.VLMStatusInactiveMitigated,
	}
}

func TestCalculateMTTR(t *testing.T) {
	t.Run("should aggregate per severity in severity order", func(t *testing.T) {
		day := 24 * time.Hour
		findings := []models.Finding{
			mitigatedAfter(dtos.SeverityLow, 10*day),
			mitigatedAfter(dtos.SeverityCritical, 1*day),
			mitigatedAfter(dtos.SeverityCritical, 3*day),
			mitigatedAfter(dtos.SeverityCritical, 2*day+8*time.Hour),
		}

		res := calculateMTTR(findings)
		require.Len(t, res, 2)

		assert.Equal(t, dtos.SeverityCritical, res[0].Severity)
		assert.Equal(t, 3, res[0].Total)
		assert.Equal(t, 2.11, res[0].AvgDays)
		assert.Equal(t, 50.67, res[0].AvgHours)
		assert.Equal(t, 1.0, res[0].MinDays)
		assert.Equal(t, 3.0, res[0].MaxDays)

		assert.Equal(t, dtos.SeverityLow, res[1].Severity)
		assert.Equal(t, 10.0, res[1].AvgDays)
	})

	t.Run("should group by the manual severity when one is set", func(t *testing.T) {
		f := mitigatedAfter(dtos.SeverityLow, 24*time.Hour)
		f.SeverityManual = utils.Ptr(dtos.SeverityHigh)

		res := calculateMTTR([]models.Finding{f})
		require.Len(t, res, 1)
		assert.Equal(t, dtos.SeverityHigh, res[0].Severity)
	})

	t.Run("should ignore findings without mitigation date", func(t *testing.T) {
		f := mitigatedAfter(dtos.SeverityMedium, time.Hour)
		f.MitigatedDate = nil
		assert.Empty(t, calculateMTTR([]models.Finding{f}))
	})
}
