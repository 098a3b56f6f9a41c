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

package normalize

import (
	"testing"

	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeverity(t *testing.T) {
	cases := map[string]dtos.Severity{
		"critical":      dtos.SeverityCritical,
		"CRITICAL":      dtos.SeverityCritical,
		"Very High":     dtos.SeverityCritical,
		" very   high ": dtos.SeverityCritical,
		"5":             dtos.SeverityCritical,
		"P1":            dtos.SeverityCritical,
		"high":          dtos.SeverityHigh,
		"4":             dtos.SeverityHigh,
		"p2":            dtos.SeverityHigh,
		"Moderate":      dtos.SeverityMedium,
		"medium":        dtos.SeverityMedium,
		"p3":            dtos.SeverityMedium,
		"low":           dtos.SeverityLow,
		"2":             dtos.SeverityLow,
		"p4":            dtos.SeverityLow,
		"informational": dtos.SeverityInfo,
		"Info":          dtos.SeverityInfo,
		"1":             dtos.SeverityInfo,
		"p5":            dtos.SeverityInfo,
	}

	for input, expected := range cases {
		t.Run("should map "+input, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeSeverity(input))
		})
	}

	t.Run("should fall back to the default severity for unknown vocabularies", func(t *testing.T) {
		for _, input := range []string{"", "urgent", "9", "p0", "sev-1"} {
			assert.Equal(t, DefaultSeverity, NormalizeSeverity(input), input)
		}
		assert.Equal(t, dtos.SeverityMedium, DefaultSeverity)
	})

	t.Run("should report unknown tokens through LookupSeverity", func(t *testing.T) {
		_, ok := LookupSeverity("urgent")
		assert.False(t, ok)
	})
}

func TestSeverityFromZAPRisk(t *testing.T) {
	t.Run("should map all zap risk codes", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityHigh, SeverityFromZAPRisk("3"))
		assert.Equal(t, dtos.SeverityMedium, SeverityFromZAPRisk("2"))
		assert.Equal(t, dtos.SeverityLow, SeverityFromZAPRisk("1"))
		assert.Equal(t, dtos.SeverityInfo, SeverityFromZAPRisk("0"))
		assert.Equal(t, DefaultSeverity, SeverityFromZAPRisk("x"))
	})
}

func TestEffectiveSeverity(t *testing.T) {
	t.Run("should prefer the manual override", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityLow, EffectiveSeverity(dtos.SeverityHigh, utils.Ptr(dtos.SeverityLow)))
	})
	t.Run("should ignore an invalid override", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityHigh, EffectiveSeverity(dtos.SeverityHigh, utils.Ptr(dtos.Severity("bogus"))))
		assert.Equal(t, dtos.SeverityHigh, EffectiveSeverity(dtos.SeverityHigh, nil))
	})
}

func TestCVSSBaseScore(t *testing.T) {
	t.Run("should score a cvss 3.1 vector", func(t *testing.T) {
		score, err := CVSSBaseScore("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		assert.NoError(t, err)
		assert.Equal(t, 9.8, score)
	})
	t.Run("should score a cvss 2 vector", func(t *testing.T) {
		score, err := CVSSBaseScore("AV:N/AC:L/Au:N/C:P/I:P/A:P")
		assert.NoError(t, err)
		assert.Equal(t, 7.5, score)
	})
	t.Run("should return an error for garbage", func(t *testing.T) {
		_, err := CVSSBaseScore("not a vector")
		assert.Error(t, err)
		_, err = CVSSBaseScore("CVSS:3.1/nope")
		assert.Error(t, err)
	})
	t.Run("should map scores to severities", func(t *testing.T) {
		assert.Equal(t, dtos.SeverityCritical, SeverityFromCVSS(9.8))
		assert.Equal(t, dtos.SeverityHigh, SeverityFromCVSS(7.5))
		assert.Equal(t, dtos.SeverityMedium, SeverityFromCVSS(4))
		assert.Equal(t, dtos.SeverityLow, SeverityFromCVSS(0.1))
		assert.Equal(t, dtos.SeverityInfo, SeverityFromCVSS(0))
	})
}
