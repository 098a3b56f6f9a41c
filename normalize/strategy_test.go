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
	"github.com/stretchr/testify/assert"
)

func TestSelectStrategy(t *testing.T) {
	t.Run("should use source tool ids for platforms with stable ids", func(t *testing.T) {
		for _, tool := range []string{"wazuh", "DefectDojo", "nessus"} {
			assert.Equal(t, dtos.StrategySourceToolID, SelectStrategy(tool), tool)
		}
	})

	t.Run("should use the correlation key for dast tools", func(t *testing.T) {
		for _, tool := range []string{"zap", "owasp-zap", "burp", "arachni"} {
			assert.Equal(t, dtos.StrategyCorrelationKey, SelectStrategy(tool), tool)
		}
	})

	t.Run("should use the cross tool hash for generic tools", func(t *testing.T) {
		for _, tool := range []string{"pentest-tools", "generic", "manual"} {
			assert.Equal(t, dtos.StrategyCrossToolHash, SelectStrategy(tool), tool)
		}
	})

	t.Run("should use hybrid for unknown tools", func(t *testing.T) {
		assert.Equal(t, dtos.StrategyHybrid, SelectStrategy("my-inhouse-scanner"))
		assert.Equal(t, dtos.StrategyHybrid, SelectStrategy(""))
	})
}

func TestStrategySelector(t *testing.T) {
	t.Run("should prefer overrides", func(t *testing.T) {
		selector := NewStrategySelector(map[string]dtos.DeduplicationStrategy{"ZAP": dtos.StrategyCrossToolHash})
		assert.Equal(t, dtos.StrategyCrossToolHash, selector.Select("zap"))
		assert.Equal(t, dtos.StrategySourceToolID, selector.Select("wazuh"))
	})

	t.Run("should work on a nil selector", func(t *testing.T) {
		var selector *StrategySelector
		assert.Equal(t, dtos.StrategyHybrid, selector.Select("unknown"))
	})

	t.Run("should parse a yaml override file", func(t *testing.T) {
		overrides, err := ParseStrategyOverrides([]byte("tools:\n  inhouse: CORRELATION_KEY\n"))
		assert.NoError(t, err)
		assert.Equal(t, dtos.StrategyCorrelationKey, overrides["inhouse"])
	})

	t.Run("should reject unknown strategies", func(t *testing.T) {
		_, err := ParseStrategyOverrides([]byte("tools:\n  inhouse: FUZZY\n"))
		assert.Error(t, err)
	})
}

func TestExtractSourceToolID(t *testing.T) {
	t.Run("should prefer the tool specific field", func(t *testing.T) {
		assert.Equal(t, "a-1", ExtractSourceToolID("wazuh", map[string]any{"alert_id": "a-1", "id": "x"}))
		assert.Equal(t, "42", ExtractSourceToolID("defectdojo", map[string]any{"finding_id": float64(42), "id": "x"}))
		assert.Equal(t, "10107", ExtractSourceToolID("nessus", map[string]any{"plugin_id": "10107"}))
	})

	t.Run("should fall back to id", func(t *testing.T) {
		assert.Equal(t, "x", ExtractSourceToolID("wazuh", map[string]any{"id": "x"}))
		assert.Equal(t, "7", ExtractSourceToolID("unknown", map[string]any{"id": 7}))
	})

	t.Run("should match tool names case insensitively", func(t *testing.T) {
		assert.Equal(t, "a-1", ExtractSourceToolID("Wazuh", map[string]any{"id": "x", "alert_id": "a-1"}))
	})

	t.Run("should return empty when nothing usable is present", func(t *testing.T) {
		assert.Equal(t, "", ExtractSourceToolID("zap", map[string]any{"id": "  "}))
		assert.Equal(t, "", ExtractSourceToolID("zap", nil))
		assert.Equal(t, "", ExtractSourceToolID("zap", map[string]any{"id": nil}))
		assert.Equal(t, "", ExtractSourceToolID("zap", map[string]any{"name": "x"}))
	})
}
