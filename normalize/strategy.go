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
	"fmt"
	"os"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/dtos"
	"gopkg.in/yaml.v3"
)

var defaultToolStrategies = map[string]dtos.DeduplicationStrategy{
	// platforms emitting stable internal ids
	"wazuh":      dtos.StrategySourceToolID,
	"defectdojo": dtos.StrategySourceToolID,
	"nessus":     dtos.StrategySourceToolID,
	"qualys":     dtos.StrategySourceToolID,
	"tenable":    dtos.StrategySourceToolID,
	// dast tools, the same bug recurs on a fixed url and parameter
	"zap":       dtos.StrategyCorrelationKey,
	"owasp-zap": dtos.StrategyCorrelationKey,
	"burp":      dtos.StrategyCorrelationKey,
	"arachni":   dtos.StrategyCorrelationKey,
	"nuclei":    dtos.StrategyCorrelationKey,

	"pentest-tools": dtos.StrategyCrossToolHash,
	"generic":       dtos.StrategyCrossToolHash,
	"manual":        dtos.StrategyCrossToolHash,
	"sarif":         dtos.StrategyCrossToolHash,
}

// SelectStrategy returns the built in strategy for a tool. Unknown tools get HYBRID.
func SelectStrategy(tool string) dtos.DeduplicationStrategy {
	if s, ok := defaultToolStrategies[normalizeToolName(tool)]; ok {
		return s
	}
	return dtos.StrategyHybrid
}

func normalizeToolName(tool string) string {
	return strings.ToLower(strings.TrimSpace(tool))
}

// StrategySelector resolves the strategy for a tool, consulting deployment overrides first.
type StrategySelector struct {
	overrides map[string]dtos.DeduplicationStrategy
}

func NewStrategySelector(overrides map[string]dtos.DeduplicationStrategy) *StrategySelector {
	normalized := make(map[string]dtos.DeduplicationStrategy, len(overrides))
	for tool, s := range overrides {
		normalized[normalizeToolName(tool)] = s
	}
	return &StrategySelector{overrides: normalized}
}

func (s *StrategySelector) Select(tool string) dtos.DeduplicationStrategy {
	if s != nil {
		if strategy, ok := s.overrides[normalizeToolName(tool)]; ok {
			return strategy
		}
	}
	return SelectStrategy(tool)
}

type strategyFile struct {
	Tools map[string]dtos.DeduplicationStrategy `yaml:"tools"`
}

// ParseStrategyOverrides reads a yaml document of the form
//
//	tools:
//	  my-scanner: CORRELATION_KEY
func ParseStrategyOverrides(data []byte) (map[string]dtos.DeduplicationStrategy, error) {
	var f strategyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse strategy overrides: %w", err)
	}
	for tool, s := range f.Tools {
		if !s.IsValid() {
			return nil, fmt.Errorf("invalid deduplication strategy %q for tool %q", s, tool)
		}
	}
	return f.Tools, nil
}

// NewStrategySelectorFromEnv loads overrides from the file named by VLM_STRATEGY_FILE, if any.
func NewStrategySelectorFromEnv() (*StrategySelector, error) {
	path := os.Getenv("VLM_STRATEGY_FILE")
	if path == "" {
		return NewStrategySelector(nil), nil
	}
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("could not read strategy file: %w", err)
	}
	overrides, err := ParseStrategyOverrides(data)
	if err != nil {
		return nil, err
	}
	return NewStrategySelector(overrides), nil
}
