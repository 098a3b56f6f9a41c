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
	"strings"

	"github.com/l3montree-dev/devguard-vlm/dtos"
)

// DefaultSeverity is assigned to every severity token no tool vocabulary below recognizes.
// Ingestion must never fail because of an unknown vocabulary.
const DefaultSeverity = dtos.SeverityMedium

// NormalizeSeverity maps a tool specific severity token to the canonical scale.
func NormalizeSeverity(raw string) dtos.Severity {
	sev, ok := LookupSeverity(raw)
	if !ok {
		return DefaultSeverity
	}
	return sev
}

// LookupSeverity reports whether the token belongs to a known vocabulary.
func LookupSeverity(raw string) (dtos.Severity, bool) {
	token := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	switch token {
	case "critical", "very high", "5", "p1":
		return dtos.SeverityCritical, true
	case "high", "4", "p2":
		return dtos.SeverityHigh, true
	case "medium", "moderate", "3", "p3":
		return dtos.SeverityMedium, true
	case "low", "2", "p4":
		return dtos.SeverityLow, true
	case "info", "informational", "none", "1", "p5":
		return dtos.SeverityInfo, true
	default:
		return "", false
	}
}

// SeverityFromZAPRisk maps a ZAP riskcode (0-3) to the canonical scale.
func SeverityFromZAPRisk(riskcode string) dtos.Severity {
	switch strings.TrimSpace(riskcode) {
	case "3":
		return dtos.SeverityHigh
	case "2":
		return dtos.SeverityMedium
	case "1":
		return dtos.SeverityLow
	case "0":
		return dtos.SeverityInfo
	default:
		return DefaultSeverity
	}
}

// SeverityFromCVSS maps a CVSS base score to the canonical scale.
func SeverityFromCVSS(score float64) dtos.Severity {
	switch {
	case score >= 9.0:
		return dtos.SeverityCritical
	case score >= 7.0:
		return dtos.SeverityHigh
	case score >= 4.0:
		return dtos.SeverityMedium
	case score > 0:
		return dtos.SeverityLow
	default:
		return dtos.SeverityInfo
	}
}

// EffectiveSeverity returns the analyst override when present.
func EffectiveSeverity(adjusted dtos.Severity, manual *dtos.Severity) dtos.Severity {
	if manual != nil && manual.IsValid() {
		return *manual
	}
	return adjusted
}
