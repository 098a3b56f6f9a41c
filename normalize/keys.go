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
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/dtos"
)

// normalizeKeyPart lower-cases, trims and collapses all whitespace (newlines included)
// into single spaces.
func normalizeKeyPart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func hashParts(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = normalizeKeyPart(p)
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(sum[:])
}

// CorrelationKey is the location based identity of a finding.
func CorrelationKey(vulnType, location, parameter string) string {
	return hashParts(vulnType, location, parameter)
}

// CrossToolHash is the content based identity of a finding, independent of the
// location formatting of a single tool.
func CrossToolHash(title string, severity dtos.Severity, assetID string) string {
	return hashParts(title, string(severity), assetID)
}

// FindingKeys computes both keys for an ingest request. The vulnerability type
// falls back to the title when a tool does not report one.
func FindingKeys(req dtos.FindingIngestRequest, severity dtos.Severity) (correlationKey string, crossToolHash string) {
	vulnType := req.VulnerabilityType
	if strings.TrimSpace(vulnType) == "" {
		vulnType = req.Title
	}
	return CorrelationKey(vulnType, req.URL, req.Parameter), CrossToolHash(req.Title, severity, req.AssetID.String())
}
