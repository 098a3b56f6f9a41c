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

package transformer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

var cweTagPattern = regexp.MustCompile(`(?i)cwe-0*(\d+)`)

// SeverityFromSARIFLevel maps a SARIF result level to the canonical scale.
// Results without a level default to "warning" as the SARIF standard prescribes.
func SeverityFromSARIFLevel(level string) dtos.Severity {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return dtos.SeverityHigh
	case "note":
		return dtos.SeverityLow
	case "none":
		return dtos.SeverityInfo
	default:
		return dtos.SeverityMedium
	}
}

func ruleIndex(run *sarif.Run) map[string]*sarif.ReportingDescriptor {
	rules := map[string]*sarif.ReportingDescriptor{}
	if run.Tool.Driver == nil {
		return rules
	}
	for _, rule := range run.Tool.Driver.Rules {
		if rule != nil {
			rules[rule.ID] = rule
		}
	}
	return rules
}

func toolName(run *sarif.Run) string {
	if run.Tool.Driver == nil || run.Tool.Driver.Name == "" {
		return "sarif"
	}
	return strings.ToLower(run.Tool.Driver.Name)
}

func ruleTitle(rule *sarif.ReportingDescriptor, fallback string) string {
	if rule != nil && rule.ShortDescription != nil && rule.ShortDescription.Text != nil && *rule.ShortDescription.Text != "" {
		return *rule.ShortDescription.Text
	}
	if rule != nil && rule.Name != nil && *rule.Name != "" {
		return *rule.Name
	}
	return fallback
}

func ruleCWE(rule *sarif.ReportingDescriptor) *string {
	if rule == nil || rule.Properties == nil {
		return nil
	}
	tags, ok := rule.Properties["tags"].([]any)
	if !ok {
		return nil
	}
	for _, tag := range tags {
		s, ok := tag.(string)
		if !ok {
			continue
		}
		if m := cweTagPattern.FindStringSubmatch(s); m != nil {
			cwe := "CWE-" + m[1]
			return &cwe
		}
	}
	return nil
}

// security-severity is the numeric score code scanning tools attach to rules.
func ruleScore(rule *sarif.ReportingDescriptor) *float64 {
	if rule == nil || rule.Properties == nil {
		return nil
	}
	raw, ok := rule.Properties["security-severity"]
	if !ok {
		return nil
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(raw)), 64)
	if err != nil || score < 0 || score > 10 {
		return nil
	}
	return &score
}

func resultLocation(result *sarif.Result) string {
	for _, loc := range result.Locations {
		if loc == nil || loc.PhysicalLocation == nil || loc.PhysicalLocation.ArtifactLocation == nil || loc.PhysicalLocation.ArtifactLocation.URI == nil {
			continue
		}
		uri := *loc.PhysicalLocation.ArtifactLocation.URI
		region := loc.PhysicalLocation.Region
		if region == nil || region.StartLine == nil {
			return uri
		}
		if region.EndLine != nil && *region.EndLine != *region.StartLine {
			return fmt.Sprintf("%s:%d-%d", uri, *region.StartLine, *region.EndLine)
		}
		return fmt.Sprintf("%s:%d", uri, *region.StartLine)
	}
	return ""
}

// the first partial fingerprint in key order, so the id is stable across reruns
func resultFingerprint(result *sarif.Result) string {
	for _, prints := range []map[string]any{result.PartialFingerprints, result.Fingerprints} {
		keys := make([]string, 0, len(prints))
		for k := range prints {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v := fmt.Sprint(prints[k]); v != "" {
				return v
			}
		}
	}
	return ""
}

// SARIFReportToIngestRequests converts every result of every run into an ingest request.
// The rule id becomes the vulnerability type and the tool driver name the source tool.
func SARIFReportToIngestRequests(data []byte, assetID uuid.UUID) ([]dtos.FindingIngestRequest, error) {
	var report sarif.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("could not parse sarif report: %w", err)
	}

	var reqs []dtos.FindingIngestRequest
	for _, run := range report.Runs {
		if run == nil {
			continue
		}
		rules := ruleIndex(run)
		tool := toolName(run)
		for _, result := range run.Results {
			if result == nil {
				continue
			}
			ruleID := ""
			if result.RuleID != nil {
				ruleID = *result.RuleID
			}
			rule := rules[ruleID]

			level := ""
			if result.Level != nil {
				level = *result.Level
			} else if rule != nil && rule.DefaultConfiguration != nil {
				level = rule.DefaultConfiguration.Level
			}

			description := ""
			if result.Message.Text != nil {
				description = *result.Message.Text
			}

			title := ruleTitle(rule, ruleID)
			if title == "" {
				title = description
			}

			reqs = append(reqs, dtos.FindingIngestRequest{
				AssetID:           assetID,
				Title:             title,
				Description:       description,
				Severity:          string(SeverityFromSARIFLevel(level)),
				SourceTool:        tool,
				SourceToolID:      resultFingerprint(result),
				VulnerabilityType: ruleID,
				URL:               resultLocation(result),
				LocationType:      dtos.LocationTypeCode,
				CWE:               ruleCWE(rule),
				CVSSScore:         ruleScore(rule),
			})
		}
	}
	return reqs, nil
}
