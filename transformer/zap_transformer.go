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
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/normalize"
)

const ZAPSourceTool = "zap"

type zapInstance struct {
	URI      string `json:"uri"`
	Method   string `json:"method"`
	Param    string `json:"param"`
	Attack   string `json:"attack"`
	Evidence string `json:"evidence"`
}

type zapAlert struct {
	PluginID   string        `json:"pluginid"`
	Alert      string        `json:"alert"`
	Name       string        `json:"name"`
	RiskCode   string        `json:"riskcode"`
	Confidence string        `json:"confidence"`
	Desc       string        `json:"desc"`
	Solution   string        `json:"solution"`
	Reference  string        `json:"reference"`
	CWEID      string        `json:"cweid"`
	URL        string        `json:"url"`
	Param      string        `json:"param"`
	Attack     string        `json:"attack"`
	Evidence   string        `json:"evidence"`
	Instances  []zapInstance `json:"instances"`
}

type zapReport struct {
	Site []struct {
		Name   string     `json:"@name"`
		Alerts []zapAlert `json:"alerts"`
	} `json:"site"`
	Alerts []zapAlert `json:"alerts"`
}

func (a zapAlert) title() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Alert
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func (a zapAlert) description(attack, evidence string) string {
	desc := a.Desc
	if desc == "" {
		desc = a.Alert
	}
	return strings.TrimSpace(fmt.Sprintf("%s\n\n**Attack:** %s\n**Evidence:** %s\n\n**Solution:** %s\n\n**References:** %s",
		desc, orNA(attack), orNA(evidence), orNA(a.Solution), orNA(a.Reference)))
}

func (a zapAlert) cwe() *string {
	id := strings.TrimSpace(a.CWEID)
	if id == "" || id == "0" || id == "-1" {
		return nil
	}
	cwe := "CWE-" + id
	return &cwe
}

func (a zapAlert) toRequest(assetID uuid.UUID, url, param, attack, evidence string) dtos.FindingIngestRequest {
	riskCode := a.RiskCode
	if riskCode == "" {
		riskCode = "2"
	}
	return dtos.FindingIngestRequest{
		AssetID:           assetID,
		Title:             a.title(),
		Description:       a.description(attack, evidence),
		Severity:          string(normalize.SeverityFromZAPRisk(riskCode)),
		SourceTool:        ZAPSourceTool,
		SourceToolID:      a.PluginID,
		VulnerabilityType: a.title(),
		URL:               url,
		Parameter:         param,
		LocationType:      dtos.LocationTypeWeb,
		CWE:               a.cwe(),
	}
}

// ZAPReportToIngestRequests converts a ZAP JSON report into ingest requests. The report may
// be a full report with sites, a bare alert list or a single alert. Every alert instance
// becomes its own finding.
func ZAPReportToIngestRequests(data []byte, assetID uuid.UUID) ([]dtos.FindingIngestRequest, error) {
	var report zapReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("could not parse zap report: %w", err)
	}

	var alerts []zapAlert
	switch {
	case len(report.Site) > 0:
		for _, site := range report.Site {
			alerts = append(alerts, site.Alerts...)
		}
	case len(report.Alerts) > 0:
		alerts = report.Alerts
	default:
		var single zapAlert
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("could not parse zap alert: %w", err)
		}
		if single.title() == "" {
			return nil, fmt.Errorf("zap report contains no alerts")
		}
		alerts = []zapAlert{single}
	}

	reqs := make([]dtos.FindingIngestRequest, 0, len(alerts))
	for _, alert := range alerts {
		if alert.title() == "" {
			continue
		}
		if len(alert.Instances) == 0 {
			reqs = append(reqs, alert.toRequest(assetID, alert.URL, alert.Param, alert.Attack, alert.Evidence))
			continue
		}
		for _, instance := range alert.Instances {
			reqs = append(reqs, alert.toRequest(assetID, instance.URI, instance.Param, instance.Attack, instance.Evidence))
		}
	}
	return reqs, nil
}
