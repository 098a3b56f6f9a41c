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
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func FindingModelToDTO(f models.Finding) dtos.FindingDTO {
	return dtos.FindingDTO{
		ID:                   f.ID,
		TenantID:             f.TenantID,
		AssetID:              f.AssetID,
		RawTitle:             f.RawTitle,
		Title:                f.Title,
		TitleUserEdited:      f.TitleUserEdited,
		DisplayTitle:         f.DisplayTitle(),
		Description:          f.Description,
		SeverityOriginal:     f.SeverityOriginal,
		SeverityAdjusted:     f.SeverityAdjusted,
		SeverityManual:       f.SeverityManual,
		EffectiveSeverity:    f.EffectiveSeverity(),
		CVE:                  f.CVE,
		CVSSScore:            f.CVSSScore,
		CVSSVector:           f.CVSSVector,
		CWE:                  f.CWE,
		VulnerabilityType:    f.VulnerabilityType,
		URL:                  f.URL,
		Parameter:            f.Parameter,
		LocationType:         f.LocationType,
		CorrelationKey:       f.CorrelationKey,
		DeduplicationHash:    f.DeduplicationHash,
		SourceTool:           f.SourceTool,
		SourceToolID:         f.SourceToolID,
		Status:               f.Status,
		StatusVLM:            f.StatusVLM,
		FirstSeenTimestamp:   f.FirstSeenTimestamp,
		LastSeenTimestamp:    f.LastSeenTimestamp,
		LastStatusChangeDate: f.LastStatusChangeDate,
		MitigatedDate:        f.MitigatedDate,
		IsDuplicate:          f.IsDuplicate,
		OriginalFindingID:    f.OriginalFindingID,
		IsVerified:           f.IsVerified,
		IsFalsePositive:      f.IsFalsePositive,
		RiskAccepted:         f.RiskAccepted,
		Justification:        f.Justification,
		Tags:                 orEmpty(f.Tags),
		ControlMapping:       orEmpty(f.ControlMapping),
		ExpirationDate:       f.ExpirationDate,
		GroupID:              f.GroupID,
		TestRunID:            f.TestRunID,
		SLADaysOverdue:       f.SLADaysOverdue,
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}
}

func FindingModelsToDTOs(findings []models.Finding) []dtos.FindingDTO {
	return utils.Map(findings, FindingModelToDTO)
}

func FindingEventModelToDTO(event models.FindingEvent) dtos.FindingEventDTO {
	return dtos.FindingEventDTO{
		ID:            event.ID,
		FindingID:     event.FindingID,
		Type:          string(event.Type),
		Actor:         event.Actor,
		StatusBefore:  event.StatusBefore,
		StatusAfter:   event.StatusAfter,
		Justification: event.Justification,
		ChangedFields: orEmpty(event.ChangedFields),
		Data:          event.GetArbitraryJSONData(),
		CreatedAt:     event.CreatedAt,
	}
}

func FindingGroupModelToDTO(group models.FindingGroup) dtos.FindingGroupDTO {
	dto := dtos.FindingGroupDTO{
		ID:            group.ID,
		TenantID:      group.TenantID,
		AssetID:       group.AssetID,
		TestRunID:     group.TestRunID,
		Name:          group.Name,
		Description:   group.Description,
		FindingCount:  group.FindingCount,
		CriticalCount: group.CriticalCount,
		HighCount:     group.HighCount,
		MediumCount:   group.MediumCount,
		LowCount:      group.LowCount,
		InfoCount:     group.InfoCount,
		CreatedBy:     group.CreatedBy,
		CreatedAt:     group.CreatedAt,
	}
	if len(group.Findings) > 0 {
		dto.Findings = FindingModelsToDTOs(group.Findings)
	}
	return dto
}

func GovernanceRuleModelToDTO(rule models.GovernanceRule) dtos.GovernanceRuleDTO {
	return dtos.GovernanceRuleDTO{
		ID:             rule.ID,
		TenantID:       rule.TenantID,
		Name:           rule.Name,
		Enabled:        rule.Enabled,
		Priority:       rule.Priority,
		Severities:     orEmpty(rule.Severities),
		CWEList:        orEmpty(rule.CWEList),
		SourceTools:    orEmpty(rule.SourceTools),
		Action:         rule.Action,
		AutoJustify:    rule.AutoJustify,
		ExpirationDays: rule.ExpirationDays,
		CreatedAt:      rule.CreatedAt,
	}
}

func AssetConfigModelToDTO(config models.AssetConfig) dtos.AssetConfigDTO {
	sla := make(map[dtos.Severity]int, len(dtos.SeverityOrder))
	for _, severity := range dtos.SeverityOrder {
		sla[severity] = config.SLADays(severity)
	}
	return dtos.AssetConfigDTO{
		AssetID:                 config.AssetID,
		TenantID:                config.TenantID,
		Name:                    config.Name,
		EnableDeduplication:     config.EnableDeduplication,
		DeduplicationScope:      config.DeduplicationScope,
		DeleteDuplicateFindings: config.DeleteDuplicateFindings,
		MaxDuplicates:           config.MaxDuplicates,
		ReimportEnabled:         config.ReimportEnabled,
		CloseOldFindings:        config.CloseOldFindings,
		DoNotReactivate:         config.DoNotReactivate,
		SLAConfig:               sla,
	}
}
