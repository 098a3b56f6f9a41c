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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/statemachine"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type governanceRuleService struct {
	ruleRepository         shared.GovernanceRuleRepository
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
	now                    func() time.Time
}

var _ shared.GovernanceRuleService = (*governanceRuleService)(nil)

func NewGovernanceRuleService(ruleRepository shared.GovernanceRuleRepository, findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository) *governanceRuleService {
	return &governanceRuleService{
		ruleRepository:         ruleRepository,
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
		now:                    time.Now,
	}
}

func (s *governanceRuleService) Create(ctx context.Context, tenantID uuid.UUID, req dtos.GovernanceRuleCreateRequest) (models.GovernanceRule, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.GovernanceRule{}, shared.NewValidationError("", err.Error())
	}
	severities := make([]string, 0, len(req.Severities))
	for _, severity := range req.Severities {
		normalized := dtos.Severity(strings.ToUpper(strings.TrimSpace(string(severity))))
		if !normalized.IsValid() {
			return models.GovernanceRule{}, shared.NewValidationError("severities", fmt.Sprintf("unknown severity %q", severity))
		}
		severities = append(severities, string(normalized))
	}

	rule := models.GovernanceRule{
		TenantID:       tenantID,
		Name:           req.Name,
		Enabled:        utils.OrDefault(req.Enabled, true),
		Priority:       req.Priority,
		Severities:     severities,
		CWEList:        req.CWEList,
		SourceTools:    req.SourceTools,
		Action:         req.Action,
		AutoJustify:    req.AutoJustify,
		ExpirationDays: utils.OrDefault(req.ExpirationDays, dtos.DefaultExceptionExpirationDays),
	}
	if err := s.ruleRepository.Create(nil, &rule); err != nil {
		return models.GovernanceRule{}, shared.WrapStoreError(err, "create governance rule", "governance rule", "")
	}
	return rule, nil
}

func (s *governanceRuleService) List(ctx context.Context, tenantID uuid.UUID) ([]models.GovernanceRule, error) {
	rules, err := s.ruleRepository.ListByTenant(nil, tenantID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list governance rules", "governance rule", "")
	}
	return rules, nil
}

func (s *governanceRuleService) Delete(ctx context.Context, tenantID, ruleID uuid.UUID) error {
	return shared.WrapStoreError(s.ruleRepository.DeleteInTenant(nil, tenantID, ruleID), "delete governance rule", "governance rule", ruleID.String())
}

func ruleJustification(rule models.GovernanceRule) string {
	if strings.TrimSpace(rule.AutoJustify) != "" {
		return rule.AutoJustify
	}
	return fmt.Sprintf("applied by governance rule %q", rule.Name)
}

// ApplyToNewFinding applies the first enabled rule that matches. Rules are ordered by priority.
func (s *governanceRuleService) ApplyToNewFinding(ctx context.Context, tx shared.DB, finding *models.Finding) (*models.GovernanceRule, error) {
	rules, err := s.ruleRepository.ListEnabledByTenant(tx, finding.TenantID)
	if err != nil {
		return nil, shared.WrapStoreError(err, "list governance rules", "governance rule", "")
	}

	for i := range rules {
		rule := rules[i]
		if !rule.Matches(*finding) {
			continue
		}
		if err := s.apply(tx, rule, finding); err != nil {
			return nil, err
		}
		return &rule, nil
	}
	return nil, nil
}

func (s *governanceRuleService) apply(tx shared.DB, rule models.GovernanceRule, finding *models.Finding) error {
	now := s.now()
	before := finding.StatusVLM
	changedFields := []string{}

	var target dtos.VLMStatus
	switch rule.Action {
	case dtos.RuleActionSuppress:
		target = dtos.VLMStatusInactiveOutOfScope
	case dtos.RuleActionAutoAccept:
		target = dtos.VLMStatusInactiveRiskAccepted
		days := rule.ExpirationDays
		if days <= 0 {
			days = dtos.DefaultExceptionExpirationDays
		}
		finding.ExpirationDate = utils.Ptr(now.AddDate(0, 0, days))
		changedFields = append(changedFields, "expirationDate")
	case dtos.RuleActionEscalate:
		target = dtos.VLMStatusActiveVerified
		if finding.SeverityAdjusted != dtos.SeverityCritical {
			finding.SeverityAdjusted = dtos.SeverityCritical
			changedFields = append(changedFields, "severityAdjusted")
		}
	default:
		return shared.NewValidationError("action", fmt.Sprintf("unknown rule action %q", rule.Action))
	}

	if err := statemachine.ValidateTransition(before, target); err != nil {
		return err
	}
	if statemachine.RequiresJustification(target) && !finding.HasJustification() {
		finding.Justification = utils.Ptr(ruleJustification(rule))
		changedFields = append(changedFields, "justification")
	}
	if statemachine.ApplyStatusChange(finding, target, now) {
		changedFields = append(changedFields, "statusVlm")
	}

	if err := s.findingRepository.Save(tx, finding); err != nil {
		return shared.WrapStoreError(err, "save finding", "finding", finding.ID.String())
	}

	event := models.NewFindingEvent(*finding, models.EventTypeRuleApplied, models.SystemActor, before, changedFields)
	event.SetArbitraryJSONData(map[string]any{
		"ruleId":   rule.ID.String(),
		"ruleName": rule.Name,
		"action":   string(rule.Action),
	})
	if err := s.findingEventRepository.Create(tx, &event); err != nil {
		return shared.WrapStoreError(err, "create finding event", "finding event", "")
	}
	return nil
}
