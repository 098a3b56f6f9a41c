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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyToNewFinding(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	newFinding := func() *models.Finding {
		return &models.Finding{
			Model:            models.Model{ID: uuid.New()},
			TenantID:         tenantID,
			SeverityOriginal: dtos.SeverityLow,
			SeverityAdjusted: dtos.SeverityLow,
			SourceTool:       "zap",
			CWE:              utils.Ptr("CWE-79"),
			StatusVLM:        dtos.VLMStatusActive,
		}
	}

	setup := func(t *testing.T, rules []models.GovernanceRule) (*governanceRuleService, *mocks.FindingRepository, *mocks.FindingEventRepository) {
		ruleRepository := mocks.NewGovernanceRuleRepository(t)
		findingRepository := mocks.NewFindingRepository(t)
		findingEventRepository := mocks.NewFindingEventRepository(t)
		ruleRepository.On("ListEnabledByTenant", mock.Anything, tenantID).Return(rules, nil)

		s := NewGovernanceRuleService(ruleRepository, findingRepository, findingEventRepository)
		s.now = func() time.Time { return now }
		return s, findingRepository, findingEventRepository
	}

	t.Run("should apply the first matching rule only", func(t *testing.T) {
		rules := []models.GovernanceRule{
			{Model: models.Model{ID: uuid.New()}, Name: "only burp", SourceTools: []string{"burp"}, Action: dtos.RuleActionEscalate},
			{Model: models.Model{ID: uuid.New()}, Name: "low xss", Severities: []string{"LOW"}, CWEList: []string{"cwe-79"}, Action: dtos.RuleActionSuppress},
			{Model: models.Model{ID: uuid.New()}, Name: "everything", Action: dtos.RuleActionEscalate},
		}
		s, findingRepository, findingEventRepository := setup(t, rules)
		findingRepository.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		var event models.FindingEvent
		findingEventRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			event = *args.Get(1).(*models.FindingEvent)
		}).Return(nil).Once()

		f := newFinding()
		applied, err := s.ApplyToNewFinding(context.Background(), nil, f)
		require.NoError(t, err)
		require.NotNil(t, applied)
		assert.Equal(t, "low xss", applied.Name)

		assert.Equal(t, dtos.VLMStatusInactiveOutOfScope, f.StatusVLM)
		assert.Equal(t, `applied by governance rule "low xss"`, *f.Justification)
		assert.Equal(t, models.EventTypeRuleApplied, event.Type)
		assert.Equal(t, rules[1].ID.String(), event.GetArbitraryJSONData()["ruleId"])
		assert.Equal(t, "SUPPRESS", event.GetArbitraryJSONData()["action"])
	})

	t.Run("should accept the risk until the rule expiration", func(t *testing.T) {
		rules := []models.GovernanceRule{{Name: "accept", Action: dtos.RuleActionAutoAccept, AutoJustify: "vendor fix pending", ExpirationDays: 30}}
		s, findingRepository, findingEventRepository := setup(t, rules)
		findingRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		findingEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		f := newFinding()
		_, err := s.ApplyToNewFinding(context.Background(), nil, f)
		require.NoError(t, err)

		assert.Equal(t, dtos.VLMStatusInactiveRiskAccepted, f.StatusVLM)
		assert.True(t, f.RiskAccepted)
		assert.Equal(t, "vendor fix pending", *f.Justification)
		assert.Equal(t, now.AddDate(0, 0, 30), *f.ExpirationDate)
	})

	t.Run("should escalate to critical and verified", func(t *testing.T) {
		rules := []models.GovernanceRule{{Name: "escalate", Action: dtos.RuleActionEscalate}}
		s, findingRepository, findingEventRepository := setup(t, rules)
		findingRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		findingEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		f := newFinding()
		_, err := s.ApplyToNewFinding(context.Background(), nil, f)
		require.NoError(t, err)

		assert.Equal(t, dtos.SeverityCritical, f.SeverityAdjusted)
		assert.Equal(t, dtos.SeverityLow, f.SeverityOriginal)
		assert.Equal(t, dtos.VLMStatusActiveVerified, f.StatusVLM)
		assert.Nil(t, f.Justification)
	})

	t.Run("should leave the finding alone when no rule matches", func(t *testing.T) {
		s, _, _ := setup(t, []models.GovernanceRule{{Name: "critical only", Severities: []string{"CRITICAL"}, Action: dtos.RuleActionSuppress}})

		f := newFinding()
		applied, err := s.ApplyToNewFinding(context.Background(), nil, f)
		require.NoError(t, err)
		assert.Nil(t, applied)
		assert.Equal(t, dtos.VLMStatusActive, f.StatusVLM)
	})
}

func TestCreateGovernanceRule(t *testing.T) {
	tenantID := uuid.New()

	t.Run("should normalize severities and apply the defaults", func(t *testing.T) {
		ruleRepository := mocks.NewGovernanceRuleRepository(t)
		ruleRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		s := NewGovernanceRuleService(ruleRepository, mocks.NewFindingRepository(t), mocks.NewFindingEventRepository(t))

		rule, err := s.Create(context.Background(), tenantID, dtos.GovernanceRuleCreateRequest{
			Name:       "suppress info",
			Severities: []dtos.Severity{" info "},
			Action:     dtos.RuleActionSuppress,
		})
		require.NoError(t, err)
		assert.True(t, rule.Enabled)
		assert.Equal(t, dtos.DefaultExceptionExpirationDays, rule.ExpirationDays)
		assert.Equal(t, []string{"INFO"}, []string(rule.Severities))
		assert.Equal(t, tenantID, rule.TenantID)
	})

	t.Run("should reject an unknown severity", func(t *testing.T) {
		s := NewGovernanceRuleService(mocks.NewGovernanceRuleRepository(t), mocks.NewFindingRepository(t), mocks.NewFindingEventRepository(t))
		_, err := s.Create(context.Background(), tenantID, dtos.GovernanceRuleCreateRequest{
			Name:       "broken",
			Severities: []dtos.Severity{"urgent"},
			Action:     dtos.RuleActionSuppress,
		})
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		s := NewGovernanceRuleService(mocks.NewGovernanceRuleRepository(t), mocks.NewFindingRepository(t), mocks.NewFindingEventRepository(t))
		_, err := s.Create(context.Background(), tenantID, dtos.GovernanceRuleCreateRequest{Name: "broken", Action: "DELETE"})
		assert.True(t, shared.IsValidationError(err))
	})
}
