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

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scanRequest(assetID uuid.UUID, title string) dtos.FindingIngestRequest {
	return dtos.FindingIngestRequest{AssetID: assetID, Title: title, SourceTool: "zap", URL: "https://example.com/" + title}
}

func storedFinding(assetID uuid.UUID, title string, status dtos.VLMStatus) models.Finding {
	return models.Finding{
		Model:          models.Model{ID: uuid.New()},
		AssetID:        assetID,
		SourceTool:     "zap",
		Title:          title,
		StatusVLM:      status,
		CorrelationKey: correlationKeyOf(scanRequest(assetID, title)),
	}
}

func TestReconcile(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()

	setup := func(t *testing.T, config models.AssetConfig, active, mitigated []models.Finding) (*reimportService, *mocks.FindingRepository, *mocks.FindingEventRepository) {
		findingRepository := mocks.NewFindingRepository(t)
		findingEventRepository := mocks.NewFindingEventRepository(t)
		assetConfigService := mocks.NewAssetConfigService(t)

		assetConfigService.On("Get", mock.Anything, tenantID, assetID).Return(config, nil)
		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)
		findingRepository.On("ListByStatusForAssetAndTool", mock.Anything, tenantID, assetID, "zap", dtos.OpenVLMStatuses).Return(active, nil)
		findingRepository.On("ListByStatusForAssetAndTool", mock.Anything, tenantID, assetID, "zap", []dtos.VLMStatus{dtos.VLMStatusInactiveMitigated}).Return(mitigated, nil)

		return NewReimportService(findingRepository, findingEventRepository, assetConfigService, mocks.NewCorrelationService(t)), findingRepository, findingEventRepository
	}

	t.Run("should close missing findings, reactivate returning ones and report new keys", func(t *testing.T) {
		config := models.DefaultAssetConfig(tenantID, assetID)
		config.CloseOldFindings = true

		stillThere := storedFinding(assetID, "a", dtos.VLMStatusActive)
		gone := storedFinding(assetID, "d", dtos.VLMStatusUnderReview)
		returning := storedFinding(assetID, "b", dtos.VLMStatusInactiveMitigated)

		s, findingRepository, findingEventRepository := setup(t, config, []models.Finding{stillThere, gone}, []models.Finding{returning})

		var saved []models.Finding
		findingRepository.On("SaveBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).([]models.Finding)
		}).Return(nil)
		var events []models.FindingEvent
		findingEventRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			events = args.Get(1).([]models.FindingEvent)
		}).Return(nil)

		scan := []dtos.FindingIngestRequest{scanRequest(assetID, "a"), scanRequest(assetID, "b"), scanRequest(assetID, "c")}
		result, err := s.Reconcile(context.Background(), tenantID, assetID, "zap", scan, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Closed)
		assert.Equal(t, 1, result.Reactivated)
		assert.Equal(t, 1, result.Unchanged)
		assert.Equal(t, 1, result.New)
		assert.Equal(t, []uuid.UUID{gone.ID}, result.Details.ClosedIDs)
		assert.Equal(t, []uuid.UUID{returning.ID}, result.Details.ReactivatedIDs)
		assert.Equal(t, []string{correlationKeyOf(scanRequest(assetID, "c"))}, result.Details.NewCorrelationKeys)

		require.Len(t, saved, 3)
		statuses := map[uuid.UUID]dtos.VLMStatus{}
		for _, f := range saved {
			statuses[f.ID] = f.StatusVLM
		}
		assert.Equal(t, dtos.VLMStatusInactiveMitigated, statuses[gone.ID])
		assert.Equal(t, dtos.VLMStatusActive, statuses[returning.ID])
		assert.Equal(t, dtos.VLMStatusActive, statuses[stillThere.ID])

		require.Len(t, events, 2)
		assert.Equal(t, models.EventTypeReimportClosed, events[0].Type)
		assert.Equal(t, models.EventTypeReimportReactivated, events[1].Type)
	})

	t.Run("should only classify when reimport is disabled for the asset", func(t *testing.T) {
		config := models.DefaultAssetConfig(tenantID, assetID)
		config.ReimportEnabled = false

		gone := storedFinding(assetID, "d", dtos.VLMStatusActive)
		returning := storedFinding(assetID, "b", dtos.VLMStatusInactiveMitigated)
		s, findingRepository, findingEventRepository := setup(t, config, []models.Finding{gone}, []models.Finding{returning})
		findingRepository.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
		findingEventRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

		// the request policy is ignored while reimport is disabled
		policy := &dtos.ReimportPolicy{CloseOldFindings: true}
		result, err := s.Reconcile(context.Background(), tenantID, assetID, "zap", []dtos.FindingIngestRequest{scanRequest(assetID, "b")}, policy)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Closed)
		assert.Equal(t, 0, result.Reactivated)
		assert.Equal(t, 1, result.New)
	})

	t.Run("should reject an empty source tool", func(t *testing.T) {
		s := NewReimportService(mocks.NewFindingRepository(t), mocks.NewFindingEventRepository(t), mocks.NewAssetConfigService(t), mocks.NewCorrelationService(t))
		_, err := s.Reconcile(context.Background(), tenantID, assetID, " ", nil, nil)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestImportScan(t *testing.T) {
	t.Run("should ingest only the findings with unknown correlation keys", func(t *testing.T) {
		tenantID := uuid.New()
		assetID := uuid.New()

		findingRepository := mocks.NewFindingRepository(t)
		findingEventRepository := mocks.NewFindingEventRepository(t)
		assetConfigService := mocks.NewAssetConfigService(t)
		correlationService := mocks.NewCorrelationService(t)

		known := storedFinding(assetID, "a", dtos.VLMStatusActive)
		assetConfigService.On("Get", mock.Anything, tenantID, assetID).Return(models.DefaultAssetConfig(tenantID, assetID), nil)
		findingRepository.On("Transaction", mock.Anything).Return(runTransaction)
		findingRepository.On("ListByStatusForAssetAndTool", mock.Anything, tenantID, assetID, "zap", dtos.OpenVLMStatuses).Return([]models.Finding{known}, nil)
		findingRepository.On("ListByStatusForAssetAndTool", mock.Anything, tenantID, assetID, "zap", []dtos.VLMStatus{dtos.VLMStatusInactiveMitigated}).Return([]models.Finding{}, nil)
		findingRepository.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
		findingEventRepository.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

		correlationService.On("BatchIngest", mock.Anything, tenantID, mock.MatchedBy(func(reqs []dtos.FindingIngestRequest) bool {
			return len(reqs) == 1 && reqs[0].Title == "c" && reqs[0].SourceTool == "zap" && reqs[0].AssetID == assetID
		})).Return(dtos.BatchIngestResult{Succeeded: 1})

		newFinding := scanRequest(uuid.Nil, "c")
		newFinding.SourceTool = ""
		req := dtos.ReimportRequest{SourceTool: "zap", Findings: []dtos.FindingIngestRequest{scanRequest(assetID, "a"), newFinding}}

		s := NewReimportService(findingRepository, findingEventRepository, assetConfigService, correlationService)
		result, err := s.ImportScan(context.Background(), tenantID, assetID, req)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Reconciliation.Unchanged)
		assert.Equal(t, 1, result.Ingestion.Succeeded)
	})
}
