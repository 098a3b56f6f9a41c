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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/normalize"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type routerFixture struct {
	findingRepository      *mocks.FindingRepository
	findingEventRepository *mocks.FindingEventRepository
	ruleService            *mocks.GovernanceRuleService
	assetConfigService     *mocks.AssetConfigService
	service                *persistenceRouterService
}

func newRouterFixture(t *testing.T) routerFixture {
	findingRepository := mocks.NewFindingRepository(t)
	findingEventRepository := mocks.NewFindingEventRepository(t)
	ruleService := mocks.NewGovernanceRuleService(t)
	assetConfigService := mocks.NewAssetConfigService(t)
	findingRepository.On("Transaction", mock.Anything).Return(runTransaction).Maybe()

	return routerFixture{
		findingRepository:      findingRepository,
		findingEventRepository: findingEventRepository,
		ruleService:            ruleService,
		assetConfigService:     assetConfigService,
		service:                NewPersistenceRouterService(findingRepository, findingEventRepository, ruleService, assetConfigService, NewNoopFingerprintLocker(), normalize.NewStrategySelector(nil)),
	}
}

func TestRoute(t *testing.T) {
	tenantID := uuid.New()
	assetA := uuid.New()
	assetB := uuid.New()
	req := dtos.FindingIngestRequest{Title: "Reflected XSS", SourceTool: "burp", URL: "https://example.com/search", Parameter: "q", Severity: "medium"}

	t.Run("should create a new original when nobody reported the finding yet", func(t *testing.T) {
		c := newRouterFixture(t)
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetA).Return(models.DefaultAssetConfig(tenantID, assetA), nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, mock.Anything, mock.Anything).Return(models.Finding{}, gorm.ErrRecordNotFound)
		c.findingRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		c.findingEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		c.ruleService.On("ApplyToNewFinding", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		result, err := c.service.Route(context.Background(), tenantID, assetA, req)
		require.NoError(t, err)
		assert.Equal(t, dtos.PersistenceNewFinding, result.Status)
		assert.Nil(t, result.OriginalFindingID)
	})

	t.Run("should refresh the original when its own asset reports it again", func(t *testing.T) {
		c := newRouterFixture(t)
		original := models.Finding{Model: models.Model{ID: uuid.New()}, AssetID: assetA, Status: dtos.FindingStatusClosed, StatusVLM: dtos.VLMStatusActive}
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetA).Return(models.DefaultAssetConfig(tenantID, assetA), nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, mock.Anything, mock.Anything).Return(original, nil)

		var saved models.Finding
		c.findingRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = *args.Get(1).(*models.Finding)
		}).Return(nil)

		result, err := c.service.Route(context.Background(), tenantID, assetA, req)
		require.NoError(t, err)
		assert.Equal(t, dtos.PersistenceReimportedFiltered, result.Status)
		assert.Equal(t, original.ID, result.FindingID)
		assert.Equal(t, original.ID, *result.OriginalFindingID)
		assert.Equal(t, dtos.FindingStatusReopened, saved.Status)
		assert.False(t, saved.LastSeenTimestamp.IsZero())
	})

	t.Run("should create an inactive duplicate when another asset owns the original", func(t *testing.T) {
		c := newRouterFixture(t)
		original := models.Finding{Model: models.Model{ID: uuid.New()}, AssetID: assetA, StatusVLM: dtos.VLMStatusActive}
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetB).Return(models.DefaultAssetConfig(tenantID, assetB), nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, (*uuid.UUID)(nil), mock.Anything).Return(original, nil)
		c.findingRepository.On("FindByCorrelationKey", mock.Anything, tenantID, assetB, mock.Anything).Return(models.Finding{}, gorm.ErrRecordNotFound)

		var created models.Finding
		c.findingRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Finding)
		}).Return(nil)
		c.findingEventRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.FindingEvent) bool {
			return e.Type == models.EventTypeDuplicateCreated
		})).Return(nil)

		result, err := c.service.Route(context.Background(), tenantID, assetB, req)
		require.NoError(t, err)
		assert.Equal(t, dtos.PersistenceDuplicateCreated, result.Status)
		assert.Equal(t, original.ID, *result.OriginalFindingID)

		assert.True(t, created.IsDuplicate)
		assert.Equal(t, dtos.VLMStatusInactiveDuplicate, created.StatusVLM)
		assert.Equal(t, assetB, created.AssetID)
		assert.Equal(t, original.ID, *created.OriginalFindingID)
		// governance rules never run on duplicates
		c.ruleService.AssertNotCalled(t, "ApplyToNewFinding", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should restrict the lookup to the asset when deduplication is asset scoped", func(t *testing.T) {
		c := newRouterFixture(t)
		config := models.DefaultAssetConfig(tenantID, assetB)
		config.DeduplicationScope = dtos.DeduplicationScopeAsset
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetB).Return(config, nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, &assetB, mock.Anything).Return(models.Finding{}, gorm.ErrRecordNotFound)
		c.findingRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		c.findingEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		c.ruleService.On("ApplyToNewFinding", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		result, err := c.service.Route(context.Background(), tenantID, assetB, req)
		require.NoError(t, err)
		assert.Equal(t, dtos.PersistenceNewFinding, result.Status)
	})

	t.Run("should route again when a concurrent insert took the correlation key", func(t *testing.T) {
		c := newRouterFixture(t)
		winner := models.Finding{Model: models.Model{ID: uuid.New()}, AssetID: assetA, Status: dtos.FindingStatusOpen, StatusVLM: dtos.VLMStatusActive}
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetA).Return(models.DefaultAssetConfig(tenantID, assetA), nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, mock.Anything, mock.Anything).Return(models.Finding{}, gorm.ErrRecordNotFound).Once()
		c.findingRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"}).Once()
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, mock.Anything, mock.Anything).Return(winner, nil).Once()
		c.findingRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := c.service.Route(context.Background(), tenantID, assetA, req)
		require.NoError(t, err)
		assert.Equal(t, dtos.PersistenceReimportedFiltered, result.Status)
		assert.Equal(t, winner.ID, result.FindingID)
	})

	t.Run("should keep same titled findings at different locations of one asset apart", func(t *testing.T) {
		c := newRouterFixture(t)
		c.assetConfigService.On("Get", mock.Anything, tenantID, assetA).Return(models.DefaultAssetConfig(tenantID, assetA), nil)
		c.findingRepository.On("FindOriginal", mock.Anything, tenantID, mock.Anything, mock.Anything).Return(models.Finding{}, gorm.ErrRecordNotFound)
		keys := map[string]struct{}{}
		c.findingRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			keys[args.Get(1).(*models.Finding).CorrelationKey] = struct{}{}
		}).Return(nil)
		c.findingEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		c.ruleService.On("ApplyToNewFinding", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		for _, url := range []string{"https://example.com/a", "https://example.com/b"} {
			r := req
			r.URL = url
			result, err := c.service.Route(context.Background(), tenantID, assetA, r)
			require.NoError(t, err)
			assert.Equal(t, dtos.PersistenceNewFinding, result.Status)
		}
		assert.Len(t, keys, 2)
	})
}

func TestMergeDuplicate(t *testing.T) {
	tenantID := uuid.New()

	t.Run("should merge the duplicate and send the original back to review", func(t *testing.T) {
		c := newRouterFixture(t)
		original := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, StatusVLM: dtos.VLMStatusActiveVerified}
		duplicate := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, IsDuplicate: true, OriginalFindingID: utils.Ptr(original.ID), StatusVLM: dtos.VLMStatusInactiveDuplicate}

		c.findingRepository.On("ReadInTenant", mock.Anything, tenantID, duplicate.ID).Return(duplicate, nil)
		c.findingRepository.On("ReadInTenant", mock.Anything, tenantID, original.ID).Return(original, nil)

		saved := map[uuid.UUID]models.Finding{}
		c.findingRepository.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			f := args.Get(1).(*models.Finding)
			saved[f.ID] = *f
		}).Return(nil)
		var events []models.FindingEvent
		c.findingEventRepository.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			events = args.Get(1).([]models.FindingEvent)
		}).Return(nil)

		merged, err := c.service.MergeDuplicate(context.Background(), tenantID, duplicate.ID, "alice")
		require.NoError(t, err)

		assert.Equal(t, dtos.VLMStatusUnderReview, merged.StatusVLM)
		assert.Equal(t, dtos.FindingStatusMerged, saved[duplicate.ID].Status)
		assert.NotNil(t, saved[duplicate.ID].MitigatedDate)
		require.Len(t, events, 2)
		for _, e := range events {
			assert.Equal(t, models.EventTypeDuplicateMerged, e.Type)
			assert.Equal(t, "alice", e.Actor)
			assert.Equal(t, original.ID.String(), e.GetArbitraryJSONData()["originalFindingId"])
		}
	})

	t.Run("should refuse to merge a finding that is no duplicate", func(t *testing.T) {
		c := newRouterFixture(t)
		finding := models.Finding{Model: models.Model{ID: uuid.New()}, TenantID: tenantID, StatusVLM: dtos.VLMStatusActive}
		c.findingRepository.On("ReadInTenant", mock.Anything, tenantID, finding.ID).Return(finding, nil)

		_, err := c.service.MergeDuplicate(context.Background(), tenantID, finding.ID, "alice")
		assert.Error(t, err)
		c.findingRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
