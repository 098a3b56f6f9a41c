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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/utils"
)

type DaemonRunner interface {
	Start()
	// RunDaemons runs the named daemons once, independent of their schedule.
	RunDaemons(ctx context.Context, names ...string) error
}

type LeaderElector interface {
	IsLeader() bool
}

// FingerprintLocker serializes concurrent ingests of the same fingerprint across instances.
type FingerprintLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
	RemoveConfig(key string) error
}

type FindingRepository interface {
	utils.Repository[uuid.UUID, models.Finding, DB]
	ReadInTenant(tx DB, tenantID, id uuid.UUID) (models.Finding, error)
	ListByIDsInTenant(tx DB, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Finding, error)
	FindBySourceToolID(tx DB, tenantID uuid.UUID, sourceTool, sourceToolID string) (models.Finding, error)
	FindByDeduplicationHash(tx DB, tenantID, assetID uuid.UUID, hash string) (models.Finding, error)
	FindByCorrelationKey(tx DB, tenantID, assetID uuid.UUID, correlationKey string) (models.Finding, error)
	// FindOriginal returns the earliest non duplicate finding with the key. A nil assetID searches the whole tenant.
	FindOriginal(tx DB, tenantID uuid.UUID, assetID *uuid.UUID, correlationKey string) (models.Finding, error)
	ListByStatusForAssetAndTool(tx DB, tenantID, assetID uuid.UUID, sourceTool string, statuses []dtos.VLMStatus) ([]models.Finding, error)
	ListDuplicates(tx DB, tenantID, originalID uuid.UUID) ([]models.Finding, error)
	ListOriginalIDsByAsset(tx DB, tenantID, assetID uuid.UUID) ([]uuid.UUID, error)
	ListPaged(tx DB, tenantID uuid.UUID, filter FindingFilter, pageInfo PageInfo) (Paged[models.Finding], error)
	ListOpenOriginals(tx DB) ([]models.Finding, error)
	ListExpiredRiskAcceptances(tx DB, now time.Time) ([]models.Finding, error)
	ListMitigated(tx DB, tenantID uuid.UUID, assetID *uuid.UUID) ([]models.Finding, error)
	ListSLAViolations(tx DB, tenantID uuid.UUID) ([]models.Finding, error)
	AssignGroup(tx DB, groupID uuid.UUID, findingIDs []uuid.UUID) error
}

type FindingEventRepository interface {
	utils.Repository[uuid.UUID, models.FindingEvent, DB]
	ListByFinding(tx DB, tenantID, findingID uuid.UUID) ([]models.FindingEvent, error)
}

type AssetConfigRepository interface {
	ReadByAsset(tx DB, assetID uuid.UUID) (models.AssetConfig, error)
	Save(tx DB, config *models.AssetConfig) error
	ListWithRetentionPolicy(tx DB) ([]models.AssetConfig, error)
	ListByAssets(tx DB, assetIDs []uuid.UUID) ([]models.AssetConfig, error)
}

type FindingGroupRepository interface {
	utils.Repository[uuid.UUID, models.FindingGroup, DB]
	ReadInTenant(tx DB, tenantID, groupID uuid.UUID) (models.FindingGroup, error)
	ListByTenant(tx DB, tenantID uuid.UUID) ([]models.FindingGroup, error)
}

type GovernanceRuleRepository interface {
	utils.Repository[uuid.UUID, models.GovernanceRule, DB]
	ListByTenant(tx DB, tenantID uuid.UUID) ([]models.GovernanceRule, error)
	// ListEnabledByTenant returns the enabled rules, highest priority first.
	ListEnabledByTenant(tx DB, tenantID uuid.UUID) ([]models.GovernanceRule, error)
	DeleteInTenant(tx DB, tenantID, ruleID uuid.UUID) error
}

type SLAAlertRepository interface {
	Create(tx DB, alert *models.SLAAlert) error
	ListByFinding(tx DB, findingID uuid.UUID) ([]models.SLAAlert, error)
}

type CorrelationService interface {
	Ingest(ctx context.Context, tx DB, tenantID uuid.UUID, req dtos.FindingIngestRequest) (dtos.IngestResult, error)
	BatchIngest(ctx context.Context, tenantID uuid.UUID, reqs []dtos.FindingIngestRequest) dtos.BatchIngestResult
}

type PersistenceRouterService interface {
	Route(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.FindingIngestRequest) (dtos.PersistenceResult, error)
	ListDuplicates(ctx context.Context, tenantID, originalID uuid.UUID) ([]models.Finding, error)
	MergeDuplicate(ctx context.Context, tenantID, duplicateID uuid.UUID, actor string) (models.Finding, error)
}

type ReimportService interface {
	Reconcile(ctx context.Context, tenantID, assetID uuid.UUID, sourceTool string, findings []dtos.FindingIngestRequest, policy *dtos.ReimportPolicy) (dtos.ReimportResult, error)
	ImportScan(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.ReimportRequest) (dtos.ImportScanResult, error)
}

type RetentionService interface {
	EnforceDuplicateRetention(ctx context.Context) (dtos.RetentionResult, error)
}

type GovernanceService interface {
	ApplyGovernanceEdit(ctx context.Context, tenantID, findingID uuid.UUID, patch dtos.FindingPatch, actor string) (models.Finding, error)
	BulkEdit(ctx context.Context, tenantID uuid.UUID, findingIDs []uuid.UUID, patch dtos.FindingPatch, actor string) ([]models.Finding, error)
	ReactivateExpiredExceptions(ctx context.Context) (dtos.ExceptionExpiryResult, error)
}

type GovernanceRuleService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dtos.GovernanceRuleCreateRequest) (models.GovernanceRule, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]models.GovernanceRule, error)
	Delete(ctx context.Context, tenantID, ruleID uuid.UUID) error
	// ApplyToNewFinding runs the first matching rule against a freshly created finding.
	ApplyToNewFinding(ctx context.Context, tx DB, finding *models.Finding) (*models.GovernanceRule, error)
}

type FindingGroupService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dtos.FindingGroupCreateRequest, actor string) (models.FindingGroup, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]models.FindingGroup, error)
	Read(ctx context.Context, tenantID, groupID uuid.UUID) (models.FindingGroup, error)
}

type FindingService interface {
	List(ctx context.Context, tenantID uuid.UUID, filter FindingFilter, pageInfo PageInfo) (Paged[models.Finding], error)
	Read(ctx context.Context, tenantID, findingID uuid.UUID) (models.Finding, error)
	ListEvents(ctx context.Context, tenantID, findingID uuid.UUID) ([]models.FindingEvent, error)
}

type AssetConfigService interface {
	Get(ctx context.Context, tenantID, assetID uuid.UUID) (models.AssetConfig, error)
	Update(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.AssetConfigUpdateRequest) (models.AssetConfig, error)
	Invalidate(assetID uuid.UUID)
}

type SLAService interface {
	CheckViolations(ctx context.Context) (dtos.SLACheckResult, error)
	ListViolations(ctx context.Context, tenantID uuid.UUID) ([]dtos.SLAViolationDTO, error)
}

type AnalyticsService interface {
	MTTR(ctx context.Context, tenantID uuid.UUID, assetID *uuid.UUID) ([]dtos.MTTRBySeverity, error)
}
