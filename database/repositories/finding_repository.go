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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"gorm.io/gorm"
)

type findingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Finding]
}

var _ shared.FindingRepository = (*findingRepository)(nil)

func NewFindingRepository(db *gorm.DB) *findingRepository {
	return &findingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Finding](db),
	}
}

func (r *findingRepository) first(query *gorm.DB) (models.Finding, error) {
	var f models.Finding
	err := query.Order("created_at ASC").Order("id ASC").First(&f).Error
	return f, err
}

func (r *findingRepository) ReadInTenant(tx *gorm.DB, tenantID, id uuid.UUID) (models.Finding, error) {
	var f models.Finding
	err := r.GetDB(tx).Where("tenant_id = ? AND id = ?", tenantID, id).First(&f).Error
	return f, err
}

func (r *findingRepository) ListByIDsInTenant(tx *gorm.DB, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Finding, error) {
	findings := []models.Finding{}
	if len(ids) == 0 {
		return findings, nil
	}
	err := r.GetDB(tx).Where("tenant_id = ? AND id IN ?", tenantID, ids).Order("created_at ASC").Find(&findings).Error
	return findings, err
}

// FindBySourceToolID prefers originals over duplicates when both carry the tool id.
func (r *findingRepository) FindBySourceToolID(tx *gorm.DB, tenantID uuid.UUID, sourceTool, sourceToolID string) (models.Finding, error) {
	var f models.Finding
	err := r.GetDB(tx).
		Where("tenant_id = ? AND source_tool = ? AND source_tool_id = ?", tenantID, sourceTool, sourceToolID).
		Order("is_duplicate ASC").Order("created_at ASC").
		First(&f).Error
	return f, err
}

func (r *findingRepository) FindByDeduplicationHash(tx *gorm.DB, tenantID, assetID uuid.UUID, hash string) (models.Finding, error) {
	return r.first(r.GetDB(tx).Where("tenant_id = ? AND asset_id = ? AND deduplication_hash = ?", tenantID, assetID, hash))
}

func (r *findingRepository) FindByCorrelationKey(tx *gorm.DB, tenantID, assetID uuid.UUID, correlationKey string) (models.Finding, error) {
	return r.first(r.GetDB(tx).Where("tenant_id = ? AND asset_id = ? AND correlation_key = ?", tenantID, assetID, correlationKey))
}

func (r *findingRepository) FindOriginal(tx *gorm.DB, tenantID uuid.UUID, assetID *uuid.UUID, correlationKey string) (models.Finding, error) {
	q := r.GetDB(tx).Where("tenant_id = ? AND correlation_key = ? AND is_duplicate = ?", tenantID, correlationKey, false)
	if assetID != nil {
		q = q.Where("asset_id = ?", *assetID)
	}
	return r.first(q)
}

func (r *findingRepository) ListByStatusForAssetAndTool(tx *gorm.DB, tenantID, assetID uuid.UUID, sourceTool string, statuses []dtos.VLMStatus) ([]models.Finding, error) {
	findings := []models.Finding{}
	err := r.GetDB(tx).
		Where("tenant_id = ? AND asset_id = ? AND source_tool = ? AND is_duplicate = ?", tenantID, assetID, sourceTool, false).
		Where("status_vlm IN ?", statuses).
		Order("created_at ASC").Order("id ASC").
		Find(&findings).Error
	return findings, err
}

func (r *findingRepository) ListDuplicates(tx *gorm.DB, tenantID, originalID uuid.UUID) ([]models.Finding, error) {
	findings := []models.Finding{}
	err := r.GetDB(tx).
		Where("tenant_id = ? AND original_finding_id = ? AND is_duplicate = ?", tenantID, originalID, true).
		Order("created_at ASC").Order("id ASC").
		Find(&findings).Error
	return findings, err
}

func (r *findingRepository) ListOriginalIDsByAsset(tx *gorm.DB, tenantID, assetID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.GetDB(tx).Model(&models.Finding{}).
		Where("tenant_id = ? AND asset_id = ? AND is_duplicate = ?", tenantID, assetID, false).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *findingRepository) ListPaged(tx *gorm.DB, tenantID uuid.UUID, filter shared.FindingFilter, pageInfo shared.PageInfo) (shared.Paged[models.Finding], error) {
	q := r.GetDB(tx).Model(&models.Finding{}).Where("tenant_id = ?", tenantID)
	if filter.AssetID != nil {
		q = q.Where("asset_id = ?", *filter.AssetID)
	}
	if len(filter.StatusVLM) > 0 {
		q = q.Where("status_vlm IN ?", filter.StatusVLM)
	}
	if len(filter.Severity) > 0 {
		q = q.Where("COALESCE(severity_manual, severity_adjusted) IN ?", filter.Severity)
	}
	if filter.SourceTool != "" {
		q = q.Where("LOWER(source_tool) = ?", filter.SourceTool)
	}
	if !filter.IncludeDuplicates {
		q = q.Where("is_duplicate = ?", false)
	}
	if len(filter.Search) > 2 {
		search := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR title_user_edited ILIKE ? OR url ILIKE ? OR cve ILIKE ?", search, search, search, search)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Finding]{}, err
	}

	findings := []models.Finding{}
	if err := pageInfo.ApplyOnDB(q).Order("last_seen_timestamp DESC").Order("id ASC").Find(&findings).Error; err != nil {
		return shared.Paged[models.Finding]{}, err
	}
	return shared.NewPaged(pageInfo, count, findings), nil
}

func (r *findingRepository) ListOpenOriginals(tx *gorm.DB) ([]models.Finding, error) {
	findings := []models.Finding{}
	err := r.GetDB(tx).
		Where("is_duplicate = ? AND status_vlm IN ?", false, dtos.OpenVLMStatuses).
		Order("first_seen_timestamp ASC").
		Find(&findings).Error
	return findings, err
}

func (r *findingRepository) ListExpiredRiskAcceptances(tx *gorm.DB, now time.Time) ([]models.Finding, error) {
	findings := []models.Finding{}
	err := r.GetDB(tx).
		Where("status_vlm = ? AND expiration_date IS NOT NULL AND expiration_date < ?", dtos.VLMStatusInactiveRiskAccepted, now).
		Order("expiration_date ASC").
		Find(&findings).Error
	return findings, err
}

func (r *findingRepository) ListMitigated(tx *gorm.DB, tenantID uuid.UUID, assetID *uuid.UUID) ([]models.Finding, error) {
	q := r.GetDB(tx).
		Where("tenant_id = ? AND is_duplicate = ? AND status_vlm = ? AND mitigated_date IS NOT NULL", tenantID, false, dtos.VLMStatusInactiveMitigated)
	if assetID != nil {
		q = q.Where("asset_id = ?", *assetID)
	}
	findings := []models.Finding{}
	err := q.Find(&findings).Error
	return findings, err
}

func (r *findingRepository) ListSLAViolations(tx *gorm.DB, tenantID uuid.UUID) ([]models.Finding, error) {
	findings := []models.Finding{}
	err := r.GetDB(tx).
		Where("tenant_id = ? AND is_duplicate = ? AND status_vlm IN ? AND sla_days_overdue > 0", tenantID, false, dtos.OpenVLMStatuses).
		Order("sla_days_overdue DESC").
		Find(&findings).Error
	return findings, err
}

func (r *findingRepository) AssignGroup(tx *gorm.DB, groupID uuid.UUID, findingIDs []uuid.UUID) error {
	if len(findingIDs) == 0 {
		return nil
	}
	return r.GetDB(tx).Model(&models.Finding{}).Where("id IN ?", findingIDs).Update("group_id", groupID).Error
}
