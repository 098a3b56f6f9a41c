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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	assetConfigCacheSize = 1024
	assetConfigCacheTTL  = 5 * time.Minute
)

type assetConfigService struct {
	repository shared.AssetConfigRepository
	broker     shared.PubSubBroker
	cache      *expirable.LRU[uuid.UUID, models.AssetConfig]
}

var _ shared.AssetConfigService = (*assetConfigService)(nil)

func NewAssetConfigService(repository shared.AssetConfigRepository, broker shared.PubSubBroker) *assetConfigService {
	return &assetConfigService{
		repository: repository,
		broker:     broker,
		cache:      expirable.NewLRU[uuid.UUID, models.AssetConfig](assetConfigCacheSize, nil, assetConfigCacheTTL),
	}
}

// Get returns the stored config of the asset or the defaults when none was stored yet.
func (s *assetConfigService) Get(ctx context.Context, tenantID, assetID uuid.UUID) (models.AssetConfig, error) {
	if config, ok := s.cache.Get(assetID); ok {
		if config.TenantID != tenantID {
			return models.AssetConfig{}, shared.NewNotFound("asset config", assetID.String())
		}
		return config, nil
	}

	config, err := s.repository.ReadByAsset(nil, assetID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		config = models.DefaultAssetConfig(tenantID, assetID)
	case err != nil:
		return models.AssetConfig{}, shared.WrapStoreError(err, "read asset config", "asset config", assetID.String())
	}

	s.cache.Add(assetID, config)
	if config.TenantID != tenantID {
		return models.AssetConfig{}, shared.NewNotFound("asset config", assetID.String())
	}
	return config, nil
}

func (s *assetConfigService) Update(ctx context.Context, tenantID, assetID uuid.UUID, req dtos.AssetConfigUpdateRequest) (models.AssetConfig, error) {
	if err := shared.V.Struct(req); err != nil {
		return models.AssetConfig{}, shared.NewValidationError("", err.Error())
	}
	for severity, days := range req.SLAConfig {
		if !severity.IsValid() {
			return models.AssetConfig{}, shared.NewValidationError("slaConfig", fmt.Sprintf("unknown severity %q", severity))
		}
		if days <= 0 {
			return models.AssetConfig{}, shared.NewValidationError("slaConfig", fmt.Sprintf("days for %s must be positive", severity))
		}
	}

	s.cache.Remove(assetID)
	config, err := s.Get(ctx, tenantID, assetID)
	if err != nil {
		return models.AssetConfig{}, err
	}

	if req.Name != nil {
		config.Name = *req.Name
	}
	if req.EnableDeduplication != nil {
		config.EnableDeduplication = *req.EnableDeduplication
	}
	if req.DeduplicationScope != nil {
		config.DeduplicationScope = *req.DeduplicationScope
	}
	if req.DeleteDuplicateFindings != nil {
		config.DeleteDuplicateFindings = *req.DeleteDuplicateFindings
	}
	if req.MaxDuplicates != nil {
		config.MaxDuplicates = *req.MaxDuplicates
	}
	if req.ReimportEnabled != nil {
		config.ReimportEnabled = *req.ReimportEnabled
	}
	if req.CloseOldFindings != nil {
		config.CloseOldFindings = *req.CloseOldFindings
	}
	if req.DoNotReactivate != nil {
		config.DoNotReactivate = *req.DoNotReactivate
	}
	if req.SLAConfig != nil {
		config.SLAConfig = datatypes.NewJSONType(req.SLAConfig)
	}

	if err := s.repository.Save(nil, &config); err != nil {
		return models.AssetConfig{}, shared.WrapStoreError(err, "save asset config", "asset config", assetID.String())
	}
	s.Invalidate(assetID)

	if err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.AssetConfigChanged, map[string]any{
		"assetId": assetID.String(),
	})); err != nil {
		// other instances fall back to the cache ttl
		slog.Warn("could not publish asset config change", "assetID", assetID, "err", err)
	}
	return config, nil
}

func (s *assetConfigService) Invalidate(assetID uuid.UUID) {
	s.cache.Remove(assetID)
}

// ListenForChanges evicts configs changed by other instances until ctx is done.
func (s *assetConfigService) ListenForChanges(ctx context.Context) error {
	ch, err := s.broker.Subscribe(shared.AssetConfigChanged)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-ch:
				if !ok {
					return
				}
				raw, _ := payload["assetId"].(string)
				assetID, err := uuid.Parse(raw)
				if err != nil {
					slog.Warn("received invalid asset config change", "payload", payload)
					continue
				}
				s.Invalidate(assetID)
			}
		}
	}()
	return nil
}
