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

	"github.com/l3montree-dev/devguard-vlm/normalize"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(normalize.NewStrategySelectorFromEnv),
	fx.Provide(NewFingerprintLockerFromEnv),
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(fx.Self()), fx.As(new(shared.LeaderElector)))),
	fx.Provide(fx.Annotate(NewAssetConfigService, fx.As(fx.Self()), fx.As(new(shared.AssetConfigService)))),
	fx.Provide(fx.Annotate(NewGovernanceRuleService, fx.As(new(shared.GovernanceRuleService)))),
	fx.Provide(fx.Annotate(NewCorrelationService, fx.As(new(shared.CorrelationService)))),
	fx.Provide(fx.Annotate(NewPersistenceRouterService, fx.As(new(shared.PersistenceRouterService)))),
	fx.Provide(fx.Annotate(NewReimportService, fx.As(new(shared.ReimportService)))),
	fx.Provide(fx.Annotate(NewRetentionService, fx.As(new(shared.RetentionService)))),
	fx.Provide(fx.Annotate(NewGovernanceService, fx.As(new(shared.GovernanceService)))),
	fx.Provide(fx.Annotate(NewFindingGroupService, fx.As(new(shared.FindingGroupService)))),
	fx.Provide(fx.Annotate(NewFindingService, fx.As(new(shared.FindingService)))),
	fx.Provide(fx.Annotate(NewSLAService, fx.As(new(shared.SLAService)))),
	fx.Provide(fx.Annotate(NewAnalyticsService, fx.As(new(shared.AnalyticsService)))),
)

// BackgroundWorkModule runs the leader election and the asset config cache
// invalidation for the lifetime of the application. Only the server includes it.
var BackgroundWorkModule = fx.Invoke(registerBackgroundWork)

func registerBackgroundWork(lc fx.Lifecycle, leaderElector *databaseLeaderElector, assetConfigService *assetConfigService) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go leaderElector.Run(ctx)
			return assetConfigService.ListenForChanges(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
