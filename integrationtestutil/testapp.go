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

package integrationtestutil

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/devguard-vlm/database/repositories"
	"github.com/l3montree-dev/devguard-vlm/services"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// TestApp exposes the production service graph to integration tests.
type TestApp struct {
	fx.In

	DB shared.DB

	CorrelationService       shared.CorrelationService
	PersistenceRouterService shared.PersistenceRouterService
	ReimportService          shared.ReimportService
	RetentionService         shared.RetentionService
	GovernanceService        shared.GovernanceService
	GovernanceRuleService    shared.GovernanceRuleService
	FindingService           shared.FindingService
	FindingGroupService      shared.FindingGroupService
	AssetConfigService       shared.AssetConfigService
	SLAService               shared.SLAService
	AnalyticsService         shared.AnalyticsService

	FindingRepository      shared.FindingRepository
	FindingEventRepository shared.FindingEventRepository
}

// TestFixture bundles a migrated database container and the wired services.
type TestFixture struct {
	T   *testing.T
	App *TestApp
	DB  shared.DB
}

// NewTestFixture starts a database container and wires the same fx modules the server uses.
// Everything is torn down when the test finishes.
func NewTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	pool, db, terminate := InitDatabaseContainer()

	var app TestApp
	fxApp := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(func() shared.PubSubBroker { return shared.NoopBroker{} }),
		repositories.Module,
		services.ServiceModule,
		fx.Populate(&app),
	)
	fxApp.RequireStart()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = fxApp.Stop(ctx)
		terminate()
	})

	return &TestFixture{T: t, App: &app, DB: db}
}
