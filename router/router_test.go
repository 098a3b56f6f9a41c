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

package router

import (
	"net/http"
	"testing"

	"github.com/l3montree-dev/devguard-vlm/controllers"
	"github.com/l3montree-dev/devguard-vlm/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestRoutes(t *testing.T) {
	e := middlewares.Server()

	apiV1 := NewAPIV1Router(e, nil, nil)
	tenant := NewTenantRouter(apiV1)
	asset := NewAssetRouter(tenant)

	NewIngestRouter(tenant, asset, controllers.NewIngestController(nil, nil))
	NewFindingRouter(tenant, asset, controllers.NewFindingController(nil, nil, nil))
	NewAssetConfigRouter(asset, controllers.NewAssetConfigController(nil))
	NewGovernanceRouter(tenant, controllers.NewGovernanceRuleController(nil), controllers.NewFindingGroupController(nil))
	NewAnalyticsRouter(tenant, controllers.NewAnalyticsController(nil, nil))
	NewAdminRouter(apiV1, controllers.NewAdminController(nil, nil))

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		http.MethodGet + " /metrics/",
		http.MethodGet + " /api/v1/health/",
		http.MethodPost + " /api/v1/tenants/:tenantID/ingest/",
		http.MethodPost + " /api/v1/tenants/:tenantID/ingest/batch/",
		http.MethodPost + " /api/v1/tenants/:tenantID/assets/:assetID/ingest/zap/",
		http.MethodPost + " /api/v1/tenants/:tenantID/assets/:assetID/ingest/sarif/",
		http.MethodPost + " /api/v1/tenants/:tenantID/assets/:assetID/reimport/",
		http.MethodPost + " /api/v1/tenants/:tenantID/assets/:assetID/findings/",
		http.MethodGet + " /api/v1/tenants/:tenantID/findings/",
		http.MethodGet + " /api/v1/tenants/:tenantID/findings/:findingID/",
		http.MethodPatch + " /api/v1/tenants/:tenantID/findings/:findingID/",
		http.MethodPost + " /api/v1/tenants/:tenantID/findings/bulk-edit/",
		http.MethodGet + " /api/v1/tenants/:tenantID/findings/:findingID/events/",
		http.MethodGet + " /api/v1/tenants/:tenantID/findings/:findingID/duplicates/",
		http.MethodPost + " /api/v1/tenants/:tenantID/findings/:findingID/merge/",
		http.MethodGet + " /api/v1/tenants/:tenantID/assets/:assetID/config/",
		http.MethodPut + " /api/v1/tenants/:tenantID/assets/:assetID/config/",
		http.MethodGet + " /api/v1/tenants/:tenantID/groups/",
		http.MethodPost + " /api/v1/tenants/:tenantID/groups/",
		http.MethodGet + " /api/v1/tenants/:tenantID/groups/:groupID/",
		http.MethodGet + " /api/v1/tenants/:tenantID/governance-rules/",
		http.MethodPost + " /api/v1/tenants/:tenantID/governance-rules/",
		http.MethodDelete + " /api/v1/tenants/:tenantID/governance-rules/:ruleID/",
		http.MethodGet + " /api/v1/tenants/:tenantID/analytics/mttr/",
		http.MethodGet + " /api/v1/tenants/:tenantID/analytics/sla-violations/",
		http.MethodPost + " /api/v1/admin/retention/",
		http.MethodPost + " /api/v1/admin/daemons/",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
