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
	"os"

	"github.com/l3montree-dev/devguard-vlm/controllers"
	"github.com/l3montree-dev/devguard-vlm/middlewares"
	"github.com/labstack/echo/v4"
)

type IngestRouter struct {
	*echo.Group
}

func NewIngestRouter(
	tenantRouter TenantRouter,
	assetRouter AssetRouter,
	ingestController *controllers.IngestController,
) IngestRouter {
	rateLimit := middlewares.TenantRateLimitMiddleware(middlewares.IngestRateLimitFromEnv())

	ingestGroup := tenantRouter.Group.Group("/ingest", rateLimit)
	ingestGroup.POST("/", ingestController.Ingest)
	ingestGroup.POST("/batch/", ingestController.BatchIngest)

	// scanner reports are always uploaded for a single asset
	assetRouter.POST("/ingest/zap/", ingestController.UploadZAP, rateLimit)
	assetRouter.POST("/ingest/sarif/", ingestController.UploadSARIF, rateLimit)
	assetRouter.POST("/reimport/", ingestController.Reimport, rateLimit)

	return IngestRouter{Group: ingestGroup}
}

type FindingRouter struct {
	*echo.Group
}

func NewFindingRouter(
	tenantRouter TenantRouter,
	assetRouter AssetRouter,
	findingController *controllers.FindingController,
) FindingRouter {
	findingGroup := tenantRouter.Group.Group("/findings")
	findingGroup.GET("/", findingController.List)
	findingGroup.POST("/bulk-edit/", findingController.BulkEdit)
	findingGroup.GET("/:findingID/", findingController.Read)
	findingGroup.PATCH("/:findingID/", findingController.Patch)
	findingGroup.GET("/:findingID/events/", findingController.Events)
	findingGroup.GET("/:findingID/duplicates/", findingController.Duplicates)
	findingGroup.POST("/:findingID/merge/", findingController.Merge)

	assetRouter.POST("/findings/", findingController.Persist)

	return FindingRouter{Group: findingGroup}
}

type AssetConfigRouter struct {
	*echo.Group
}

func NewAssetConfigRouter(assetRouter AssetRouter, assetConfigController *controllers.AssetConfigController) AssetConfigRouter {
	configGroup := assetRouter.Group.Group("/config")
	configGroup.GET("/", assetConfigController.Read)
	configGroup.PUT("/", assetConfigController.Update)
	return AssetConfigRouter{Group: configGroup}
}

type GovernanceRouter struct {
	*echo.Group
}

func NewGovernanceRouter(
	tenantRouter TenantRouter,
	governanceRuleController *controllers.GovernanceRuleController,
	findingGroupController *controllers.FindingGroupController,
) GovernanceRouter {
	ruleGroup := tenantRouter.Group.Group("/governance-rules")
	ruleGroup.GET("/", governanceRuleController.List)
	ruleGroup.POST("/", governanceRuleController.Create)
	ruleGroup.DELETE("/:ruleID/", governanceRuleController.Delete)

	groupGroup := tenantRouter.Group.Group("/groups")
	groupGroup.GET("/", findingGroupController.List)
	groupGroup.POST("/", findingGroupController.Create)
	groupGroup.GET("/:groupID/", findingGroupController.Read)

	return GovernanceRouter{Group: ruleGroup}
}

type AnalyticsRouter struct {
	*echo.Group
}

func NewAnalyticsRouter(tenantRouter TenantRouter, analyticsController *controllers.AnalyticsController) AnalyticsRouter {
	analyticsGroup := tenantRouter.Group.Group("/analytics")
	analyticsGroup.GET("/mttr/", analyticsController.MTTR)
	analyticsGroup.GET("/sla-violations/", analyticsController.SLAViolations)
	return AnalyticsRouter{Group: analyticsGroup}
}

type AdminRouter struct {
	*echo.Group
}

func NewAdminRouter(apiV1Router APIV1Router, adminController *controllers.AdminController) AdminRouter {
	adminGroup := apiV1Router.Group.Group("/admin", middlewares.AdminTokenMiddleware(os.Getenv("ADMIN_TOKEN")))
	adminGroup.POST("/retention/", adminController.EnforceRetention)
	adminGroup.POST("/daemons/", adminController.TriggerDaemons)
	return AdminRouter{Group: adminGroup}
}
