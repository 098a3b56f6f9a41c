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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/devguard-vlm/middlewares"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(e *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	e.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router := e.Group("/api/v1")
	apiV1Router.GET("/info/", infoHandler(db, pool))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		if _, err := pingDB(db); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}
		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{Group: apiV1Router}
}

// TenantRouter groups every tenant scoped route. Callers have to identify themselves,
// the actor is recorded in the audit trail.
type TenantRouter struct {
	*echo.Group
}

func NewTenantRouter(apiV1Router APIV1Router) TenantRouter {
	return TenantRouter{
		Group: apiV1Router.Group.Group("/tenants/:tenantID", middlewares.ActorMiddleware()),
	}
}

type AssetRouter struct {
	*echo.Group
}

func NewAssetRouter(tenantRouter TenantRouter) AssetRouter {
	return AssetRouter{
		Group: tenantRouter.Group.Group("/assets/:assetID"),
	}
}
