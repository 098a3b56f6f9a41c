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

package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
)

// ActorMiddleware requires the X-Actor-ID header on every request of the group.
// The actor ends up in the audit trail of each governance edit.
func ActorMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			actor := strings.TrimSpace(ctx.Request().Header.Get(shared.ActorHeader))
			if actor == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+shared.ActorHeader+" header")
			}
			shared.SetActor(ctx, actor)
			return next(ctx)
		}
	}
}

// AdminTokenMiddleware protects the admin endpoints with a static bearer token.
// An empty token disables the admin endpoints entirely.
func AdminTokenMiddleware(token string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if token == "" {
				return echo.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
			}
			provided := strings.TrimPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin token")
			}
			shared.SetActor(ctx, "admin")
			return next(ctx)
		}
	}
}
