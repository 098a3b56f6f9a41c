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
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const serviceName = "devguard-vlm"

func allowedOrigins() []string {
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"http://localhost:3000"}
	}
	var res []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     allowedOrigins(),
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, shared.ActorHeader),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))
	e.Use(otelecho.Middleware(serviceName))
	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = ErrorHandler(e.Debug)
}

// ErrorHandler renders every error as a JSON object. Handlers return echo.HTTPErrors carrying
// either a plain message or an echo.Map, everything else becomes a 500.
func ErrorHandler(debug bool) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}

		// do the logging straight inside the error handler
		// this keeps controller methods clean
		if he.Code >= http.StatusInternalServerError {
			slog.Error("request failed", "method", ctx.Request().Method, "path", ctx.Request().URL.Path, "status", he.Code, "err", err)
		} else {
			slog.Debug("request rejected", "method", ctx.Request().Method, "path", ctx.Request().URL.Path, "status", he.Code, "err", err)
		}

		var message any
		switch m := he.Message.(type) {
		case string:
			if debug && he.Internal != nil {
				message = echo.Map{"message": m, "error": he.Internal.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case error:
			message = echo.Map{"message": m.Error()}
		default:
			message = m
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(he.Code)
		} else {
			err = ctx.JSON(he.Code, message)
		}
		if err != nil {
			slog.Error("could not send error response", "err", err)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
