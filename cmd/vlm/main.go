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

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/devguard-vlm/controllers"
	"github.com/l3montree-dev/devguard-vlm/daemons"
	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/l3montree-dev/devguard-vlm/database/repositories"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/router"
	"github.com/l3montree-dev/devguard-vlm/services"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			devguard-vlm API
//	@version		v1
//	@description	vulnerability lifecycle management across security tools

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracer, err := monitoring.InitTracer(context.Background(), "devguard-vlm")
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(err)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	broker := database.NewPostgreSQLBroker(pool)

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(fx.Annotate(func() *database.PostgreSQLBroker { return broker }, fx.As(new(shared.PubSubBroker)))),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		services.BackgroundWorkModule,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func(ctx context.Context) error {
				broker.Close()
				pool.Close()
				return shutdownTracer(ctx)
			}))
		}),

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.IngestRouter) {}),
		fx.Invoke(func(router.FindingRouter) {}),
		fx.Invoke(func(router.AssetConfigRouter) {}),
		fx.Invoke(func(router.GovernanceRouter) {}),
		fx.Invoke(func(router.AnalyticsRouter) {}),
		fx.Invoke(func(router.AdminRouter) {}),
		fx.Invoke(func(*echo.Echo) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}
