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

package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/devguard-vlm/daemons"
	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/l3montree-dev/devguard-vlm/database/repositories"
	"github.com/l3montree-dev/devguard-vlm/services"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func openDatabase() (*pgxpool.Pool, *gorm.DB) {
	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	return pool, database.NewGormDB(pool)
}

// populate builds the service graph without starting it and fills the given pointers.
// The returned function releases the database resources.
func populate(targets ...any) (func(), error) {
	pool, db := openDatabase()
	broker := database.NewPostgreSQLBroker(pool)
	cleanup := func() {
		broker.Close()
		pool.Close()
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(fx.Annotate(func() *database.PostgreSQLBroker { return broker }, fx.As(new(shared.PubSubBroker)))),
		repositories.Module,
		services.ServiceModule,
		daemons.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}

func uuidFlag(cmd *cobra.Command, name string) (uuid.UUID, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return id, nil
}
