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
	"log/slog"

	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pool, db := openDatabase()
				defer pool.Close()
				return database.RunMigrationsWithDB(db)
			},
		},
		newMigrateDownCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the current migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pool, db := openDatabase()
				defer pool.Close()
				version, dirty, err := database.GetMigrationVersionWithDB(db)
				if err != nil {
					return err
				}
				fmt.Printf("version: %d (dirty: %t)\n", version, dirty)
				return nil
			},
		},
	)
	return &migrate
}

func newMigrateDownCommand() *cobra.Command {
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			pool, db := openDatabase()
			defer pool.Close()
			if err := database.RollbackMigrationsWithDB(db, steps); err != nil {
				return err
			}
			slog.Info("rolled back migrations", "steps", steps)
			return nil
		},
	}
	down.Flags().Int("steps", 1, "Number of migrations to roll back")
	return down
}
