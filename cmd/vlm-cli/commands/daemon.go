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
	"log/slog"
	"time"

	"github.com/l3montree-dev/devguard-vlm/daemons"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/spf13/cobra"
)

func NewDaemonCommand() *cobra.Command {
	daemon := cobra.Command{
		Use:   "daemon",
		Short: "daemon",
	}

	daemon.AddCommand(newTriggerCommand())
	return &daemon
}

func newTriggerCommand() *cobra.Command {
	trigger := &cobra.Command{
		Use:   "trigger",
		Short: "Will run the background jobs once, regardless of leadership and schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, _ := cmd.Flags().GetStringArray("daemons")

			var runner shared.DaemonRunner
			cleanup, err := populate(&runner)
			if err != nil {
				slog.Error("could not build services", "err", err)
				return err
			}
			defer cleanup()

			start := time.Now()
			if err := runner.RunDaemons(cmd.Context(), names...); err != nil {
				return err
			}
			slog.Info("daemons finished", "daemons", names, "duration", time.Since(start))
			return nil
		},
	}

	trigger.Flags().StringArrayP("daemons", "d", []string{daemons.RetentionDaemon, daemons.SLADaemon, daemons.ExceptionExpiryDaemon}, "List of daemons to trigger")
	return trigger
}
