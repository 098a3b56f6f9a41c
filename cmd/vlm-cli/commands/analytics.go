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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/spf13/cobra"
)

func NewAnalyticsCommand() *cobra.Command {
	analytics := cobra.Command{
		Use:   "analytics",
		Short: "Print remediation statistics",
	}

	mttr := &cobra.Command{
		Use:   "mttr",
		Short: "Mean time to remediate per severity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := uuidFlag(cmd, "tenant")
			if err != nil {
				return err
			}
			var assetID *uuid.UUID
			if raw, _ := cmd.Flags().GetString("asset"); raw != "" {
				id, err := uuidFlag(cmd, "asset")
				if err != nil {
					return err
				}
				assetID = &id
			}

			var analyticsService shared.AnalyticsService
			cleanup, err := populate(&analyticsService)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := analyticsService.MTTR(cmd.Context(), tenantID, assetID)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"Severity", "Mitigated", "Avg days", "Min days", "Max days"})
			for _, r := range rows {
				tw.AppendRow(table.Row{r.Severity, r.Total, fmt.Sprintf("%.1f", r.AvgDays), fmt.Sprintf("%.1f", r.MinDays), fmt.Sprintf("%.1f", r.MaxDays)})
			}
			fmt.Println(tw.Render())
			return nil
		},
	}
	mttr.Flags().String("tenant", "", "Tenant to report on")
	mttr.Flags().String("asset", "", "Restrict to a single asset")

	analytics.AddCommand(mttr)
	return &analytics
}
