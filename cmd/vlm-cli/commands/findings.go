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
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/spf13/cobra"
)

func NewFindingsCommand() *cobra.Command {
	findings := cobra.Command{
		Use:   "findings",
		Short: "Inspect findings",
	}
	findings.AddCommand(newFindingsListCommand())
	return &findings
}

func newFindingsListCommand() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List the findings of a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := uuidFlag(cmd, "tenant")
			if err != nil {
				return err
			}
			filter := shared.FindingFilter{}
			if asset, _ := cmd.Flags().GetString("asset"); asset != "" {
				assetID, err := uuidFlag(cmd, "asset")
				if err != nil {
					return err
				}
				filter.AssetID = &assetID
			}
			statuses, _ := cmd.Flags().GetStringSlice("status")
			for _, s := range statuses {
				status := dtos.VLMStatus(strings.ToUpper(s))
				if !status.IsValid() {
					return fmt.Errorf("unknown status %q", s)
				}
				filter.StatusVLM = append(filter.StatusVLM, status)
			}
			filter.IncludeDuplicates, _ = cmd.Flags().GetBool("duplicates")
			page, _ := cmd.Flags().GetInt("page")
			pageSize, _ := cmd.Flags().GetInt("pageSize")

			var findingService shared.FindingService
			cleanup, err := populate(&findingService)
			if err != nil {
				return err
			}
			defer cleanup()

			paged, err := findingService.List(cmd.Context(), tenantID, filter, shared.PageInfo{Page: page, PageSize: pageSize})
			if err != nil {
				return err
			}
			fmt.Println(renderFindings(paged))
			return nil
		},
	}

	list.Flags().String("tenant", "", "Tenant to list findings for")
	list.Flags().String("asset", "", "Only list findings of this asset")
	list.Flags().StringSlice("status", nil, "Only list findings in these statuses")
	list.Flags().Bool("duplicates", false, "Include findings marked as duplicate")
	list.Flags().Int("page", 1, "Page to show")
	list.Flags().Int("pageSize", 50, "Findings per page")
	return list
}

func severityColor(s dtos.Severity) text.Colors {
	switch s {
	case dtos.SeverityCritical:
		return text.Colors{text.FgHiRed, text.Bold}
	case dtos.SeverityHigh:
		return text.Colors{text.FgRed}
	case dtos.SeverityMedium:
		return text.Colors{text.FgYellow}
	default:
		return text.Colors{text.FgHiBlack}
	}
}

func renderFindings(paged shared.Paged[models.Finding]) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"ID", "Title", "Severity", "Status", "Tool", "Last seen"})
	for _, f := range paged.Data {
		severity := f.EffectiveSeverity()
		tw.AppendRow(table.Row{
			f.ID,
			text.Trim(f.Title, 60),
			severityColor(severity).Sprint(severity),
			f.StatusVLM,
			f.SourceTool,
			f.LastSeenTimestamp.Format("2006-01-02 15:04"),
		})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("page %d", paged.Page), "", "", "total", paged.Total})
	return tw.Render()
}
