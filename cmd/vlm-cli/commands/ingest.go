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
	"os"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/transformer"
	"github.com/spf13/cobra"
)

type reportParser func(data []byte, assetID uuid.UUID) ([]dtos.FindingIngestRequest, error)

func NewIngestCommand() *cobra.Command {
	ingest := cobra.Command{
		Use:   "ingest",
		Short: "Import scanner reports",
	}

	ingest.AddCommand(
		newIngestReportCommand("zap", "Import an OWASP ZAP json report", transformer.ZAPReportToIngestRequests),
		newIngestReportCommand("sarif", "Import a SARIF 2.1.0 report", transformer.SARIFReportToIngestRequests),
	)
	return &ingest
}

func newIngestReportCommand(use, short string, parse reportParser) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID, err := uuidFlag(cmd, "tenant")
			if err != nil {
				return err
			}
			assetID, err := uuidFlag(cmd, "asset")
			if err != nil {
				return err
			}
			reimport, _ := cmd.Flags().GetBool("reimport")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read report: %w", err)
			}
			reqs, err := parse(data, assetID)
			if err != nil {
				return err
			}

			var (
				correlationService shared.CorrelationService
				reimportService    shared.ReimportService
			)
			cleanup, err := populate(&correlationService, &reimportService)
			if err != nil {
				return err
			}
			defer cleanup()

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Writer = os.Stderr
			s.Suffix = fmt.Sprintf(" ingesting %d findings from %s", len(reqs), args[0])
			s.Start()

			if !reimport {
				res := correlationService.BatchIngest(cmd.Context(), tenantID, reqs)
				s.Stop()
				fmt.Println(renderBatchResult(res))
				return nil
			}

			byTool := make(map[string][]dtos.FindingIngestRequest)
			for _, r := range reqs {
				byTool[r.SourceTool] = append(byTool[r.SourceTool], r)
			}
			tools := make([]string, 0, len(byTool))
			for tool := range byTool {
				tools = append(tools, tool)
			}
			sort.Strings(tools)

			results := make([]dtos.ImportScanResult, 0, len(tools))
			for _, tool := range tools {
				res, err := reimportService.ImportScan(cmd.Context(), tenantID, assetID, dtos.ReimportRequest{
					SourceTool: tool,
					Findings:   byTool[tool],
				})
				if err != nil {
					s.Stop()
					return fmt.Errorf("could not reimport %s findings: %w", tool, err)
				}
				results = append(results, res)
			}
			s.Stop()

			for i, res := range results {
				fmt.Println(renderReconciliation(tools[i], res.Reconciliation))
				fmt.Println(renderBatchResult(res.Ingestion))
			}
			return nil
		},
	}

	cmd.Flags().String("tenant", "", "Tenant the findings belong to")
	cmd.Flags().String("asset", "", "Asset the report was produced for")
	cmd.Flags().Bool("reimport", false, "Reconcile against the previous scan of the same tool")
	return cmd
}

func renderBatchResult(res dtos.BatchIngestResult) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "Action", "Finding", "Strategy", "Matched by", "Error"})
	for _, item := range res.Items {
		if item.Result == nil {
			tw.AppendRow(table.Row{item.Index, "", "", "", "", item.Error})
			continue
		}
		matchedBy := ""
		if item.Result.MatchedBy != nil {
			matchedBy = string(*item.Result.MatchedBy)
		}
		tw.AppendRow(table.Row{item.Index, item.Result.Action, item.Result.FindingID, item.Result.StrategyUsed, matchedBy, ""})
	}
	tw.AppendFooter(table.Row{"", "succeeded", res.Succeeded, "failed", res.Failed, ""})
	return tw.Render()
}

func renderReconciliation(tool string, res dtos.ReimportResult) string {
	tw := table.NewWriter()
	tw.SetTitle("reimport " + tool)
	tw.AppendHeader(table.Row{"New", "Closed", "Reactivated", "Unchanged"})
	tw.AppendRow(table.Row{res.New, res.Closed, res.Reactivated, res.Unchanged})
	return tw.Render()
}
