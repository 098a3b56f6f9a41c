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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRenderBatchResult(t *testing.T) {
	t.Run("should render failed items with their error", func(t *testing.T) {
		id := uuid.New()
		out := renderBatchResult(dtos.BatchIngestResult{
			Succeeded: 1,
			Failed:    1,
			Items: []dtos.BatchIngestItem{
				{Index: 0, Result: &dtos.IngestResult{Action: dtos.IngestActionCreated, FindingID: id, StrategyUsed: dtos.StrategyHybrid}},
				{Index: 1, Error: "title is required"},
			},
		})

		assert.Contains(t, out, id.String())
		assert.Contains(t, out, "CREATED")
		assert.Contains(t, out, "title is required")
	})
}

func TestUUIDFlag(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("tenant", "", "")
		return cmd
	}

	t.Run("should require the flag", func(t *testing.T) {
		_, err := uuidFlag(newCmd(), "tenant")
		assert.ErrorContains(t, err, "--tenant is required")
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		cmd := newCmd()
		assert.NoError(t, cmd.Flags().Set("tenant", "nope"))
		_, err := uuidFlag(cmd, "tenant")
		assert.ErrorContains(t, err, "invalid --tenant")
	})

	t.Run("should parse valid ids", func(t *testing.T) {
		id := uuid.New()
		cmd := newCmd()
		assert.NoError(t, cmd.Flags().Set("tenant", id.String()))
		parsed, err := uuidFlag(cmd, "tenant")
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	})
}
