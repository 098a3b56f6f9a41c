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

package transformer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZAPReportToIngestRequests(t *testing.T) {
	assetID := uuid.New()

	t.Run("should expand every instance of a site alert into its own request", func(t *testing.T) {
		report := []byte(`{
			"site": [{
				"@name": "https://shop.example.com",
				"alerts": [{
					"pluginid":  "40012",
					"alert":     "Cross Site Scripting (Reflected)",
					"name":      "Cross Site Scripting (Reflected)",
					"riskcode":  "3",
					"desc":      "<p>XSS</p>",
					"solution":  "Encode output",
					"reference": "https://owasp.org",
					"cweid":     "79",
					"instances": [
						{"uri": "https://shop.example.com/search", "method": "GET", "param": "q", "attack": "<script>", "evidence": "<script>"},
						{"uri": "https://shop.example.com/cart", "method": "POST", "param": "item"}
					]
				}]
			}]
		}`)

		reqs, err := ZAPReportToIngestRequests(report, assetID)
		require.NoError(t, err)
		require.Len(t, reqs, 2)

		assert.Equal(t, assetID, reqs[0].AssetID)
		assert.Equal(t, "Cross Site Scripting (Reflected)", reqs[0].Title)
		assert.Equal(t, "HIGH", reqs[0].Severity)
		assert.Equal(t, ZAPSourceTool, reqs[0].SourceTool)
		assert.Equal(t, "40012", reqs[0].SourceToolID)
		assert.Equal(t, "https://shop.example.com/search", reqs[0].URL)
		assert.Equal(t, "q", reqs[0].Parameter)
		assert.Equal(t, dtos.LocationTypeWeb, reqs[0].LocationType)
		require.NotNil(t, reqs[0].CWE)
		assert.Equal(t, "CWE-79", *reqs[0].CWE)
		assert.Contains(t, reqs[0].Description, "**Attack:** <script>")
		assert.Contains(t, reqs[0].Description, "**Solution:** Encode output")

		assert.Equal(t, "https://shop.example.com/cart", reqs[1].URL)
		assert.Equal(t, "item", reqs[1].Parameter)
		assert.Contains(t, reqs[1].Description, "**Attack:** N/A")
	})

	t.Run("should accept a bare alert list and map the risk codes", func(t *testing.T) {
		report := []byte(`{"alerts": [
			{"pluginid": "1", "alert": "a", "riskcode": "2", "url": "https://x/a", "param": "p"},
			{"pluginid": "2", "alert": "b", "riskcode": "1", "cweid": "-1"},
			{"pluginid": "3", "alert": "c", "riskcode": "0"},
			{"pluginid": "4", "alert": "d"}
		]}`)

		reqs, err := ZAPReportToIngestRequests(report, assetID)
		require.NoError(t, err)
		require.Len(t, reqs, 4)
		assert.Equal(t, "MEDIUM", reqs[0].Severity)
		assert.Equal(t, "https://x/a", reqs[0].URL)
		assert.Equal(t, "p", reqs[0].Parameter)
		assert.Equal(t, "LOW", reqs[1].Severity)
		assert.Nil(t, reqs[1].CWE)
		assert.Equal(t, "INFO", reqs[2].Severity)
		assert.Equal(t, "MEDIUM", reqs[3].Severity)
	})

	t.Run("should accept a single alert object", func(t *testing.T) {
		reqs, err := ZAPReportToIngestRequests([]byte(`{"pluginid": "10038", "alert": "CSP Header Not Set", "riskcode": "2"}`), assetID)
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, "CSP Header Not Set", reqs[0].Title)
		assert.Equal(t, "CSP Header Not Set", reqs[0].VulnerabilityType)
	})

	t.Run("should fail for a document without alerts", func(t *testing.T) {
		_, err := ZAPReportToIngestRequests([]byte(`{"foo": "bar"}`), assetID)
		assert.Error(t, err)
	})

	t.Run("should fail for invalid json", func(t *testing.T) {
		_, err := ZAPReportToIngestRequests([]byte(`{`), assetID)
		assert.Error(t, err)
	})
}
