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

package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/stretchr/testify/assert"
)

func sha(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestCorrelationKey(t *testing.T) {
	t.Run("should hash the pipe joined lower-cased fields", func(t *testing.T) {
		assert.Equal(t, sha("sqli|/login|username"), CorrelationKey("SQLi", "/login", "username"))
	})

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, CorrelationKey("xss", "https://a/b", "q"), CorrelationKey("xss", "https://a/b", "q"))
	})

	t.Run("should ignore incidental whitespace and casing", func(t *testing.T) {
		assert.Equal(t,
			CorrelationKey("SQL Injection", "/login", "username"),
			CorrelationKey("  sql   injection\n", " /LOGIN ", "Username "),
		)
	})

	t.Run("should differ for different parameters", func(t *testing.T) {
		assert.NotEqual(t, CorrelationKey("sqli", "/login", "username"), CorrelationKey("sqli", "/login", "password"))
	})

	t.Run("should not collide when the separator moves between fields", func(t *testing.T) {
		assert.NotEqual(t, CorrelationKey("a", "b", ""), CorrelationKey("a", "", "b"))
	})
}

func TestCrossToolHash(t *testing.T) {
	assetID := uuid.New()

	t.Run("should hash title, severity and asset", func(t *testing.T) {
		expected := sha("sql injection|high|" + assetID.String())
		assert.Equal(t, expected, CrossToolHash("SQL Injection", dtos.SeverityHigh, assetID.String()))
	})

	t.Run("should differ per asset", func(t *testing.T) {
		assert.NotEqual(t,
			CrossToolHash("SQL Injection", dtos.SeverityHigh, assetID.String()),
			CrossToolHash("SQL Injection", dtos.SeverityHigh, uuid.NewString()),
		)
	})
}

func TestFindingKeys(t *testing.T) {
	assetID := uuid.New()

	t.Run("should fall back to the title when no vulnerability type is given", func(t *testing.T) {
		corr, cross := FindingKeys(dtos.FindingIngestRequest{
			AssetID:   assetID,
			Title:     "SQLi",
			URL:       "/login",
			Parameter: "username",
		}, dtos.SeverityHigh)

		assert.Equal(t, CorrelationKey("SQLi", "/login", "username"), corr)
		assert.Equal(t, CrossToolHash("SQLi", dtos.SeverityHigh, assetID.String()), cross)
	})

	t.Run("should prefer the vulnerability type", func(t *testing.T) {
		corr, _ := FindingKeys(dtos.FindingIngestRequest{
			AssetID:           assetID,
			Title:             "SQL Injection in login form",
			VulnerabilityType: "sqli",
			URL:               "/login",
			Parameter:         "username",
		}, dtos.SeverityHigh)

		assert.Equal(t, CorrelationKey("sqli", "/login", "username"), corr)
	})
}
