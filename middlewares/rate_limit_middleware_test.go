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

package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantContext(tenantID string) echo.Context {
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("tenantID")
	ctx.SetParamValues(tenantID)
	return ctx
}

func TestTenantRateLimitMiddleware(t *testing.T) {
	handler := func(ctx echo.Context) error { return ctx.NoContent(http.StatusCreated) }

	t.Run("should pass everything through when disabled", func(t *testing.T) {
		limited := TenantRateLimitMiddleware(0, 0)(handler)
		tenant := uuid.NewString()
		for range 10 {
			assert.NoError(t, limited(tenantContext(tenant)))
		}
	})

	t.Run("should reject requests beyond the burst of a tenant", func(t *testing.T) {
		limited := TenantRateLimitMiddleware(0.001, 1)(handler)
		tenant := uuid.NewString()

		assert.NoError(t, limited(tenantContext(tenant)))

		ctx := tenantContext(tenant)
		err := limited(ctx)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
		assert.Equal(t, "1", ctx.Response().Header().Get("Retry-After"))
	})

	t.Run("should keep separate buckets per tenant", func(t *testing.T) {
		limited := TenantRateLimitMiddleware(0.001, 1)(handler)

		assert.NoError(t, limited(tenantContext(uuid.NewString())))
		assert.NoError(t, limited(tenantContext(uuid.NewString())))
	})

	t.Run("should reject malformed tenant ids", func(t *testing.T) {
		err := TenantRateLimitMiddleware(1, 1)(handler)(tenantContext("nope"))
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestIngestRateLimitFromEnv(t *testing.T) {
	t.Run("should be disabled without a limit", func(t *testing.T) {
		t.Setenv("INGEST_RATE_LIMIT", "")
		perSecond, burst := IngestRateLimitFromEnv()
		assert.Zero(t, perSecond)
		assert.Zero(t, burst)
	})

	t.Run("should default the burst to twice the rate", func(t *testing.T) {
		t.Setenv("INGEST_RATE_LIMIT", "5")
		t.Setenv("INGEST_RATE_BURST", "")
		perSecond, burst := IngestRateLimitFromEnv()
		assert.Equal(t, 5.0, perSecond)
		assert.Equal(t, 10, burst)
	})
}
