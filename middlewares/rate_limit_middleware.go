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
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	maxTrackedTenants = 4096
	limiterIdleTTL    = 10 * time.Minute
)

// IngestRateLimitFromEnv reads INGEST_RATE_LIMIT (requests per second) and INGEST_RATE_BURST.
// A missing or non-positive limit disables rate limiting.
func IngestRateLimitFromEnv() (float64, int) {
	perSecond, err := strconv.ParseFloat(os.Getenv("INGEST_RATE_LIMIT"), 64)
	if err != nil || perSecond <= 0 {
		return 0, 0
	}
	burst, err := strconv.Atoi(os.Getenv("INGEST_RATE_BURST"))
	if err != nil || burst <= 0 {
		burst = max(1, int(perSecond*2))
	}
	slog.Info("ingest rate limit enabled", "perSecond", perSecond, "burst", burst)
	return perSecond, burst
}

// TenantRateLimitMiddleware gives every tenant its own token bucket.
func TenantRateLimitMiddleware(perSecond float64, burst int) shared.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	var mu sync.Mutex
	limiters := expirable.NewLRU[uuid.UUID, *rate.Limiter](maxTrackedTenants, nil, limiterIdleTTL)
	limiterFor := func(tenantID uuid.UUID) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters.Get(tenantID); ok {
			return l
		}
		l := rate.NewLimiter(rate.Limit(perSecond), burst)
		limiters.Add(tenantID, l)
		return l
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			tenantID, err := shared.GetTenantID(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid tenant id").WithInternal(err)
			}
			if !limiterFor(tenantID).Allow() {
				monitoring.IngestRateLimited.Inc()
				ctx.Response().Header().Set("Retry-After", "1")
				return echo.NewHTTPError(http.StatusTooManyRequests, "ingest rate limit exceeded")
			}
			return next(ctx)
		}
	}
}
