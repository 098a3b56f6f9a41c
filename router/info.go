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

package router

import (
	"database/sql"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
)

// filled at build time through -ldflags
var (
	Version   = "dev"
	Commit    string
	BuildDate string
)

// InfoResponse is the top-level structure returned by the /info endpoint
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
	HeapAlloc     uint64 `json:"heapAlloc"`
}

// PoolInfo exposes the pgx pool statistics, never credentials.
type PoolInfo struct {
	DBName        string `json:"dbName,omitempty"`
	TotalConns    int    `json:"totalConns"`
	IdleConns     int    `json:"idleConns"`
	AcquiredConns int    `json:"acquiredConns"`
	MaxConns      int    `json:"maxConns"`
}

type DatabaseInfo struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}

func pingDB(db shared.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlDB, sqlDB.Ping()
}

func infoHandler(db shared.DB, pool *pgxpool.Pool) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				HeapAlloc:     mem.HeapAlloc,
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(StartedAt).Seconds()),
			},
		}
		resp.Process.Hostname, _ = os.Hostname()

		if _, err := pingDB(db); err != nil {
			msg := "database ping failed"
			resp.Database = DatabaseInfo{Status: "unhealthy", Error: &msg}
			return ctx.JSON(503, resp)
		}
		resp.Database.Status = "healthy"

		if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
			resp.Database.MigrationVersion = &ver
			resp.Database.MigrationDirty = &dirty
		} else {
			msg := err.Error()
			resp.Database.MigrationError = &msg
		}

		if pool != nil {
			stats := pool.Stat()
			resp.Database.Pool = &PoolInfo{
				DBName:        pool.Config().ConnConfig.Database,
				TotalConns:    int(stats.TotalConns()),
				IdleConns:     int(stats.IdleConns()),
				AcquiredConns: int(stats.AcquiredConns()),
				MaxConns:      int(stats.MaxConns()),
			}
		}
		return ctx.JSON(200, resp)
	}
}
