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

package daemons

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/prometheus/client_golang/prometheus"
)

// daemon is a single background job. Runs of the same daemon never overlap.
type daemon struct {
	name        string
	schedule    string
	minInterval time.Duration
	timeout     time.Duration
	duration    prometheus.Histogram
	run         func(ctx context.Context) error

	running sync.Mutex
}

func scheduleFromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func lastRunKey(name string) string {
	return "daemons." + name + ".lastRun"
}

func getLastRun(configService shared.ConfigService, name string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(lastRunKey(name), &lastRun)
	if shared.IsNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		slog.Error("could not get last run time", "err", err, "daemon", name)
		return time.Time{}, err
	}
	return lastRun.Time, nil
}

func markRun(configService shared.ConfigService, name string, at time.Time) error {
	return configService.SetJSONConfig(lastRunKey(name), struct {
		Time time.Time `json:"time"`
	}{
		Time: at,
	})
}

// execute runs the daemon once and records its duration and the time of the run.
// It returns false without running when the previous run is still in progress.
func (d *daemon) execute(ctx context.Context, configService shared.ConfigService) (bool, error) {
	if !d.running.TryLock() {
		slog.Warn("daemon is still running, skipping", "daemon", d.name)
		return false, nil
	}
	defer d.running.Unlock()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	slog.Info("starting daemon", "daemon", d.name)

	err := d.run(ctx)
	d.duration.Observe(time.Since(start).Minutes())
	if err != nil {
		monitoring.Alert("daemon "+d.name+" failed", err)
		return true, err
	}

	if err := markRun(configService, d.name, start); err != nil {
		slog.Error("could not mark daemon run", "daemon", d.name, "err", err)
	}
	slog.Info("daemon finished", "daemon", d.name, "duration", time.Since(start))
	return true, nil
}

// due reports whether the last run, possibly done by another instance, is older than minInterval.
func (d *daemon) due(configService shared.ConfigService, now time.Time) bool {
	lastRun, err := getLastRun(configService, d.name)
	if err != nil {
		return false
	}
	return now.Sub(lastRun) >= d.minInterval
}
