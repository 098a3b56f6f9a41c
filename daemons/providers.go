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
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	RetentionDaemon       = "retention"
	SLADaemon             = "sla"
	ExceptionExpiryDaemon = "exception-expiry"
)

// DaemonRunner schedules the background jobs. Scheduled runs only happen on the leader,
// explicit runs through RunDaemons happen everywhere.
type DaemonRunner struct {
	configService shared.ConfigService
	leaderElector shared.LeaderElector

	cron    *cron.Cron
	daemons map[string]*daemon
	ctx     context.Context
	cancel  context.CancelFunc
	now     func() time.Time
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	configService shared.ConfigService,
	leaderElector shared.LeaderElector,
	retentionService shared.RetentionService,
	slaService shared.SLAService,
	governanceService shared.GovernanceService,
) *DaemonRunner {
	ctx, cancel := context.WithCancel(context.Background())
	runner := &DaemonRunner{
		configService: configService,
		leaderElector: leaderElector,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		ctx:           ctx,
		cancel:        cancel,
		now:           time.Now,
	}

	runner.daemons = map[string]*daemon{
		RetentionDaemon: {
			name:        RetentionDaemon,
			schedule:    scheduleFromEnv("DAEMON_RETENTION_SCHEDULE", "0 3 * * *"),
			minInterval: 12 * time.Hour,
			timeout:     time.Hour,
			duration:    monitoring.RetentionDaemonDuration,
			run:         retentionDaemon(retentionService),
		},
		SLADaemon: {
			name:        SLADaemon,
			schedule:    scheduleFromEnv("DAEMON_SLA_SCHEDULE", "@every 1h"),
			minInterval: 30 * time.Minute,
			timeout:     30 * time.Minute,
			duration:    monitoring.SLADaemonDuration,
			run:         slaDaemon(slaService),
		},
		ExceptionExpiryDaemon: {
			name:        ExceptionExpiryDaemon,
			schedule:    scheduleFromEnv("DAEMON_EXCEPTION_EXPIRY_SCHEDULE", "@every 15m"),
			minInterval: 5 * time.Minute,
			timeout:     15 * time.Minute,
			duration:    monitoring.ExceptionExpiryDaemonDuration,
			run:         exceptionExpiryDaemon(governanceService),
		},
	}
	return runner
}

// Names returns the registered daemon names in a stable order.
func (runner *DaemonRunner) Names() []string {
	names := make([]string, 0, len(runner.daemons))
	for name := range runner.daemons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (runner *DaemonRunner) tick(d *daemon) {
	if !runner.leaderElector.IsLeader() {
		slog.Debug("not the leader - skipping daemon", "daemon", d.name)
		return
	}
	if !d.due(runner.configService, runner.now()) {
		slog.Debug("daemon ran recently - skipping", "daemon", d.name)
		return
	}
	// errors are reported inside execute
	_, _ = d.execute(runner.ctx, runner.configService)
}

// Start registers every daemon with the cron scheduler.
func (runner *DaemonRunner) Start() {
	for _, name := range runner.Names() {
		d := runner.daemons[name]
		if _, err := runner.cron.AddFunc(d.schedule, func() { runner.tick(d) }); err != nil {
			monitoring.Alert(fmt.Sprintf("invalid schedule %q for daemon %s", d.schedule, d.name), err)
			continue
		}
		slog.Info("scheduled daemon", "daemon", d.name, "schedule", d.schedule)
	}
	runner.cron.Start()
}

// Stop cancels running daemons and waits for them to return.
func (runner *DaemonRunner) Stop() {
	runner.cancel()
	<-runner.cron.Stop().Done()
}

// RunDaemons runs the named daemons concurrently and right away, all of them if no name is given.
func (runner *DaemonRunner) RunDaemons(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = runner.Names()
	}

	selected := make([]*daemon, 0, len(names))
	for _, name := range names {
		d, ok := runner.daemons[strings.TrimSpace(name)]
		if !ok {
			return shared.NewValidationError("daemons", fmt.Sprintf("unknown daemon %q, known daemons: %s", name, strings.Join(runner.Names(), ", ")))
		}
		selected = append(selected, d)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, d := range selected {
		g.Go(func() error {
			_, err := d.execute(ctx, runner.configService)
			return err
		})
	}
	return g.Wait()
}

var Module = fx.Module("daemons",
	fx.Provide(fx.Annotate(NewDaemonRunner, fx.As(fx.Self()), fx.As(new(shared.DaemonRunner)))),
	fx.Invoke(func(lc fx.Lifecycle, runner *DaemonRunner) {
		lc.Append(fx.StartStopHook(runner.Start, runner.Stop))
	}),
)
