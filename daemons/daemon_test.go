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
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type runnerFixture struct {
	configService     *mocks.ConfigService
	leaderElector     *mocks.LeaderElector
	retentionService  *mocks.RetentionService
	slaService        *mocks.SLAService
	governanceService *mocks.GovernanceService
	runner            *DaemonRunner
}

func newRunnerFixture(t *testing.T) runnerFixture {
	c := runnerFixture{
		configService:     mocks.NewConfigService(t),
		leaderElector:     mocks.NewLeaderElector(t),
		retentionService:  mocks.NewRetentionService(t),
		slaService:        mocks.NewSLAService(t),
		governanceService: mocks.NewGovernanceService(t),
	}
	c.runner = NewDaemonRunner(c.configService, c.leaderElector, c.retentionService, c.slaService, c.governanceService)
	return c
}

func TestRunDaemons(t *testing.T) {
	t.Run("should reject unknown daemon names", func(t *testing.T) {
		c := newRunnerFixture(t)

		err := c.runner.RunDaemons(t.Context(), "retention", "vulndb")
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("should run only the named daemon and record the run", func(t *testing.T) {
		c := newRunnerFixture(t)
		c.retentionService.On("EnforceDuplicateRetention", mock.Anything).Return(dtos.RetentionResult{Processed: 2, Deleted: 3}, nil)
		c.configService.On("SetJSONConfig", "daemons.retention.lastRun", mock.Anything).Return(nil)

		assert.NoError(t, c.runner.RunDaemons(t.Context(), RetentionDaemon))
	})

	t.Run("should run every daemon and report a failure without recording it", func(t *testing.T) {
		c := newRunnerFixture(t)
		c.retentionService.On("EnforceDuplicateRetention", mock.Anything).Return(dtos.RetentionResult{}, nil)
		c.slaService.On("CheckViolations", mock.Anything).Return(dtos.SLACheckResult{}, errors.New("connection reset"))
		c.governanceService.On("ReactivateExpiredExceptions", mock.Anything).Return(dtos.ExceptionExpiryResult{}, nil)
		c.configService.On("SetJSONConfig", "daemons.retention.lastRun", mock.Anything).Return(nil)
		c.configService.On("SetJSONConfig", "daemons.exception-expiry.lastRun", mock.Anything).Return(nil)

		err := c.runner.RunDaemons(t.Context())
		assert.ErrorContains(t, err, "connection reset")
		c.configService.AssertNotCalled(t, "SetJSONConfig", "daemons.sla.lastRun", mock.Anything)
	})
}

func TestTick(t *testing.T) {
	t.Run("should do nothing on a follower", func(t *testing.T) {
		c := newRunnerFixture(t)
		c.leaderElector.On("IsLeader").Return(false)

		c.runner.tick(c.runner.daemons[SLADaemon])
	})

	t.Run("should skip a daemon another instance ran recently", func(t *testing.T) {
		c := newRunnerFixture(t)
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		c.runner.now = func() time.Time { return now }
		c.leaderElector.On("IsLeader").Return(true)
		c.configService.On("GetJSONConfig", "daemons.sla.lastRun", mock.Anything).Run(func(args mock.Arguments) {
			_ = json.Unmarshal([]byte(`{"time": "2026-03-01T11:50:00Z"}`), args.Get(1))
		}).Return(nil)

		c.runner.tick(c.runner.daemons[SLADaemon])
	})

	t.Run("should run a daemon that never ran before", func(t *testing.T) {
		c := newRunnerFixture(t)
		c.leaderElector.On("IsLeader").Return(true)
		c.configService.On("GetJSONConfig", "daemons.exception-expiry.lastRun", mock.Anything).Return(gorm.ErrRecordNotFound)
		c.governanceService.On("ReactivateExpiredExceptions", mock.Anything).Return(dtos.ExceptionExpiryResult{Reactivated: 1}, nil)
		c.configService.On("SetJSONConfig", "daemons.exception-expiry.lastRun", mock.Anything).Return(nil)

		c.runner.tick(c.runner.daemons[ExceptionExpiryDaemon])
	})
}

func TestNames(t *testing.T) {
	c := newRunnerFixture(t)
	assert.Equal(t, []string{ExceptionExpiryDaemon, RetentionDaemon, SLADaemon}, c.runner.Names())
}
