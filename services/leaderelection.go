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

package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/shared"
)

const (
	leaderElectionKey   = "leaderElection"
	leaderLeaseDuration = 360 * time.Second
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // updated by the election goroutine
	now             func() time.Time
}

var _ shared.LeaderElector = (*databaseLeaderElector)(nil)

func NewDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService:   configService,
		leaderElectorID: uuid.New().String(),
		now:             time.Now,
	}
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

// Run campaigns until the context is cancelled. The lease is renewed well before it expires.
func (e *databaseLeaderElector) Run(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		e.isLeader.Store(isLeader && err == nil)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(randomNumberBetween(60, 179)) * time.Second):
		}
	}
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) makeLeader() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(leaderElectionKey, &config)
	if err != nil {
		slog.Info("could not get leader election config, taking over", "err", err)
		return true, e.makeLeader()
	}

	switch {
	case config.LeaderID == e.leaderElectorID:
		// renew our own lease
		return true, e.makeLeader()
	case e.now().Unix()-config.LastPing > int64(leaderLeaseDuration.Seconds()):
		// the leader probably died
		return true, e.makeLeader()
	}
	return false, nil
}
