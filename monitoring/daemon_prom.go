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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RetentionDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vlm_daemon_retention_duration_minutes",
	Help:    "Duration of duplicate retention sweeps in minutes",
	Buckets: prometheus.DefBuckets,
})

var SLADaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vlm_daemon_sla_duration_minutes",
	Help:    "Duration of sla checks in minutes",
	Buckets: prometheus.DefBuckets,
})

var ExceptionExpiryDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vlm_daemon_exception_expiry_duration_minutes",
	Help:    "Duration of exception expiry runs in minutes",
	Buckets: prometheus.DefBuckets,
})

var DuplicatesDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vlm_duplicates_deleted_amount",
	Help: "The total number of duplicate findings deleted by the retention sweep",
})
