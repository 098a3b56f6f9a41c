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

var FindingsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vlm_findings_ingested_total",
	Help: "Ingested findings by upsert action and deduplication strategy",
}, []string{"action", "strategy"})

var IngestConflictRetries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vlm_ingest_conflict_retries_total",
	Help: "Ingests retried after losing a race on a unique index",
})

var PersistenceRoutes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vlm_persistence_routes_total",
	Help: "Persistence router decisions by status",
}, []string{"status"})

var ReimportTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vlm_reimport_transitions_total",
	Help: "Findings closed, reactivated, unchanged or new after a recurring scan",
}, []string{"kind"})

var GovernanceEdits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vlm_governance_edits_total",
	Help: "Governance edits by outcome",
}, []string{"outcome"})

var IngestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "vlm_ingest_duration_seconds",
	Help:    "Duration of a single finding ingest in seconds",
	Buckets: prometheus.DefBuckets,
})

var IngestRateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vlm_ingest_rate_limited_total",
	Help: "Ingest requests rejected by the per tenant rate limit",
})
