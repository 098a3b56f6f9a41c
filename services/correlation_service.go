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
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	databasetypes "github.com/l3montree-dev/devguard-vlm/database/types"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/normalize"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/l3montree-dev/devguard-vlm/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("github.com/l3montree-dev/devguard-vlm/services")

// normalizedFinding is an ingest request with severity, keys and strategy resolved.
type normalizedFinding struct {
	req            dtos.FindingIngestRequest
	severity       dtos.Severity
	cvssScore      *float64
	sourceToolID   string
	correlationKey string
	crossToolHash  string
	strategy       dtos.DeduplicationStrategy
}

type matcher struct {
	strategy dtos.DeduplicationStrategy
	find     func(tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (models.Finding, error)
}

type correlationService struct {
	findingCreator
	locker           shared.FingerprintLocker
	strategySelector *normalize.StrategySelector
	matchers         []matcher
	now              func() time.Time
}

var _ shared.CorrelationService = (*correlationService)(nil)

func NewCorrelationService(findingRepository shared.FindingRepository, findingEventRepository shared.FindingEventRepository, ruleService shared.GovernanceRuleService, locker shared.FingerprintLocker, strategySelector *normalize.StrategySelector) *correlationService {
	s := &correlationService{
		findingCreator: findingCreator{
			findingRepository:      findingRepository,
			findingEventRepository: findingEventRepository,
			ruleService:            ruleService,
		},
		locker:           locker,
		strategySelector: strategySelector,
		now:              time.Now,
	}
	// order matters: the first hit wins
	s.matchers = []matcher{
		{strategy: dtos.StrategySourceToolID, find: s.findBySourceToolID},
		{strategy: dtos.StrategyCrossToolHash, find: s.findByCrossToolHash},
		{strategy: dtos.StrategyCorrelationKey, find: s.findByCorrelationKey},
	}
	return s
}

func (s *correlationService) findBySourceToolID(tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (models.Finding, error) {
	if n.sourceToolID == "" {
		return models.Finding{}, gorm.ErrRecordNotFound
	}
	return s.findingRepository.FindBySourceToolID(tx, tenantID, n.req.SourceTool, n.sourceToolID)
}

func (s *correlationService) findByCrossToolHash(tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (models.Finding, error) {
	return s.findingRepository.FindByDeduplicationHash(tx, tenantID, n.req.AssetID, n.crossToolHash)
}

func (s *correlationService) findByCorrelationKey(tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (models.Finding, error) {
	return s.findingRepository.FindByCorrelationKey(tx, tenantID, n.req.AssetID, n.correlationKey)
}

func normalizeIngestRequest(selector *normalize.StrategySelector, req dtos.FindingIngestRequest) (normalizedFinding, error) {
	if err := shared.V.Struct(req); err != nil {
		return normalizedFinding{}, shared.NewValidationError("", err.Error())
	}
	if strings.TrimSpace(req.Title) == "" {
		return normalizedFinding{}, shared.NewValidationError("title", "must not be blank")
	}
	if req.Status != nil && *req.Status == "" {
		req.Status = nil
	}

	n := normalizedFinding{
		req:          req,
		cvssScore:    req.CVSSScore,
		sourceToolID: strings.TrimSpace(req.SourceToolID),
		strategy:     selector.Select(req.SourceTool),
	}
	if n.sourceToolID == "" {
		n.sourceToolID = normalize.ExtractSourceToolID(req.SourceTool, req.RawPayload)
	}

	if n.cvssScore == nil && req.CVSSVector != nil && *req.CVSSVector != "" {
		score, err := normalize.CVSSBaseScore(*req.CVSSVector)
		if err != nil {
			slog.Warn("ignoring invalid cvss vector", "vector", *req.CVSSVector, "err", err)
		} else {
			n.cvssScore = &score
		}
	}

	if strings.TrimSpace(req.Severity) == "" && n.cvssScore != nil {
		n.severity = normalize.SeverityFromCVSS(*n.cvssScore)
	} else {
		n.severity = normalize.NormalizeSeverity(req.Severity)
	}

	n.correlationKey, n.crossToolHash = normalize.FindingKeys(req, n.severity)
	return n, nil
}

// Ingest matches the finding against the stored findings of the tenant and either
// updates the match or creates a new finding. Passing a tx runs the ingest inside it.
func (s *correlationService) Ingest(ctx context.Context, tx shared.DB, tenantID uuid.UUID, req dtos.FindingIngestRequest) (dtos.IngestResult, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "correlation.Ingest", trace.WithAttributes(
		attribute.String("vlm.tenant_id", tenantID.String()),
		attribute.String("vlm.asset_id", req.AssetID.String()),
		attribute.String("vlm.source_tool", req.SourceTool),
	))
	defer func() {
		monitoring.IngestDuration.Observe(time.Since(start).Seconds())
		span.End()
	}()

	result, err := s.ingest(ctx, tx, tenantID, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}
	span.SetAttributes(
		attribute.String("vlm.action", string(result.Action)),
		attribute.String("vlm.strategy", string(result.StrategyUsed)),
	)
	return result, nil
}

func (s *correlationService) ingest(ctx context.Context, tx shared.DB, tenantID uuid.UUID, req dtos.FindingIngestRequest) (dtos.IngestResult, error) {
	n, err := normalizeIngestRequest(s.strategySelector, req)
	if err != nil {
		return dtos.IngestResult{}, err
	}

	unlock, err := s.locker.Lock(ctx, fmt.Sprintf("%s|%s|%s", tenantID, req.AssetID, n.correlationKey))
	if err != nil {
		return dtos.IngestResult{}, fmt.Errorf("could not acquire fingerprint lock: %w", err)
	}
	defer unlock()

	result, err := s.ingestOnce(ctx, tx, tenantID, n, false)
	if err != nil && database.IsDuplicateKeyError(err) {
		// another ingest created the finding between our lookup and insert
		monitoring.IngestConflictRetries.Inc()
		slog.Info("retrying ingest after unique conflict", "tenantID", tenantID, "assetID", req.AssetID, "correlationKey", n.correlationKey)
		result, err = s.ingestOnce(ctx, tx, tenantID, n, true)
	}
	if err != nil {
		return dtos.IngestResult{}, err
	}

	monitoring.FindingsIngested.WithLabelValues(string(result.Action), string(result.StrategyUsed)).Inc()
	return result, nil
}

func (s *correlationService) ingestOnce(ctx context.Context, tx shared.DB, tenantID uuid.UUID, n normalizedFinding, retry bool) (dtos.IngestResult, error) {
	var result dtos.IngestResult
	run := func(tx shared.DB) error {
		var err error
		result, err = s.matchAndWrite(ctx, tx, tenantID, n, retry)
		return err
	}

	var err error
	if tx != nil {
		// savepoint, keeps the caller transaction usable after a conflict
		err = tx.Transaction(run)
	} else {
		err = s.findingRepository.Transaction(run)
	}
	return result, err
}

func (s *correlationService) matchAndWrite(ctx context.Context, tx shared.DB, tenantID uuid.UUID, n normalizedFinding, retry bool) (dtos.IngestResult, error) {
	for _, m := range s.matchers {
		// the retry also consults the correlation key, the only unique index a racing insert can hit
		if !n.strategy.Permits(m.strategy) && !(retry && m.strategy == dtos.StrategyCorrelationKey) {
			continue
		}
		existing, err := m.find(tx, tenantID, n)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return dtos.IngestResult{}, shared.WrapStoreError(err, "match finding", "finding", "")
		}

		if err := s.update(tx, &existing, n); err != nil {
			return dtos.IngestResult{}, err
		}
		matchedBy := m.strategy
		return dtos.IngestResult{
			Action:       dtos.IngestActionUpdated,
			FindingID:    existing.ID,
			StrategyUsed: n.strategy,
			MatchedBy:    &matchedBy,
		}, nil
	}

	if retry {
		return dtos.IngestResult{}, shared.NewValidationError("correlationKey", "finding conflicts with an existing finding that could not be matched")
	}

	finding, err := s.create(ctx, tx, tenantID, n)
	if err != nil {
		return dtos.IngestResult{}, err
	}
	return dtos.IngestResult{
		Action:       dtos.IngestActionCreated,
		FindingID:    finding.ID,
		StrategyUsed: n.strategy,
	}, nil
}

// update refreshes the tool owned fields. Provenance, the governed status and analyst edits stay.
func (s *correlationService) update(tx shared.DB, f *models.Finding, n normalizedFinding) error {
	req := n.req
	f.Title = req.Title
	f.Description = req.Description
	f.SeverityAdjusted = n.severity
	f.CVE = nonBlank(req.CVE)
	f.CVSSScore = n.cvssScore
	f.CVSSVector = nonBlank(req.CVSSVector)
	f.CWE = nonBlank(req.CWE)
	if req.Status != nil {
		f.Status = *req.Status
	}
	if n.sourceToolID != "" {
		f.SourceToolID = &n.sourceToolID
	}
	if req.TestRunID != nil {
		f.TestRunID = req.TestRunID
	}
	if req.RawPayload != nil {
		f.RawPayload = databasetypes.JSONB(req.RawPayload)
	}

	// correlation_key is provenance and stays as created
	// the hash is bound to the asset of the stored finding
	f.DeduplicationHash = normalize.CrossToolHash(req.Title, n.severity, f.AssetID.String())
	f.LastSeenTimestamp = s.now()

	if err := s.findingRepository.Save(tx, f); err != nil {
		return shared.WrapStoreError(err, "update finding", "finding", f.ID.String())
	}

	event := models.NewFindingEvent(*f, models.EventTypeUpdated, models.SystemActor, f.StatusVLM, []string{
		"title", "description", "severityAdjusted", "cve", "cvssScore", "cwe", "lastSeenTimestamp",
	})
	if err := s.findingEventRepository.Create(tx, &event); err != nil {
		return shared.WrapStoreError(err, "create finding event", "finding event", "")
	}
	return nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	return utils.EmptyThenNil(*s)
}

func newFindingFromRequest(tenantID uuid.UUID, n normalizedFinding, now time.Time) models.Finding {
	req := n.req
	controlMapping := req.ControlMapping
	if controlMapping == nil {
		controlMapping = []string{}
	}
	f := models.Finding{
		TenantID:           tenantID,
		AssetID:            req.AssetID,
		RawTitle:           req.Title,
		SeverityOriginal:   n.severity,
		CorrelationKey:     n.correlationKey,
		Title:              req.Title,
		Description:        req.Description,
		SeverityAdjusted:   n.severity,
		CVE:                nonBlank(req.CVE),
		CVSSScore:          n.cvssScore,
		CVSSVector:         nonBlank(req.CVSSVector),
		CWE:                nonBlank(req.CWE),
		VulnerabilityType:  req.VulnerabilityType,
		URL:                req.URL,
		Parameter:          req.Parameter,
		DeduplicationHash:  n.crossToolHash,
		SourceTool:         req.SourceTool,
		Status:             dtos.FindingStatusOpen,
		StatusVLM:          dtos.VLMStatusActive,
		FirstSeenTimestamp: now,
		LastSeenTimestamp:  now,
		TestRunID:          req.TestRunID,
		Tags:               datatypes.JSONSlice[string]{},
		ControlMapping:     datatypes.JSONSlice[string](controlMapping),
		RawPayload:         databasetypes.JSONB(req.RawPayload),
	}
	if n.sourceToolID != "" {
		f.SourceToolID = utils.Ptr(n.sourceToolID)
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.LocationType != "" {
		f.LocationType = utils.Ptr(req.LocationType)
	}
	return f
}

func (s *correlationService) create(ctx context.Context, tx shared.DB, tenantID uuid.UUID, n normalizedFinding) (models.Finding, error) {
	f := newFindingFromRequest(tenantID, n, s.now())
	if err := s.insert(ctx, tx, &f); err != nil {
		return models.Finding{}, err
	}
	return f, nil
}

// findingCreator inserts new findings together with their audit event and the tenant governance rules.
type findingCreator struct {
	findingRepository      shared.FindingRepository
	findingEventRepository shared.FindingEventRepository
	ruleService            shared.GovernanceRuleService
}

func (c findingCreator) insert(ctx context.Context, tx shared.DB, f *models.Finding) error {
	if err := c.findingRepository.Create(tx, f); err != nil {
		// unique conflicts are returned unwrapped so callers can retry
		if database.IsDuplicateKeyError(err) {
			return err
		}
		return shared.WrapStoreError(err, "create finding", "finding", "")
	}

	eventType := models.EventTypeCreated
	if f.IsDuplicate {
		eventType = models.EventTypeDuplicateCreated
	}
	event := models.NewFindingEvent(*f, eventType, models.SystemActor, "", nil)
	if f.OriginalFindingID != nil {
		event.SetArbitraryJSONData(map[string]any{"originalFindingId": f.OriginalFindingID.String()})
	}
	if err := c.findingEventRepository.Create(tx, &event); err != nil {
		return shared.WrapStoreError(err, "create finding event", "finding event", "")
	}
	if f.IsDuplicate {
		return nil
	}

	rule, err := c.ruleService.ApplyToNewFinding(ctx, tx, f)
	if err != nil {
		return err
	}
	if rule != nil {
		slog.Info("governance rule applied", "findingID", f.ID, "rule", rule.Name, "action", rule.Action)
	}
	return nil
}

// BatchIngest ingests each finding in its own transaction. A failing item never aborts the batch.
func (s *correlationService) BatchIngest(ctx context.Context, tenantID uuid.UUID, reqs []dtos.FindingIngestRequest) dtos.BatchIngestResult {
	result := dtos.BatchIngestResult{Items: make([]dtos.BatchIngestItem, 0, len(reqs))}
	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			result.Failed++
			result.Items = append(result.Items, dtos.BatchIngestItem{Index: i, Error: err.Error()})
			continue
		}
		r, err := s.Ingest(ctx, nil, tenantID, req)
		if err != nil {
			slog.Warn("could not ingest finding", "index", i, "tenantID", tenantID, "err", err)
			result.Failed++
			result.Items = append(result.Items, dtos.BatchIngestItem{Index: i, Error: err.Error()})
			continue
		}
		result.Succeeded++
		result.Items = append(result.Items, dtos.BatchIngestItem{Index: i, Result: &r})
	}
	return result
}
