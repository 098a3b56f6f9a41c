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

package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const zapUpload = `{"site": [{"alerts": [{
	"pluginid": "10202", "alert": "Absence of Anti-CSRF Tokens", "riskcode": "2", "cweid": "352",
	"instances": [{"uri": "https://a.example/login", "method": "POST"}, {"uri": "https://a.example/signup", "method": "POST"}]
}]}]}`

func TestIngestControllerIngest(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()
	params := map[string]string{"tenantID": tenantID.String()}

	t.Run("should answer a created finding with 201", func(t *testing.T) {
		findingID := uuid.New()
		correlationService := mocks.NewCorrelationService(t)
		correlationService.On("Ingest", mock.Anything, mock.Anything, tenantID, mock.MatchedBy(func(req dtos.FindingIngestRequest) bool {
			return req.Title == "SQL Injection" && req.AssetID == assetID
		})).Return(dtos.IngestResult{Action: dtos.IngestActionCreated, FindingID: findingID}, nil)

		body := `{"assetId": "` + assetID.String() + `", "title": "SQL Injection", "sourceTool": "burp"}`
		ctx, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), params)

		require.NoError(t, NewIngestController(correlationService, nil).Ingest(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("should answer an update with 200", func(t *testing.T) {
		correlationService := mocks.NewCorrelationService(t)
		correlationService.On("Ingest", mock.Anything, mock.Anything, tenantID, mock.Anything).Return(dtos.IngestResult{Action: dtos.IngestActionUpdated}, nil)

		body := `{"assetId": "` + assetID.String() + `", "title": "SQL Injection", "sourceTool": "burp"}`
		ctx, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), params)

		require.NoError(t, NewIngestController(correlationService, nil).Ingest(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a finding without a title before it reaches the engine", func(t *testing.T) {
		body := `{"assetId": "` + assetID.String() + `", "sourceTool": "burp"}`
		ctx, _ := newTestContext(http.MethodPost, "/", strings.NewReader(body), params)

		err := NewIngestController(mocks.NewCorrelationService(t), nil).Ingest(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestIngestControllerUpload(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()
	params := map[string]string{"tenantID": tenantID.String(), "assetID": assetID.String()}

	t.Run("should batch ingest every zap alert instance", func(t *testing.T) {
		correlationService := mocks.NewCorrelationService(t)
		correlationService.On("BatchIngest", mock.Anything, tenantID, mock.MatchedBy(func(reqs []dtos.FindingIngestRequest) bool {
			return len(reqs) == 2 && reqs[0].AssetID == assetID && reqs[1].URL == "https://a.example/signup"
		})).Return(dtos.BatchIngestResult{Succeeded: 2})

		ctx, rec := newTestContext(http.MethodPost, "/", strings.NewReader(zapUpload), params)

		require.NoError(t, NewIngestController(correlationService, nil).UploadZAP(ctx))

		var result dtos.BatchIngestResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Succeeded)
	})

	t.Run("should reconcile per source tool when the upload is a reimport", func(t *testing.T) {
		reimportService := mocks.NewReimportService(t)
		reimportService.On("ImportScan", mock.Anything, tenantID, assetID, mock.MatchedBy(func(req dtos.ReimportRequest) bool {
			return req.SourceTool == "zap" && len(req.Findings) == 2
		})).Return(dtos.ImportScanResult{Reconciliation: dtos.ReimportResult{New: 2}}, nil)

		ctx, rec := newTestContext(http.MethodPost, "/?reimport=true", strings.NewReader(zapUpload), params)

		require.NoError(t, NewIngestController(nil, reimportService).UploadZAP(ctx))

		var results map[string]dtos.ImportScanResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		assert.Equal(t, 2, results["zap"].Reconciliation.New)
	})

	t.Run("should reject an unparsable report", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, "/", strings.NewReader(`{"runs": 1}`), params)

		err := NewIngestController(nil, nil).UploadSARIF(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("should reject an empty body", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, "/", strings.NewReader(""), params)

		err := NewIngestController(nil, nil).UploadZAP(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestIngestControllerReimport(t *testing.T) {
	tenantID := uuid.New()
	assetID := uuid.New()

	reimportService := mocks.NewReimportService(t)
	reimportService.On("ImportScan", mock.Anything, tenantID, assetID, mock.MatchedBy(func(req dtos.ReimportRequest) bool {
		return req.SourceTool == "nessus" && len(req.Findings) == 1 && req.Findings[0].AssetID == assetID
	})).Return(dtos.ImportScanResult{}, nil)

	body := `{"sourceTool": "nessus", "findings": [{"title": "Outdated OpenSSH", "sourceTool": "nessus"}]}`
	ctx, rec := newTestContext(http.MethodPost, "/", strings.NewReader(body), map[string]string{"tenantID": tenantID.String(), "assetID": assetID.String()})

	require.NoError(t, NewIngestController(nil, reimportService).Reimport(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}
