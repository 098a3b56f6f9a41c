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
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/database/models"
	"github.com/l3montree-dev/devguard-vlm/dtos"
	"github.com/l3montree-dev/devguard-vlm/mocks"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target string, body io.Reader, params map[string]string) (shared.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	ctx.SetParamNames(names...)
	ctx.SetParamValues(values...)
	return ctx, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected an echo.HTTPError, got %v", err)
	return he.Code
}

func TestFindingControllerPatch(t *testing.T) {
	tenantID := uuid.New()
	findingID := uuid.New()
	params := map[string]string{"tenantID": tenantID.String(), "findingID": findingID.String()}

	t.Run("should pass the decoded keys and the actor to the governance service", func(t *testing.T) {
		governanceService := mocks.NewGovernanceService(t)
		governanceService.On("ApplyGovernanceEdit", mock.Anything, tenantID, findingID, mock.MatchedBy(func(p dtos.FindingPatch) bool {
			return slices.Equal(p.Keys(), []string{"justification", "statusVlm"}) && *p.StatusVLM == dtos.VLMStatusInactiveFalsePositive
		}), "alice").Return(models.Finding{Model: models.Model{ID: findingID}, StatusVLM: dtos.VLMStatusInactiveFalsePositive}, nil)

		ctx, rec := newTestContext(http.MethodPatch, "/", strings.NewReader(`{"statusVlm": "INACTIVE_FALSE_POSITIVE", "justification": "test fixture"}`), params)
		shared.SetActor(ctx, "alice")

		c := NewFindingController(nil, governanceService, nil)
		require.NoError(t, c.Patch(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var dto dtos.FindingDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, findingID, dto.ID)
		assert.Equal(t, dtos.VLMStatusInactiveFalsePositive, dto.StatusVLM)
	})

	t.Run("should answer an illegal transition with 422 and the allowed targets", func(t *testing.T) {
		governanceService := mocks.NewGovernanceService(t)
		governanceService.On("ApplyGovernanceEdit", mock.Anything, tenantID, findingID, mock.Anything, mock.Anything).Return(models.Finding{}, &shared.IllegalTransition{
			From:    dtos.VLMStatusInactiveMitigated,
			To:      dtos.VLMStatusUnderReview,
			Allowed: []dtos.VLMStatus{dtos.VLMStatusActive},
		})

		ctx, _ := newTestContext(http.MethodPatch, "/", strings.NewReader(`{"statusVlm": "UNDER_REVIEW"}`), params)

		err := NewFindingController(nil, governanceService, nil).Patch(ctx)
		assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))

		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		body, ok := he.Message.(echo.Map)
		require.True(t, ok)
		assert.Equal(t, []dtos.VLMStatus{dtos.VLMStatusActive}, body["allowed"])
	})

	t.Run("should answer an immutable field edit with 422", func(t *testing.T) {
		governanceService := mocks.NewGovernanceService(t)
		governanceService.On("ApplyGovernanceEdit", mock.Anything, tenantID, findingID, mock.Anything, mock.Anything).Return(models.Finding{}, &shared.ImmutableFieldViolation{Fields: []string{"rawTitle"}})

		ctx, _ := newTestContext(http.MethodPatch, "/", strings.NewReader(`{"rawTitle": "x"}`), params)

		err := NewFindingController(nil, governanceService, nil).Patch(ctx)
		assert.Equal(t, http.StatusUnprocessableEntity, httpStatus(t, err))
	})

	t.Run("should reject a malformed finding id", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPatch, "/", strings.NewReader(`{}`), map[string]string{"tenantID": tenantID.String(), "findingID": "nope"})

		err := NewFindingController(nil, nil, nil).Patch(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestFindingControllerBulkEdit(t *testing.T) {
	tenantID := uuid.New()
	params := map[string]string{"tenantID": tenantID.String()}

	t.Run("should answer a cross asset bulk edit with 403", func(t *testing.T) {
		governanceService := mocks.NewGovernanceService(t)
		governanceService.On("BulkEdit", mock.Anything, tenantID, mock.Anything, mock.Anything, mock.Anything).Return(nil, &shared.CrossAssetBulkEditForbidden{AssetIDs: []string{"a", "b"}})

		body := `{"findingIds": ["` + uuid.NewString() + `", "` + uuid.NewString() + `"], "patch": {"isVerified": true}}`
		ctx, _ := newTestContext(http.MethodPost, "/", strings.NewReader(body), params)

		err := NewFindingController(nil, governanceService, nil).BulkEdit(ctx)
		assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
	})

	t.Run("should reject a request without finding ids before calling the service", func(t *testing.T) {
		ctx, _ := newTestContext(http.MethodPost, "/", strings.NewReader(`{"findingIds": [], "patch": {"isVerified": true}}`), params)

		err := NewFindingController(nil, mocks.NewGovernanceService(t), nil).BulkEdit(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestFindingControllerRead(t *testing.T) {
	tenantID := uuid.New()
	findingID := uuid.New()
	params := map[string]string{"tenantID": tenantID.String(), "findingID": findingID.String()}

	t.Run("should answer a missing finding with 404", func(t *testing.T) {
		findingService := mocks.NewFindingService(t)
		findingService.On("Read", mock.Anything, tenantID, findingID).Return(models.Finding{}, shared.NewNotFound("finding", findingID.String()))

		ctx, _ := newTestContext(http.MethodGet, "/", nil, params)

		err := NewFindingController(findingService, nil, nil).Read(ctx)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})

	t.Run("should answer a store failure with 500", func(t *testing.T) {
		findingService := mocks.NewFindingService(t)
		findingService.On("Read", mock.Anything, tenantID, findingID).Return(models.Finding{}, &shared.StoreError{Op: "read finding", Err: errors.New("connection refused")})

		ctx, _ := newTestContext(http.MethodGet, "/", nil, params)

		err := NewFindingController(findingService, nil, nil).Read(ctx)
		assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	})
}

func TestFindingControllerMerge(t *testing.T) {
	tenantID := uuid.New()
	duplicateID := uuid.New()
	originalID := uuid.New()

	routerService := mocks.NewPersistenceRouterService(t)
	routerService.On("MergeDuplicate", mock.Anything, tenantID, duplicateID, "bob").Return(models.Finding{Model: models.Model{ID: originalID}, StatusVLM: dtos.VLMStatusUnderReview}, nil)

	ctx, rec := newTestContext(http.MethodPost, "/", nil, map[string]string{"tenantID": tenantID.String(), "findingID": duplicateID.String()})
	shared.SetActor(ctx, "bob")

	require.NoError(t, NewFindingController(nil, nil, routerService).Merge(ctx))

	var dto dtos.FindingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, originalID, dto.ID)
	assert.Equal(t, dtos.VLMStatusUnderReview, dto.StatusVLM)
}
