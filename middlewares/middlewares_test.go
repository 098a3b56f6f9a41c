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

package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorMiddleware(t *testing.T) {
	t.Run("should store the actor from the header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", nil)
		req.Header.Set(shared.ActorHeader, " alice ")
		ctx := echo.New().NewContext(req, httptest.NewRecorder())

		var called bool
		err := ActorMiddleware()(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "alice", shared.GetActor(ctx))
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should reject requests without an actor", func(t *testing.T) {
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodPatch, "/", nil), httptest.NewRecorder())

		err := ActorMiddleware()(func(ctx echo.Context) error {
			t.Fatal("handler must not be called")
			return nil
		})(ctx)

		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}

func TestAdminTokenMiddleware(t *testing.T) {
	handler := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }

	t.Run("should hide the admin endpoints without a configured token", func(t *testing.T) {
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

		err := AdminTokenMiddleware("")(handler)(ctx)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("should reject a wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
		ctx := echo.New().NewContext(req, httptest.NewRecorder())

		err := AdminTokenMiddleware("secret")(handler)(ctx)
		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should pass the right token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer secret")
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		require.NoError(t, AdminTokenMiddleware("secret")(handler)(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should wrap plain messages into an object", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		ErrorHandler(false)(echo.NewHTTPError(http.StatusNotFound, "finding x not found"), ctx)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "finding x not found", body["message"])
	})

	t.Run("should keep structured messages", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodPatch, "/", nil), rec)

		ErrorHandler(false)(echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{"message": "illegal", "allowed": []string{"ACTIVE"}}), ctx)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []any{"ACTIVE"}, body["allowed"])
	})

	t.Run("should hide unknown errors behind a 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		ErrorHandler(false)(errors.New("pq: connection refused"), ctx)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestRecoverMiddleware(t *testing.T) {
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := recovermiddleware()(func(ctx echo.Context) error {
		panic("boom")
	})(ctx)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
