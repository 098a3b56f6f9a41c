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
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/monitoring"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/labstack/echo/v4"
)

// maxReportSize bounds uploaded scanner reports.
const maxReportSize = 64 << 20

// httpError maps the domain error taxonomy onto HTTP status codes.
// Everything outside the taxonomy is treated as a store failure and reported.
func httpError(err error, message string) error {
	var transition *shared.IllegalTransition
	var immutable *shared.ImmutableFieldViolation

	switch {
	case errors.As(err, &transition):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"message": err.Error(),
			"from":    transition.From,
			"to":      transition.To,
			"allowed": transition.Allowed,
		}).WithInternal(err)
	case errors.As(err, &immutable):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"message": err.Error(),
			"fields":  immutable.Fields,
		}).WithInternal(err)
	case shared.IsUnprocessable(err):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).WithInternal(err)
	case shared.IsValidationError(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	case shared.IsForbidden(err):
		return echo.NewHTTPError(http.StatusForbidden, err.Error()).WithInternal(err)
	case shared.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).WithInternal(err)
	}

	monitoring.Alert(message, err)
	return echo.NewHTTPError(http.StatusInternalServerError, message).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, v any) error {
	if err := ctx.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse request body").WithInternal(err)
	}
	if err := shared.V.Struct(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
	}
	return nil
}

func readReport(ctx shared.Context) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxReportSize))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "could not read report").WithInternal(err)
	}
	if len(data) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "empty report")
	}
	return data, nil
}

// pathID reads a uuid path parameter through one of the shared getters.
func pathID(ctx shared.Context, get func(shared.Context) (uuid.UUID, error), name string) (uuid.UUID, error) {
	id, err := get(ctx)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" id").WithInternal(err)
	}
	return id, nil
}
