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
	"net/http"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/shared"
)

type AdminController struct {
	retentionService shared.RetentionService
	daemonRunner     shared.DaemonRunner
}

func NewAdminController(retentionService shared.RetentionService, daemonRunner shared.DaemonRunner) *AdminController {
	return &AdminController{
		retentionService: retentionService,
		daemonRunner:     daemonRunner,
	}
}

// @Summary Delete the oldest duplicates above each asset's limit
// @Tags Admin
// @Success 200 {object} dtos.RetentionResult
// @Router /admin/retention [post]
func (c *AdminController) EnforceRetention(ctx shared.Context) error {
	result, err := c.retentionService.EnforceDuplicateRetention(ctx.Request().Context())
	if err != nil {
		return httpError(err, "could not enforce duplicate retention")
	}
	return ctx.JSON(http.StatusOK, result)
}

// TriggerDaemons runs the daemons named in ?daemons=retention,sla right away, all of them if empty.
func (c *AdminController) TriggerDaemons(ctx shared.Context) error {
	var names []string
	for _, name := range strings.Split(ctx.QueryParam("daemons"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	if err := c.daemonRunner.RunDaemons(ctx.Request().Context(), names...); err != nil {
		return httpError(err, "could not run daemons")
	}
	return ctx.NoContent(http.StatusNoContent)
}
