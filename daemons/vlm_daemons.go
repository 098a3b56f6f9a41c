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
	"context"
	"log/slog"

	"github.com/l3montree-dev/devguard-vlm/shared"
)

func retentionDaemon(retentionService shared.RetentionService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		result, err := retentionService.EnforceDuplicateRetention(ctx)
		if err != nil {
			return err
		}
		if result.Deleted > 0 {
			slog.Info("deleted duplicate findings", "originals", result.Processed, "deleted", result.Deleted)
		} else {
			slog.Info("no duplicate findings to delete", "originals", result.Processed)
		}
		return nil
	}
}

func slaDaemon(slaService shared.SLAService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		result, err := slaService.CheckViolations(ctx)
		if err != nil {
			return err
		}
		slog.Info("checked sla", "checked", result.Checked, "violations", result.Violations, "alerted", result.Alerted)
		return nil
	}
}

// exceptionExpiryDaemon reopens risk acceptances whose expiration date passed.
func exceptionExpiryDaemon(governanceService shared.GovernanceService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		result, err := governanceService.ReactivateExpiredExceptions(ctx)
		if err != nil {
			return err
		}
		if result.Reactivated > 0 {
			slog.Info("reactivated expired risk acceptances", "count", result.Reactivated)
		}
		return nil
	}
}
