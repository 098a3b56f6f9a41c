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

package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

var sourceToolIDFields = map[string][]string{
	"wazuh":         {"alert_id", "id"},
	"defectdojo":    {"finding_id", "id"},
	"nessus":        {"plugin_id", "id"},
	"pentest-tools": {"id", "finding_id"},
	"zap":           {"id", "finding_id"},
	"owasp-zap":     {"id", "finding_id"},
}

// ExtractSourceToolID returns the stable id a tool attaches to a finding, or "" when
// the raw payload carries none.
func ExtractSourceToolID(tool string, raw map[string]any) string {
	if len(raw) == 0 {
		return ""
	}
	fields, ok := sourceToolIDFields[normalizeToolName(tool)]
	if !ok {
		fields = []string{"id"}
	}
	for _, field := range fields {
		if v, ok := raw[field]; ok {
			if id := stringifyID(v); id != "" {
				return id
			}
		}
	}
	return ""
}

func stringifyID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
