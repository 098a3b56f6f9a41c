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
package databasetypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type JSONB map[string]any

// Value Marshal
func (jsonField JSONB) Value() (driver.Value, error) {
	if jsonField == nil {
		return nil, nil
	}
	b, err := json.Marshal(jsonField)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan Unmarshal
func (jsonField *JSONB) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*jsonField = nil
		return nil
	case []byte:
		return json.Unmarshal(v, jsonField)
	case string:
		return json.Unmarshal([]byte(v), jsonField)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
