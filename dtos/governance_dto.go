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

package dtos

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImmutableFindingFields are rejected whenever they appear in an edit payload.
var ImmutableFindingFields = []string{
	"correlationKey",
	"rawTitle",
	"severityOriginal",
	"createdAt",
	"id",
	"tenantId",
}

// FindingPatch is a manual governance edit. Only non-nil fields are applied.
type FindingPatch struct {
	TitleUserEdited *string    `json:"titleUserEdited"`
	SeverityManual  *Severity  `json:"severityManual"`
	Description     *string    `json:"description"`
	IsVerified      *bool      `json:"isVerified"`
	IsFalsePositive *bool      `json:"isFalsePositive"`
	RiskAccepted    *bool      `json:"riskAccepted"`
	Justification   *string    `json:"justification"`
	Tags            *[]string  `json:"tags"`
	StatusVLM       *VLMStatus `json:"statusVlm"`
	GroupID         *uuid.UUID `json:"groupId"`
	ExpirationDate  *time.Time `json:"expirationDate"`

	// keys holds every top level key of the decoded payload
	keys []string
}

func (p *FindingPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	type alias FindingPatch
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = FindingPatch(a)

	p.keys = make([]string, 0, len(raw))
	for k := range raw {
		p.keys = append(p.keys, k)
	}
	sort.Strings(p.keys)
	return nil
}

// WithKeys marks additional payload keys as present. Used when a patch is built in code.
func (p FindingPatch) WithKeys(keys ...string) FindingPatch {
	p.keys = append(append([]string{}, p.keys...), keys...)
	return p
}

// Keys returns the top level keys that were present in the payload.
func (p FindingPatch) Keys() []string {
	return p.keys
}

// canonicalKey folds the spellings clients use for one field (correlationKey,
// correlation_key, CorrelationKey) into a single form.
func canonicalKey(k string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(k)))
}

var immutableCanonicalKeys = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ImmutableFindingFields))
	for _, f := range ImmutableFindingFields {
		m[canonicalKey(f)] = struct{}{}
	}
	return m
}()

// ImmutableKeys returns the immutable fields the payload tried to set, in the spelling of the payload.
func (p FindingPatch) ImmutableKeys() []string {
	violations := []string{}
	for _, k := range p.keys {
		if _, ok := immutableCanonicalKeys[canonicalKey(k)]; ok {
			violations = append(violations, k)
		}
	}
	return violations
}

type BulkEditRequest struct {
	FindingIDs []uuid.UUID  `json:"findingIds" validate:"required,min=1"`
	Patch      FindingPatch `json:"patch"`
}
