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

package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/dtos"
)

const ActorHeader = "X-Actor-ID"

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		s, _ := fallback.(string)
		return s
	}
	return v
}

func getUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := SanitizeParam(GetParam(ctx, param))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("could not get %s", param)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}

func GetTenantID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "tenantID")
}

func GetAssetID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "assetID")
}

func GetFindingID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "findingID")
}

func GetGroupID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "groupID")
}

func GetRuleID(ctx Context) (uuid.UUID, error) {
	return getUUIDParam(ctx, "ruleID")
}

func SetActor(ctx Context, actor string) {
	ctx.Set("actor", actor)
}

// GetActor returns the actor set by the actor middleware. Unauthenticated calls are
// rejected before they reach a handler, so an empty value only shows up in tests.
func GetActor(ctx Context) string {
	actor, _ := ctx.Get("actor").(string)
	return actor
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// FindingFilter narrows a finding listing. Zero values do not filter.
type FindingFilter struct {
	AssetID           *uuid.UUID
	StatusVLM         []dtos.VLMStatus
	Severity          []dtos.Severity
	SourceTool        string
	IncludeDuplicates bool
	Search            string
}

func splitCSV(v string) []string {
	var res []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

// GetFindingFilter reads ?assetId=&status=ACTIVE,UNDER_REVIEW&severity=HIGH&sourceTool=&includeDuplicates=true&search=
func GetFindingFilter(ctx Context) (FindingFilter, error) {
	filter := FindingFilter{
		SourceTool: strings.ToLower(strings.TrimSpace(ctx.QueryParam("sourceTool"))),
		Search:     strings.TrimSpace(ctx.QueryParam("search")),
	}
	if raw := ctx.QueryParam("assetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, NewValidationError("assetId", err.Error())
		}
		filter.AssetID = &id
	}
	for _, s := range splitCSV(ctx.QueryParam("status")) {
		status := dtos.VLMStatus(strings.ToUpper(s))
		if !status.IsValid() {
			return filter, NewValidationError("status", fmt.Sprintf("unknown status %q", s))
		}
		filter.StatusVLM = append(filter.StatusVLM, status)
	}
	for _, s := range splitCSV(ctx.QueryParam("severity")) {
		severity := dtos.Severity(strings.ToUpper(s))
		if !severity.IsValid() {
			return filter, NewValidationError("severity", fmt.Sprintf("unknown severity %q", s))
		}
		filter.Severity = append(filter.Severity, severity)
	}
	if raw := ctx.QueryParam("includeDuplicates"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, NewValidationError("includeDuplicates", err.Error())
		}
		filter.IncludeDuplicates = b
	}
	return filter, nil
}
