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
	"errors"
	"fmt"
	"strings"

	"github.com/l3montree-dev/devguard-vlm/dtos"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// ValidationError is returned for malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

type ImmutableFieldViolation struct {
	Fields []string
}

func (e *ImmutableFieldViolation) Error() string {
	return "immutable fields cannot be modified: " + strings.Join(e.Fields, ", ")
}

type IllegalTransition struct {
	From    dtos.VLMStatus
	To      dtos.VLMStatus
	Allowed []dtos.VLMStatus
}

func (e *IllegalTransition) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	if len(allowed) == 0 {
		return fmt.Sprintf("cannot transition from %s to %s: %s is terminal", e.From, e.To, e.From)
	}
	return fmt.Sprintf("cannot transition from %s to %s, allowed: %s", e.From, e.To, strings.Join(allowed, ", "))
}

type JustificationRequired struct {
	Target dtos.VLMStatus
}

func (e *JustificationRequired) Error() string {
	return fmt.Sprintf("a justification is required to move a finding to %s", e.Target)
}

type CrossAssetBulkEditForbidden struct {
	AssetIDs []string
}

func (e *CrossAssetBulkEditForbidden) Error() string {
	return "bulk edit must target findings of a single asset, got: " + strings.Join(e.AssetIDs, ", ")
}

type NotFound struct {
	Resource string
	ID       string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFound(resource, id string) error {
	return &NotFound{Resource: resource, ID: id}
}

// StoreError wraps a failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStoreError translates gorm.ErrRecordNotFound into NotFound and wraps everything else.
func WrapStoreError(err error, op, resource, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFound(resource, id)
	}
	return &StoreError{Op: op, Err: pkgerrors.WithStack(err)}
}

func IsNotFound(err error) bool {
	var nf *NotFound
	return errors.As(err, &nf) || errors.Is(err, gorm.ErrRecordNotFound)
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsUnprocessable reports errors caused by a semantically invalid governance request.
func IsUnprocessable(err error) bool {
	var immutable *ImmutableFieldViolation
	var transition *IllegalTransition
	var justification *JustificationRequired
	return errors.As(err, &immutable) || errors.As(err, &transition) || errors.As(err, &justification)
}

func IsForbidden(err error) bool {
	var cross *CrossAssetBulkEditForbidden
	return errors.As(err, &cross)
}
