// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength indicates a corrupt stored record with a negative
	// collection length.
	ErrNegativeLength = errors.New("negative length")

	// ErrInvalidLocatorFormat indicates a locator that does not match the grammar.
	ErrInvalidLocatorFormat = errors.New("invalid locator format")

	// ErrUnsupportedLocatorType indicates an unknown primary search type name.
	ErrUnsupportedLocatorType = errors.New("unsupported locator type")

	// ErrUnsupportedFilterType indicates an unknown filter type name.
	ErrUnsupportedFilterType = errors.New("unsupported filter type")

	// ErrIllegalVisibility indicates an unknown visibility suffix.
	ErrIllegalVisibility = errors.New("illegal visibility type")

	// ErrFilterNotSupported indicates a type that cannot be used as a filter.
	ErrFilterNotSupported = errors.New("filter not supported")

	// ErrCompetingAttributes indicates two mutually exclusive action types.
	ErrCompetingAttributes = errors.New("competing attributes")

	// ErrUnsupportedAction indicates an action type with no registered
	// implementation. It is a configuration defect, not a data error.
	ErrUnsupportedAction = errors.New("unsupported action")

	// ErrInvalidSnapshot indicates a Snapshot failed validation.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidAlias indicates an Alias failed validation.
	ErrInvalidAlias = errors.New("invalid alias")

	// ErrEmptyContent indicates the snapshot HTML is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyAliasName indicates the alias Name field is empty.
	ErrEmptyAliasName = errors.New("alias name cannot be empty")

	// ErrEmptyLocator indicates the alias Locator field is empty.
	ErrEmptyLocator = errors.New("locator cannot be empty")
)

// kindError carries a user facing message verbatim while still matching its
// sentinel through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func newError(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}
