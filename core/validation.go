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
	"fmt"
	"time"
)

// ValidateSnapshot validates a Snapshot according to domain rules.
//
// Validation rules:
//   - HTML must not be empty
//   - CapturedAt must not be in the future
//
// NOT validated (populated by storage):
//   - ID (derived from the HTML when 0)
//   - InsertedAt
func ValidateSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}

	if snapshot.HTML == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrEmptyContent)
	}

	if !IsValidTimestamp(snapshot.CapturedAt) {
		return fmt.Errorf("%w: captured_at cannot be in the future", ErrInvalidSnapshot)
	}

	return nil
}

// ValidateAlias validates an Alias. The locator text itself is checked by the
// parser, not here.
func ValidateAlias(alias *Alias) error {
	if alias == nil {
		return fmt.Errorf("%w: alias is nil", ErrInvalidAlias)
	}

	if alias.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAlias, ErrEmptyAliasName)
	}

	if alias.Locator == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAlias, ErrEmptyLocator)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
