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

package search

import (
	"errors"

	"github.com/poiesic/locate/core"
)

var (
	// ErrResolverRequired is returned when a searcher is created without actions.
	ErrResolverRequired = errors.New("action resolver required")

	// ErrScopeRequired is returned by scope based searches when no scope
	// provider is configured or the current scope is unset.
	ErrScopeRequired = errors.New("search scope required")
)

// UnsupportedActionError reports an action type present in a query but not
// registered with the searcher. It indicates a wiring defect.
type UnsupportedActionError struct {
	Type *core.ActionType
}

func (e *UnsupportedActionError) Error() string {
	return "There is no mapped search action for attribute: " + e.Type.Name()
}

// Unwrap returns core.ErrUnsupportedAction.
func (e *UnsupportedActionError) Unwrap() error {
	return core.ErrUnsupportedAction
}
