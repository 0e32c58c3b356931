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

package action

import "errors"

var (
	// ErrNilAction is returned when a nil action or an action without a type is registered.
	ErrNilAction = errors.New("action or action type is nil")

	// ErrDuplicateActionType is returned when two actions share one type.
	ErrDuplicateActionType = errors.New("duplicate action type")

	// ErrNoCapability is returned when an action implements neither capability
	// its type declares.
	ErrNoCapability = errors.New("action does not implement the capability of its type")
)
