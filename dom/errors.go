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

package dom

import "errors"

var (
	// ErrUnsupportedContext is returned when a search runs inside a context
	// that is not a Document or a Node.
	ErrUnsupportedContext = errors.New("unsupported search context")

	// ErrInvalidSelector is returned for CSS selectors that do not compile.
	ErrInvalidSelector = errors.New("invalid css selector")

	// ErrInvalidAttribute is returned for attribute expressions without a name.
	ErrInvalidAttribute = errors.New("invalid attribute expression")

	// ErrUnknownState is returned by the state filter for unknown states.
	ErrUnknownState = errors.New("unknown element state")

	// ErrUnsupportedElement is returned when a filter receives an element
	// produced by a different backend.
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrEmptyDocument is returned when parsing empty content.
	ErrEmptyDocument = errors.New("empty document")
)
