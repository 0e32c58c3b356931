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

package locator

import "errors"

// ErrTypeSourceRequired is returned when a parser is created without types.
var ErrTypeSourceRequired = errors.New("type source required")

// SyntaxError reports a locator the parser could not convert. Its message is
// meant to be shown to whoever wrote the locator.
type SyntaxError struct {
	// Input is the full locator text.
	Input string
	// Literal is the offending part of the input, e.g. an unknown type name.
	Literal string
	// Suggestion is the closest registered type name, if any.
	Suggestion string

	kind error
	msg  string
}

func (e *SyntaxError) Error() string {
	return e.msg
}

// Unwrap returns one of the core sentinel errors.
func (e *SyntaxError) Unwrap() error {
	return e.kind
}
