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

// Package search resolves queries against a hierarchical document.
//
// The Searcher type implements the execution algorithm:
//   - the primary search action produces the initial ordered element list
//   - filter actions are applied in the order they were added to the query,
//     each one seeing the output of the previous one
//   - for every child query, each element is kept only if searching the child
//     query inside that element yields at least one match
//
// Searches are synchronous. An action type with no registered implementation
// aborts the search with an UnsupportedActionError; any other error returned
// by an action is passed to the caller unchanged.
package search
