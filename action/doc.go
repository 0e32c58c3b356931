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

// Package action provides the capability interfaces implemented by concrete
// search and filter actions, and the Registry that maps action types to them.
//
// A Registry is built once from the full set of available actions and is
// read-only afterwards. It also exposes the search and filter types it knows
// about so that locator text can be validated without a search context.
package action
