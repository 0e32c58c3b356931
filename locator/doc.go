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

// Package locator converts textual element locators into core.Query values.
//
// The grammar is fixed:
//
//	[By.]<type>(<value>)[:<visibility>][->filter.<ftype>(<fvalue>)<ftype>(<fvalue>)...]
//
// Type names are matched case-insensitively against the registered search and
// filter types after separators are stripped, so "By.cssSelector(a)" and
// "css_selector(a)" resolve to the same type. Filter values cannot contain
// parentheses.
package locator
