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

// Package storage defines persistence for captured pages and saved locators.
//
// Repository interfaces decouple the workspace and the CLI from the storage
// engine. The BadgerDB implementation lives in storage/badger:
//
//	backend, err := badger.OpenBackend("/path/to/db", false, logger)
//	snapshots, err := badger.NewSnapshotRepository(backend)
//	aliases, err := badger.NewAliasRepository(backend)
//
// Use in tests with in-memory storage:
//
//	snapshots, aliases, backend, err := badger.NewMemoryRepositories()
//
// # Records
//
//   - Snapshot: an HTML page captured once and searched many times. IDs are
//     derived from the page content, so storing the same page twice yields
//     one record.
//   - Alias: a locator string saved under a name.
//
// Records are encoded as YAML.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
