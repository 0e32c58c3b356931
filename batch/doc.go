// Package batch evaluates sets of locators against many stored snapshots.
//
// The Runner parses every locator once, parses every snapshot into a DOM
// document once, and then runs each (snapshot, locator) pair as a task on an
// ants worker pool. Individual searches stay single-threaded; only
// independent pairs run concurrently.
//
// Failures are recorded per pair in the Report and never abort the run,
// except for locators that do not parse, which are rejected before any
// search starts.
package batch
