// Package catalog composes the index and manifest packages into the two
// multi-step workflows: registering a freshly scaffolded manifest in the
// index, and copying a local manifest file into the catalog directory
// before registering it. Each workflow runs to completion within one
// command invocation; either it persists or it fails before persisting.
package catalog
