// Package cli wires the mhub command surface. Commands are thin
// orchestration: they translate flags into index, manifest, and catalog
// calls and print one human-readable line distinguishing "created" from
// "already present" outcomes.
package cli
