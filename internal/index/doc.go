// Package index loads, mutates, and persists the catalog index document
// (matrix/index.json by default). An index carries exactly one of three
// list shapes — "manifests" (absolute URL strings), "items"
// ({manifest_url} records), or "entries" ({path, base_url} records) —
// plus an informational meta block. Add operations are append-only and
// deduplicate by the shape's identity key before appending.
package index
