// Package manifest builds and writes the minimal manifest documents the
// hub ingests: mcp_server, tool, and agent. Scaffolds carry only the
// fields the hub requires (type, id, version, name) plus optional
// metadata; authoritative validation happens hub-side, but a minimal
// embedded JSON Schema mirror is available for early warnings.
package manifest
