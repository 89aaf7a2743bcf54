package manifest

import "encoding/json"

// Manifest type discriminator values accepted by the hub.
const (
	TypeServer = "mcp_server"
	TypeTool   = "tool"
	TypeAgent  = "agent"
)

// ValidTypes contains all valid manifest type values.
var ValidTypes = []string{TypeServer, TypeTool, TypeAgent}

// Fields holds the caller-supplied attributes shared by every manifest
// kind. ID, Name, and Version are required; the rest are optional
// metadata passed through verbatim.
type Fields struct {
	ID          string
	Name        string
	Version     string
	Summary     string
	Description string
	License     string
	Homepage    string
	Publisher   string
}

// Base contains the fields common to all manifest kinds.
type Base struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Version     string `json:"version"`
	Name        string `json:"name"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	License     string `json:"license,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
}

// Filename returns the canonical on-disk name, {id}.manifest.json.
func (b Base) Filename() string { return b.ID + ".manifest.json" }

// Manifest is any document the builder can scaffold and write.
type Manifest interface {
	Filename() string
}

// Registration is the mcp_registration block of a server manifest.
type Registration struct {
	Server RegistrationServer `json:"server"`
}

// RegistrationServer describes the endpoint the hub registers for an
// mcp_server manifest.
type RegistrationServer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Transport   string `json:"transport"`
	URL         string `json:"url"`
}

// ServerManifest represents an mcp_server manifest.
type ServerManifest struct {
	Base
	MCPRegistration Registration `json:"mcp_registration"`
}

// ToolManifest represents a tool manifest. The schema fields hold parsed
// JSON schema documents and are emitted only when supplied.
type ToolManifest struct {
	Base
	InputSchema  json.RawMessage `json:"input_schema,omitempty"`
	OutputSchema json.RawMessage `json:"output_schema,omitempty"`
}

// ServerRef points an agent at the server it runs against.
type ServerRef struct {
	ID string `json:"id"`
}

// ToolRef points an agent at one tool it may call.
type ToolRef struct {
	ID string `json:"id"`
}

// AgentManifest represents an agent manifest linking a server and tools.
type AgentManifest struct {
	Base
	Server ServerRef `json:"server"`
	Tools  []ToolRef `json:"tools"`
}
