package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidSchemaJSON reports a tool schema argument that is not valid
// JSON. The whole scaffold operation aborts; no partial manifest is
// written.
var ErrInvalidSchemaJSON = errors.New("invalid schema JSON")

func newBase(typeName string, f Fields) Base {
	return Base{
		Type:        typeName,
		ID:          f.ID,
		Version:     f.Version,
		Name:        f.Name,
		Summary:     f.Summary,
		Description: f.Description,
		License:     f.License,
		Homepage:    f.Homepage,
		Publisher:   f.Publisher,
	}
}

// NewServer builds a minimal mcp_server manifest. The transport token is
// normalized to uppercase (e.g. "sse" → "SSE"); the URL is embedded
// verbatim — malformed URLs surface only when the hub fails to connect.
func NewServer(f Fields, transport, url string) *ServerManifest {
	desc := f.Summary
	if desc == "" {
		desc = f.Description
	}
	if desc == "" {
		desc = f.Name + " server"
	}
	return &ServerManifest{
		Base: newBase(TypeServer, f),
		MCPRegistration: Registration{
			Server: RegistrationServer{
				Name:        f.ID,
				Description: desc,
				Transport:   strings.ToUpper(strings.TrimSpace(transport)),
				URL:         url,
			},
		},
	}
}

// NewTool builds a minimal tool manifest. Each schema text, when
// non-empty, must parse as JSON; a parse failure fails the build with
// ErrInvalidSchemaJSON.
func NewTool(f Fields, inputJSON, outputJSON string) (*ToolManifest, error) {
	input, err := parseSchema("input_schema", inputJSON)
	if err != nil {
		return nil, err
	}
	output, err := parseSchema("output_schema", outputJSON)
	if err != nil {
		return nil, err
	}
	return &ToolManifest{
		Base:         newBase(TypeTool, f),
		InputSchema:  input,
		OutputSchema: output,
	}, nil
}

// NewAgent builds a minimal agent manifest referencing a server and an
// ordered list of tool ids. Duplicate ids are kept as given — an agent
// may legitimately reference the same tool twice.
func NewAgent(f Fields, serverID string, toolIDs []string) *AgentManifest {
	tools := make([]ToolRef, 0, len(toolIDs))
	for _, id := range toolIDs {
		tools = append(tools, ToolRef{ID: id})
	}
	return &AgentManifest{
		Base:   newBase(TypeAgent, f),
		Server: ServerRef{ID: serverID},
		Tools:  tools,
	}
}

// SplitToolIDs splits a comma-separated tool id list, trimming
// surrounding whitespace and discarding empty tokens. Order is preserved
// and duplicates are not removed.
func SplitToolIDs(s string) []string {
	var ids []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			ids = append(ids, tok)
		}
	}
	return ids
}

// Write serializes a manifest to {id}.manifest.json under dir as 2-space
// indented JSON with a trailing newline, creating dir if needed. An
// existing file of the same name is overwritten without warning.
func Write(m Manifest, dir string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating manifest directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, m.Filename())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return path, nil
}

func parseSchema(field, text string) (json.RawMessage, error) {
	if text == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrInvalidSchemaJSON, field, err)
	}
	return json.RawMessage(text), nil
}
