package manifest

import (
	"encoding/json"
	"testing"
)

func mustJSON(t *testing.T, m Manifest) []byte {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestValidateScaffoldedServer(t *testing.T) {
	m := NewServer(Fields{ID: "hello-sse-server", Name: "Hello", Version: "0.1.0", Summary: "demo"},
		"sse", "http://127.0.0.1:8000/messages/")

	res, err := Validate(mustJSON(t, m))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Errorf("scaffolded server should be valid, issues: %+v", res.Issues)
	}
}

func TestValidateScaffoldedToolAndAgent(t *testing.T) {
	tool, err := NewTool(Fields{ID: "hello-tool", Name: "hello", Version: "0.1.0"},
		`{"type":"object"}`, "")
	if err != nil {
		t.Fatal(err)
	}
	agent := NewAgent(Fields{ID: "hello-agent", Name: "Hello Agent", Version: "0.1.0"},
		"hello-sse-server", []string{"hello-tool"})

	for name, m := range map[string]Manifest{"tool": tool, "agent": agent} {
		res, err := Validate(mustJSON(t, m))
		if err != nil {
			t.Fatalf("%s: Validate: %v", name, err)
		}
		if !res.Valid {
			t.Errorf("%s should be valid, issues: %+v", name, res.Issues)
		}
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	res, err := Validate([]byte(`{"type": "tool", "id": "x", "version": "1"}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.Valid {
		t.Fatal("manifest without name should be invalid")
	}
	if len(res.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateUnknownType(t *testing.T) {
	res, err := Validate([]byte(`{"type": "plugin", "id": "x", "version": "1", "name": "x"}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.Valid {
		t.Error("unknown type should be invalid")
	}
}

func TestValidateYAMLSource(t *testing.T) {
	// Inline-copied manifests may be YAML.
	src := "type: tool\nid: hello-tool\nversion: \"0.1.0\"\nname: hello\n"
	res, err := Validate([]byte(src))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Errorf("YAML tool manifest should be valid, issues: %+v", res.Issues)
	}
}

func TestDetectType(t *testing.T) {
	kind, err := DetectType([]byte(`{"type": "agent", "id": "a"}`))
	if err != nil {
		t.Fatalf("DetectType: %v", err)
	}
	if kind != TypeAgent {
		t.Errorf("got %q, want %q", kind, TypeAgent)
	}

	if _, err := DetectType([]byte(`{"id": "a"}`)); err == nil {
		t.Error("expected error for manifest without type")
	}
}
