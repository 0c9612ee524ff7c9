package boids

import (
	"os"
	"path/filepath"
	"testing"
)

const schemaPath = "../../config.schema.json"

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_RepoSample(t *testing.T) {
	cfg, err := LoadConfig("../../config.json", schemaPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bound != 1000 || cfg.NumBoids != 50 {
		t.Errorf("cfg = %+v; want bound 1000, 50 boids", cfg)
	}
	if cfg.Params != DefaultParams() {
		t.Errorf("sample params = %+v; want the stock defaults", cfg.Params)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"numBoids": 10}`)

	cfg, err := LoadConfig(path, schemaPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.NumBoids != 10 {
		t.Errorf("numBoids = %d; want 10", cfg.NumBoids)
	}
	if cfg.Bound != 1000 {
		t.Errorf("bound = %v; want default 1000", cfg.Bound)
	}
	if cfg.Params != DefaultParams() {
		t.Errorf("params = %+v; want defaults", cfg.Params)
	}
}

func TestLoadConfig_SchemaRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative sense range", `{"params": {"senseRange": -5}}`},
		{"zero bound", `{"bound": 0}`},
		{"unknown separation mode", `{"params": {"separationMode": "cubic"}}`},
		{"unknown field", `{"gravity": 9.81}`},
		{"wrong type", `{"numBoids": "many"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			if _, err := LoadConfig(path, schemaPath); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), schemaPath); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"bound": `)
	if _, err := LoadConfig(path, schemaPath); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v; want nil", err)
	}
}
