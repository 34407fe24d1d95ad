package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/jst/internal/errors"
)

func errCode(err error) string {
	var je *errors.Error
	if stderrors.As(err, &je) {
		return je.Code
	}
	return ""
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Publish.Output != DefaultOutput {
		t.Errorf("Publish.Output = %q, want %q", cfg.Publish.Output, DefaultOutput)
	}
	if cfg.Render.Prefix != DefaultPrefix {
		t.Errorf("Render.Prefix = %q, want %q", cfg.Render.Prefix, DefaultPrefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(tmpDir); errCode(err) != "J012" {
		t.Errorf("Load() on empty dir error = %v, want J012", err)
	}

	configJSON := `{
  "name": "todo",
  "render": {"indent": 2},
  "serve": {"port": 8080, "host": "0.0.0.0"},
  "publish": {"bucket": "site", "region": "eu-west-1"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, "jst.json"), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := New()
	want.Name = "todo"
	want.Render.Indent = 2
	want.Serve.Port = 8080
	want.Serve.Host = "0.0.0.0"
	want.Publish.Bucket = "site"
	want.Publish.Region = "eu-west-1"
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `name: docs
log:
  level: debug
serve:
  tick: 250ms
metrics:
  enabled: false
`
	if err := os.WriteFile(filepath.Join(tmpDir, "jst.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Name != "docs" {
		t.Errorf("Name = %q, want docs", cfg.Name)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 250ms", cfg.TickInterval())
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want default %d", cfg.Serve.Port, DefaultPort)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jst.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); errCode(err) != "J010" {
		t.Errorf("LoadFile() error = %v, want J010", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"jst.json", "jst.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := New()
			cfg.Render.Indent = 4
			cfg.Publish.KeyPrefix = "preview/"
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error: %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q, want %q", cfg.Path(), path)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error: %v", err)
			}
			if diff := cmp.Diff(cfg, loaded, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("Save() without a path succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port too high", func(c *Config) { c.Serve.Port = 70000 }, false},
		{"negative indent", func(c *Config) { c.Render.Indent = -1 }, false},
		{"bad prefix", func(c *Config) { c.Render.Prefix = "9x" }, false},
		{"prefix with dash", func(c *Config) { c.Render.Prefix = "a-b" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"bad tick", func(c *Config) { c.Serve.Tick = "soon" }, false},
		{"zero tick", func(c *Config) { c.Serve.Tick = "0s" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.valid && errCode(err) != "J011" {
				t.Errorf("Validate() error = %v, want J011", err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jst.json")
	cfg := New()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	if got, want := cfg.OutputPath(), filepath.Join(tmpDir, DefaultOutput); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	cfg.Publish.Output = "/abs/out"
	if got := cfg.OutputPath(); got != "/abs/out" {
		t.Errorf("OutputPath() = %q, want /abs/out", got)
	}
	if got := cfg.ServeAddress(); got != "localhost:3000" {
		t.Errorf("ServeAddress() = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "jst.yml"), []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}
