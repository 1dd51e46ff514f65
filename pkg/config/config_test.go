package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
)

func TestParse(t *testing.T) {
	data := []byte(`
templates = ["courtyard.toml", "/abs/wing.toml"]

[generate]
width = 16
height = 10
component = "family"
margin = [2, 1]

[cache]
backend = "redis"
redis_addr = "localhost:6379"

[server]
addr = ":9000"
`)
	cfg, err := Parse(data, "/etc/architectus")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Generate.Width != 16 || cfg.Generate.Height != 10 || cfg.Generate.Component != "family" {
		t.Errorf("generate = %+v", cfg.Generate)
	}
	m, err := cfg.Generate.MarginThickness()
	if err != nil || m == nil || *m != geom.Symmetric(2, 1) {
		t.Errorf("margin = %v, %v", m, err)
	}
	if cfg.Templates[0] != "/etc/architectus/courtyard.toml" || cfg.Templates[1] != "/abs/wing.toml" {
		t.Errorf("templates = %v", cfg.Templates)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.MongoDatabase != "architectus" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Generate.Format != "ascii" {
		t.Errorf("format default lost: %q", cfg.Generate.Format)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "width = ", errors.ErrCodeInvalidFormat},
		{"unknown key", "[generate]\ncolour = 1\n", errors.ErrCodeInvalidFormat},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", errors.ErrCodeInvalidInput},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n", errors.ErrCodeInvalidInput},
		{"bad margin", "[generate]\nmargin = [1, 2, 3]\n", errors.ErrCodeInvalidInput},
		{"bad component", "[generate]\ncomponent = \"Big House\"\n", errors.ErrCodeInvalidComponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "")
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file should not fail: %v", err)
	}
	if cfg.Cache.Backend != CacheFile {
		t.Errorf("backend = %q", cfg.Cache.Backend)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("explicit missing file: %v", err)
	}

	path, _ := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[generate]\nwidth = 20\nheight = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Generate.Width != 20 {
		t.Errorf("width = %d", cfg.Generate.Width)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Generate.Width = 14
	cfg.Templates = []string{"/tmp/a.toml"}
	data, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data, "")
	if err != nil {
		t.Fatalf("Parse(Encode): %v\n%s", err, data)
	}
	if back.Generate.Width != 14 || back.Templates[0] != "/tmp/a.toml" {
		t.Errorf("round trip = %+v", back)
	}
}
