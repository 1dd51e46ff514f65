package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

func TestRootCommandTree(t *testing.T) {
	root := New(io.Discard, log.InfoLevel).RootCommand()

	want := []string{"cache", "completion", "components", "generate", "preview", "serve"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q in %v", name, got)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestGenerateOptionsMerge(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.Config.Generate.Width = 16
	c.Config.Generate.Height = 10
	c.Config.Generate.Component = "family"
	c.Config.Generate.Margin = []int{2}
	c.Config.Generate.MaxAttempts = 5

	idx := templateIndex{
		hashes: map[string]string{"courtyard": "abc"},
		names:  map[string]string{"courtyard.toml": "courtyard"},
	}

	tests := []struct {
		name   string
		flags  generateFlags
		width  int
		height int
		comp   string
		margin geom.ThicknessInt
		hash   string
	}{
		{"config only", generateFlags{}, 16, 10, "family", geom.Uniform(2), ""},
		{"flags win", generateFlags{height: 9, component: "tiny", margin: []int{0, 1}}, 16, 9, "tiny", geom.Symmetric(0, 1), ""},
		{"template", generateFlags{templatePath: "courtyard.toml"}, 16, 10, "courtyard", geom.Uniform(2), "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.flags.options(c, idx)
			if err != nil {
				t.Fatalf("options() error: %v", err)
			}
			if opts.Width != tt.width || opts.Height != tt.height {
				t.Errorf("plot = %dx%d, want %dx%d", opts.Width, opts.Height, tt.width, tt.height)
			}
			if opts.Component != tt.comp {
				t.Errorf("component = %q, want %q", opts.Component, tt.comp)
			}
			if opts.Margin == nil || *opts.Margin != tt.margin {
				t.Errorf("margin = %v, want %v", opts.Margin, tt.margin)
			}
			if opts.TemplateHash != tt.hash {
				t.Errorf("template hash = %q, want %q", opts.TemplateHash, tt.hash)
			}
			if opts.MaxAttempts != 5 {
				t.Errorf("attempts = %d, want 5", opts.MaxAttempts)
			}
		})
	}
}

func TestGenerateOptionsBadMargin(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	f := generateFlags{margin: []int{1, 2, 3}}
	if _, err := f.options(c, templateIndex{}); err == nil {
		t.Error("three margin values should fail")
	}
}

func TestGenerateCommandWritesJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "plan.json")

	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"generate", "-c", "tiny", "--seed", "7", "-f", "json", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var snap plan.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode %s: %v", out, err)
	}
	if snap.Component != "tiny" || snap.Seed != 7 {
		t.Errorf("snapshot = %s seed %d, want tiny seed 7", snap.Component, snap.Seed)
	}
	if snap.Size != geom.Vec(12, 8) {
		t.Errorf("plot = %v, want 12x8", snap.Size)
	}
}

func TestGenerateCommandASCII(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"generate", "-c", "two-room", "--seed", "3", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lines := strings.Count(stdout.String(), "\n"); lines < 8 {
		t.Errorf("ascii output has %d lines, want at least the 8 plot rows:\n%s", lines, stdout.String())
	}
}

func TestGenerateCommandRejectsFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"generate", "-f", "pdf", "--no-cache"})
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestFlagCompletions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"__complete", "generate", "--format", ""}, "graph"},
		{[]string{"__complete", "preview", "--component", ""}, "two-room"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:3], " "), func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, log.InfoLevel).RootCommand()
			root.SetOut(&out)
			root.SetArgs(tt.args)
			if err := root.Execute(); err != nil {
				t.Fatalf("complete: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("completions missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
