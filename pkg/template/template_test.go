package template

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/plan"
)

func loadCourtyard(t *testing.T) *Template {
	t.Helper()
	tpl, err := Load(filepath.Join("testdata", "courtyard.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tpl
}

func TestLoad(t *testing.T) {
	tpl := loadCourtyard(t)
	if tpl.Name() != "courtyard" {
		t.Errorf("Name() = %q", tpl.Name())
	}
	if got := len(tpl.Root.Children); got != 3 {
		t.Fatalf("root children = %d, want 3", got)
	}
	if w := tpl.Root.Children[1].Weight; w == nil || *w != 0.5 {
		t.Errorf("garden weight = %v", w)
	}
	if component.WeightOf(tpl) != 2 {
		t.Errorf("archetype weight = %v, want 2", component.WeightOf(tpl))
	}
	if s := tpl.Root.Children[0].Children[1].Sampler; s != SamplerUniform {
		t.Errorf("kitchen sampler = %q", s)
	}
}

func TestWeightRangeSamplers(t *testing.T) {
	tests := []struct {
		sampler string
		lo, hi  float64
	}{
		{"", 1, 3},
		{SamplerGaussian, 1, 3},
		{SamplerUniform, 0.5, 4},
	}
	for _, tt := range tests {
		t.Run("sampler="+tt.sampler, func(t *testing.T) {
			n := Node{Kind: KindRoom, WeightRange: []float64{tt.lo, tt.hi}, Sampler: tt.sampler}
			seen := map[float64]bool{}
			for seed := uint64(1); seed <= 50; seed++ {
				w := n.build(geom.Vec(4, 4), component.NewContext(seed).Rand()).Node().GrowWeight
				if w < tt.lo || w > tt.hi {
					t.Fatalf("seed %d: weight %v outside [%v,%v]", seed, w, tt.lo, tt.hi)
				}
				seen[w] = true
			}
			if len(seen) < 2 {
				t.Error("weight never varied")
			}
		})
	}
}

func TestExpandResolves(t *testing.T) {
	tpl := loadCourtyard(t)
	bounds := geom.NewRect(1, 1, 12, 6)
	for seed := uint64(1); seed <= 20; seed++ {
		root := tpl.Expand(bounds, component.NewContext(seed))
		if _, err := layout.Measure(root, bounds.Size()); err != nil {
			t.Fatalf("seed %d: %v\n%s", seed, err, layout.Dump(root))
		}
		layout.UpdateWorldMatrix(root, geom.Identity)
		if _, err := layout.Arrange(root, bounds); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		lot := plan.NewHouseLot(geom.Vec(14, 8))
		layout.Imprint(root, lot)
		if n := lot.GroundFloor().RoomCount(); n != 5 {
			t.Errorf("seed %d: %d rooms, want 5", seed, n)
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	tpl := loadCourtyard(t)
	bounds := geom.NewRect(0, 0, 12, 6)
	for seed := uint64(1); seed <= 10; seed++ {
		a := layout.Dump(tpl.Expand(bounds, component.NewContext(seed)))
		b := layout.Dump(tpl.Expand(bounds, component.NewContext(seed)))
		if a != b {
			t.Fatalf("seed %d: dumps differ\n%s\nvs\n%s", seed, a, b)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tpl := loadCourtyard(t)
	data, err := tpl.Encode()
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()): %v\n%s", err, data)
	}

	bounds := geom.NewRect(0, 0, 12, 6)
	a := layout.Dump(tpl.Expand(bounds, component.NewContext(42)))
	b := layout.Dump(again.Expand(bounds, component.NewContext(42)))
	if a != b {
		t.Errorf("round-tripped template expands differently\n%s\nvs\n%s", a, b)
	}
}

func TestRegistersAsComponent(t *testing.T) {
	reg := component.Default()
	if err := reg.Register(loadCourtyard(t)); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Get("courtyard"); err != nil {
		t.Error(err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", `name = `, "decode"},
		{"unknown key", "name = \"x\"\ncolour = 1\n[root]\nkind = \"room\"", "unknown key"},
		{"bad name", "name = \"Bad Name\"\n[root]\nkind = \"room\"", "template name"},
		{"unknown kind", "name = \"x\"\n[root]\nkind = \"tower\"", "unknown kind"},
		{"empty stack", "name = \"x\"\n[root]\nkind = \"stack\"", "at least one child"},
		{"bad room type", "name = \"x\"\n[root]\nkind = \"room\"\ntype = \"dungeon\"", "dungeon"},
		{"min too small", "name = \"x\"\n[root]\nkind = \"room\"\nmin = [0, 2]", "below 1x1"},
		{"max below min", "name = \"x\"\n[root]\nkind = \"room\"\nmin = [3, 3]\nmax = [2, 4]", "below min"},
		{"bad orientation", "name = \"x\"\n[root]\nkind = \"stack\"\norientation = \"diagonal\"\n[[root.children]]\nkind = \"room\"", "diagonal"},
		{"padding two children", "name = \"x\"\n[root]\nkind = \"padding\"\npadding = [1]\n[[root.children]]\nkind = \"room\"\n[[root.children]]\nkind = \"room\"", "exactly one child"},
		{"padding arity", "name = \"x\"\n[root]\nkind = \"padding\"\npadding = [1, 2, 3]\n[[root.children]]\nkind = \"room\"", "1, 2 or 4"},
		{"bad dock", "name = \"x\"\n[root]\nkind = \"room\"\ndock = \"middle\"", "middle"},
		{"bad sampler", "name = \"x\"\n[root]\nkind = \"room\"\nweight_range = [1.0, 2.0]\nsampler = \"poisson\"", "poisson"},
		{"negative archetype weight", "name = \"x\"\nweight = -1.0\n[root]\nkind = \"room\"", "negative"},
		{"bad weight range", "name = \"x\"\n[root]\nkind = \"room\"\nweight_range = [3.0, 1.0]", "weight_range"},
		{"nested error path", "name = \"x\"\n[root]\nkind = \"dock\"\n[[root.children]]\nkind = \"room\"\nmin = [1]", "root.children[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
				t.Errorf("code = %q, want INVALID_TEMPLATE", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
