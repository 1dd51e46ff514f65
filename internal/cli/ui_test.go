package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPlanSummary(t *testing.T) {
	lot := plan.NewHouseLot(geom.Vec(6, 4))
	lot.GroundFloor().AddRoom(geom.NewRect(0, 0, 3, 4), plan.LivingRoom)
	lot.GroundFloor().AddRoom(geom.NewRect(3, 0, 3, 4), plan.Kitchen)

	tests := []struct {
		name     string
		res      generator.Result
		want     []string
		wantNone string
	}{
		{"fresh single attempt", generator.Result{Lot: lot, Component: "two-room", Seed: 9, Attempts: 1},
			[]string{"two-room", "seed 9", "2 rooms", "fresh"}, "attempts"},
		{"cached retry", generator.Result{Lot: lot, Component: "family", Seed: 3, Attempts: 2, CacheHit: true},
			[]string{"family", "2 attempts", "cached"}, "fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planSummary(&tt.res)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("summary %q missing %q", got, w)
				}
			}
			if strings.Contains(got, tt.wantNone) {
				t.Errorf("summary %q should not contain %q", got, tt.wantNone)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	buf := captureStdout(t)

	printSuccess("Wrote %s", "svg")
	printWarning("careful")
	printKeyValue("store", "memory")

	out := buf.String()
	for _, want := range []string{"✓ Wrote svg", "! careful", "store", "memory"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("got %d lines, want 3", n)
	}
}
