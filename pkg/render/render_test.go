package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

func scenarioLot() *plan.HouseLot {
	lot := plan.NewHouseLot(geom.Vec(10, 6))
	lot.GroundFloor().AddRoom(geom.NewRect(1, 1, 4, 4), plan.LivingRoom)
	lot.GroundFloor().AddRoom(geom.NewRect(5, 1, 4, 4), plan.Bedroom)
	return lot
}

func TestRenderASCIIGolden(t *testing.T) {
	got := RenderASCII(scenarioLot().GroundFloor(), WithLegend())
	want := strings.Join([]string{
		"..........",
		".LLLLBBBB.",
		".LLLLBBBB.",
		".LLLLBBBB.",
		".LLLLBBBB.",
		"..........",
		"L  0 living_room  (1,1,4,4)",
		"B  1 bedroom      (5,1,4,4)",
		"",
	}, "\n")
	if got != want {
		t.Errorf("RenderASCII mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderASCIIRoomIDs(t *testing.T) {
	lot := plan.NewHouseLot(geom.Vec(4, 1))
	lot.GroundFloor().AddRoom(geom.NewRect(0, 0, 2, 1), plan.Bedroom)
	lot.GroundFloor().AddRoom(geom.NewRect(2, 0, 2, 1), plan.Bedroom)
	if got := RenderASCII(lot.GroundFloor(), WithRoomIDs()); got != "0011\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(scenarioLot().GroundFloor(), WithCellSize(10), WithLabels(), WithGrid()))
	for _, want := range []string{
		`viewBox="0 0 100 60"`,
		`<rect id="room-0" class="room living_room" x="10" y="10" width="40" height="40"`,
		`<rect id="room-1" class="room bedroom" x="50" y="10" width="40" height="40"`,
		`>living_room</text>`,
		`class="grid"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderJSON(t *testing.T) {
	s := scenarioLot().Snapshot()
	s.Seed = 42
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatal(err)
	}
	var back plan.Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Seed != 42 || len(back.Floors[0].Rooms) != 2 || back.Floors[0].Rooms[1].Type != plan.Bedroom {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(scenarioLot().GroundFloor())
	for _, want := range []string{
		"graph G {",
		`r0 [label="living_room\n4x4"`,
		`r1 [label="bedroom\n4x4"`,
		`r0 -- r1 [label="4"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestRenderDispatch(t *testing.T) {
	lot := scenarioLot()
	ctx := context.Background()
	for _, f := range []string{FormatASCII, FormatSVG, FormatJSON, FormatDOT} {
		out, err := Render(ctx, f, lot.Snapshot(), lot.GroundFloor())
		if err != nil || len(out) == 0 {
			t.Errorf("Render(%s) = %d bytes, %v", f, len(out), err)
		}
	}
	if _, err := Render(ctx, "png", lot.Snapshot(), lot.GroundFloor()); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format: %v", err)
	}
}

func TestRenderGraphSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz layout in short mode")
	}
	svg, err := RenderGraphSVG(context.Background(), ToDOT(scenarioLot().GroundFloor()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}
