package render

import (
	"context"
	"slices"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/plan"
)

// Output formats.
const (
	FormatASCII = "ascii"
	FormatSVG   = "svg"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// Formats lists the supported format names.
var Formats = []string{FormatASCII, FormatSVG, FormatJSON, FormatDOT, FormatGraph}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatGraph:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: ascii, svg, json, dot, graph)", format)
	}
	return nil
}

// Render produces one format for a floor. The snapshot is only used by the
// json format.
func Render(ctx context.Context, format string, s *plan.Snapshot, f *plan.Floor) ([]byte, error) {
	switch format {
	case FormatASCII:
		return []byte(RenderASCII(f, WithLegend())), nil
	case FormatSVG:
		return RenderSVG(f, WithLabels()), nil
	case FormatJSON:
		return RenderJSON(s)
	case FormatDOT:
		return []byte(ToDOT(f)), nil
	case FormatGraph:
		return RenderGraphSVG(ctx, ToDOT(f))
	}
	return nil, ValidateFormat(format)
}
