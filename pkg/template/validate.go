package template

import (
	"fmt"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/plan"
	"github.com/matzehuels/architectus/pkg/rng"
)

const (
	KindRoom    = "room"
	KindStack   = "stack"
	KindDock    = "dock"
	KindPadding = "padding"
	KindContent = "content"

	// OrientationAuto picks row or column from the expanded bounds.
	OrientationAuto = "auto"

	SamplerGaussian = "gaussian"
	SamplerUniform  = "uniform"
)

var samplers = map[string]rng.Sampler{
	"":              rng.Gaussian{},
	SamplerGaussian: rng.Gaussian{},
	SamplerUniform:  rng.Uniform{},
}

// Validate checks the whole tree. Problems that would otherwise panic during
// layout are reported here as [errors.ErrCodeInvalidTemplate].
func (t *Template) Validate() error {
	if err := errors.ValidateComponentName(t.ID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "template name")
	}
	if t.Share < 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "weight %v is negative", t.Share)
	}
	return t.Root.validate("root")
}

func (n *Node) validate(path string) error {
	fail := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInvalidTemplate, "%s: %s", path, fmt.Sprintf(format, args...))
	}

	if n.Weight != nil && *n.Weight < 0 {
		return fail("weight %v is negative", *n.Weight)
	}
	if n.WeightRange != nil {
		if len(n.WeightRange) != 2 || n.WeightRange[0] < 0 || n.WeightRange[1] < n.WeightRange[0] {
			return fail("weight_range must be [lo, hi] with 0 <= lo <= hi")
		}
	}
	if _, ok := samplers[n.Sampler]; !ok {
		return fail("unknown sampler %q", n.Sampler)
	}
	if n.Dock != "" {
		if _, err := layout.ParseDockEdge(n.Dock); err != nil {
			return fail("%v", err)
		}
	}

	switch n.Kind {
	case KindRoom:
		if _, err := plan.ParseRoomType(n.Type); n.Type != "" && err != nil {
			return fail("%v", err)
		}
		lo, err := vector(n.Min, geom.One)
		if err != nil {
			return fail("min: %v", err)
		}
		if lo.X < 1 || lo.Y < 1 {
			return fail("min %v below 1x1", lo)
		}
		hi, err := vector(n.Max, geom.MaxVector)
		if err != nil {
			return fail("max: %v", err)
		}
		if !lo.Fits(hi) {
			return fail("max %v below min %v", hi, lo)
		}
		if len(n.Children) > 0 {
			return fail("rooms cannot have children")
		}
		return nil

	case KindStack, KindDock:
		if len(n.Children) == 0 {
			return fail("%s needs at least one child", n.Kind)
		}
		if n.Kind == KindStack && n.Orientation != "" && n.Orientation != OrientationAuto {
			if _, err := layout.ParseOrientation(n.Orientation); err != nil {
				return fail("%v", err)
			}
		}

	case KindPadding, KindContent:
		if len(n.Children) != 1 {
			return fail("%s needs exactly one child, has %d", n.Kind, len(n.Children))
		}
		if n.Kind == KindPadding {
			t, err := geom.Thickness(n.Padding...)
			if err != nil {
				return fail("padding: %v", err)
			}
			if t.Left < 0 || t.Top < 0 || t.Right < 0 || t.Bottom < 0 {
				return fail("padding %v is negative", t)
			}
		}

	default:
		return fail("unknown kind %q", n.Kind)
	}

	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func vector(v []int, def geom.Vector2Int) (geom.Vector2Int, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return geom.Vec(v[0], v[1]), nil
	default:
		return geom.Zero, fmt.Errorf("want [x, y], got %d values", len(v))
	}
}
