package generator

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/buildinfo"
	"github.com/matzehuels/architectus/pkg/cache"
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/rng"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API and Preview
// =============================================================================

const (
	// DefaultWidth is the default plot width in cells.
	DefaultWidth = 12

	// DefaultHeight is the default plot height in cells.
	DefaultHeight = 8

	// DefaultMargin is the wall/garden ring kept free around the interior.
	DefaultMargin = 1

	// DefaultMaxAttempts bounds the retry loop.
	DefaultMaxAttempts = 3

	// MaxAttemptsLimit caps caller-supplied attempt counts.
	MaxAttemptsLimit = 64
)

// Options configures one call to [Generator.Generate].
type Options struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Seed selects the random stream. Zero picks a fresh seed from system
	// entropy; the seed in use is reported in [Result.Seed].
	Seed uint64 `json:"seed,omitempty"`

	FlipX bool `json:"flip_x,omitempty"`
	FlipY bool `json:"flip_y,omitempty"`

	// Margin is the padding between the plot edge and the interior handed
	// to the component. Nil means a uniform margin of DefaultMargin.
	Margin *geom.ThicknessInt `json:"margin,omitempty"`

	// Component names a registered component. Empty runs every registered
	// component on each attempt and picks at random, by weight, among those
	// that fit.
	Component string `json:"component,omitempty"`

	// TemplateHash identifies the template file behind Component, if any.
	// It only feeds the cache key. When empty, the component's own
	// content hash is used.
	TemplateHash string `json:"template_hash,omitempty"`

	MaxAttempts int  `json:"max_attempts,omitempty"`
	NoCache     bool `json:"no_cache,omitempty"`

	Logger *log.Logger `json:"-"`

	explicitSeed bool
	validated    bool
}

// ValidateAndSetDefaults checks the plot and applies defaults.
// This method is idempotent: the entropy seed is drawn once, so every
// attempt of a call sees the same base seed.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 && o.Height == 0 {
		o.Width, o.Height = DefaultWidth, DefaultHeight
	}
	if err := errors.ValidatePlotSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Margin == nil {
		m := geom.Uniform(DefaultMargin)
		o.Margin = &m
	}
	if err := validateMargin(*o.Margin, o.Plot()); err != nil {
		return err
	}
	if o.Component != "" {
		if err := errors.ValidateComponentName(o.Component); err != nil {
			return err
		}
	}

	switch {
	case o.MaxAttempts == 0:
		o.MaxAttempts = DefaultMaxAttempts
	case o.MaxAttempts < 0 || o.MaxAttempts > MaxAttemptsLimit:
		return errors.New(errors.ErrCodeInvalidInput, "max_attempts must be between 1 and %d", MaxAttemptsLimit)
	}

	o.explicitSeed = o.Seed != 0
	if o.Seed == 0 {
		o.Seed = rng.EntropySeed()
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// validateMargin rejects margins that leave no interior. Edges are bounded
// before they are summed so the totals cannot overflow.
func validateMargin(m geom.ThicknessInt, plot geom.Vector2Int) error {
	for _, edge := range []int{m.Left, m.Top, m.Right, m.Bottom} {
		if edge < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "margin %v must not be negative", m)
		}
		if edge > errors.MaxPlotSize {
			return errors.New(errors.ErrCodeInvalidInput, "margin %v exceeds %d", m, errors.MaxPlotSize)
		}
	}
	if m.Horizontal() >= plot.X || m.Vertical() >= plot.Y {
		return errors.New(errors.ErrCodeInvalidInput, "margin %v leaves no interior on a %dx%d plot", m, plot.X, plot.Y)
	}
	return nil
}

// Plot returns the plot size.
func (o *Options) Plot() geom.Vector2Int { return geom.Vec(o.Width, o.Height) }

// Cacheable reports whether the result is reproducible from the options
// alone and may be cached.
func (o *Options) Cacheable() bool { return o.explicitSeed && !o.NoCache }

// PlanKeyOpts returns cache key options for the plan.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	var m geom.ThicknessInt
	if o.Margin != nil {
		m = *o.Margin
	}
	return cache.PlanKeyOpts{
		Component:    o.Component,
		TemplateHash: o.TemplateHash,
		Width:        o.Width,
		Height:       o.Height,
		Seed:         o.Seed,
		FlipX:        o.FlipX,
		FlipY:        o.FlipY,
		Margin:       [4]int{m.Left, m.Top, m.Right, m.Bottom},
		MaxAttempts:  o.MaxAttempts,
		Version:      buildinfo.Version,
	}
}
