// Package template declares layout trees in TOML and exposes them as
// components.
//
// A template file names the archetype and describes its root node:
//
//	name = "courtyard"
//	description = "Two wings around a garden"
//
//	[root]
//	kind = "stack"
//	orientation = "auto"
//
//	[[root.children]]
//	kind = "room"
//	type = "living_room"
//	min = [3, 3]
//	weight_range = [1.0, 3.0]
//
// Node kinds are room, stack, dock, padding and content. A few fields draw
// from the generation context so one template yields many plans:
// orientation "auto" follows the longer side of the expanded bounds,
// weight_range samples a weight (Gaussian by default, or evenly with
// sampler = "uniform"), random_flip mirrors the node half the time and
// shuffle permutes a container's children.
//
// A top-level weight sets the template's share when the generator picks
// among the archetypes that fit a plot.
package template

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/architectus/pkg/cache"
	"github.com/matzehuels/architectus/pkg/errors"
)

// Template is a declarative archetype.
type Template struct {
	ID          string  `toml:"name"`
	Description string  `toml:"description,omitempty"`
	Share       float64 `toml:"weight,omitempty"`
	Root        Node    `toml:"root"`
}

// Name returns the archetype name under which the template registers.
func (t *Template) Name() string { return t.ID }

// Weight implements [component.Weighter].
func (t *Template) Weight() float64 { return t.Share }

// Node is one declared layout node.
type Node struct {
	Kind string `toml:"kind"`
	Name string `toml:"name,omitempty"`

	// room
	Type string `toml:"type,omitempty"`
	Min  []int  `toml:"min,omitempty"`
	Max  []int  `toml:"max,omitempty"`

	// stack
	Orientation string `toml:"orientation,omitempty"`
	Shuffle     bool   `toml:"shuffle,omitempty"`

	// dock
	Dock          string `toml:"dock,omitempty"`
	LastChildFill *bool  `toml:"last_child_fill,omitempty"`

	// padding
	Padding []int `toml:"padding,omitempty"`

	Weight      *float64  `toml:"weight,omitempty"`
	WeightRange []float64 `toml:"weight_range,omitempty"`
	Sampler     string    `toml:"sampler,omitempty"`
	FlipX       bool      `toml:"flip_x,omitempty"`
	FlipY       bool      `toml:"flip_y,omitempty"`
	RandomFlip  bool      `toml:"random_flip,omitempty"`
	Rotation    int       `toml:"rotation,omitempty"`

	Children []Node `toml:"children,omitempty"`
}

// Parse decodes and validates a template. Unknown keys are rejected.
func Parse(data []byte) (*Template, error) {
	var t Template
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "decode template")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidTemplate, "unknown key %q", undecoded[0].String())
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "read template %s", path)
	}
	return Parse(data)
}

// Hash returns the SHA-256 of the encoded template, or "" if it cannot be
// encoded.
func (t *Template) Hash() string {
	data, err := t.Encode()
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// Encode writes t back to TOML.
func (t *Template) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode template")
	}
	return buf.Bytes(), nil
}
