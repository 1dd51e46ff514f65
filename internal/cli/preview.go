package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/render"
	"github.com/matzehuels/architectus/pkg/rng"
)

const previewHelp = "n/space reseed  x/y flip  +/- width  [/] height  c archetype  q quit"

// =============================================================================
// PreviewModel - Interactive seed browser
// =============================================================================

// PreviewModel is the bubbletea model behind the preview command. Every key
// that changes an input regenerates the plan synchronously.
type PreviewModel struct {
	ctx        context.Context
	gen        *generator.Generator
	opts       generator.Options
	components []string // "" means every archetype
	compIdx    int
	nextSeed   func() uint64

	Result *generator.Result
	Err    error
}

// NewPreviewModel creates a model and generates the first plan. base carries
// the plot, flips and margin; a zero seed draws a fresh one.
func NewPreviewModel(ctx context.Context, gen *generator.Generator, base generator.Options) PreviewModel {
	m := PreviewModel{
		ctx:        ctx,
		gen:        gen,
		opts:       base,
		components: append([]string{""}, gen.Components.Names()...),
		nextSeed:   rng.EntropySeed,
	}
	// Generation logs would scroll under the view.
	m.opts.NoCache = true
	m.opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	for i, name := range m.components {
		if name == base.Component {
			m.compIdx = i
		}
	}
	if m.opts.Width == 0 && m.opts.Height == 0 {
		m.opts.Width, m.opts.Height = generator.DefaultWidth, generator.DefaultHeight
	}
	if m.opts.Seed == 0 {
		m.opts.Seed = m.nextSeed()
	}
	m.regenerate()
	return m
}

func (m *PreviewModel) regenerate() {
	opts := m.opts
	opts.Component = m.components[m.compIdx]
	m.Result, m.Err = m.gen.Generate(m.ctx, opts)
}

func resize(v, delta int) int {
	return min(max(v+delta, errors.MinPlotSize), errors.MaxPlotSize)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", " ":
		m.opts.Seed = m.nextSeed()
	case "x":
		m.opts.FlipX = !m.opts.FlipX
	case "y":
		m.opts.FlipY = !m.opts.FlipY
	case "+", "=":
		m.opts.Width = resize(m.opts.Width, 1)
	case "-":
		m.opts.Width = resize(m.opts.Width, -1)
	case "]":
		m.opts.Height = resize(m.opts.Height, 1)
	case "[":
		m.opts.Height = resize(m.opts.Height, -1)
	case "c":
		m.compIdx = (m.compIdx + 1) % len(m.components)
	default:
		return m, nil
	}
	m.regenerate()
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	name := m.components[m.compIdx]
	if m.Result != nil {
		name = m.Result.Component
	} else if name == "" {
		name = "any archetype"
	}
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s  %dx%d  seed %d", name, m.opts.Width, m.opts.Height, m.opts.Seed)))
	if m.opts.FlipX || m.opts.FlipY {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  flip x=%t y=%t", m.opts.FlipX, m.opts.FlipY)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(previewHelp))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleError.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
		return b.String()
	}
	floor := m.Result.Lot.GroundFloor()
	b.WriteString(render.RenderASCII(floor, render.WithColor(), render.WithLegend()))
	b.WriteString(StyleSuccess.Render(fmt.Sprintf("%d rooms, attempt %d", floor.RoomCount(), m.Result.Attempts)))
	b.WriteString("\n")
	return b.String()
}

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse generated plans interactively",
		Long:  `Open a terminal view that regenerates the plan as you change the seed, plot size, flips and archetype.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, idx, err := c.newGenerator(cmd.Context(), true, flags.templates())
			if err != nil {
				return err
			}
			opts, err := flags.options(c, idx)
			if err != nil {
				return err
			}

			m := NewPreviewModel(cmd.Context(), gen, opts)
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(PreviewModel); ok && fm.Result != nil {
				printDetail("Last plan: %s seed %d", fm.Result.Component, fm.Result.Seed)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
