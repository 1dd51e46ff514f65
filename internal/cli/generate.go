package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/render"
)

// generateFlags holds the flags shared by generate and preview.
type generateFlags struct {
	width, height int
	seed          uint64
	flipX, flipY  bool
	margin        []int
	component     string
	templatePath  string
	attempts      int
	noCache       bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "plot width in cells (default 12)")
	cmd.Flags().IntVar(&f.height, "height", 0, "plot height in cells (default 8)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().BoolVar(&f.flipX, "flip-x", false, "mirror the plan horizontally")
	cmd.Flags().BoolVar(&f.flipY, "flip-y", false, "mirror the plan vertically")
	cmd.Flags().IntSliceVar(&f.margin, "margin", nil, "margin around the interior: 1, 2 or 4 values (default 1)")
	cmd.Flags().StringVarP(&f.component, "component", "c", "", "archetype name (default: any that fits)")
	cmd.Flags().StringVarP(&f.templatePath, "template", "t", "", "TOML template file to use as the archetype")
	cmd.Flags().IntVar(&f.attempts, "attempts", 0, "maximum layout attempts (default 3)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the plan cache")
}

// options merges the configuration file with flags; flags win.
func (f *generateFlags) options(c *CLI, idx templateIndex) (generator.Options, error) {
	cfg := c.Config.Generate
	opts := generator.Options{
		Width:       firstNonZero(f.width, cfg.Width),
		Height:      firstNonZero(f.height, cfg.Height),
		Seed:        f.seed,
		FlipX:       f.flipX,
		FlipY:       f.flipY,
		Component:   cfg.Component,
		MaxAttempts: firstNonZero(f.attempts, cfg.MaxAttempts),
		NoCache:     f.noCache,
		Logger:      c.Logger,
	}
	if f.component != "" {
		opts.Component = f.component
	}

	margin, err := cfg.MarginThickness()
	if err != nil {
		return opts, err
	}
	if len(f.margin) > 0 {
		m, err := geom.Thickness(f.margin...)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "--margin")
		}
		margin = &m
	}
	opts.Margin = margin

	if f.templatePath != "" && f.component == "" {
		opts.Component = idx.names[f.templatePath]
	}
	opts.TemplateHash = idx.hashes[opts.Component]
	return opts, nil
}

func (f *generateFlags) templates() []string {
	if f.templatePath == "" {
		return nil
	}
	return []string{f.templatePath}
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags  generateFlags
		format string
		output string
		tree   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a floor plan",
		Long: `Generate a floor plan for a plot and write it in one of the supported formats.

Formats: ascii (default), svg, json, dot (adjacency graph source), graph (adjacency graph as SVG).`,
		Example: `  architectus generate --width 16 --height 10 --seed 42
  architectus generate -c family --format svg -o house.svg
  architectus generate -t courtyard.toml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.Config.Generate.Format
			}
			if err := render.ValidateFormat(format); err != nil {
				return err
			}
			if output != "" {
				if err := errors.ValidatePath(output); err != nil {
					return err
				}
			}

			gen, idx, err := c.newGenerator(cmd.Context(), flags.noCache, flags.templates())
			if err != nil {
				return err
			}
			defer gen.Cache.Close()

			opts, err := flags.options(c, idx)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			res, err := gen.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done("generated", "component", res.Component, "seed", res.Seed, "attempts", res.Attempts, "cached", res.CacheHit)

			if tree {
				if res.Tree == nil {
					printWarning("Layout tree unavailable for a cached plan; rerun with --no-cache")
				} else {
					fmt.Fprint(os.Stderr, layout.Dump(res.Tree))
				}
			}

			return c.writePlan(cmd, res, format, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: ascii, svg, json, dot, graph")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the arranged layout tree to stderr")

	return cmd
}

func (c *CLI) writePlan(cmd *cobra.Command, res *generator.Result, format, output string) error {
	floor := res.Lot.GroundFloor()

	var data []byte
	if format == render.FormatASCII && output == "" {
		data = []byte(render.RenderASCII(floor, render.WithLegend(), render.WithColor()))
	} else {
		var err error
		data, err = render.Render(cmd.Context(), format, res.Snapshot(), floor)
		if err != nil {
			return err
		}
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", output)
	}
	printWritten(format, output, res)
	return nil
}
