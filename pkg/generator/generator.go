package generator

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/cache"
	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/layout"
	"github.com/matzehuels/architectus/pkg/observability"
	"github.com/matzehuels/architectus/pkg/plan"
	"github.com/matzehuels/architectus/pkg/rng"
)

// Generator runs generation passes with caching.
//
// The Generator is stateless apart from its collaborators; multiple
// goroutines may call Generate concurrently with different options. Each
// pass owns the tree and the lot it builds.
type Generator struct {
	Components *component.Registry
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
}

// New creates a generator.
// If components is nil, the built-in registry is used.
// If c is nil, a NullCache is used (caching disabled).
// If keyer is nil, a DefaultKeyer is used.
func New(components *component.Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Generator {
	if components == nil {
		components = component.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{Components: components, Cache: c, Keyer: keyer, Logger: logger}
}

// Result is a successfully generated plan.
type Result struct {
	Lot *plan.HouseLot
	// Tree is the arranged layout tree. It is nil when the lot was replayed
	// from the cache.
	Tree      layout.Element
	Seed      uint64
	Component string
	Attempts  int
	Duration  time.Duration
	CacheHit  bool
}

// Snapshot returns the lot snapshot stamped with the result's seed and
// component.
func (r *Result) Snapshot() *plan.Snapshot {
	s := r.Lot.Snapshot()
	s.Seed = r.Seed
	s.Component = r.Component
	return s
}

// FailureError reports that every attempt overflowed.
type FailureError struct {
	Attempts int
	Last     *layout.OverflowError
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("no layout after %d attempt(s): %v", e.Attempts, e.Last)
}

// Code implements errors.Coder.
func (e *FailureError) Code() errors.Code { return errors.ErrCodeGenerationFailed }

// Unwrap exposes the last overflow.
func (e *FailureError) Unwrap() error { return e.Last }

// Generate produces a lot for opts, retrying on layout overflow.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	g.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	comps, err := g.candidates(opts.Component)
	if err != nil {
		return nil, err
	}

	var key string
	if opts.Cacheable() {
		key = g.Keyer.PlanKey(g.planKeyOpts(&opts, comps))
		if res, ok := g.fromCache(ctx, key); ok {
			logger.Debug("plan cache hit", "seed", opts.Seed, "component", res.Component)
			return res, nil
		}
	}

	start := time.Now()
	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, opts.Component, opts.Plot())

	res, err := g.run(ctx, opts, comps)
	if res != nil {
		res.Duration = time.Since(start)
	}
	attempts := opts.MaxAttempts
	if res != nil {
		attempts = res.Attempts
	}
	hooks.OnGenerateComplete(ctx, opts.Component, attempts, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logger.Info("generated plan",
		"component", res.Component,
		"seed", res.Seed,
		"rooms", res.Lot.GroundFloor().RoomCount(),
		"attempts", res.Attempts,
		"duration", res.Duration)

	if key != "" {
		g.toCache(ctx, key, res)
	}
	return res, nil
}

// fit is a component whose pass succeeded within an attempt.
type fit struct {
	name string
	lot  *plan.HouseLot
	tree layout.Element
}

// run tries every candidate on each attempt, each from the attempt's
// rewound context, and picks among those that fit by weight.
func (g *Generator) run(ctx context.Context, opts Options, comps []component.Component) (*Result, error) {
	base := component.NewContext(opts.Seed)
	hooks := observability.Generation()

	var last *layout.OverflowError
	for i := range opts.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hctx := base.Derive(i)

		var fits rng.Weighted[fit]
		var attemptErr error
		for _, comp := range comps {
			hctx.Reset()
			lot, tree, err := RunPass(comp, hctx, opts.Plot(), *opts.Margin, opts.FlipX, opts.FlipY)
			if err == nil {
				fits.Add(fit{comp.Name(), lot, tree}, component.WeightOf(comp))
				continue
			}
			ov, ok := layout.AsOverflow(err)
			if !ok {
				return nil, err
			}
			last, attemptErr = ov, err
			opts.Logger.Debug("layout overflow",
				"attempt", i+1,
				"component", comp.Name(),
				"where", ov.Where(),
				"desired", ov.Desired,
				"available", ov.Available)
		}

		hctx.Reset()
		picked, ok := fits.Next(hctx.Rand())
		if !ok {
			hooks.OnAttempt(ctx, i+1, hctx.Seed(), attemptErr)
			continue
		}
		hooks.OnAttempt(ctx, i+1, hctx.Seed(), nil)
		return &Result{
			Lot:       picked.lot,
			Tree:      picked.tree,
			Seed:      opts.Seed,
			Component: picked.name,
			Attempts:  i + 1,
		}, nil
	}

	opts.Logger.Warn("generation failed", "attempts", opts.MaxAttempts, "where", last.Where())
	return nil, &FailureError{Attempts: opts.MaxAttempts, Last: last}
}

// candidates returns the named component, or every registered one when
// name is empty.
func (g *Generator) candidates(name string) ([]component.Component, error) {
	if name != "" {
		c, err := g.Components.Get(name)
		if err != nil {
			return nil, err
		}
		return []component.Component{c}, nil
	}
	comps := g.Components.Components()
	if len(comps) == 0 {
		return nil, errors.New(errors.ErrCodeComponentNotFound, "registry is empty")
	}
	return comps, nil
}

// planKeyOpts extends the option key with the content of the candidates, so
// a changed template or registry never replays a stale plan.
func (g *Generator) planKeyOpts(opts *Options, comps []component.Component) cache.PlanKeyOpts {
	k := opts.PlanKeyOpts()
	if opts.Component == "" {
		k.Registry = g.Components.Fingerprint()
	} else if k.TemplateHash == "" {
		k.TemplateHash = component.HashOf(comps[0])
	}
	return k
}

// RunPass runs one expand, measure, transform, arrange and imprint pass.
// The component sees the plot deflated by margin; the returned tree is its
// expansion wrapped in the margin padding, which carries the root flips.
//
// A layout overflow is returned unchanged and no lot is produced.
// Malformed trees panic.
func RunPass(c component.Component, hctx *component.Context, plot geom.Vector2Int, margin geom.ThicknessInt, flipX, flipY bool) (*plan.HouseLot, layout.Element, error) {
	plotRect := geom.RectFrom(geom.Zero, plot)
	interior := plotRect.Deflate(margin)

	root := layout.NewPadding(margin, c.Expand(interior, hctx), layout.WithFlip(flipX, flipY))

	if _, err := layout.Measure(root, plot); err != nil {
		return nil, root, err
	}
	layout.UpdateWorldMatrix(root, geom.Identity)
	if _, err := layout.Arrange(root, plotRect); err != nil {
		return nil, root, err
	}

	lot := plan.NewHouseLot(plot)
	layout.Imprint(root, lot)
	if err := lot.Validate(); err != nil {
		panic(errors.Wrap(errors.ErrCodeInternal, err, "imprinted lot is inconsistent"))
	}
	return lot, root, nil
}

// cachedPlan is the cache payload: the snapshot plus the attempt count.
type cachedPlan struct {
	Snapshot *plan.Snapshot `json:"snapshot"`
	Attempts int            `json:"attempts"`
}

func (g *Generator) fromCache(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := g.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "plan")
		return nil, false
	}
	var cp cachedPlan
	if err := json.Unmarshal(data, &cp); err != nil || cp.Snapshot == nil {
		return nil, false
	}
	lot, err := plan.FromSnapshot(cp.Snapshot)
	if err != nil {
		// Stale or corrupt entry; recompute.
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "plan")
	return &Result{
		Lot:       lot,
		Seed:      cp.Snapshot.Seed,
		Component: cp.Snapshot.Component,
		Attempts:  cp.Attempts,
		CacheHit:  true,
	}, true
}

func (g *Generator) toCache(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(cachedPlan{Snapshot: res.Snapshot(), Attempts: res.Attempts})
	if err != nil {
		return
	}
	if err := g.Cache.Set(ctx, key, data, cache.PlanTTL); err != nil {
		g.Logger.Debug("plan cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "plan", len(data))
}

// applyLogger sets the generator's logger on options if not already set.
func (g *Generator) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = g.Logger
	}
}

// IsFailure reports whether err is a generation failure.
func IsFailure(err error) bool {
	var f *FailureError
	return stderrors.As(err, &f)
}
