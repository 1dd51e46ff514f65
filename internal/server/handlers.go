package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/plan"
	"github.com/matzehuels/architectus/pkg/render"
)

func (s *Server) listComponents(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"components": s.gen.Components.Names()})
}

// generatePlan handles GET /v1/plan. Nothing is stored.
func (s *Server) generatePlan(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatJSON
	}
	if err := render.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.gen.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeRendered(w, r, format, res.Snapshot(), res.Lot)
}

// createPlan handles POST /v1/plans.
func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var opts generator.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options"))
		return
	}
	opts.TemplateHash = ""

	res, err := s.gen.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap := res.Snapshot()
	id, err := s.store.Save(r.Context(), snap)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/plans/"+id)
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}
	plans, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func (s *Server) getPlan(w http.ResponseWriter, r *http.Request) {
	snap, err := s.lookup(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) renderPlan(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := render.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := s.lookup(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	lot, err := plan.FromSnapshot(snap)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeRendered(w, r, format, snap, lot)
}

func (s *Server) lookup(r *http.Request) (*plan.Snapshot, error) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		return nil, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	return s.store.Get(r.Context(), id)
}

func (s *Server) writeRendered(w http.ResponseWriter, r *http.Request, format string, snap *plan.Snapshot, lot *plan.HouseLot) {
	out, err := render.Render(r.Context(), format, snap, lot.GroundFloor())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// optionsFromQuery reads generation options from URL parameters.
func optionsFromQuery(r *http.Request) (generator.Options, error) {
	q := r.URL.Query()
	var opts generator.Options
	var err error

	intParam := func(name string, dst *int) {
		if v := q.Get(name); v != "" && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil {
				err = errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
				return
			}
			*dst = n
		}
	}
	boolParam := func(name string, dst *bool) {
		if v := q.Get(name); v != "" && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
				return
			}
			*dst = b
		}
	}

	intParam("width", &opts.Width)
	intParam("height", &opts.Height)
	intParam("attempts", &opts.MaxAttempts)
	boolParam("flip_x", &opts.FlipX)
	boolParam("flip_y", &opts.FlipY)
	if v := q.Get("seed"); v != "" && err == nil {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			err = errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		opts.Seed = seed
	}
	opts.Component = q.Get("component")
	return opts, err
}
