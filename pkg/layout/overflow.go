package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
)

// Phase names the pass in which an overflow was detected.
type Phase string

const (
	PhaseMeasure Phase = "measure"
	PhaseArrange Phase = "arrange"
)

// OverflowError reports a node whose minimum size does not fit the space
// its parent offered.
type OverflowError struct {
	Phase     Phase
	Desired   geom.Vector2Int
	Available geom.Vector2Int
	// Path lists node labels from the root down to the failing node.
	Path []string
}

func newOverflow(phase Phase, e Element, desired, available geom.Vector2Int) *OverflowError {
	return &OverflowError{
		Phase:     phase,
		Desired:   desired,
		Available: available,
		Path:      []string{Label(e)},
	}
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("layout overflow during %s at %s: needs %v, available %v",
		e.Phase, e.Where(), e.Desired, e.Available)
}

// Code implements errors.Coder.
func (e *OverflowError) Code() errors.Code { return errors.ErrCodeLayoutOverflow }

// Where joins Path into a readable location.
func (e *OverflowError) Where() string {
	if len(e.Path) == 0 {
		return "<root>"
	}
	return strings.Join(e.Path, " > ")
}

// prependPath adds the label of e in front of the path of an overflow
// propagating through it.
func prependPath(err error, e Element) error {
	if oe, ok := AsOverflow(err); ok {
		oe.Path = append([]string{Label(e)}, oe.Path...)
	}
	return err
}

// atIndex qualifies the head of an overflow path with the child's index in
// its parent.
func atIndex(err error, i int) error {
	if oe, ok := AsOverflow(err); ok && len(oe.Path) > 0 {
		oe.Path[0] = fmt.Sprintf("[%d]%s", i, oe.Path[0])
	}
	return err
}
