package render

import (
	"encoding/json"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/plan"
)

// RenderJSON encodes the snapshot as indented JSON.
func RenderJSON(s *plan.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	return append(data, '\n'), nil
}
