package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/adventurers/engine/movement"
	"github.com/nathoo/adventurers/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks raw cells for unique coordinates and well-formed blocks.
func validate(cells []rawCell) error {
	ve := &ValidationError{}

	first := map[types.Coordinate]string{}
	var start *types.Block
	for _, c := range cells {
		// Coordinates unique.
		if prev, dup := first[c.coord()]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s: duplicate coordinate (%d,%d), first defined at %s", c.src, c.x, c.y, prev))
			continue
		}
		first[c.coord()] = c.src

		// Tag known, payload well-formed.
		blk, err := toBlock(c)
		if err != nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %v", c.src, err))
			continue
		}
		if c.coord() == movement.Start {
			start = &blk
		}
	}

	// Warnings: the player spawns somewhere odd.
	switch {
	case start == nil:
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"no terrain at the start position (%d,%d)", movement.Start.X, movement.Start.Y))
	case start.Kind == types.Barrier:
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(
			"start position (%d,%d) is a Barrier", movement.Start.X, movement.Start.Y))
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
