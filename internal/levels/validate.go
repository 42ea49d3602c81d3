package levels

import (
	"fmt"

	"github.com/vovakirdan/gb11/internal/core"
)

// Validation error codes.
const (
	CodeNoLevels      = "NO_LEVELS"
	CodeEmptyMap      = "EMPTY_MAP"
	CodeRaggedMap     = "RAGGED_MAP"
	CodeSpawnCount    = "SPAWN_COUNT"
	CodeDoorCount     = "DOOR_COUNT"
	CodeKeyCount      = "KEY_COUNT"
	CodeTooManyArrows = "TOO_MANY_ARROWS"
	CodeOutOfScreen   = "OUT_OF_SCREEN"
	CodeTitleTooLong  = "TITLE_TOO_LONG"
	CodeTooManyLines  = "TOO_MANY_LINES"
	CodeNotSolvable   = "NOT_SOLVABLE"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Level   int
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] level %d: %s", e.Code, e.Level, e.Message)
}

// Validate checks every level of the table.
// Checks per level:
//   - Map is non-empty and rectangular
//   - Map fits on screen
//   - Exactly one player, door and key
//   - No more arrows than arrowCapacity
//   - Title fits the title card
func Validate(t *Table, arrowCapacity int) error {
	if t == nil || t.Len() == 0 {
		return ValidationError{Code: CodeNoLevels, Level: -1, Message: "level table is empty"}
	}
	for i, d := range t.levels {
		if err := ValidateLevel(i, d, arrowCapacity); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLevel checks a single descriptor. i is only used for reporting.
func ValidateLevel(i int, d Descriptor, arrowCapacity int) error {
	fail := func(code, format string, args ...any) error {
		return ValidationError{Code: code, Level: i, Message: fmt.Sprintf(format, args...)}
	}

	// Check 1: Shape
	if d.Height() == 0 || d.Width() == 0 {
		return fail(CodeEmptyMap, "map has no tiles")
	}
	for row, line := range d.Map {
		if len(line) != d.Width() {
			return fail(CodeRaggedMap, "row %d has %d tiles, want %d", row, len(line), d.Width())
		}
	}

	// Check 2: Placement
	if d.OriginX < 0 || d.OriginY < 0 ||
		d.OriginX+d.Width() > core.TilesW || d.OriginY+d.Height() > core.TilesH {
		return fail(CodeOutOfScreen, "map %dx%d at (%d,%d) does not fit the %dx%d screen",
			d.Width(), d.Height(), d.OriginX, d.OriginY, core.TilesW, core.TilesH)
	}

	// Check 3: Entities
	counts := make(map[SpawnKind]int)
	d.Each(func(_, _ int, s Spawn) {
		counts[s.Kind]++
	})
	if n := counts[SpawnPlayer]; n != 1 {
		return fail(CodeSpawnCount, "want 1 player, got %d", n)
	}
	if n := counts[SpawnDoor]; n != 1 {
		return fail(CodeDoorCount, "want 1 door, got %d", n)
	}
	if n := counts[SpawnKey]; n != 1 {
		return fail(CodeKeyCount, "want 1 key, got %d", n)
	}
	if n := counts[SpawnArrow]; n > arrowCapacity {
		return fail(CodeTooManyArrows, "%d arrows exceed capacity %d", n, arrowCapacity)
	}

	// Check 4: Title card
	if len(d.Title) > MaxTitleLines {
		return fail(CodeTooManyLines, "title has %d lines, max %d", len(d.Title), MaxTitleLines)
	}
	for n, line := range d.Title {
		if len(line) > MaxTitleWidth {
			return fail(CodeTitleTooLong, "title line %d has %d characters, max %d", n, len(line), MaxTitleWidth)
		}
	}

	return nil
}

// Check validates the table and then proves every level solvable.
// It returns the shortest solution for each level.
func Check(t *Table, arrowCapacity, maxStates int) ([][]core.Dir, error) {
	if err := Validate(t, arrowCapacity); err != nil {
		return nil, err
	}
	solutions := make([][]core.Dir, 0, t.Len())
	for i, d := range t.levels {
		moves, err := validateSolvability(i, d, maxStates)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, moves)
	}
	return solutions, nil
}

// validateSolvability runs the solver to verify the door is reachable.
func validateSolvability(i int, d Descriptor, maxStates int) ([]core.Dir, error) {
	moves, stats, ok := Solve(d, maxStates)
	if !ok {
		return nil, ValidationError{
			Code:  CodeNotSolvable,
			Level: i,
			Message: fmt.Sprintf("door not reachable after exploring %d states",
				stats.Explored),
		}
	}
	return moves, nil
}
