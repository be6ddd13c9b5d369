package gridgraph

import (
	"fmt"
	"unicode"
)

// Layout runes understood by ParseLayout.
const (
	RuneSafe    = '.'
	RuneHazard  = 'W'
	RuneBlocked = '#'
	RuneStart   = 'S'
	RuneGoal    = 'G'
)

// ParseLabel maps a single layout rune to its Label.
// Digits '1'..'4' denote obstacles with a facing direction; the facing is
// cosmetic, so they parse as Blocked.
func ParseLabel(r rune) (Label, error) {
	switch r {
	case RuneSafe:
		return Safe, nil
	case RuneHazard:
		return Hazard, nil
	case RuneBlocked, '1', '2', '3', '4':
		return Blocked, nil
	case RuneStart:
		return Start, nil
	case RuneGoal:
		return Goal, nil
	default:
		return 0, fmt.Errorf("%w: unknown layout rune %q", ErrBadLabel, r)
	}
}

// Rune returns the layout rune for l ('?' for labels without one).
func (l Label) Rune() rune {
	switch l {
	case Safe:
		return RuneSafe
	case Hazard:
		return RuneHazard
	case Blocked:
		return RuneBlocked
	case Start:
		return RuneStart
	case Goal:
		return RuneGoal
	case Path:
		return '*'
	default:
		return '?'
	}
}

// ParseLayout converts textual rows into a label grid. Whitespace inside a
// row is ignored, so "S . W" and "S.W" are equivalent.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadLabel.
func ParseLayout(rows ...string) ([][]Label, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]Label, 0, len(rows))
	for i, row := range rows {
		var line []Label
		for _, r := range row {
			if unicode.IsSpace(r) {
				continue
			}
			l, err := ParseLabel(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			line = append(line, l)
		}
		if len(line) == 0 {
			return nil, ErrEmptyGrid
		}
		if len(out) > 0 && len(line) != len(out[0]) {
			return nil, ErrNonRectangular
		}
		out = append(out, line)
	}

	return out, nil
}

// MustParseLayout is like ParseLayout but panics on error.
// Intended for tests and examples with literal layouts.
func MustParseLayout(rows ...string) [][]Label {
	labels, err := ParseLayout(rows...)
	if err != nil {
		panic(err)
	}

	return labels
}
