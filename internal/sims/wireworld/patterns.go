package wireworld

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"wireworld/internal/core"
)

// ErrUnknownPattern is returned by LookupPattern for unregistered names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a small rectangular circuit that can be stamped onto a grid.
type Pattern struct {
	W, H  int
	cells []core.CellState
}

// ParsePattern reads a circuit drawn in ASCII, one row per line:
//
//	'.' or ' '  empty
//	'#'         conductor
//	'H'         electron head
//	't'         electron tail
//
// Short rows are padded with empty cells.
func ParsePattern(src string) (*Pattern, error) {
	lines := strings.Split(strings.Trim(src, "\n"), "\n")
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	if w == 0 {
		return nil, errors.New("empty pattern")
	}
	p := &Pattern{W: w, H: len(lines), cells: make([]core.CellState, w*len(lines))}
	for y, line := range lines {
		for x, r := range line {
			s, err := stateForRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			p.cells[y*w+x] = s
		}
	}
	return p, nil
}

func stateForRune(r rune) (core.CellState, error) {
	switch r {
	case '.', ' ':
		return core.Empty, nil
	case '#':
		return core.Conductor, nil
	case 'H':
		return core.ElectronHead, nil
	case 't':
		return core.ElectronTail, nil
	}
	return core.Empty, fmt.Errorf("unexpected character %q", r)
}

// At returns the pattern cell at (x, y).
func (p *Pattern) At(x, y int) core.CellState { return p.cells[y*p.W+x] }

// Stamp copies the pattern onto g with its top-left corner at (ox, oy).
// Cells falling outside g are dropped.
func (p *Pattern) Stamp(g *core.Grid, ox, oy int) {
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			g.Set(ox+x, oy+y, p.At(x, y))
		}
	}
}

var presets = map[string]string{
	// A straight wire with one electron travelling east.
	"wire": `
tH##############
`,
	// A loop that emits one electron to the east per revolution.
	"clock": `
##tH####
#......#########
########
`,
	// Two clocks feeding a shared output line.
	"merge": `
##tH####
#......#####
########...#
...........######
########...#
#......#####
#tH#####
`,
}

// LookupPattern returns the named built-in pattern.
func LookupPattern(name string) (*Pattern, error) {
	src, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	return ParsePattern(src)
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
