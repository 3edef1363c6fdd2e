package levels

// Tile codes understood by the level loader.
const (
	Empty = -1

	ObstacleFirst   = 0
	ObstacleLast    = 17
	DecorationFirst = 18
	DecorationLast  = 20
	PlayerSpawn     = 21
	HostileSpawn    = 22
	AmmoBox         = 23
	ExplosiveBox    = 24
	HealthBox       = 25
	Exit            = 26

	TileTypes = 27
)

// Grid is a level layout indexed as Grid[row][col].
type Grid [][]int

// NewGrid returns a rows x cols grid filled with Empty.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
		for c := range g[r] {
			g[r][c] = Empty
		}
	}
	return g
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]int(nil), g[r]...)
	}
	return out
}

func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Validate checks the grid is rectangular with the expected dimensions and
// that every cell holds a known code. rows or cols of 0 skip that check.
func (g Grid) Validate(level, rows, cols int) error {
	if len(g) == 0 {
		return &LoadError{Level: level, Row: -1, Col: -1, Reason: "empty grid"}
	}
	if rows > 0 && len(g) != rows {
		return &LoadError{Level: level, Row: len(g), Col: -1, Reason: "wrong row count"}
	}
	width := len(g[0])
	if cols > 0 {
		width = cols
	}
	for r, row := range g {
		if len(row) != width {
			return &LoadError{Level: level, Row: r, Col: len(row), Reason: "wrong column count"}
		}
		for c, code := range row {
			if !KnownCode(code) {
				return &LoadError{Level: level, Row: r, Col: c, Reason: "unknown tile code"}
			}
		}
	}
	return nil
}

func KnownCode(code int) bool {
	return code == Empty || (code >= 0 && code < TileTypes)
}

func IsObstacle(code int) bool {
	return code >= ObstacleFirst && code <= ObstacleLast
}

func IsDecoration(code int) bool {
	return code >= DecorationFirst && code <= DecorationLast
}
