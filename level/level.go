// Package level validates level-definition JSON files for the grid puzzle
// game: required fields, grid bounds, and the presence of a goal cell. It
// reports structural problems as errors and suspicious-but-loadable values
// as warnings, mirroring what the game itself tolerates at load time.
package level

// GridPos is an integer cell coordinate.
type GridPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Level is the decoded shape of a level file. CellData maps a position key
// (as written by the editor, e.g. "3,4") to a cell-type code.
type Level struct {
	LevelID             string         `json:"level_id"`
	LevelName           string         `json:"level_name"`
	GridSize            GridPos        `json:"grid_size"`
	PlayerStartPosition GridPos        `json:"player_start_position"`
	CellData            map[string]int `json:"cell_data"`
	Difficulty          *int           `json:"difficulty"`
}

// Cell-type codes used by the game.
const (
	CellEmpty = 0
	CellWall  = 1
	CellStart = 2
	CellGoal  = 3
)

// Difficulty range shown in the level select UI. Values outside it still
// load, hence a warning rather than an error.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)
