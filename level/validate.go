package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Result is the outcome of validating one level file. Errors mean the game
// would refuse or misload the file; warnings are things a designer probably
// wants to look at. Level is nil when the JSON could not be decoded at all.
type Result struct {
	Path     string
	Level    *Level
	Errors   []string
	Warnings []string
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

var requiredFields = []string{
	"level_id",
	"level_name",
	"grid_size",
	"player_start_position",
	"cell_data",
}

// ValidateFile reads and validates a single level file.
func ValidateFile(path string) Result {
	result := Result{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, errors.Wrap(err, "reading file").Error())
		return result
	}
	return validate(data, result)
}

// Validate checks raw level JSON without touching the filesystem.
func Validate(data []byte) Result {
	return validate(data, Result{})
}

func validate(data []byte, result Result) Result {
	// Field presence has to be checked on the raw document; a struct decode
	// can't tell a missing field from a zero value.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		result.Errors = append(result.Errors, errors.Wrap(err, "JSON parse error").Error())
		return result
	}

	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("missing required field: %s", field))
		}
	}

	var lv Level
	if err := json.Unmarshal(data, &lv); err != nil {
		result.Errors = append(result.Errors, errors.Wrap(err, "decoding level").Error())
		return result
	}
	result.Level = &lv

	if raw, ok := fields["grid_size"]; ok {
		if hasXY(raw, "grid_size", &result) && (lv.GridSize.X <= 0 || lv.GridSize.Y <= 0) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("grid_size must be positive (got %dx%d)", lv.GridSize.X, lv.GridSize.Y))
		}
	}

	if raw, ok := fields["player_start_position"]; ok {
		if hasXY(raw, "player_start_position", &result) {
			if _, haveGrid := fields["grid_size"]; haveGrid {
				start, grid := lv.PlayerStartPosition, lv.GridSize
				if start.X < 0 || start.X >= grid.X || start.Y < 0 || start.Y >= grid.Y {
					result.Errors = append(result.Errors,
						fmt.Sprintf("player_start_position (%d, %d) is outside grid bounds", start.X, start.Y))
				}
			}
		}
	}

	if _, ok := fields["cell_data"]; ok {
		hasGoal := false
		for _, code := range lv.CellData {
			if code == CellGoal {
				hasGoal = true
				break
			}
		}
		if !hasGoal {
			result.Errors = append(result.Errors,
				fmt.Sprintf("no goal cell defined (cell_type = %d)", CellGoal))
		}
	}

	if _, ok := fields["level_id"]; ok && lv.LevelID == "" {
		result.Warnings = append(result.Warnings, "level has empty ID")
	}

	if lv.Difficulty != nil && (*lv.Difficulty < MinDifficulty || *lv.Difficulty > MaxDifficulty) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("difficulty %d is outside typical range (%d-%d)",
				*lv.Difficulty, MinDifficulty, MaxDifficulty))
	}

	return result
}

func hasXY(raw json.RawMessage, field string, result *Result) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must be an object with 'x' and 'y' fields", field))
		return false
	}
	_, hasX := obj["x"]
	_, hasY := obj["y"]
	if !hasX || !hasY {
		result.Errors = append(result.Errors, fmt.Sprintf("%s must have 'x' and 'y' fields", field))
		return false
	}
	return true
}

// ValidateDir validates every *.json file in dir, in name order. It's an
// error for the directory to be missing or to hold no level files at all;
// individual bad levels are reported in their Result instead.
func ValidateDir(dir string) ([]Result, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "directory %s not found", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "listing level files")
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, errors.Errorf("no JSON files found in %s", dir)
	}

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, ValidateFile(path))
	}
	return results, nil
}
