// Validates a directory of level JSON files and reports per-file errors and
// warnings, exiting nonzero if any level fails. This is the out-of-band
// check run before shipping a level pack; the game itself never runs it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polysplit/level"
)

var (
	dir   = kingpin.Arg("dir", "Directory of level JSON files.").Default("levels/campaign").String()
	quiet = kingpin.Flag("quiet", "Only print failures and the summary.").Short('q').Bool()
)

func main() {
	kingpin.Parse()

	results, err := level.ValidateDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", aurora.Red("ERROR:"), err)
		os.Exit(1)
	}

	fmt.Printf("Found %d level files in %s\n\n", len(results), *dir)

	invalid := 0
	warnings := 0
	for _, result := range results {
		warnings += len(result.Warnings)
		if !result.Valid() {
			invalid++
		}
		if *quiet && result.Valid() && len(result.Warnings) == 0 {
			continue
		}
		printResult(result)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total levels: %d\n", len(results))
	fmt.Printf("Valid levels: %d\n", len(results)-invalid)
	fmt.Printf("Invalid levels: %d\n", invalid)
	fmt.Printf("Total warnings: %d\n\n", warnings)

	if invalid > 0 {
		fmt.Println(aurora.Red("✗ Some levels have errors"))
		os.Exit(1)
	}
	fmt.Println(aurora.Green("✓ All levels are valid"))
}

func printResult(result level.Result) {
	fmt.Printf("%s\n", filepath.Base(result.Path))
	if lv := result.Level; lv != nil {
		fmt.Printf("  ID: %s\n", lv.LevelID)
		fmt.Printf("  Name: %s\n", lv.LevelName)
		fmt.Printf("  Grid: %dx%d\n", lv.GridSize.X, lv.GridSize.Y)
		if lv.Difficulty != nil {
			fmt.Printf("  Difficulty: %d\n", *lv.Difficulty)
		}
	}

	if result.Valid() {
		fmt.Printf("  Status: %s\n", aurora.Green("[VALID]"))
	} else {
		fmt.Printf("  Status: %s\n", aurora.Red("[INVALID]"))
	}
	for _, msg := range result.Errors {
		fmt.Printf("    - %s\n", aurora.Red(msg))
	}
	for _, msg := range result.Warnings {
		fmt.Printf("    - %s\n", aurora.Yellow(msg))
	}
	fmt.Println()
}
