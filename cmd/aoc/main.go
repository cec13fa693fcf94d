// Command aoc runs the Advent of Code 2025 solution for a single day
// against its puzzle input.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	aoc "github.com/runfalk/advent-of-code-2025"
	"github.com/runfalk/advent-of-code-2025/day01"
	"github.com/runfalk/advent-of-code-2025/day02"
	"github.com/runfalk/advent-of-code-2025/day03"
	"github.com/runfalk/advent-of-code-2025/day04"
	"github.com/runfalk/advent-of-code-2025/day05"
	"github.com/runfalk/advent-of-code-2025/day06"
	"github.com/runfalk/advent-of-code-2025/day07"
	"github.com/runfalk/advent-of-code-2025/day08"
	"github.com/runfalk/advent-of-code-2025/day09"
	"github.com/runfalk/advent-of-code-2025/day10"
)

var days = map[int]aoc.Solution{
	1:  day01.Solve,
	2:  day02.Solve,
	3:  day03.Solve,
	4:  day04.Solve,
	5:  day05.Solve,
	6:  day06.Solve,
	7:  day07.Solve,
	8:  day08.Solve,
	9:  day09.Solve,
	10: day10.Solve,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "aoc <day> [input]",
		Short:        "Run the Advent of Code 2025 solution for a day",
		Long:         "Runs one day's solver against its input file (data/day<N>.txt by default) and prints both answers.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil || day < 1 || day > 25 {
				return fmt.Errorf("%s is not a valid day for advent of code", args[0])
			}
			solve, ok := days[day]
			if !ok {
				return fmt.Errorf("no implementation for day %d yet", day)
			}

			var path string
			if len(args) == 2 {
				path = args[1]
			}
			input, err := aoc.ReadInput(day, path)
			if err != nil {
				return err
			}
			return aoc.RunSolution(cmd.OutOrStdout(), solve, input)
		},
	}
}
