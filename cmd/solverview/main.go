// Command solverview is the optional full-screen interactive move viewer:
// it solves a deal with the default configuration and then hands the
// solution straight to the bubbletea viewer, with no readline fallback,
// since unlike cmd/solver --interactive it has no other job to do if it
// can't attach to a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/dealio"
	"github.com/JoshDreamland/FreeCell-Solver/search"
	"github.com/JoshDreamland/FreeCell-Solver/viewer"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: solverview <deal-file>")
		return 3
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "solverview: could not open %q: %v\n", args[0], err)
		return 2
	}

	deal, err := dealio.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solverview: %v\n", err)
		return 3
	}

	res, err := search.New(config.Default()).Solve(context.Background(), deal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solverview: %v\n", err)
		return 1
	}
	if !res.Solved {
		fmt.Fprintln(os.Stderr, "no solution found")
		return 1
	}

	if err := viewer.Run(res.Steps); err != nil {
		fmt.Fprintf(os.Stderr, "solverview: %v\n", err)
		return 1
	}
	return 0
}
