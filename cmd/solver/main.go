package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/config"
	"github.com/JoshDreamland/FreeCell-Solver/dealio"
	"github.com/JoshDreamland/FreeCell-Solver/render"
	"github.com/JoshDreamland/FreeCell-Solver/search"
)

const usage = `usage: solver <deal-file> [--interactive] [--print-boards] [--config <path>]
       [--gc-upper-bound N] [--greed N] [--move-cost N] [--penalty N]
       [--reward N] [--no-foundation-rescue] [--log-level LEVEL]
`

// exit codes, per the error-handling taxonomy: 0 success, 1 no solution,
// 2 the deal file could not be opened, 3 the deal file's contents were
// malformed (also returned for a bad command line or configuration).
const (
	exitSuccess       = 0
	exitNoSolution    = 1
	exitCannotOpen    = 2
	exitMalformedDeal = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fmt.Fprint(os.Stderr, usage)
		return exitMalformedDeal
	}
	dealPath := args[0]
	rest := args[1:]

	interactive, rest := extractBoolFlag(rest, "--interactive")
	printBoards, rest := extractBoolFlag(rest, "--print-boards")

	var cfg config.Config
	if err := cfg.Load(rest); err != nil {
		fmt.Fprintf(os.Stderr, "solver: %v\n", err)
		return exitMalformedDeal
	}
	setupLogger(cfg.LogLevel)

	data, err := os.ReadFile(dealPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver: could not open %q: %v\n", dealPath, err)
		return exitCannotOpen
	}

	deal, err := dealio.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver: %v\n", err)
		return exitMalformedDeal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal, cancelling search")
		cancel()
	}()

	res, err := search.New(cfg).Solve(ctx, deal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver: %v\n", err)
		return exitNoSolution
	}
	if !res.Solved {
		fmt.Println("no solution found")
		return exitNoSolution
	}

	if interactive {
		stepInteractively(res.Steps, printBoards)
	} else {
		printSteps(res.Steps, printBoards)
	}
	return exitSuccess
}

func printSteps(steps []search.Step, printBoards bool) {
	for i, step := range steps {
		fmt.Print(describeStep(i, step, printBoards))
	}
}

func describeStep(i int, step search.Step, printBoards bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d. %s\n", i+1, step.Move.String())
	if printBoards {
		b.WriteString(render.Diagram(step.Board))
	}
	return b.String()
}

// extractBoolFlag scans args for a bare boolean flag and returns whether it
// was present along with args with that flag removed, mirroring
// config.scanConfigFlag's scan-without-full-parse approach for flags that
// cmd/solver handles itself rather than handing to config.Config.Load.
func extractBoolFlag(args []string, name string) (bool, []string) {
	short := strings.TrimPrefix(name, "-")
	out := make([]string, 0, len(args))
	found := false
	for _, a := range args {
		if a == name || a == "-"+short {
			found = true
			continue
		}
		out = append(out, a)
	}
	return found, out
}

func setupLogger(level string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
}
