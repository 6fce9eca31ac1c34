package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/JoshDreamland/FreeCell-Solver/search"
	"github.com/JoshDreamland/FreeCell-Solver/viewer"
)

// stepInteractively walks steps one move at a time. It first tries the
// full-screen bubbletea viewer; if that can't attach to a real terminal it
// falls back to a readline "press enter" stepper, and if readline itself
// can't attach, to a plain stdin-scanning stepper, the same degrade-in-steps
// shell/shell.go follows when it can't get a real tty.
func stepInteractively(steps []search.Step, printBoards bool) {
	if err := viewer.Run(steps); err == nil {
		return
	}
	log.Debug().Msg("full-screen viewer unavailable, falling back to readline stepper")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "press enter for next move> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		log.Debug().Msg("readline unavailable, falling back to plain stdin stepper")
		stepWithScanner(steps, printBoards)
		return
	}
	defer rl.Close()

	for i, step := range steps {
		fmt.Print(describeStep(i, step, printBoards))
		if _, err := rl.Readline(); err != nil {
			return
		}
	}
}

// stepWithScanner is the last-resort stepper for when neither the
// full-screen viewer nor readline can attach to a terminal.
func stepWithScanner(steps []search.Step, printBoards bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for i, step := range steps {
		fmt.Print(describeStep(i, step, printBoards))
		fmt.Print("press enter for next move> ")
		if !scanner.Scan() {
			return
		}
	}
}
