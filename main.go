package main

import (
	"fmt"
	"os"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
)

// main - is the entry point of the application. It builds the command line and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
