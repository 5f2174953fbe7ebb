package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	// Hand the arguments to the CLI runner; flags are parsed there.
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
