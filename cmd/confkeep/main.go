package main

import (
	"os"

	"github.com/ariel-frischer/confkeep/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
