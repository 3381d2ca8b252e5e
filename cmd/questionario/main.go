package main

import (
	"os"

	"github.com/lcarotenuto/questionario-ampasilava/cmd/questionario/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
