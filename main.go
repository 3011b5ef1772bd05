package main

import (
	"os"

	"github.com/spigell/lex-job-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
