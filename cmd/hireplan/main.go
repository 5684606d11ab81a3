package main

import (
	"os"

	"hireplan/cmd/hireplan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
