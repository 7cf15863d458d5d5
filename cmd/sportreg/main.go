package main

import (
	"os"

	"sportreg/cmd/sportreg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
