// Package main is the entry point for the modname CLI.
package main

import (
	"os"

	"github.com/thoreinstein/modname/cmd/modname/commands"
)

func main() {
	os.Exit(commands.Execute())
}
