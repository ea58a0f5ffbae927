package main

import (
	"os"

	"vendorhub/cmd/vendorhub/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
