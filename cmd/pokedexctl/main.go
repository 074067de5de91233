package main

import (
	"os"

	"pokedex/cmd/pokedexctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
