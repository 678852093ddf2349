package main

import (
	"os"

	"trackplot/cmd/trackplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
