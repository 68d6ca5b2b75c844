package main

import (
	"os"

	"github.com/abhisek/undercover/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
