package main

import (
	"os"

	"github.com/amoilanen/cliff/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
