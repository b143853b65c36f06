// Package main is the entry point for the abacus calculator.
package main

import (
	"os"

	"github.com/watchfire-io/abacus/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
