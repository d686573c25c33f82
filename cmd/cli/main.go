// Package main is the entry point for the compute-cost CLI.
package main

import (
	"os"

	"compute-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
