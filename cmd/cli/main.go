// Package main is the entry point for the snackbar CLI.
package main

import (
	"os"

	"snackbar/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
