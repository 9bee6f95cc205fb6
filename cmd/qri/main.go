// Package main is the entry point for the qri CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/quickrefs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
