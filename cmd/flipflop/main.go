// Package main provides the flipflop CLI.
package main

import (
	"os"

	"github.com/born-ml/flipflop/internal/cli"
)

var version = "v0.0.1-dev"

func main() {
	if err := cli.New(version).Run(); err != nil {
		os.Exit(1)
	}
}
