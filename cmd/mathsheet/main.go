// Package main is the single-binary entrypoint for mathsheet, a generator
// for weekly column addition and subtraction worksheets.
package main

import "github.com/tutu-network/mathsheet/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
