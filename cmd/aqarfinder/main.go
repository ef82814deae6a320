// Package main is the entry point for the aqarfinder server.
package main

import (
	"os"

	"github.com/aqarhub/aqarfinder/cmd/aqarfinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
