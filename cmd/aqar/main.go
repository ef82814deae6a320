// Package main is the entry point for the aqar CLI client.
package main

import "github.com/aqarhub/aqarfinder/cmd/aqar/cmd"

func main() {
	cmd.Execute()
}
