// Package main is the entry point for the 3c CLI.
package main

import (
	"github.com/donaldgifford/threecommas/cmd/3c/cmd"
)

func main() {
	cmd.Execute()
}
