// Package main is the entry point for tradepost.
package main

import (
	"os"

	"github.com/tradepost/tradepost/cmd/tradepost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
