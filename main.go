package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/Johannes-Berggren/branchsweep/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
