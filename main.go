package main

import (
	"os"

	"github.com/coachlabs/interview-coach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
