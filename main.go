package main

import (
	"os"

	"github.com/hcl-ram/AI-Tutor-sf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
