package main

import (
	"os"

	"github.com/tailora/outfit-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
