package main

import (
	"os"

	"github.com/gigworks/gig-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
