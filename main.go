package main

import (
	"os"

	"github.com/zawatton21/org-excalidraw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
