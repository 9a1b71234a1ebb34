package main

import (
	"os"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
