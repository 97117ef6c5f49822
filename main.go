package main

import (
	"os"

	"github.com/ectools/unfec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
