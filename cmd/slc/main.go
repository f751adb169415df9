package main

import (
	"os"

	"github.com/go-slc/slc/cmd/slc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
