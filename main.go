package main

import (
	"os"

	"github.com/aruizf/biogen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
