package main

import (
	"os"

	"github.com/coursecraft/coursecraft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
