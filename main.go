package main

import (
	"os"

	"github.com/osokin/lingvo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
